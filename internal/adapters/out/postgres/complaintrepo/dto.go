// Package complaintrepo provides data transfer objects and mapping functions for complaint persistence.
// This package implements the repository pattern for the complaint domain aggregate, handling
// the conversion between domain entities and database representations, including the
// version column used for optimistic concurrency control.
package complaintrepo

import (
	"time"

	"aftersales/internal/core/domain/model/complaint"
	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/core/domain/model/refund"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ComplaintDTO represents the database structure for persisting complaint aggregates.
// The version column implements optimistic locking: every update is conditional on
// the version the aggregate was loaded with.
type ComplaintDTO struct {
	ID                    uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrderID               uuid.UUID      `gorm:"type:uuid;not null;index"`
	UserID                uuid.UUID      `gorm:"type:uuid;not null;index"`
	ComplaintType         string         `gorm:"type:varchar(32);not null"`
	Description           string         `gorm:"type:text;not null"`
	EvidenceImages        pq.StringArray `gorm:"type:text[]"`
	InvestigationStatus   string         `gorm:"type:varchar(32);not null;index"`
	AdminNotes            string         `gorm:"type:text;not null"`
	CouponCode            string         `gorm:"type:varchar(32);not null"`
	CouponDiscountPercent int            `gorm:"type:int;not null"`
	PickupStatus          string         `gorm:"type:varchar(32);not null"`
	PickupScheduledAt     *time.Time
	PickupCompletedAt     *time.Time
	ResolutionType        string     `gorm:"type:varchar(32);not null"`
	RefundMethod          string     `gorm:"type:varchar(64);not null"`
	RefundStatus          string     `gorm:"type:varchar(32);not null"`
	ReplacementOrderID    *uuid.UUID `gorm:"type:uuid"`
	Version               int        `gorm:"type:int;not null"`
	CreatedAt             time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for complaint entities.
// Overrides GORM's default naming convention to use "complaints".
func (ComplaintDTO) TableName() string {
	return "complaints"
}

// fromDomain converts a complaint domain aggregate to its database representation.
func fromDomain(aggregate *complaint.Complaint) ComplaintDTO {
	var replacementOrderID *uuid.UUID
	if id := aggregate.ReplacementOrderID(); id != nil {
		raw := id.Bytes()
		replacementOrderID = &raw
	}

	return ComplaintDTO{
		ID:                    aggregate.ID().Bytes(),
		OrderID:               aggregate.OrderID().Bytes(),
		UserID:                aggregate.UserID().Bytes(),
		ComplaintType:         aggregate.ComplaintType().String(),
		Description:           aggregate.Description(),
		EvidenceImages:        pq.StringArray(aggregate.EvidenceImages()),
		InvestigationStatus:   aggregate.InvestigationStatus().String(),
		AdminNotes:            aggregate.AdminNotes(),
		CouponCode:            aggregate.CouponCode(),
		CouponDiscountPercent: aggregate.CouponDiscountPercent(),
		PickupStatus:          aggregate.PickupStatus().String(),
		PickupScheduledAt:     aggregate.PickupScheduledAt(),
		PickupCompletedAt:     aggregate.PickupCompletedAt(),
		ResolutionType:        aggregate.ResolutionType().String(),
		RefundMethod:          aggregate.RefundMethod(),
		RefundStatus:          aggregate.RefundStatus().String(),
		ReplacementOrderID:    replacementOrderID,
		Version:               aggregate.Version(),
		CreatedAt:             aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a complaint domain aggregate.
// Reconstructs the complete case using RestoreComplaint.
func toDomain(dto ComplaintDTO) (*complaint.Complaint, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	complaintType, err := complaint.ComplaintTypeFromString(dto.ComplaintType)
	if err != nil {
		return nil, err
	}

	investigationStatus, err := complaint.InvestigationStatusFromString(dto.InvestigationStatus)
	if err != nil {
		return nil, err
	}

	pickupStatus, err := complaint.PickupStatusFromString(dto.PickupStatus)
	if err != nil {
		return nil, err
	}

	resolutionType, err := complaint.ResolutionTypeFromString(dto.ResolutionType)
	if err != nil {
		return nil, err
	}

	refundStatus := refund.StatusUnknownRefund
	if dto.ResolutionType == complaint.ResolutionRefund.String() {
		refundStatus, err = refund.StatusFromString(dto.RefundStatus)
		if err != nil {
			return nil, err
		}
	}

	var replacementOrderID *kernel.UUID
	if dto.ReplacementOrderID != nil {
		rID, replacementErr := kernel.UUIDFromBytes((*dto.ReplacementOrderID)[:])
		if replacementErr != nil {
			return nil, replacementErr
		}

		replacementOrderID = &rID
	}

	return complaint.RestoreComplaint(
		id,
		orderID,
		userID,
		complaintType,
		dto.Description,
		[]string(dto.EvidenceImages),
		investigationStatus,
		dto.AdminNotes,
		dto.CouponCode,
		dto.CouponDiscountPercent,
		pickupStatus,
		dto.PickupScheduledAt,
		dto.PickupCompletedAt,
		resolutionType,
		dto.RefundMethod,
		refundStatus,
		replacementOrderID,
		dto.Version,
		dto.CreatedAt,
	)
}
