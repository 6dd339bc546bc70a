package queries

import (
	"context"
	"database/sql"
	"errors"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetComplaintQueryHandler retrieves a single complaint case from the
// database. This is a straight row-to-view mapping, no domain rehydration.
//
// Example:
//
//	handler := NewGetComplaintQueryHandler(db)
//	query, _ := NewGetComplaintQuery(complaintID)
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get complaint: %v", err)
//	    return err
//	}
type GetComplaintQueryHandler struct {
	db *gorm.DB
}

// NewGetComplaintQueryHandler creates a handler for complaint case queries.
// Requires a GORM database connection for query execution.
func NewGetComplaintQueryHandler(db *gorm.DB) GetComplaintQueryHandler {
	return GetComplaintQueryHandler{db: db}
}

// Handle executes the query for a single complaint case. Returns an
// object-not-found error when no complaint with the requested ID exists.
func (h GetComplaintQueryHandler) Handle(
	ctx context.Context,
	query GetComplaintQuery,
) (GetComplaintQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetComplaintQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			user_id,
			complaint_type,
			description,
			evidence_images,
			investigation_status,
			admin_notes,
			coupon_code,
			coupon_discount_percent,
			pickup_status,
			pickup_scheduled_at,
			pickup_completed_at,
			resolution_type,
			refund_method,
			refund_status,
			replacement_order_id,
			version,
			created_at
		FROM complaints
		WHERE id = ?
	`, query.ComplaintID().Bytes()).Row()

	var (
		rawID            uuid.UUID
		rawOrderID       uuid.UUID
		rawUserID        uuid.UUID
		evidenceImages   pq.StringArray
		rawReplacementID uuid.NullUUID
		pickupScheduled  sql.NullTime
		pickupCompleted  sql.NullTime
		response         GetComplaintQueryResponse
	)

	err := row.Scan(
		&rawID,
		&rawOrderID,
		&rawUserID,
		&response.ComplaintType,
		&response.Description,
		&evidenceImages,
		&response.InvestigationStatus,
		&response.AdminNotes,
		&response.CouponCode,
		&response.CouponDiscountPercent,
		&response.PickupStatus,
		&pickupScheduled,
		&pickupCompleted,
		&response.ResolutionType,
		&response.RefundMethod,
		&response.RefundStatus,
		&rawReplacementID,
		&response.Version,
		&response.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetComplaintQueryResponse{}, errs.NewObjectNotFoundError(
			"complaintID", query.ComplaintID())
	}
	if err != nil {
		return GetComplaintQueryResponse{}, err
	}

	response.ComplaintID, err = kernel.UUIDFromBytes(rawID[:])
	if err != nil {
		return GetComplaintQueryResponse{}, err
	}
	response.OrderID, err = kernel.UUIDFromBytes(rawOrderID[:])
	if err != nil {
		return GetComplaintQueryResponse{}, err
	}
	response.UserID, err = kernel.UUIDFromBytes(rawUserID[:])
	if err != nil {
		return GetComplaintQueryResponse{}, err
	}

	if rawReplacementID.Valid {
		replacementID, idErr := kernel.UUIDFromBytes(rawReplacementID.UUID[:])
		if idErr != nil {
			return GetComplaintQueryResponse{}, idErr
		}
		response.ReplacementOrderID = &replacementID
	}

	response.EvidenceImages = []string(evidenceImages)
	response.PickupScheduledAt = timePtr(pickupScheduled)
	response.PickupCompletedAt = timePtr(pickupCompleted)

	return response, nil
}
