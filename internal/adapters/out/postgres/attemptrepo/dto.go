// Package attemptrepo provides data transfer objects and mapping functions for
// delivery attempt persistence. Attempts form an append-only history per order,
// keyed by order ID and attempt number.
package attemptrepo

import (
	"time"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// AttemptDTO represents the database structure for persisting delivery attempts.
// The composite primary key (order_id, attempt_number) makes duplicate numbering
// impossible at the storage level.
type AttemptDTO struct {
	OrderID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	AttemptNumber int       `gorm:"type:int;primaryKey"`
	ScheduledDate time.Time `gorm:"not null"`
	Status        string    `gorm:"type:varchar(32);not null"`
	FailureReason string    `gorm:"type:text;not null"`
}

// TableName specifies the database table name for delivery attempt entities.
// Overrides GORM's default naming convention to use "delivery_attempts".
func (AttemptDTO) TableName() string {
	return "delivery_attempts"
}

// fromDomain converts a delivery attempt to its database representation.
func fromDomain(attempt *shipment.Attempt) AttemptDTO {
	return AttemptDTO{
		OrderID:       attempt.OrderID().Bytes(),
		AttemptNumber: attempt.AttemptNumber(),
		ScheduledDate: attempt.ScheduledDate(),
		Status:        attempt.Status().String(),
		FailureReason: attempt.FailureReason(),
	}
}

// toDomain converts a database DTO to a delivery attempt using RestoreAttempt.
func toDomain(dto AttemptDTO) (*shipment.Attempt, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := shipment.AttemptStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreAttempt(
		orderID,
		dto.AttemptNumber,
		dto.ScheduledDate,
		status,
		dto.FailureReason,
	)
}
