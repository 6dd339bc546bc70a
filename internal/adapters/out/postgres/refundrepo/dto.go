// Package refundrepo provides data transfer objects and mapping functions for
// refund request persistence.
package refundrepo

import (
	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/core/domain/model/order"
	"aftersales/internal/core/domain/model/refund"

	"github.com/google/uuid"
)

// RequestDTO represents the database structure for persisting refund requests.
type RequestDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount        float64   `gorm:"type:numeric(12,2);not null"`
	PaymentMethod string    `gorm:"type:varchar(32);not null"`
	RefundMethod  string    `gorm:"type:varchar(64);not null"`
	Reason        string    `gorm:"type:text;not null"`
	Status        string    `gorm:"type:varchar(32);not null"`
}

// TableName specifies the database table name for refund request entities.
// Overrides GORM's default naming convention to use "refund_requests".
func (RequestDTO) TableName() string {
	return "refund_requests"
}

// fromDomain converts a refund request to its database representation.
func fromDomain(request *refund.Request) RequestDTO {
	return RequestDTO{
		ID:            request.ID().Bytes(),
		OrderID:       request.OrderID().Bytes(),
		UserID:        request.UserID().Bytes(),
		Amount:        request.Amount(),
		PaymentMethod: request.PaymentMethod().String(),
		RefundMethod:  request.RefundMethod(),
		Reason:        request.Reason(),
		Status:        request.Status().String(),
	}
}

// toDomain converts a database DTO to a refund request using RestoreRequest.
func toDomain(dto RequestDTO) (*refund.Request, error) {
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

	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	status, err := refund.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return refund.RestoreRequest(
		id,
		orderID,
		userID,
		dto.Amount,
		paymentMethod,
		dto.RefundMethod,
		dto.Reason,
		status,
	)
}
