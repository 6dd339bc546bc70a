// Package outboxrepo provides data transfer objects and mapping functions for
// the notification outbox. Intents are written in the same transaction as the
// state change that caused them and drained by a background dispatcher, so a
// customer is never notified about a change that rolled back.
package outboxrepo

import (
	"encoding/json"
	"time"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// IntentDTO represents the database structure for persisting notification intents.
// Additional template data is stored as a JSON document.
type IntentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ComplaintID    uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null"`
	UserID         uuid.UUID `gorm:"type:uuid;not null"`
	IntentType     string    `gorm:"type:varchar(32);not null"`
	CustomerName   string    `gorm:"type:varchar(255);not null"`
	CustomerEmail  string    `gorm:"type:varchar(255);not null"`
	AdditionalData []byte    `gorm:"type:jsonb"`
	State          string    `gorm:"type:varchar(32);not null;index"`
	Attempts       int       `gorm:"type:int;not null"`
	CreatedAt      time.Time `gorm:"not null"`
	SentAt         *time.Time
}

// TableName specifies the database table name for notification intents.
// Overrides GORM's default naming convention to use "notification_outbox".
func (IntentDTO) TableName() string {
	return "notification_outbox"
}

// fromDomain converts a notification intent to its database representation.
func fromDomain(intent *notification.Intent) (IntentDTO, error) {
	additional, err := json.Marshal(intent.AdditionalData())
	if err != nil {
		return IntentDTO{}, err
	}

	return IntentDTO{
		ID:             intent.ID().Bytes(),
		ComplaintID:    intent.ComplaintID().Bytes(),
		OrderID:        intent.OrderID().Bytes(),
		UserID:         intent.UserID().Bytes(),
		IntentType:     intent.IntentType().String(),
		CustomerName:   intent.CustomerName(),
		CustomerEmail:  intent.CustomerEmail(),
		AdditionalData: additional,
		State:          intent.State().String(),
		Attempts:       intent.Attempts(),
		CreatedAt:      intent.CreatedAt(),
		SentAt:         intent.SentAt(),
	}, nil
}

// toDomain converts a database DTO to a notification intent using RestoreIntent.
func toDomain(dto IntentDTO) (*notification.Intent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	complaintID, err := kernel.UUIDFromBytes(dto.ComplaintID[:])
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

	intentType, err := notification.TypeFromString(dto.IntentType)
	if err != nil {
		return nil, err
	}

	state, err := notification.DeliveryStateFromString(dto.State)
	if err != nil {
		return nil, err
	}

	additional := make(map[string]string)
	if len(dto.AdditionalData) > 0 {
		if err = json.Unmarshal(dto.AdditionalData, &additional); err != nil {
			return nil, err
		}
	}

	return notification.RestoreIntent(
		id,
		complaintID,
		orderID,
		userID,
		intentType,
		dto.CustomerName,
		dto.CustomerEmail,
		additional,
		state,
		dto.Attempts,
		dto.CreatedAt,
		dto.SentAt,
	)
}
