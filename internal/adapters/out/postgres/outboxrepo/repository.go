package outboxrepo

import (
	"context"
	"errors"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/core/domain/model/notification"
	"aftersales/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormNotificationOutbox implements NotificationOutbox using GORM.
type GormNotificationOutbox struct {
	db *gorm.DB
}

// NewGormNotificationOutbox creates a new GORM notification outbox.
func NewGormNotificationOutbox(db *gorm.DB) *GormNotificationOutbox {
	return &GormNotificationOutbox{db: db}
}

// Add saves a new pending notification intent to the outbox.
func (r *GormNotificationOutbox) Add(ctx context.Context, intent *notification.Intent) error {
	if err := intent.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(intent)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves the delivery progress of an existing intent.
func (r *GormNotificationOutbox) Update(ctx context.Context, intent *notification.Intent) error {
	if err := intent.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(intent)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&IntentDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification intent", intent.ID().String())
	}

	return nil
}

// Get retrieves a notification intent by ID.
func (r *GormNotificationOutbox) Get(ctx context.Context, id kernel.UUID) (*notification.Intent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto IntentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notification intent", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPending retrieves up to limit pending intents, oldest first, so the
// dispatcher sends notifications in the order the changes happened.
func (r *GormNotificationOutbox) GetAllPending(ctx context.Context, limit int) ([]*notification.Intent, error) {
	var dtos []IntentDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Limit(limit).
		Find(&dtos, "state = ?", notification.DeliveryPending.String()).Error
	if err != nil {
		return nil, err
	}

	intents := make([]*notification.Intent, 0, len(dtos))
	for _, dto := range dtos {
		intent, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		intents = append(intents, intent)
	}

	return intents, nil
}
