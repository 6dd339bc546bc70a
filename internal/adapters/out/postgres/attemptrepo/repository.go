package attemptrepo

import (
	"context"
	"errors"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/core/domain/model/shipment"
	"aftersales/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAttemptRepository implements AttemptRepository using GORM.
type GormAttemptRepository struct {
	db *gorm.DB
}

// NewGormAttemptRepository creates a new GORM delivery attempt repository.
func NewGormAttemptRepository(db *gorm.DB) *GormAttemptRepository {
	return &GormAttemptRepository{db: db}
}

// Add saves a new delivery attempt to the database.
func (r *GormAttemptRepository) Add(ctx context.Context, attempt *shipment.Attempt) error {
	if err := attempt.Validate(); err != nil {
		return err
	}

	dto := fromDomain(attempt)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves the outcome of an existing delivery attempt.
func (r *GormAttemptRepository) Update(ctx context.Context, attempt *shipment.Attempt) error {
	if err := attempt.Validate(); err != nil {
		return err
	}

	dto := fromDomain(attempt)
	result := r.db.WithContext(ctx).Model(&AttemptDTO{}).
		Where("order_id = ? AND attempt_number = ?", dto.OrderID, dto.AttemptNumber).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("attempt", attempt.AttemptNumber())
	}

	return nil
}

// Get retrieves one delivery attempt by order ID and attempt number.
func (r *GormAttemptRepository) Get(
	ctx context.Context,
	orderID kernel.UUID,
	attemptNumber int,
) (*shipment.Attempt, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto AttemptDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND attempt_number = ?", orderID.Bytes(), attemptNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("attempt", attemptNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves the full attempt history for an order in recording order.
func (r *GormAttemptRepository) GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*shipment.Attempt, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AttemptDTO
	err := r.db.WithContext(ctx).
		Order("attempt_number").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	attempts := make([]*shipment.Attempt, 0, len(dtos))
	for _, dto := range dtos {
		attempt, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, attempt)
	}

	return attempts, nil
}

// NextAttemptNumber returns the number the next attempt for the order should
// get: one past the current maximum, starting at 1. Must run inside the same
// transaction as the subsequent Add so concurrent recorders collide on the
// composite primary key instead of silently duplicating a number.
func (r *GormAttemptRepository) NextAttemptNumber(ctx context.Context, orderID kernel.UUID) (int, error) {
	if err := orderID.Validate(); err != nil {
		return 0, err
	}

	var next int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MAX(attempt_number), 0) + 1
		FROM delivery_attempts
		WHERE order_id = ?
	`, orderID.Bytes()).Scan(&next).Error
	if err != nil {
		return 0, err
	}

	return next, nil
}
