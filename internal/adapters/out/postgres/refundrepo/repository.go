package refundrepo

import (
	"context"
	"errors"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/core/domain/model/refund"
	"aftersales/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRefundRepository implements RefundRepository using GORM.
type GormRefundRepository struct {
	db *gorm.DB
}

// NewGormRefundRepository creates a new GORM refund request repository.
func NewGormRefundRepository(db *gorm.DB) *GormRefundRepository {
	return &GormRefundRepository{db: db}
}

// Add saves a new refund request to the database.
func (r *GormRefundRepository) Add(ctx context.Context, request *refund.Request) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := fromDomain(request)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves the current state of an existing refund request.
func (r *GormRefundRepository) Update(ctx context.Context, request *refund.Request) error {
	if err := request.Validate(); err != nil {
		return err
	}

	dto := fromDomain(request)
	result := r.db.WithContext(ctx).Model(&RequestDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("refund request", request.ID().String())
	}

	return nil
}

// Get retrieves a refund request by ID.
func (r *GormRefundRepository) Get(ctx context.Context, id kernel.UUID) (*refund.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("refund request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves all refund requests raised against the given order.
func (r *GormRefundRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*refund.Request, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RequestDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	requests := make([]*refund.Request, 0, len(dtos))
	for _, dto := range dtos {
		request, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, nil
}
