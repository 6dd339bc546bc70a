package complaintrepo

import (
	"context"
	"errors"

	"aftersales/internal/core/domain/model/complaint"
	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormComplaintRepository implements ComplaintRepository using GORM.
type GormComplaintRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormComplaintRepository creates a new GORM complaint repository.
func NewGormComplaintRepository(db *gorm.DB, tracker aggregateTracker) *GormComplaintRepository {
	return &GormComplaintRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new complaint to the database.
func (r *GormComplaintRepository) Add(ctx context.Context, aggregate *complaint.Complaint) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing complaint using an optimistic lock on the version
// column. The write only lands when the stored version still matches the one
// the aggregate was loaded with; a concurrent writer makes the update a no-op
// and the caller gets a conflict error.
func (r *GormComplaintRepository) Update(ctx context.Context, aggregate *complaint.Complaint) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	expectedVersion := aggregate.Version()
	dto := fromDomain(aggregate)
	dto.Version = expectedVersion + 1

	result := r.db.WithContext(ctx).Model(&ComplaintDTO{}).
		Where("id = ? AND version = ?", dto.ID, expectedVersion).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&ComplaintDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("complaint", aggregate.ID().String())
		}
		return errs.NewConflictError("complaint", aggregate.ID().String())
	}

	aggregate.BumpVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a complaint by ID.
func (r *GormComplaintRepository) Get(ctx context.Context, id kernel.UUID) (*complaint.Complaint, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ComplaintDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("complaint", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves all complaints filed against the given order.
func (r *GormComplaintRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*complaint.Complaint, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ComplaintDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllUnderInvestigation retrieves all complaints still awaiting a verdict,
// oldest first.
func (r *GormComplaintRepository) GetAllUnderInvestigation(ctx context.Context) ([]*complaint.Complaint, error) {
	var dtos []ComplaintDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "investigation_status = ?", complaint.Investigating.String()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []ComplaintDTO) ([]*complaint.Complaint, error) {
	complaints := make([]*complaint.Complaint, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, c)
	}

	return complaints, nil
}
