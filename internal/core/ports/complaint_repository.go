package ports

import (
	"context"

	"aftersales/internal/core/domain/model/complaint"
	"aftersales/internal/core/domain/model/kernel"
)

// ComplaintRepository defines the persistence contract for complaint aggregates.
type ComplaintRepository interface {
	// Add persists a new complaint aggregate to storage.
	// The complaint must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *complaint.Complaint) error

	// Update persists changes to an existing complaint aggregate using
	// optimistic locking: the write succeeds only if the stored version still
	// matches the version the aggregate was loaded with. A lost race returns
	// a ConflictError and the aggregate remains unchanged in storage.
	Update(ctx context.Context, aggregate *complaint.Complaint) error

	// Get retrieves a complaint aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such complaint exists.
	Get(ctx context.Context, id kernel.UUID) (*complaint.Complaint, error)

	// GetByOrder retrieves all complaints filed against an order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*complaint.Complaint, error)

	// GetAllUnderInvestigation retrieves the admin worklist of complaints
	// still awaiting a verdict, oldest first.
	GetAllUnderInvestigation(ctx context.Context) ([]*complaint.Complaint, error)
}
