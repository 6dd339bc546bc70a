package ports

import (
	"context"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/core/domain/model/refund"
)

// RefundRepository defines the persistence contract for refund requests.
type RefundRepository interface {
	// Add persists a new refund request.
	Add(ctx context.Context, request *refund.Request) error

	// Update persists changes to an existing refund request.
	Update(ctx context.Context, request *refund.Request) error

	// Get retrieves a refund request by its unique identifier.
	// Returns an ObjectNotFoundError when no such request exists.
	Get(ctx context.Context, id kernel.UUID) (*refund.Request, error)

	// GetByOrder retrieves the refund requests raised against an order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*refund.Request, error)
}
