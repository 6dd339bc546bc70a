package ports

import (
	"context"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/core/domain/model/shipment"
)

// AttemptRepository defines the persistence contract for delivery attempts.
// The attempt log is append-only: attempts are added and their outcome is
// recorded, but they are never removed or renumbered.
type AttemptRepository interface {
	// Add persists a new delivery attempt. The attempt number must have been
	// assigned through NextAttemptNumber inside the same transaction.
	Add(ctx context.Context, attempt *shipment.Attempt) error

	// Update persists the outcome of an existing attempt.
	Update(ctx context.Context, attempt *shipment.Attempt) error

	// Get retrieves a single attempt by order and attempt number.
	// Returns an ObjectNotFoundError when no such attempt exists.
	Get(ctx context.Context, orderID kernel.UUID, attemptNumber int) (*shipment.Attempt, error)

	// GetAllByOrder retrieves an order's attempts in ascending attempt order.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*shipment.Attempt, error)

	// NextAttemptNumber returns max(attemptNumber)+1 for the order, starting
	// at 1. Must be called inside the transaction that adds the attempt so
	// concurrent recorders cannot claim the same number.
	NextAttemptNumber(ctx context.Context, orderID kernel.UUID) (int, error)
}
