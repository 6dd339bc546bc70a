package ports

import (
	"context"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/core/domain/model/notification"
)

// NotificationOutbox defines the persistence contract for notification
// intents. Intents are written in the same transaction as the state change
// they announce and drained asynchronously by the dispatch job.
type NotificationOutbox interface {
	// Add persists a new notification intent in pending state.
	Add(ctx context.Context, intent *notification.Intent) error

	// Update persists the delivery state of an existing intent.
	Update(ctx context.Context, intent *notification.Intent) error

	// Get retrieves an intent by its unique identifier.
	// Returns an ObjectNotFoundError when no such intent exists.
	Get(ctx context.Context, id kernel.UUID) (*notification.Intent, error)

	// GetAllPending retrieves up to limit undelivered intents, oldest first.
	GetAllPending(ctx context.Context, limit int) ([]*notification.Intent, error)
}

// NotificationDispatcher delivers a notification intent to the customer.
// Implementations own the transport; the core only records the outcome.
// Dispatch failures never affect the command that created the intent.
type NotificationDispatcher interface {
	// Notify delivers the intent. A non-nil error marks the attempt failed;
	// the outbox job retries up to its attempt budget.
	Notify(ctx context.Context, intent *notification.Intent) error
}
