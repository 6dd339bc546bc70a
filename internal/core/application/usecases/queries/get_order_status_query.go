package queries

import (
	"errors"
	"time"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/pkg/guard"
)

var (
	ErrGetOrderStatusQueryIsNotConstructed = errors.New(
		"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
	)

	// ErrOrderIDIsRequired is returned when the query is built without an order ID.
	ErrOrderIDIsRequired = errors.New("order ID is required")
)

// GetOrderStatusQuery retrieves the customer-facing status of a single order.
// The projected status line folds the order lifecycle, payment state and the
// delivery attempt history into one descriptor.
//
// Example:
//
//	query, err := NewGetOrderStatusQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order status: %w", err)
//	}
//
//	fmt.Printf("%s (%s)\n", view.StatusText, view.Severity)
type GetOrderStatusQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderStatusQuery creates a query for a single order's projected status.
func NewGetOrderStatusQuery(orderID kernel.UUID) (GetOrderStatusQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderStatusQuery{}, ErrOrderIDIsRequired
	}

	return GetOrderStatusQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatusQueryIsNotConstructed if validation fails.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

// OrderID identifies the order whose status is requested.
func (q GetOrderStatusQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderStatusQueryResponse is the customer-facing order status view.
// StatusText, Severity and Action come from the status projection; the raw
// lifecycle and payment fields are included for clients that render their own
// timeline.
type GetOrderStatusQueryResponse struct {
	OrderID       kernel.UUID
	Status        string
	PaymentStatus string
	PaymentMethod string

	StatusText string
	Severity   string
	Action     string

	Attempts []DeliveryAttemptResponse
}

// DeliveryAttemptResponse is one delivery attempt in the order status view.
type DeliveryAttemptResponse struct {
	AttemptNumber int
	ScheduledDate time.Time
	Status        string
	FailureReason string
}
