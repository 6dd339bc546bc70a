package order

import (
	"fmt"

	"aftersales/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Placed ──> Processing ──> Shipped ──> Delivered
//	   │
//	   └──> Cancelled
//
// Cancellation is only reachable from Placed; the eligibility check also
// requires that the order is not returning to the provider, which is enforced
// by the aggregate, not by the status value itself.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPlaced is the initial status when an order is created at checkout.
	StatusPlaced

	// StatusProcessing indicates the order is being prepared for shipment.
	StatusProcessing

	// StatusShipped indicates the order has left the warehouse.
	StatusShipped

	// StatusDelivered indicates the order reached the customer.
	// Complaints can only be filed against delivered orders, except for
	// not-received complaints.
	StatusDelivered

	// StatusCancelled is a terminal state for orders cancelled before fulfillment.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusPlaced:     "placed",
		StatusProcessing: "processing",
		StatusShipped:    "shipped",
		StatusDelivered:  "delivered",
		StatusCancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPlaced:     "placed",
		StatusProcessing: "processing",
		StatusShipped:    "shipped",
		StatusDelivered:  "delivered",
		StatusCancelled:  "cancelled",
	}
}

// StatusFromString parses the persisted string representation of a status.
// Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any other out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status ("placed", "shipped", ...).
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StartProcessing transitions the status to Processing.
//
// Valid transitions:
//   - Placed -> Processing
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) StartProcessing() (Status, error) {
	if s != StatusPlaced {
		return 0, errs.NewInvalidTransitionError("status", s.String(), StatusProcessing.String())
	}
	return StatusProcessing, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Processing -> Shipped
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Ship() (Status, error) {
	if s != StatusProcessing {
		return 0, errs.NewInvalidTransitionError("status", s.String(), StatusShipped.String())
	}
	return StatusShipped, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Shipped -> Delivered
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Deliver() (Status, error) {
	if s != StatusShipped {
		return 0, errs.NewInvalidTransitionError("status", s.String(), StatusDelivered.String())
	}
	return StatusDelivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Placed -> Cancelled
//
// Orders that have entered fulfillment cannot be cancelled; failed deliveries
// are handled through the returning-to-provider flow instead.
func (s Status) Cancel() (Status, error) {
	if s != StatusPlaced {
		return 0, errs.NewInvalidTransitionError("status", s.String(), StatusCancelled.String())
	}
	return StatusCancelled, nil
}
