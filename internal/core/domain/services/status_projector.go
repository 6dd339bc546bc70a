package services

import (
	"aftersales/internal/core/domain/model/order"
	"aftersales/internal/core/domain/model/shipment"
)

// Severity classifies a projected status line for presentation.
type Severity string

const (
	// SeverityInfo marks a routine progress update.
	SeverityInfo Severity = "info"

	// SeveritySuccess marks a completed delivery.
	SeveritySuccess Severity = "success"

	// SeverityWarning marks a recoverable delivery problem.
	SeverityWarning Severity = "warning"

	// SeverityError marks a terminal failure of the order.
	SeverityError Severity = "error"
)

// Action names the follow-up the customer can take from the status line.
type Action string

// ActionSelectRefundMethod prompts a prepaid customer whose order is going
// back to the provider to choose how their money is returned.
const ActionSelectRefundMethod Action = "select_refund_method"

// StatusDescriptor is the customer-facing projection of an order's state.
type StatusDescriptor struct {
	// Text is the status line shown to the customer.
	Text string

	// Severity classifies the line for presentation.
	Severity Severity

	// Action is the follow-up offered to the customer, empty if none.
	Action Action
}

// StatusProjector is a domain service that derives the single status line a
// customer sees for an order. It is a pure function of the order and its
// delivery attempt history; nothing is persisted.
//
// The projection is an ordered rule table. Rules are evaluated top to bottom
// and the first match wins:
//
//  1. Returning to provider, paid on delivery -> "Order Failed – COD"
//  2. Returning to provider, prepaid -> "Delivery Failed – Returning to Provider"
//     (offers refund method selection while the payment is still captured)
//  3. A failed attempt with a later attempt scheduled -> retry notice with the
//     next delivery date
//  4. Cancelled -> "Order Cancelled"
//  5. Delivered -> "Delivered"
//  6. Shipped -> "Shipped"
//  7. Processing -> "Processing"
//  8. Otherwise -> "Order Placed"
//
// The return-to-provider rules outrank everything else, including
// cancellation: once the goods are on their way back, that is the story the
// customer needs to see.
type StatusProjector struct{}

// NewStatusProjector creates a new StatusProjector instance.
func NewStatusProjector() StatusProjector {
	return StatusProjector{}
}

// Project derives the status descriptor for an order given its delivery
// attempts in ascending attempt order.
func (p StatusProjector) Project(o *order.Order, attempts []*shipment.Attempt) (StatusDescriptor, error) {
	if err := o.Validate(); err != nil {
		return StatusDescriptor{}, err
	}
	for _, a := range attempts {
		if err := a.Validate(); err != nil {
			return StatusDescriptor{}, err
		}
	}

	if o.ReturningToProvider() {
		if o.PaymentMethod().IsCOD() {
			return StatusDescriptor{
				Text:     "Order Failed – COD",
				Severity: SeverityError,
			}, nil
		}

		descriptor := StatusDescriptor{
			Text:     "Delivery Failed – Returning to Provider",
			Severity: SeverityError,
		}
		if o.PaymentStatus() == order.PaymentPaid {
			descriptor.Action = ActionSelectRefundMethod
		}
		return descriptor, nil
	}

	if next, ok := nextAttemptAfterFailure(attempts); ok {
		return StatusDescriptor{
			Text: "Delivery attempt failed – next delivery scheduled on " +
				next.ScheduledDate().Format("2006-01-02"),
			Severity: SeverityWarning,
		}, nil
	}

	switch o.Status() {
	case order.StatusCancelled:
		return StatusDescriptor{Text: "Order Cancelled", Severity: SeverityError}, nil
	case order.StatusDelivered:
		return StatusDescriptor{Text: "Delivered", Severity: SeveritySuccess}, nil
	case order.StatusShipped:
		return StatusDescriptor{Text: "Shipped", Severity: SeverityInfo}, nil
	case order.StatusProcessing:
		return StatusDescriptor{Text: "Processing", Severity: SeverityInfo}, nil
	default:
		return StatusDescriptor{Text: "Order Placed", Severity: SeverityInfo}, nil
	}
}

// nextAttemptAfterFailure finds the scheduled attempt that follows a failed
// one. Attempts arrive in ascending attempt order, so the latest scheduled
// attempt preceded by any failure is the retry the customer is waiting for.
func nextAttemptAfterFailure(attempts []*shipment.Attempt) (*shipment.Attempt, bool) {
	failedSeen := false
	var next *shipment.Attempt
	for _, a := range attempts {
		switch a.Status() {
		case shipment.AttemptFailed:
			failedSeen = true
		case shipment.AttemptScheduled:
			if failedSeen {
				next = a
			}
		}
	}
	return next, next != nil
}
