// Package refund models the refund request created when a verified complaint
// is resolved with a monetary remedy. At most one request is created per
// complaint; it is born pending and settled by the payments collaborator.
package refund

import (
	"errors"
	"fmt"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/core/domain/model/order"
	"aftersales/internal/pkg/errs"
)

// ErrRequestIsNotConstructed is returned when a Request instance was not
// created through NewRequest or RestoreRequest.
var ErrRequestIsNotConstructed = errors.New(
	"Request must be created via NewRequest or RestoreRequest")

// Status of a refund request. The after-sales core only ever creates pending
// requests; the payments collaborator moves them to processed or rejected.
type Status int

const (
	// StatusUnknownRefund represents an invalid or undefined refund status.
	StatusUnknownRefund Status = iota

	// StatusPending is the initial state of every refund request.
	StatusPending

	// StatusProcessed means the payments collaborator completed the refund.
	StatusProcessed

	// StatusRejected means the payments collaborator declined the refund.
	StatusRejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknownRefund: "unknown",
		StatusPending:       "pending",
		StatusProcessed:     "processed",
		StatusRejected:      "rejected",
	}
}

// StatusFromString parses the persisted string representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknownRefund && str == s {
			return status, nil
		}
	}
	return StatusUnknownRefund, errs.NewValueIsInvalidErrorWithCause(
		"refund status is invalid",
		fmt.Errorf("%q is not a valid refund status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != StatusPending && s != StatusProcessed && s != StatusRejected {
		return errs.NewValueIsInvalidErrorWithCause(
			"refund status is invalid",
			fmt.Errorf("%d is not a valid refund status", s),
		)
	}
	return nil
}

// String returns the persisted name of the refund status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Process moves a pending refund to processed.
func (s Status) Process() (Status, error) {
	if s != StatusPending {
		return s, errs.NewInvalidTransitionError("refundStatus", s.String(), StatusProcessed.String())
	}
	return StatusProcessed, nil
}

// Reject moves a pending refund to rejected.
func (s Status) Reject() (Status, error) {
	if s != StatusPending {
		return s, errs.NewInvalidTransitionError("refundStatus", s.String(), StatusRejected.String())
	}
	return StatusRejected, nil
}

// Request captures the money owed back to a customer after a verified
// complaint chose the refund remedy.
type Request struct {
	id            kernel.UUID
	orderID       kernel.UUID
	userID        kernel.UUID
	amount        float64
	paymentMethod order.PaymentMethod
	refundMethod  string
	reason        string
	status        Status

	isConstructed bool
}

// NewRequest creates a pending refund request for the full order amount.
//
// Parameters:
//   - id: unique identifier for the request
//   - orderID, userID: the order being refunded and its owner
//   - amount: the amount to return (must be positive)
//   - paymentMethod: how the order was originally paid
//   - refundMethod: the channel the customer chose for receiving the money
//   - reason: why the refund was granted
func NewRequest(
	id kernel.UUID,
	orderID kernel.UUID,
	userID kernel.UUID,
	amount float64,
	paymentMethod order.PaymentMethod,
	refundMethod string,
	reason string,
) (*Request, error) {
	r := &Request{
		status:        StatusPending,
		reason:        reason,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setUserID(userID),
		r.setAmount(amount),
		r.setPaymentMethod(paymentMethod),
		r.setRefundMethod(refundMethod),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRequest reconstructs a refund request from persistence.
func RestoreRequest(
	id kernel.UUID,
	orderID kernel.UUID,
	userID kernel.UUID,
	amount float64,
	paymentMethod order.PaymentMethod,
	refundMethod string,
	reason string,
	status Status,
) (*Request, error) {
	r := &Request{
		reason:        reason,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setUserID(userID),
		r.setAmount(amount),
		r.setPaymentMethod(paymentMethod),
		r.setRefundMethod(refundMethod),
		r.setStatus(status),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Request was created via a factory method.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// ID returns the request's unique identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// OrderID returns the order being refunded.
func (r *Request) OrderID() kernel.UUID {
	return r.orderID
}

// UserID returns the customer receiving the refund.
func (r *Request) UserID() kernel.UUID {
	return r.userID
}

// Amount returns the amount owed back to the customer.
func (r *Request) Amount() float64 {
	return r.amount
}

// PaymentMethod returns how the order was originally paid.
func (r *Request) PaymentMethod() order.PaymentMethod {
	return r.paymentMethod
}

// RefundMethod returns the channel the customer chose for the refund.
func (r *Request) RefundMethod() string {
	return r.refundMethod
}

// Reason returns why the refund was granted.
func (r *Request) Reason() string {
	return r.reason
}

// Status returns the current state of the request.
func (r *Request) Status() Status {
	return r.status
}

// MarkProcessed records that the payout went through.
func (r *Request) MarkProcessed() error {
	newStatus, err := r.status.Process()
	if err != nil {
		return err
	}
	r.status = newStatus
	return nil
}

// MarkRejected records that the payout was declined.
func (r *Request) MarkRejected() error {
	newStatus, err := r.status.Reject()
	if err != nil {
		return err
	}
	r.status = newStatus
	return nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Request) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	r.userID = userID
	return nil
}

func (r *Request) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("refund amount is invalid",
			fmt.Errorf("%f is not greater than 0", amount))
	}
	r.amount = amount
	return nil
}

func (r *Request) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	r.paymentMethod = paymentMethod
	return nil
}

func (r *Request) setRefundMethod(refundMethod string) error {
	if refundMethod == "" {
		return errs.NewValueIsRequiredError("refund method")
	}
	r.refundMethod = refundMethod
	return nil
}

func (r *Request) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}
