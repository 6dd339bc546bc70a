package shipment

import (
	"errors"
	"fmt"
	"time"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/pkg/errs"
)

// ErrAttemptIsNotConstructed is returned when an Attempt instance was not
// created through NewAttempt or RestoreAttempt.
var ErrAttemptIsNotConstructed = errors.New(
	"Attempt must be created via NewAttempt or RestoreAttempt")

// Attempt is one recorded delivery attempt for an order.
//
// Attempts are append-only: the only permitted mutation after creation is the
// scheduled -> failed|delivered outcome transition. The failure reason is only
// meaningful for failed attempts.
type Attempt struct {
	orderID       kernel.UUID
	attemptNumber int
	scheduledDate time.Time
	status        AttemptStatus
	failureReason string

	isConstructed bool
}

// NewAttempt records a new scheduled delivery attempt.
//
// The attempt number is assigned by the tracker and must be positive; strict
// monotonicity per order is enforced at the persistence boundary, where the
// current maximum is known.
func NewAttempt(orderID kernel.UUID, attemptNumber int, scheduledDate time.Time) (*Attempt, error) {
	a := &Attempt{
		status:        AttemptScheduled,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setOrderID(orderID),
		a.setAttemptNumber(attemptNumber),
		a.setScheduledDate(scheduledDate),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAttempt reconstructs an attempt from persistence.
func RestoreAttempt(
	orderID kernel.UUID,
	attemptNumber int,
	scheduledDate time.Time,
	status AttemptStatus,
	failureReason string,
) (*Attempt, error) {
	a := &Attempt{
		failureReason: failureReason,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setOrderID(orderID),
		a.setAttemptNumber(attemptNumber),
		a.setScheduledDate(scheduledDate),
		a.setStatus(status),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Attempt was created via a factory method.
func (a *Attempt) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAttemptIsNotConstructed
	}
	return nil
}

// OrderID returns the order this attempt belongs to.
func (a *Attempt) OrderID() kernel.UUID {
	return a.orderID
}

// AttemptNumber returns the 1-based sequence number within the order.
func (a *Attempt) AttemptNumber() int {
	return a.attemptNumber
}

// ScheduledDate returns the date the courier is expected to attempt delivery.
func (a *Attempt) ScheduledDate() time.Time {
	return a.scheduledDate
}

// Status returns the current outcome state of the attempt.
func (a *Attempt) Status() AttemptStatus {
	return a.status
}

// FailureReason returns why the attempt failed, empty unless failed.
func (a *Attempt) FailureReason() string {
	return a.failureReason
}

// MarkFailed records a failed outcome with the courier's reason.
//
// Valid only while the attempt is scheduled.
func (a *Attempt) MarkFailed(reason string) error {
	if a.status != AttemptScheduled {
		return errs.NewInvalidTransitionError("attemptStatus", a.status.String(), AttemptFailed.String())
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("failure reason")
	}

	a.status = AttemptFailed
	a.failureReason = reason
	return nil
}

// MarkDelivered records a successful outcome.
//
// Valid only while the attempt is scheduled.
func (a *Attempt) MarkDelivered() error {
	if a.status != AttemptScheduled {
		return errs.NewInvalidTransitionError("attemptStatus", a.status.String(), AttemptDelivered.String())
	}

	a.status = AttemptDelivered
	return nil
}

func (a *Attempt) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	a.orderID = orderID
	return nil
}

func (a *Attempt) setAttemptNumber(attemptNumber int) error {
	if attemptNumber < 1 {
		return errs.NewValueIsInvalidErrorWithCause("attempt number is invalid",
			fmt.Errorf("%d is not greater than 0", attemptNumber))
	}
	a.attemptNumber = attemptNumber
	return nil
}

func (a *Attempt) setScheduledDate(scheduledDate time.Time) error {
	if scheduledDate.IsZero() {
		return errs.NewValueIsRequiredError("scheduled date")
	}
	a.scheduledDate = scheduledDate
	return nil
}

func (a *Attempt) setStatus(status AttemptStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}
