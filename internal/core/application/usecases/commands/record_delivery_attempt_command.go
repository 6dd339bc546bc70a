package commands

import (
	"errors"
	"time"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/pkg/guard"
)

var (
	ErrRecordDeliveryAttemptCommandIsNotConstructed = errors.New(
		"RecordDeliveryAttemptCommand must be created via NewRecordDeliveryAttemptCommand constructor",
	)
	ErrScheduledDateIsRequired = errors.New("scheduled date is required")
)

// RecordDeliveryAttemptCommand represents a courier scheduling a delivery
// attempt for an order. Attempt numbers are assigned by the tracker, not the
// caller.
type RecordDeliveryAttemptCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	scheduledDate time.Time

	guard guard.ConstructorGuard
}

// NewRecordDeliveryAttemptCommand creates a command to record a delivery attempt.
func NewRecordDeliveryAttemptCommand(orderID kernel.UUID, scheduledDate time.Time) (RecordDeliveryAttemptCommand, error) {
	cmd := RecordDeliveryAttemptCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setScheduledDate(scheduledDate),
	); err != nil {
		return RecordDeliveryAttemptCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordDeliveryAttemptCommand) Validate() error {
	return c.guard.Validate(ErrRecordDeliveryAttemptCommandIsNotConstructed)
}

// OrderID returns the order being delivered.
func (c RecordDeliveryAttemptCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ScheduledDate returns when the attempt is planned.
func (c RecordDeliveryAttemptCommand) ScheduledDate() time.Time {
	return c.scheduledDate
}

func (c *RecordDeliveryAttemptCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RecordDeliveryAttemptCommand) setScheduledDate(scheduledDate time.Time) error {
	if scheduledDate.IsZero() {
		return ErrScheduledDateIsRequired
	}
	c.scheduledDate = scheduledDate
	return nil
}
