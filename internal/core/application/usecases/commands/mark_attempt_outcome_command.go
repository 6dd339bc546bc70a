package commands

import (
	"errors"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/core/domain/model/shipment"
	"aftersales/internal/pkg/guard"
)

var (
	ErrMarkAttemptOutcomeCommandIsNotConstructed = errors.New(
		"MarkAttemptOutcomeCommand must be created via NewMarkAttemptOutcomeCommand constructor",
	)
	ErrAttemptNumberIsInvalid = errors.New("attempt number must be greater than 0")
	ErrOutcomeIsInvalid       = errors.New("outcome must be failed or delivered")
)

// MarkAttemptOutcomeCommand represents the courier reporting how a scheduled
// delivery attempt ended.
//
// A failed outcome may additionally flag the order as returning to the
// provider when the courier gives up on further attempts.
type MarkAttemptOutcomeCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	attemptNumber    int
	outcome          shipment.AttemptStatus
	failureReason    string
	returnToProvider bool

	guard guard.ConstructorGuard
}

// NewMarkAttemptOutcomeCommand creates a command to record an attempt outcome.
// The outcome must be AttemptFailed or AttemptDelivered; a failure reason is
// validated downstream by the attempt itself.
func NewMarkAttemptOutcomeCommand(
	orderID kernel.UUID,
	attemptNumber int,
	outcome shipment.AttemptStatus,
	failureReason string,
	returnToProvider bool,
) (MarkAttemptOutcomeCommand, error) {
	cmd := MarkAttemptOutcomeCommand{
		failureReason:    failureReason,
		returnToProvider: returnToProvider,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAttemptNumber(attemptNumber),
		cmd.setOutcome(outcome),
	); err != nil {
		return MarkAttemptOutcomeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAttemptOutcomeCommand) Validate() error {
	return c.guard.Validate(ErrMarkAttemptOutcomeCommandIsNotConstructed)
}

// OrderID returns the order the attempt belongs to.
func (c MarkAttemptOutcomeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AttemptNumber returns which attempt is being closed out.
func (c MarkAttemptOutcomeCommand) AttemptNumber() int {
	return c.attemptNumber
}

// Outcome returns how the attempt ended.
func (c MarkAttemptOutcomeCommand) Outcome() shipment.AttemptStatus {
	return c.outcome
}

// FailureReason returns why the attempt failed, empty on delivery.
func (c MarkAttemptOutcomeCommand) FailureReason() string {
	return c.failureReason
}

// ReturnToProvider reports whether the failed delivery is conclusive and the
// goods go back to the provider.
func (c MarkAttemptOutcomeCommand) ReturnToProvider() bool {
	return c.returnToProvider
}

func (c *MarkAttemptOutcomeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *MarkAttemptOutcomeCommand) setAttemptNumber(attemptNumber int) error {
	if attemptNumber < 1 {
		return ErrAttemptNumberIsInvalid
	}
	c.attemptNumber = attemptNumber
	return nil
}

func (c *MarkAttemptOutcomeCommand) setOutcome(outcome shipment.AttemptStatus) error {
	if outcome != shipment.AttemptFailed && outcome != shipment.AttemptDelivered {
		return ErrOutcomeIsInvalid
	}
	c.outcome = outcome
	return nil
}
