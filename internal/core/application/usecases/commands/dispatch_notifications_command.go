package commands

import (
	"errors"

	"aftersales/internal/pkg/guard"
)

var (
	ErrDispatchNotificationsCommandIsNotConstructed = errors.New(
		"DispatchNotificationsCommand must be created via NewDispatchNotificationsCommand constructor",
	)

	// ErrBatchSizeIsInvalid is returned when the batch size is not positive.
	ErrBatchSizeIsInvalid = errors.New("batch size must be positive")

	// ErrMaxAttemptsIsInvalid is returned when the attempt limit is not positive.
	ErrMaxAttemptsIsInvalid = errors.New("max attempts must be positive")
)

// DispatchNotificationsCommand drains one batch of pending notification
// intents from the outbox and hands them to the transport. Intents that keep
// failing are parked after maxAttempts tries so one bad address cannot clog
// the queue.
type DispatchNotificationsCommand struct { //nolint:recvcheck //using for validation
	batchSize   int
	maxAttempts int

	guard guard.ConstructorGuard
}

// NewDispatchNotificationsCommand creates a command to drain the outbox.
func NewDispatchNotificationsCommand(batchSize, maxAttempts int) (DispatchNotificationsCommand, error) {
	cmd := DispatchNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBatchSize(batchSize),
		cmd.setMaxAttempts(maxAttempts),
	); err != nil {
		return DispatchNotificationsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNotificationsCommandIsNotConstructed)
}

// BatchSize returns the maximum number of intents drained per run.
func (c DispatchNotificationsCommand) BatchSize() int {
	return c.batchSize
}

// MaxAttempts returns the delivery attempt limit per intent.
func (c DispatchNotificationsCommand) MaxAttempts() int {
	return c.maxAttempts
}

func (c *DispatchNotificationsCommand) setBatchSize(batchSize int) error {
	if batchSize <= 0 {
		return ErrBatchSizeIsInvalid
	}
	c.batchSize = batchSize
	return nil
}

func (c *DispatchNotificationsCommand) setMaxAttempts(maxAttempts int) error {
	if maxAttempts <= 0 {
		return ErrMaxAttemptsIsInvalid
	}
	c.maxAttempts = maxAttempts
	return nil
}
