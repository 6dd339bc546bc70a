package commands

import (
	"errors"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/pkg/guard"
)

var ErrCreateReplacementOrderCommandIsNotConstructed = errors.New(
	"CreateReplacementOrderCommand must be created via NewCreateReplacementOrderCommand constructor",
)

// CreateReplacementOrderCommand represents the replacement remedy for a
// verified complaint: a zero-amount clone of the original order.
type CreateReplacementOrderCommand struct { //nolint:recvcheck //using for validation
	complaintID        kernel.UUID
	replacementOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateReplacementOrderCommand creates a command to grant the replacement
// remedy. The caller assigns the identifier of the order to be created.
func NewCreateReplacementOrderCommand(
	complaintID kernel.UUID,
	replacementOrderID kernel.UUID,
) (CreateReplacementOrderCommand, error) {
	cmd := CreateReplacementOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setComplaintID(complaintID),
		cmd.setReplacementOrderID(replacementOrderID),
	); err != nil {
		return CreateReplacementOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReplacementOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateReplacementOrderCommandIsNotConstructed)
}

// ComplaintID returns the complaint receiving the remedy.
func (c CreateReplacementOrderCommand) ComplaintID() kernel.UUID {
	return c.complaintID
}

// ReplacementOrderID returns the identifier for the new replacement order.
func (c CreateReplacementOrderCommand) ReplacementOrderID() kernel.UUID {
	return c.replacementOrderID
}

func (c *CreateReplacementOrderCommand) setComplaintID(complaintID kernel.UUID) error {
	if err := complaintID.Validate(); err != nil {
		return err
	}
	c.complaintID = complaintID
	return nil
}

func (c *CreateReplacementOrderCommand) setReplacementOrderID(replacementOrderID kernel.UUID) error {
	if err := replacementOrderID.Validate(); err != nil {
		return err
	}
	c.replacementOrderID = replacementOrderID
	return nil
}
