package commands

import (
	"errors"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/pkg/guard"
)

var ErrMarkPickedUpCommandIsNotConstructed = errors.New(
	"MarkPickedUpCommand must be created via NewMarkPickedUpCommand constructor",
)

// MarkPickedUpCommand represents confirmation that the courier collected the
// returned goods for a complaint.
type MarkPickedUpCommand struct { //nolint:recvcheck //using for validation
	complaintID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkPickedUpCommand creates a command to confirm a completed pickup.
func NewMarkPickedUpCommand(complaintID kernel.UUID) (MarkPickedUpCommand, error) {
	cmd := MarkPickedUpCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setComplaintID(complaintID); err != nil {
		return MarkPickedUpCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPickedUpCommand) Validate() error {
	return c.guard.Validate(ErrMarkPickedUpCommandIsNotConstructed)
}

// ComplaintID returns the complaint whose pickup completed.
func (c MarkPickedUpCommand) ComplaintID() kernel.UUID {
	return c.complaintID
}

func (c *MarkPickedUpCommand) setComplaintID(complaintID kernel.UUID) error {
	if err := complaintID.Validate(); err != nil {
		return err
	}
	c.complaintID = complaintID
	return nil
}
