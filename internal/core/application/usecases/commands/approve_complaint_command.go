package commands

import (
	"errors"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/pkg/guard"
)

var ErrApproveComplaintCommandIsNotConstructed = errors.New(
	"ApproveComplaintCommand must be created via NewApproveComplaintCommand constructor",
)

// ApproveComplaintCommand represents an admin verdict that a complaint is
// genuine. Approval issues the apology coupon and opens the remedy flow.
type ApproveComplaintCommand struct { //nolint:recvcheck //using for validation
	complaintID kernel.UUID
	adminNotes  string

	guard guard.ConstructorGuard
}

// NewApproveComplaintCommand creates a command to approve a complaint.
// Notes may be empty; the verdict itself is the payload.
func NewApproveComplaintCommand(complaintID kernel.UUID, adminNotes string) (ApproveComplaintCommand, error) {
	cmd := ApproveComplaintCommand{
		adminNotes: adminNotes,
		guard:      guard.NewConstructorGuard(),
	}

	if err := cmd.setComplaintID(complaintID); err != nil {
		return ApproveComplaintCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveComplaintCommand) Validate() error {
	return c.guard.Validate(ErrApproveComplaintCommandIsNotConstructed)
}

// ComplaintID returns the complaint being approved.
func (c ApproveComplaintCommand) ComplaintID() kernel.UUID {
	return c.complaintID
}

// AdminNotes returns the notes recorded with the verdict.
func (c ApproveComplaintCommand) AdminNotes() string {
	return c.adminNotes
}

func (c *ApproveComplaintCommand) setComplaintID(complaintID kernel.UUID) error {
	if err := complaintID.Validate(); err != nil {
		return err
	}
	c.complaintID = complaintID
	return nil
}
