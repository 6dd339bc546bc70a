package commands

import (
	"errors"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/pkg/guard"
)

var ErrRejectComplaintCommandIsNotConstructed = errors.New(
	"RejectComplaintCommand must be created via NewRejectComplaintCommand constructor",
)

// RejectComplaintCommand represents an admin verdict that a complaint could
// not be verified. The case is closed; no pickup or remedy can follow.
type RejectComplaintCommand struct { //nolint:recvcheck //using for validation
	complaintID kernel.UUID
	adminNotes  string

	guard guard.ConstructorGuard
}

// NewRejectComplaintCommand creates a command to reject a complaint.
func NewRejectComplaintCommand(complaintID kernel.UUID, adminNotes string) (RejectComplaintCommand, error) {
	cmd := RejectComplaintCommand{
		adminNotes: adminNotes,
		guard:      guard.NewConstructorGuard(),
	}

	if err := cmd.setComplaintID(complaintID); err != nil {
		return RejectComplaintCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectComplaintCommand) Validate() error {
	return c.guard.Validate(ErrRejectComplaintCommandIsNotConstructed)
}

// ComplaintID returns the complaint being rejected.
func (c RejectComplaintCommand) ComplaintID() kernel.UUID {
	return c.complaintID
}

// AdminNotes returns the notes recorded with the verdict.
func (c RejectComplaintCommand) AdminNotes() string {
	return c.adminNotes
}

func (c *RejectComplaintCommand) setComplaintID(complaintID kernel.UUID) error {
	if err := complaintID.Validate(); err != nil {
		return err
	}
	c.complaintID = complaintID
	return nil
}
