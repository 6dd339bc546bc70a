package commands

import (
	"errors"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/pkg/guard"
)

var (
	ErrProcessRefundCommandIsNotConstructed = errors.New(
		"ProcessRefundCommand must be created via NewProcessRefundCommand constructor",
	)
	ErrRefundMethodIsRequired = errors.New("refund method is required")
)

// ProcessRefundCommand represents the refund remedy for a verified complaint:
// the full order amount returned through the channel the customer chose.
type ProcessRefundCommand struct { //nolint:recvcheck //using for validation
	complaintID     kernel.UUID
	refundRequestID kernel.UUID
	refundMethod    string

	guard guard.ConstructorGuard
}

// NewProcessRefundCommand creates a command to grant the refund remedy.
// The caller assigns the identifier of the refund request to be created.
func NewProcessRefundCommand(
	complaintID kernel.UUID,
	refundRequestID kernel.UUID,
	refundMethod string,
) (ProcessRefundCommand, error) {
	cmd := ProcessRefundCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setComplaintID(complaintID),
		cmd.setRefundRequestID(refundRequestID),
		cmd.setRefundMethod(refundMethod),
	); err != nil {
		return ProcessRefundCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessRefundCommand) Validate() error {
	return c.guard.Validate(ErrProcessRefundCommandIsNotConstructed)
}

// ComplaintID returns the complaint receiving the remedy.
func (c ProcessRefundCommand) ComplaintID() kernel.UUID {
	return c.complaintID
}

// RefundRequestID returns the identifier for the new refund request.
func (c ProcessRefundCommand) RefundRequestID() kernel.UUID {
	return c.refundRequestID
}

// RefundMethod returns the payout channel the customer chose.
func (c ProcessRefundCommand) RefundMethod() string {
	return c.refundMethod
}

func (c *ProcessRefundCommand) setComplaintID(complaintID kernel.UUID) error {
	if err := complaintID.Validate(); err != nil {
		return err
	}
	c.complaintID = complaintID
	return nil
}

func (c *ProcessRefundCommand) setRefundRequestID(refundRequestID kernel.UUID) error {
	if err := refundRequestID.Validate(); err != nil {
		return err
	}
	c.refundRequestID = refundRequestID
	return nil
}

func (c *ProcessRefundCommand) setRefundMethod(refundMethod string) error {
	if refundMethod == "" {
		return ErrRefundMethodIsRequired
	}
	c.refundMethod = refundMethod
	return nil
}
