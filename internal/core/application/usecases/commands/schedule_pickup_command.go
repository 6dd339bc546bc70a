package commands

import (
	"errors"
	"time"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/pkg/guard"
)

var (
	ErrSchedulePickupCommandIsNotConstructed = errors.New(
		"SchedulePickupCommand must be created via NewSchedulePickupCommand constructor",
	)
	ErrPickupDateIsRequired = errors.New("pickup date is required")
)

// SchedulePickupCommand represents a request to arrange collection of the
// original goods for an approved complaint.
type SchedulePickupCommand struct { //nolint:recvcheck //using for validation
	complaintID kernel.UUID
	pickupDate  time.Time

	guard guard.ConstructorGuard
}

// NewSchedulePickupCommand creates a command to schedule a pickup.
func NewSchedulePickupCommand(complaintID kernel.UUID, pickupDate time.Time) (SchedulePickupCommand, error) {
	cmd := SchedulePickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setComplaintID(complaintID),
		cmd.setPickupDate(pickupDate),
	); err != nil {
		return SchedulePickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SchedulePickupCommand) Validate() error {
	return c.guard.Validate(ErrSchedulePickupCommandIsNotConstructed)
}

// ComplaintID returns the complaint the pickup belongs to.
func (c SchedulePickupCommand) ComplaintID() kernel.UUID {
	return c.complaintID
}

// PickupDate returns the arranged collection date.
func (c SchedulePickupCommand) PickupDate() time.Time {
	return c.pickupDate
}

func (c *SchedulePickupCommand) setComplaintID(complaintID kernel.UUID) error {
	if err := complaintID.Validate(); err != nil {
		return err
	}
	c.complaintID = complaintID
	return nil
}

func (c *SchedulePickupCommand) setPickupDate(pickupDate time.Time) error {
	if pickupDate.IsZero() {
		return ErrPickupDateIsRequired
	}
	c.pickupDate = pickupDate
	return nil
}
