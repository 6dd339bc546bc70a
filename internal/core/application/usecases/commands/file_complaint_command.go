package commands

import (
	"errors"

	"aftersales/internal/core/domain/model/complaint"
	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/pkg/guard"
)

var (
	ErrFileComplaintCommandIsNotConstructed = errors.New(
		"FileComplaintCommand must be created via NewFileComplaintCommand constructor",
	)
	ErrDescriptionIsRequired = errors.New("description is required")
)

// FileComplaintCommand represents a customer's request to open a complaint
// case against one of their orders.
//
// Example:
//
//	cmd, err := NewFileComplaintCommand(complaintID, orderID, userID,
//	    complaint.TypeDamaged, "screen cracked in transit", photoURLs)
//	if err != nil {
//	    return fmt.Errorf("invalid complaint data: %w", err)
//	}
//
//	handler := NewFileComplaintCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to file complaint: %w", err)
//	}
type FileComplaintCommand struct { //nolint:recvcheck //using for validation
	complaintID    kernel.UUID
	orderID        kernel.UUID
	userID         kernel.UUID
	complaintType  complaint.ComplaintType
	description    string
	evidenceImages []string

	guard guard.ConstructorGuard
}

// NewFileComplaintCommand creates a command to open a complaint case.
// Validates identifiers, the complaint type, and that a description is given.
func NewFileComplaintCommand(
	complaintID kernel.UUID,
	orderID kernel.UUID,
	userID kernel.UUID,
	complaintType complaint.ComplaintType,
	description string,
	evidenceImages []string,
) (FileComplaintCommand, error) {
	cmd := FileComplaintCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setComplaintID(complaintID),
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setComplaintType(complaintType),
		cmd.setDescription(description),
	); err != nil {
		return FileComplaintCommand{}, err
	}

	cmd.evidenceImages = make([]string, len(evidenceImages))
	copy(cmd.evidenceImages, evidenceImages)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FileComplaintCommand) Validate() error {
	return c.guard.Validate(ErrFileComplaintCommandIsNotConstructed)
}

// ComplaintID returns the identifier assigned to the new complaint.
func (c FileComplaintCommand) ComplaintID() kernel.UUID {
	return c.complaintID
}

// OrderID returns the order the complaint is about.
func (c FileComplaintCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the customer filing the complaint.
func (c FileComplaintCommand) UserID() kernel.UUID {
	return c.userID
}

// ComplaintType returns the complaint category.
func (c FileComplaintCommand) ComplaintType() complaint.ComplaintType {
	return c.complaintType
}

// Description returns the customer's account of the problem.
func (c FileComplaintCommand) Description() string {
	return c.description
}

// EvidenceImages returns the uploaded photo URLs.
func (c FileComplaintCommand) EvidenceImages() []string {
	return c.evidenceImages
}

func (c *FileComplaintCommand) setComplaintID(complaintID kernel.UUID) error {
	if err := complaintID.Validate(); err != nil {
		return err
	}
	c.complaintID = complaintID
	return nil
}

func (c *FileComplaintCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *FileComplaintCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *FileComplaintCommand) setComplaintType(complaintType complaint.ComplaintType) error {
	if err := complaintType.Validate(); err != nil {
		return err
	}
	c.complaintType = complaintType
	return nil
}

func (c *FileComplaintCommand) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}
	c.description = description
	return nil
}
