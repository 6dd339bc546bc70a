package queries

import (
	"errors"
	"time"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/pkg/guard"
)

var (
	ErrGetComplaintQueryIsNotConstructed = errors.New(
		"GetComplaintQuery must be created via NewGetComplaintQuery constructor",
	)

	// ErrComplaintIDIsRequired is returned when the query is built without a
	// complaint ID.
	ErrComplaintIDIsRequired = errors.New("complaint ID is required")
)

// GetComplaintQuery retrieves the full view of a single complaint case:
// verdict, pickup progress, chosen remedy and the apology coupon if one was
// issued.
//
// Example:
//
//	query, err := NewGetComplaintQuery(complaintID)
//	if err != nil {
//	    return err
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get complaint: %w", err)
//	}
type GetComplaintQuery struct {
	complaintID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetComplaintQuery creates a query for a single complaint case.
func NewGetComplaintQuery(complaintID kernel.UUID) (GetComplaintQuery, error) {
	if err := complaintID.Validate(); err != nil {
		return GetComplaintQuery{}, ErrComplaintIDIsRequired
	}

	return GetComplaintQuery{
		complaintID: complaintID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetComplaintQueryIsNotConstructed if validation fails.
func (q GetComplaintQuery) Validate() error {
	return q.guard.Validate(ErrGetComplaintQueryIsNotConstructed)
}

// ComplaintID identifies the requested complaint case.
func (q GetComplaintQuery) ComplaintID() kernel.UUID {
	return q.complaintID
}

// GetComplaintQueryResponse is the full complaint case view. Optional fields
// are pointers or empty strings depending on how far the case has progressed.
type GetComplaintQueryResponse struct {
	ComplaintID    kernel.UUID
	OrderID        kernel.UUID
	UserID         kernel.UUID
	ComplaintType  string
	Description    string
	EvidenceImages []string

	InvestigationStatus string
	AdminNotes          string

	CouponCode            string
	CouponDiscountPercent int

	PickupStatus      string
	PickupScheduledAt *time.Time
	PickupCompletedAt *time.Time

	ResolutionType     string
	RefundMethod       string
	RefundStatus       string
	ReplacementOrderID *kernel.UUID

	Version   int
	CreatedAt time.Time
}
