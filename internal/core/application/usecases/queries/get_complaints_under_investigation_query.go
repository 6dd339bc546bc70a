package queries

import (
	"errors"
	"time"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/pkg/guard"
)

var (
	ErrGetComplaintsUnderInvestigationQueryIsNotConstructed = errors.New(
		"GetComplaintsUnderInvestigationQuery must be created via NewGetComplaintsUnderInvestigationQuery constructor",
	)
)

// GetComplaintsUnderInvestigationQuery retrieves the admin worklist: all
// complaints still awaiting a verdict, oldest first.
//
// Example:
//
//	query := NewGetComplaintsUnderInvestigationQuery()
//	handler := NewGetComplaintsUnderInvestigationQueryHandler(db)
//
//	cases, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open complaints: %w", err)
//	}
//
//	fmt.Printf("%d complaints awaiting a verdict\n", len(cases))
type GetComplaintsUnderInvestigationQuery struct {
	guard guard.ConstructorGuard
}

// NewGetComplaintsUnderInvestigationQuery creates the parameterless worklist
// query.
func NewGetComplaintsUnderInvestigationQuery() GetComplaintsUnderInvestigationQuery {
	return GetComplaintsUnderInvestigationQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetComplaintsUnderInvestigationQueryIsNotConstructed if
// validation fails.
func (q GetComplaintsUnderInvestigationQuery) Validate() error {
	return q.guard.Validate(ErrGetComplaintsUnderInvestigationQueryIsNotConstructed)
}

// GetComplaintsUnderInvestigationQueryResponse is one open complaint in the
// admin worklist.
type GetComplaintsUnderInvestigationQueryResponse struct {
	ComplaintID   kernel.UUID
	OrderID       kernel.UUID
	UserID        kernel.UUID
	ComplaintType string
	Description   string
	CreatedAt     time.Time
}
