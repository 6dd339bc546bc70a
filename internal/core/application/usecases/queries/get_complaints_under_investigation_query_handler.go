package queries

import (
	"context"

	"aftersales/internal/core/domain/model/complaint"
	"aftersales/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetComplaintsUnderInvestigationQueryHandler retrieves all complaints still
// awaiting a verdict. Results are ordered by creation time so the oldest case
// is handled first.
//
// Example:
//
//	handler := NewGetComplaintsUnderInvestigationQueryHandler(db)
//	query := NewGetComplaintsUnderInvestigationQuery()
//
//	cases, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get open complaints: %v", err)
//	    return err
//	}
type GetComplaintsUnderInvestigationQueryHandler struct {
	db *gorm.DB
}

// NewGetComplaintsUnderInvestigationQueryHandler creates a handler for the
// admin worklist query. Requires a GORM database connection.
func NewGetComplaintsUnderInvestigationQueryHandler(db *gorm.DB) GetComplaintsUnderInvestigationQueryHandler {
	return GetComplaintsUnderInvestigationQueryHandler{db: db}
}

// Handle executes the worklist query and returns all complaints whose
// investigation has not been resolved yet.
func (h GetComplaintsUnderInvestigationQueryHandler) Handle(
	ctx context.Context,
	query GetComplaintsUnderInvestigationQuery,
) ([]GetComplaintsUnderInvestigationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cases := make([]GetComplaintsUnderInvestigationQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			user_id,
			complaint_type,
			description,
			created_at
		FROM complaints
		WHERE investigation_status = ?
		ORDER BY created_at, id
	`, complaint.Investigating.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rawID      uuid.UUID
			rawOrderID uuid.UUID
			rawUserID  uuid.UUID
			caseResp   GetComplaintsUnderInvestigationQueryResponse
		)

		err = rows.Scan(
			&rawID,
			&rawOrderID,
			&rawUserID,
			&caseResp.ComplaintType,
			&caseResp.Description,
			&caseResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		caseResp.ComplaintID, err = kernel.UUIDFromBytes(rawID[:])
		if err != nil {
			return nil, err
		}
		caseResp.OrderID, err = kernel.UUIDFromBytes(rawOrderID[:])
		if err != nil {
			return nil, err
		}
		caseResp.UserID, err = kernel.UUIDFromBytes(rawUserID[:])
		if err != nil {
			return nil, err
		}

		cases = append(cases, caseResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cases, nil
}
