package http

import (
	"net/http"

	"aftersales/internal/core/application/usecases/commands"
	"aftersales/internal/core/application/usecases/queries"
	"aftersales/internal/core/domain/model/complaint"
	"aftersales/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// FileComplaint handles POST /api/v1/complaints - opens a complaint case for
// a delivered order. The case identifier is assigned server-side.
func (s *Server) FileComplaint(ctx echo.Context) error {
	var req FileComplaintRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user ID: "+err.Error())
	}

	complaintType, err := complaint.ComplaintTypeFromString(req.ComplaintType)
	if err != nil {
		return badRequest(ctx, "Invalid complaint type: "+err.Error())
	}

	complaintID := kernel.NewUUID()

	cmd, err := commands.NewFileComplaintCommand(
		complaintID,
		orderID,
		userID,
		complaintType,
		req.Description,
		req.EvidenceImages,
	)
	if err != nil {
		return badRequest(ctx, "Invalid complaint data: "+err.Error())
	}

	if handleErr := s.fileComplaintHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, FileComplaintResponse{
		ComplaintID: complaintID.String(),
	})
}

// ApproveComplaint handles POST /api/v1/complaints/:complaintId/approve -
// confirms the customer's claim and issues the apology coupon.
func (s *Server) ApproveComplaint(ctx echo.Context) error {
	complaintID, err := uuidParam(ctx, "complaintId")
	if err != nil {
		return badRequest(ctx, "Invalid complaint ID: "+err.Error())
	}

	var req VerdictRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewApproveComplaintCommand(complaintID, req.AdminNotes)
	if err != nil {
		return badRequest(ctx, "Invalid verdict data: "+err.Error())
	}

	if handleErr := s.approveComplaintHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectComplaint handles POST /api/v1/complaints/:complaintId/reject -
// dismisses the customer's claim with the investigator's notes.
func (s *Server) RejectComplaint(ctx echo.Context) error {
	complaintID, err := uuidParam(ctx, "complaintId")
	if err != nil {
		return badRequest(ctx, "Invalid complaint ID: "+err.Error())
	}

	var req VerdictRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRejectComplaintCommand(complaintID, req.AdminNotes)
	if err != nil {
		return badRequest(ctx, "Invalid verdict data: "+err.Error())
	}

	if handleErr := s.rejectComplaintHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SchedulePickup handles POST /api/v1/complaints/:complaintId/pickup -
// schedules collection of the damaged item.
func (s *Server) SchedulePickup(ctx echo.Context) error {
	complaintID, err := uuidParam(ctx, "complaintId")
	if err != nil {
		return badRequest(ctx, "Invalid complaint ID: "+err.Error())
	}

	var req SchedulePickupRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSchedulePickupCommand(complaintID, req.PickupDate)
	if err != nil {
		return badRequest(ctx, "Invalid pickup data: "+err.Error())
	}

	if handleErr := s.schedulePickupHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkPickedUp handles POST /api/v1/complaints/:complaintId/pickup/complete -
// records that the damaged item was collected.
func (s *Server) MarkPickedUp(ctx echo.Context) error {
	complaintID, err := uuidParam(ctx, "complaintId")
	if err != nil {
		return badRequest(ctx, "Invalid complaint ID: "+err.Error())
	}

	cmd, err := commands.NewMarkPickedUpCommand(complaintID)
	if err != nil {
		return badRequest(ctx, "Invalid pickup data: "+err.Error())
	}

	if handleErr := s.markPickedUpHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateReplacementOrder handles POST /api/v1/complaints/:complaintId/replacement -
// grants the replacement remedy by creating a no-charge order.
func (s *Server) CreateReplacementOrder(ctx echo.Context) error {
	complaintID, err := uuidParam(ctx, "complaintId")
	if err != nil {
		return badRequest(ctx, "Invalid complaint ID: "+err.Error())
	}

	replacementOrderID := kernel.NewUUID()

	cmd, err := commands.NewCreateReplacementOrderCommand(complaintID, replacementOrderID)
	if err != nil {
		return badRequest(ctx, "Invalid replacement data: "+err.Error())
	}

	if handleErr := s.createReplacementOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreateReplacementOrderResponse{
		ReplacementOrderID: replacementOrderID.String(),
	})
}

// ProcessRefund handles POST /api/v1/complaints/:complaintId/refund -
// grants the refund remedy with the customer's chosen payout method.
func (s *Server) ProcessRefund(ctx echo.Context) error {
	complaintID, err := uuidParam(ctx, "complaintId")
	if err != nil {
		return badRequest(ctx, "Invalid complaint ID: "+err.Error())
	}

	var req ProcessRefundRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	refundRequestID := kernel.NewUUID()

	cmd, err := commands.NewProcessRefundCommand(complaintID, refundRequestID, req.RefundMethod)
	if err != nil {
		return badRequest(ctx, "Invalid refund data: "+err.Error())
	}

	if handleErr := s.processRefundHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, ProcessRefundResponse{
		RefundRequestID: refundRequestID.String(),
	})
}

// GetComplaint handles GET /api/v1/complaints/:complaintId - returns the
// full view of a single complaint case.
func (s *Server) GetComplaint(ctx echo.Context) error {
	complaintID, err := uuidParam(ctx, "complaintId")
	if err != nil {
		return badRequest(ctx, "Invalid complaint ID: "+err.Error())
	}

	query, err := queries.NewGetComplaintQuery(complaintID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	view, err := s.getComplaintHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := ComplaintResponse{
		ComplaintID:           view.ComplaintID.String(),
		OrderID:               view.OrderID.String(),
		UserID:                view.UserID.String(),
		ComplaintType:         view.ComplaintType,
		Description:           view.Description,
		EvidenceImages:        view.EvidenceImages,
		InvestigationStatus:   view.InvestigationStatus,
		AdminNotes:            view.AdminNotes,
		CouponCode:            view.CouponCode,
		CouponDiscountPercent: view.CouponDiscountPercent,
		PickupStatus:          view.PickupStatus,
		PickupScheduledAt:     view.PickupScheduledAt,
		PickupCompletedAt:     view.PickupCompletedAt,
		ResolutionType:        view.ResolutionType,
		RefundMethod:          view.RefundMethod,
		RefundStatus:          view.RefundStatus,
		Version:               view.Version,
		CreatedAt:             view.CreatedAt,
	}
	if view.ReplacementOrderID != nil {
		response.ReplacementOrderID = view.ReplacementOrderID.String()
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetComplaintsUnderInvestigation handles GET /api/v1/complaints/under-investigation -
// returns the admin worklist of open cases, oldest first.
func (s *Server) GetComplaintsUnderInvestigation(ctx echo.Context) error {
	query := queries.NewGetComplaintsUnderInvestigationQuery()

	complaints, err := s.getUnderInvestigationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]ComplaintSummaryResponse, len(complaints))
	for i, c := range complaints {
		response[i] = ComplaintSummaryResponse{
			ComplaintID:   c.ComplaintID.String(),
			OrderID:       c.OrderID.String(),
			UserID:        c.UserID.String(),
			ComplaintType: c.ComplaintType,
			Description:   c.Description,
			CreatedAt:     c.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
