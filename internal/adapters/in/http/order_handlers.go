package http

import (
	"net/http"
	"strconv"

	"aftersales/internal/core/application/usecases/commands"
	"aftersales/internal/core/application/usecases/queries"
	"aftersales/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

// GetOrderStatus handles GET /api/v1/orders/:orderId/status - returns the
// customer-facing status line and the delivery attempt history.
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	orderID, err := uuidParam(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	query, err := queries.NewGetOrderStatusQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	view, err := s.getOrderStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	attempts := make([]DeliveryAttemptView, len(view.Attempts))
	for i, a := range view.Attempts {
		attempts[i] = DeliveryAttemptView{
			AttemptNumber: a.AttemptNumber,
			ScheduledDate: a.ScheduledDate,
			Status:        a.Status,
			FailureReason: a.FailureReason,
		}
	}

	return ctx.JSON(http.StatusOK, OrderStatusResponse{
		OrderID:       view.OrderID.String(),
		Status:        view.Status,
		PaymentStatus: view.PaymentStatus,
		PaymentMethod: view.PaymentMethod,
		StatusText:    view.StatusText,
		Severity:      view.Severity,
		Action:        view.Action,
		Attempts:      attempts,
	})
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel - cancels an order
// that has not shipped yet.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := uuidParam(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid cancel data: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordDeliveryAttempt handles POST /api/v1/orders/:orderId/attempts -
// schedules the next delivery attempt and returns its sequence number.
func (s *Server) RecordDeliveryAttempt(ctx echo.Context) error {
	orderID, err := uuidParam(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var req RecordDeliveryAttemptRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRecordDeliveryAttemptCommand(orderID, req.ScheduledDate)
	if err != nil {
		return badRequest(ctx, "Invalid attempt data: "+err.Error())
	}

	attemptNumber, err := s.recordDeliveryAttemptHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RecordDeliveryAttemptResponse{
		AttemptNumber: attemptNumber,
	})
}

// MarkAttemptOutcome handles POST /api/v1/orders/:orderId/attempts/:attemptNumber/outcome -
// records how a scheduled delivery attempt ended.
func (s *Server) MarkAttemptOutcome(ctx echo.Context) error {
	orderID, err := uuidParam(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	attemptNumber, err := strconv.Atoi(ctx.Param("attemptNumber"))
	if err != nil {
		return badRequest(ctx, "Invalid attempt number: "+err.Error())
	}

	var req MarkAttemptOutcomeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	outcome, err := shipment.AttemptStatusFromString(req.Outcome)
	if err != nil {
		return badRequest(ctx, "Invalid outcome: "+err.Error())
	}

	cmd, err := commands.NewMarkAttemptOutcomeCommand(
		orderID,
		attemptNumber,
		outcome,
		req.FailureReason,
		req.ReturnToProvider,
	)
	if err != nil {
		return badRequest(ctx, "Invalid outcome data: "+err.Error())
	}

	if handleErr := s.markAttemptOutcomeHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}
