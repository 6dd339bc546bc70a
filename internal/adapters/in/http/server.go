package http

import (
	"errors"
	"net/http"

	"aftersales/internal/core/application/usecases/commands"
	"aftersales/internal/core/application/usecases/queries"
	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the after-sales API over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	fileComplaintHandler          commands.FileComplaintCommandHandler
	approveComplaintHandler       commands.ApproveComplaintCommandHandler
	rejectComplaintHandler        commands.RejectComplaintCommandHandler
	schedulePickupHandler         commands.SchedulePickupCommandHandler
	markPickedUpHandler           commands.MarkPickedUpCommandHandler
	createReplacementOrderHandler commands.CreateReplacementOrderCommandHandler
	processRefundHandler          commands.ProcessRefundCommandHandler
	cancelOrderHandler            commands.CancelOrderCommandHandler
	recordDeliveryAttemptHandler  commands.RecordDeliveryAttemptCommandHandler
	markAttemptOutcomeHandler     commands.MarkAttemptOutcomeCommandHandler

	// Query handlers
	getComplaintHandler          queries.GetComplaintQueryHandler
	getUnderInvestigationHandler queries.GetComplaintsUnderInvestigationQueryHandler
	getOrderStatusHandler        queries.GetOrderStatusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	fileComplaintHandler commands.FileComplaintCommandHandler,
	approveComplaintHandler commands.ApproveComplaintCommandHandler,
	rejectComplaintHandler commands.RejectComplaintCommandHandler,
	schedulePickupHandler commands.SchedulePickupCommandHandler,
	markPickedUpHandler commands.MarkPickedUpCommandHandler,
	createReplacementOrderHandler commands.CreateReplacementOrderCommandHandler,
	processRefundHandler commands.ProcessRefundCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	recordDeliveryAttemptHandler commands.RecordDeliveryAttemptCommandHandler,
	markAttemptOutcomeHandler commands.MarkAttemptOutcomeCommandHandler,
	getComplaintHandler queries.GetComplaintQueryHandler,
	getUnderInvestigationHandler queries.GetComplaintsUnderInvestigationQueryHandler,
	getOrderStatusHandler queries.GetOrderStatusQueryHandler,
) *Server {
	return &Server{
		fileComplaintHandler:          fileComplaintHandler,
		approveComplaintHandler:       approveComplaintHandler,
		rejectComplaintHandler:        rejectComplaintHandler,
		schedulePickupHandler:         schedulePickupHandler,
		markPickedUpHandler:           markPickedUpHandler,
		createReplacementOrderHandler: createReplacementOrderHandler,
		processRefundHandler:          processRefundHandler,
		cancelOrderHandler:            cancelOrderHandler,
		recordDeliveryAttemptHandler:  recordDeliveryAttemptHandler,
		markAttemptOutcomeHandler:     markAttemptOutcomeHandler,
		getComplaintHandler:           getComplaintHandler,
		getUnderInvestigationHandler:  getUnderInvestigationHandler,
		getOrderStatusHandler:         getOrderStatusHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/complaints", s.FileComplaint)
	api.GET("/complaints/under-investigation", s.GetComplaintsUnderInvestigation)
	api.GET("/complaints/:complaintId", s.GetComplaint)
	api.POST("/complaints/:complaintId/approve", s.ApproveComplaint)
	api.POST("/complaints/:complaintId/reject", s.RejectComplaint)
	api.POST("/complaints/:complaintId/pickup", s.SchedulePickup)
	api.POST("/complaints/:complaintId/pickup/complete", s.MarkPickedUp)
	api.POST("/complaints/:complaintId/replacement", s.CreateReplacementOrder)
	api.POST("/complaints/:complaintId/refund", s.ProcessRefund)

	api.GET("/orders/:orderId/status", s.GetOrderStatus)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.POST("/orders/:orderId/attempts", s.RecordDeliveryAttempt)
	api.POST("/orders/:orderId/attempts/:attemptNumber/outcome", s.MarkAttemptOutcome)
}

// uuidParam extracts and validates a UUID path parameter.
func uuidParam(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// badRequest returns a 400 response with the validation failure message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps application errors onto HTTP status codes. Not-found
// lookups become 404, version conflicts 409, rejected lifecycle moves 422,
// and invalid input 400. Anything unclassified is a 500.
func domainError(ctx echo.Context, err error) error {
	var status int

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrInvalidTransition):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
