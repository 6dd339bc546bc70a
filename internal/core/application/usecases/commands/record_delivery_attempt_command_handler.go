package commands

import (
	"context"

	"aftersales/internal/core/domain/model/shipment"
)

// RecordDeliveryAttemptCommandHandler appends a scheduled attempt to an
// order's delivery log. The attempt number is assigned inside the transaction
// as max+1, so concurrent recorders cannot claim the same number.
type RecordDeliveryAttemptCommandHandler struct {
	uowFactory AttemptUoWFactory
}

// NewRecordDeliveryAttemptCommandHandler creates a handler for recording
// delivery attempts.
func NewRecordDeliveryAttemptCommandHandler(uowFactory AttemptUoWFactory) RecordDeliveryAttemptCommandHandler {
	return RecordDeliveryAttemptCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the assigned attempt number.
func (h *RecordDeliveryAttemptCommandHandler) Handle(ctx context.Context, cmd RecordDeliveryAttemptCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// The order must exist; the attempt log has no life of its own.
	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return 0, err
	}

	attemptRepo := uow.AttemptRepository()
	attemptNumber, err := attemptRepo.NextAttemptNumber(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}

	attempt, err := shipment.NewAttempt(cmd.OrderID(), attemptNumber, cmd.ScheduledDate())
	if err != nil {
		return 0, err
	}

	if err = attemptRepo.Add(ctx, attempt); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return attemptNumber, nil
}
