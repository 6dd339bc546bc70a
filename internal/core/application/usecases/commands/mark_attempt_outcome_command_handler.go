package commands

import (
	"context"
	"time"

	"aftersales/internal/core/domain/model/shipment"
)

// MarkAttemptOutcomeCommandHandler closes out a scheduled delivery attempt.
// A delivered outcome also moves the order to delivered; a conclusive failure
// flags the order as returning to the provider.
type MarkAttemptOutcomeCommandHandler struct {
	uowFactory AttemptUoWFactory
}

// NewMarkAttemptOutcomeCommandHandler creates a handler for attempt outcomes.
func NewMarkAttemptOutcomeCommandHandler(uowFactory AttemptUoWFactory) MarkAttemptOutcomeCommandHandler {
	return MarkAttemptOutcomeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the attempt outcome command.
func (h *MarkAttemptOutcomeCommandHandler) Handle(ctx context.Context, cmd MarkAttemptOutcomeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	attemptRepo := uow.AttemptRepository()
	orderRepo := uow.OrderRepository()

	attempt, err := attemptRepo.Get(ctx, cmd.OrderID(), cmd.AttemptNumber())
	if err != nil {
		return err
	}

	targetOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	orderChanged := false
	if cmd.Outcome() == shipment.AttemptDelivered {
		if err = attempt.MarkDelivered(); err != nil {
			return err
		}
		if err = targetOrder.MarkDelivered(time.Now()); err != nil {
			return err
		}
		orderChanged = true
	} else {
		if err = attempt.MarkFailed(cmd.FailureReason()); err != nil {
			return err
		}
		if cmd.ReturnToProvider() {
			if err = targetOrder.MarkReturningToProvider(); err != nil {
				return err
			}
			orderChanged = true
		}
	}

	if err = attemptRepo.Update(ctx, attempt); err != nil {
		return err
	}

	if orderChanged {
		if err = orderRepo.Update(ctx, targetOrder); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
