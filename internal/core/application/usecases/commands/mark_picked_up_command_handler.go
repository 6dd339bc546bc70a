package commands

import (
	"context"
	"time"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/core/domain/model/notification"
)

// MarkPickedUpCommandHandler records the completed pickup and queues the
// confirmation notification in the same transaction. Once the goods are
// collected the complaint becomes eligible for its remedy.
type MarkPickedUpCommandHandler struct {
	uowFactory ComplaintUoWFactory
}

// NewMarkPickedUpCommandHandler creates a handler for pickup confirmation.
func NewMarkPickedUpCommandHandler(uowFactory ComplaintUoWFactory) MarkPickedUpCommandHandler {
	return MarkPickedUpCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup confirmation command.
func (h *MarkPickedUpCommandHandler) Handle(ctx context.Context, cmd MarkPickedUpCommand) error {
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

	complaintRepo := uow.ComplaintRepository()

	targetComplaint, err := complaintRepo.Get(ctx, cmd.ComplaintID())
	if err != nil {
		return err
	}

	targetOrder, err := uow.OrderRepository().Get(ctx, targetComplaint.OrderID())
	if err != nil {
		return err
	}

	now := time.Now()
	if err = targetComplaint.MarkPickedUp(now); err != nil {
		return err
	}

	if err = complaintRepo.Update(ctx, targetComplaint); err != nil {
		return err
	}

	intent, err := notification.NewIntent(
		kernel.NewUUID(),
		targetComplaint.ID(),
		targetComplaint.OrderID(),
		targetComplaint.UserID(),
		notification.TypePickupCompleted,
		targetOrder.CustomerName(),
		targetOrder.CustomerEmail(),
		nil,
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.NotificationOutbox().Add(ctx, intent); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
