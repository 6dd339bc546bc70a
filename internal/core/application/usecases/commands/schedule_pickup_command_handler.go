package commands

import (
	"context"
	"time"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/core/domain/model/notification"
)

// SchedulePickupCommandHandler arranges collection of the original goods and
// queues the pickup notification in the same transaction.
type SchedulePickupCommandHandler struct {
	uowFactory ComplaintUoWFactory
}

// NewSchedulePickupCommandHandler creates a handler for pickup scheduling.
func NewSchedulePickupCommandHandler(uowFactory ComplaintUoWFactory) SchedulePickupCommandHandler {
	return SchedulePickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup scheduling command.
func (h *SchedulePickupCommandHandler) Handle(ctx context.Context, cmd SchedulePickupCommand) error {
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

	if err = targetComplaint.SchedulePickup(cmd.PickupDate()); err != nil {
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
		notification.TypePickupScheduled,
		targetOrder.CustomerName(),
		targetOrder.CustomerEmail(),
		map[string]string{"pickupDate": cmd.PickupDate().Format("2006-01-02")},
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.NotificationOutbox().Add(ctx, intent); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
