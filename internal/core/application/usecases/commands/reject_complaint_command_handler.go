package commands

import (
	"context"
	"time"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/core/domain/model/notification"
)

// RejectComplaintCommandHandler records the resolved_false verdict and queues
// the rejection notification in the same transaction.
type RejectComplaintCommandHandler struct {
	uowFactory ComplaintUoWFactory
}

// NewRejectComplaintCommandHandler creates a handler for complaint rejection.
func NewRejectComplaintCommandHandler(uowFactory ComplaintUoWFactory) RejectComplaintCommandHandler {
	return RejectComplaintCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command.
func (h *RejectComplaintCommandHandler) Handle(ctx context.Context, cmd RejectComplaintCommand) error {
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

	if err = targetComplaint.Reject(cmd.AdminNotes()); err != nil {
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
		notification.TypeComplaintRejected,
		targetOrder.CustomerName(),
		targetOrder.CustomerEmail(),
		map[string]string{"reason": cmd.AdminNotes()},
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
