package commands

import (
	"context"
	"time"

	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/core/domain/model/notification"
	"aftersales/internal/core/domain/model/order"
)

// CreateReplacementOrderCommandHandler grants the replacement remedy. In one
// transaction it creates the zero-amount replacement order, links it to the
// complaint, and queues the replacement notification.
//
// The remedy is one-shot: a complaint that already has a refund or a
// replacement rejects a second grant as a conflict.
type CreateReplacementOrderCommandHandler struct {
	uowFactory ResolutionUoWFactory
}

// NewCreateReplacementOrderCommandHandler creates a handler for the
// replacement remedy.
func NewCreateReplacementOrderCommandHandler(uowFactory ResolutionUoWFactory) CreateReplacementOrderCommandHandler {
	return CreateReplacementOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the replacement remedy command.
func (h *CreateReplacementOrderCommandHandler) Handle(ctx context.Context, cmd CreateReplacementOrderCommand) error {
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
	orderRepo := uow.OrderRepository()

	targetComplaint, err := complaintRepo.Get(ctx, cmd.ComplaintID())
	if err != nil {
		return err
	}

	parentOrder, err := orderRepo.Get(ctx, targetComplaint.OrderID())
	if err != nil {
		return err
	}

	if err = targetComplaint.AttachReplacement(cmd.ReplacementOrderID()); err != nil {
		return err
	}

	replacementOrder, err := order.NewReplacementOrder(
		cmd.ReplacementOrderID(), parentOrder, targetComplaint.ComplaintType().IsWarranty())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, replacementOrder); err != nil {
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
		notification.TypeReplacementCreated,
		parentOrder.CustomerName(),
		parentOrder.CustomerEmail(),
		map[string]string{"replacementOrderId": cmd.ReplacementOrderID().String()},
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
