package commands

import (
	"context"

	"aftersales/internal/core/domain/model/refund"
)

// ProcessRefundCommandHandler grants the refund remedy. In one transaction it
// records the remedy on the complaint, creates the processed refund request
// for the full order amount, and marks the order's payment refunded.
//
// The remedy is one-shot: a complaint that already has a refund or a
// replacement rejects a second grant as a conflict. Complaint types that
// return goods require the pickup to be complete; a lost or never-delivered
// order (not_received) is refundable right after approval.
type ProcessRefundCommandHandler struct {
	uowFactory ResolutionUoWFactory
}

// NewProcessRefundCommandHandler creates a handler for the refund remedy.
func NewProcessRefundCommandHandler(uowFactory ResolutionUoWFactory) ProcessRefundCommandHandler {
	return ProcessRefundCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the refund remedy command.
func (h *ProcessRefundCommandHandler) Handle(ctx context.Context, cmd ProcessRefundCommand) error {
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

	targetOrder, err := orderRepo.Get(ctx, targetComplaint.OrderID())
	if err != nil {
		return err
	}

	if err = targetComplaint.ChooseRefund(cmd.RefundMethod()); err != nil {
		return err
	}

	// Only a captured payment can be returned.
	if err = targetOrder.MarkRefunded(); err != nil {
		return err
	}

	request, err := refund.NewRequest(
		cmd.RefundRequestID(),
		targetOrder.ID(),
		targetComplaint.UserID(),
		targetOrder.TotalAmount(),
		targetOrder.PaymentMethod(),
		cmd.RefundMethod(),
		targetComplaint.Description(),
	)
	if err != nil {
		return err
	}

	if err = request.MarkProcessed(); err != nil {
		return err
	}

	if err = targetComplaint.MarkRefundProcessed(); err != nil {
		return err
	}

	if err = uow.RefundRepository().Add(ctx, request); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, targetOrder); err != nil {
		return err
	}

	if err = complaintRepo.Update(ctx, targetComplaint); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
