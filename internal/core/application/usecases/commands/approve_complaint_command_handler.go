package commands

import (
	"context"
	"strconv"
	"time"

	"aftersales/internal/core/domain/model/coupon"
	"aftersales/internal/core/domain/model/kernel"
	"aftersales/internal/core/domain/model/notification"
)

// ApproveComplaintCommandHandler records the resolved_true verdict. In one
// transaction it issues the apology coupon, attaches it to the complaint, and
// queues the approval notification for asynchronous dispatch.
type ApproveComplaintCommandHandler struct {
	uowFactory ResolutionUoWFactory
}

// NewApproveComplaintCommandHandler creates a handler for complaint approval.
func NewApproveComplaintCommandHandler(uowFactory ResolutionUoWFactory) ApproveComplaintCommandHandler {
	return ApproveComplaintCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command.
func (h *ApproveComplaintCommandHandler) Handle(ctx context.Context, cmd ApproveComplaintCommand) error {
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
	apologyCoupon, err := coupon.NewApologyCoupon(now)
	if err != nil {
		return err
	}

	if err = targetComplaint.Approve(apologyCoupon, cmd.AdminNotes()); err != nil {
		return err
	}

	if err = uow.CouponRepository().Add(ctx, apologyCoupon); err != nil {
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
		notification.TypeComplaintApproved,
		targetOrder.CustomerName(),
		targetOrder.CustomerEmail(),
		map[string]string{
			"couponCode":      apologyCoupon.Code(),
			"discountPercent": strconv.Itoa(apologyCoupon.DiscountPercent()),
		},
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
