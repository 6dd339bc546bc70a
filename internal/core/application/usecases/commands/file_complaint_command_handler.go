package commands

import (
	"context"
	"time"

	"aftersales/internal/core/domain/model/complaint"
	"aftersales/internal/core/domain/model/order"
	"aftersales/internal/pkg/errs"
)

// FileComplaintCommandHandler handles the business logic for opening a
// complaint case. The complaint starts under investigation; no notification
// is produced until a verdict is reached.
//
// Eligibility depends on the complaint type:
//   - damaged, return, replace, warranty: the order must be delivered
//   - not_received: the order must be neither delivered nor cancelled
type FileComplaintCommandHandler struct {
	uowFactory ComplaintUoWFactory
}

// NewFileComplaintCommandHandler creates a handler for filing complaints.
func NewFileComplaintCommandHandler(uowFactory ComplaintUoWFactory) FileComplaintCommandHandler {
	return FileComplaintCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the complaint filing command.
func (h *FileComplaintCommandHandler) Handle(ctx context.Context, cmd FileComplaintCommand) error {
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

	targetOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = checkComplaintEligibility(targetOrder, cmd.ComplaintType()); err != nil {
		return err
	}

	newComplaint, err := complaint.NewComplaint(
		cmd.ComplaintID(),
		cmd.OrderID(),
		cmd.UserID(),
		cmd.ComplaintType(),
		cmd.Description(),
		cmd.EvidenceImages(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.ComplaintRepository().Add(ctx, newComplaint); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func checkComplaintEligibility(o *order.Order, complaintType complaint.ComplaintType) error {
	if complaintType.RequiresDeliveredOrder() {
		if o.Status() != order.StatusDelivered {
			return errs.NewInvalidTransitionError(
				"complaint", o.Status().String(), complaintType.String())
		}
		return nil
	}

	if o.Status() == order.StatusDelivered || o.Status() == order.StatusCancelled {
		return errs.NewInvalidTransitionError(
			"complaint", o.Status().String(), complaintType.String())
	}
	return nil
}
