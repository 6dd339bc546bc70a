package commands

import (
	"context"
	"time"

	"aftersales/internal/core/ports"
)

// DispatchNotificationsCommandHandler drains the notification outbox.
// Pending intents are handed to the dispatcher one by one; a transport
// failure only counts against the failing intent, the rest of the batch
// still goes out.
type DispatchNotificationsCommandHandler struct {
	uowFactory OutboxUoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewDispatchNotificationsCommandHandler creates a handler for outbox draining.
func NewDispatchNotificationsCommandHandler(
	uowFactory OutboxUoWFactory,
	dispatcher ports.NotificationDispatcher,
) DispatchNotificationsCommandHandler {
	return DispatchNotificationsCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes one outbox drain run.
func (h *DispatchNotificationsCommandHandler) Handle(ctx context.Context, cmd DispatchNotificationsCommand) error {
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

	outbox := uow.NotificationOutbox()

	pending, err := outbox.GetAllPending(ctx, cmd.BatchSize())
	if err != nil {
		return err
	}

	for _, intent := range pending {
		if notifyErr := h.dispatcher.Notify(ctx, intent); notifyErr != nil {
			if err = intent.RecordFailure(cmd.MaxAttempts()); err != nil {
				return err
			}
		} else if err = intent.MarkSent(time.Now()); err != nil {
			return err
		}

		if err = outbox.Update(ctx, intent); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
