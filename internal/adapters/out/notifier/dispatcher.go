// Package notifier provides the outbound notification transport.
// The log dispatcher stands in for a real mail or SMS gateway: the outbox and
// retry bookkeeping stay the same whichever transport is plugged in.
package notifier

import (
	"context"
	"log/slog"

	"aftersales/internal/core/domain/model/notification"
)

// SlogNotificationDispatcher writes every notification to the structured log.
type SlogNotificationDispatcher struct {
	logger *slog.Logger
}

// NewSlogNotificationDispatcher creates a dispatcher that logs notifications.
func NewSlogNotificationDispatcher(logger *slog.Logger) *SlogNotificationDispatcher {
	return &SlogNotificationDispatcher{
		logger: logger.With("component", "notification_dispatcher"),
	}
}

// Notify emits the notification as a structured log record.
func (d *SlogNotificationDispatcher) Notify(ctx context.Context, intent *notification.Intent) error {
	if err := intent.Validate(); err != nil {
		return err
	}

	attrs := []any{
		"intentId", intent.ID().String(),
		"type", intent.IntentType().String(),
		"complaintId", intent.ComplaintID().String(),
		"orderId", intent.OrderID().String(),
		"customerEmail", intent.CustomerEmail(),
	}
	for key, value := range intent.AdditionalData() {
		attrs = append(attrs, "data."+key, value)
	}

	d.logger.InfoContext(ctx, "Customer notification", attrs...)
	return nil
}
