package jobs

import (
	"context"
	"log/slog"

	"aftersales/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NotificationDispatchJob drains the notification outbox on a fixed schedule.
// Runs every ten seconds so customers hear about verdicts and pickups shortly
// after the underlying transaction commits.
type NotificationDispatchJob struct {
	handler     commands.DispatchNotificationsCommandHandler
	cron        *cron.Cron
	logger      *slog.Logger
	batchSize   int
	maxAttempts int
}

// NewNotificationDispatchJob creates a job that drains the outbox.
// Uses DispatchNotificationsCommandHandler with the given batch size and
// per-intent attempt limit.
func NewNotificationDispatchJob(
	handler commands.DispatchNotificationsCommandHandler,
	batchSize, maxAttempts int,
	logger *slog.Logger,
) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		handler:     handler,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "notification_dispatch_job"),
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
	}
}

// Start begins the outbox drain job, running every ten seconds.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewDispatchNotificationsCommand(j.batchSize, j.maxAttempts)
		if err != nil {
			j.logger.ErrorContext(ctx, "Notification dispatch job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Notification dispatch job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started (running every ten seconds)")
	return nil
}

// Stop stops the outbox drain job.
func (j *NotificationDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}
