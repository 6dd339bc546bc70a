// Package jobs provides scheduled background tasks for the after-sales system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the complaint resolution flow.
//
// # Available Jobs
//
// 1. NotificationDispatchJob - Runs every ten seconds to drain pending
// notification intents from the outbox and hand them to the transport.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatchHandler, batchSize, maxAttempts, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The dispatch job logs every failed run; a transport failure for a single
// intent is absorbed by the handler's retry bookkeeping and does not fail the
// run.
package jobs
