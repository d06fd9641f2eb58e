// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxDispatcherJob - Runs every second to ship staged domain events to
// the event publisher and mark them published.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(outboxRepo, publisher, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatcher uses the cron expression "* * * * * *", running every
// second, so events reach the broker with at most about a second of staging
// delay.
//
// # Error Handling
//
// A failed publish leaves the event unpublished; the next run retries it.
// Events already marked published are never shipped again, so delivery is
// at-least-once with duplicates only across process crashes between publish
// and mark.
package jobs
