package jobs

import (
	"fmt"
	"log/slog"

	"ordertaking/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	outboxDispatcherJob *OutboxDispatcherJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	outbox ports.OutboxRepository,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		outboxDispatcherJob: NewOutboxDispatcherJob(outbox, publisher, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxDispatcherJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox dispatcher job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.outboxDispatcherJob.Stop()
}
