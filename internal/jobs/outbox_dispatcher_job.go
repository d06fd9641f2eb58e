package jobs

import (
	"context"
	"log/slog"

	"ordertaking/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// dispatchBatchSize bounds how many staged events one run ships.
const dispatchBatchSize = 100

// OutboxDispatcherJob ships staged domain events to the event publisher.
// Runs every second; each run takes the oldest unpublished events, publishes
// them in staging order, and marks each one published as it goes.
type OutboxDispatcherJob struct {
	outbox    ports.OutboxRepository
	publisher ports.EventPublisher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxDispatcherJob creates a dispatcher over the outbox and publisher.
func NewOutboxDispatcherJob(
	outbox ports.OutboxRepository,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *OutboxDispatcherJob {
	return &OutboxDispatcherJob{
		outbox:    outbox,
		publisher: publisher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_dispatcher_job"),
	}
}

// Start begins the dispatcher job to run every second.
func (j *OutboxDispatcherJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.dispatch(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Outbox dispatch failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox dispatcher job started (running every second)")
	return nil
}

// Stop stops the dispatcher job.
func (j *OutboxDispatcherJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox dispatcher job stopped")
}

// dispatch ships one batch. Publication stops at the first failure so event
// order is preserved; the failed event and everything behind it stay staged
// for the next run.
func (j *OutboxDispatcherJob) dispatch(ctx context.Context) error {
	messages, err := j.outbox.GetUnpublished(ctx, dispatchBatchSize)
	if err != nil {
		return err
	}

	for _, msg := range messages {
		if err := j.publisher.Publish(ctx, msg); err != nil {
			return err
		}

		if err := j.outbox.MarkPublished(ctx, msg); err != nil {
			return err
		}

		j.logger.DebugContext(ctx, "Event published",
			"event_id", msg.ID,
			"event_type", msg.EventType,
			"order_id", msg.OrderID)
	}

	return nil
}
