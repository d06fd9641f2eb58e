// Package noop provides a do-nothing event publisher used when no broker is
// configured. The outbox dispatcher still marks events published, so local
// setups run the full workflow without Kafka.
package noop

import (
	"context"

	"ordertaking/internal/core/ports"
)

// Publisher is a no-op EventPublisher.
type Publisher struct{}

// Publish discards the message.
func (Publisher) Publish(_ context.Context, _ ports.OutboxMessage) error { return nil }
