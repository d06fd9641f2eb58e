package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OutboxMessage is one serialized domain event staged for publication. The
// payload is an encoded event envelope; the outbox repository produces it and
// the event publisher ships it without looking inside.
type OutboxMessage struct {
	ID          uuid.UUID
	EventType   string
	OrderID     string
	Payload     []byte
	CreatedAt   time.Time
	PublishedAt *time.Time
}

// EventPublisher ships staged outbox messages to the outside world (a broker,
// or nothing at all in the no-op wiring). Used by the outbox dispatcher job,
// never by the order pipeline itself.
type EventPublisher interface {
	Publish(ctx context.Context, msg OutboxMessage) error
}
