// Package outboxrepo implements the transactional event outbox. Domain events
// are serialized and staged in the same transaction that stores the placed
// order; the dispatcher job ships them later and marks them published.
package outboxrepo

import (
	"time"

	"ordertaking/internal/core/ports"

	"github.com/google/uuid"
)

// OutboxEventDTO represents one staged domain event awaiting publication.
// Seq fixes the publication order: the dispatcher ships events in staging
// order, which preserves the emission order within a single workflow run.
type OutboxEventDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Seq         int64      `gorm:"autoIncrement;uniqueIndex"`
	EventType   string     `gorm:"type:varchar(64)"`
	OrderID     string     `gorm:"type:varchar(50);index"`
	Payload     []byte     `gorm:"type:jsonb"`
	CreatedAt   time.Time  `gorm:"index"`
	PublishedAt *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox events.
func (OutboxEventDTO) TableName() string {
	return "outbox_events"
}

func toMessage(dto OutboxEventDTO) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:          dto.ID,
		EventType:   dto.EventType,
		OrderID:     dto.OrderID,
		Payload:     dto.Payload,
		CreatedAt:   dto.CreatedAt,
		PublishedAt: dto.PublishedAt,
	}
}
