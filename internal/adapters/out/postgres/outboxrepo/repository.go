package outboxrepo

import (
	"context"
	"time"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
	"ordertaking/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{
		db: db,
	}
}

// AddEvent serializes and stages one domain event.
func (r *GormOutboxRepository) AddEvent(ctx context.Context, evt order.Event) error {
	payload, err := encodeEvent(evt)
	if err != nil {
		return err
	}

	dto := OutboxEventDTO{
		ID:        uuid.New(),
		EventType: evt.EventType(),
		OrderID:   evt.OrderID().Value(),
		Payload:   payload,
		CreatedAt: evt.OccurredAt(),
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetUnpublished returns up to limit staged messages that have not been
// published yet, in staging order.
func (r *GormOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxEventDTO
	err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("seq").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		messages = append(messages, toMessage(dto))
	}

	return messages, nil
}

// MarkPublished records that a staged message has been shipped.
func (r *GormOutboxRepository) MarkPublished(ctx context.Context, msg ports.OutboxMessage) error {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&OutboxEventDTO{}).
		Where("id = ?", msg.ID).
		Update("published_at", &now)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outboxEvent", msg.ID.String())
	}

	return nil
}
