package ports

import (
	"context"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
)

// PlacedOrderRepository persists priced orders after a successful workflow
// run. The pipeline itself never touches persistence; only the orchestrating
// command handler does, after the order is fully priced.
type PlacedOrderRepository interface {
	// Add stores a priced order with its lines. The order must be valid and
	// its id not already stored.
	Add(ctx context.Context, priced order.PricedOrder) error

	// Get retrieves a previously placed order by its id, reconstructing the
	// full domain value through the kernel constructors.
	Get(ctx context.Context, id kernel.OrderID) (order.PricedOrder, error)
}

// OutboxRepository stages domain events for reliable publication. Events are
// written in the same transaction as the placed order and shipped later by
// the outbox dispatcher job.
type OutboxRepository interface {
	// AddEvent serializes and stages one domain event.
	AddEvent(ctx context.Context, evt order.Event) error

	// GetUnpublished returns up to limit staged messages that have not been
	// published yet, oldest first.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished records that a staged message has been shipped.
	MarkPublished(ctx context.Context, msg OutboxMessage) error
}
