// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, workflow execution, and
// transactional persistence.
package commands

import (
	"context"

	"ordertaking/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure the placed order and its events are persisted
// atomically.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PlacedOrderRepoFactory provides access to the placed-order repository
	// within a transaction.
	PlacedOrderRepoFactory interface {
		PlacedOrderRepository() ports.PlacedOrderRepository
	}

	// OutboxRepoFactory provides access to the event outbox within a
	// transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// PlaceOrderUoW manages the transaction that stores a placed order
	// together with its staged events. Both repositories share one
	// transaction: either the order and every event land, or nothing does.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.PlacedOrderRepository()
	//   outboxRepo := uow.OutboxRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	PlaceOrderUoW interface {
		TxManager
		PlacedOrderRepoFactory
		OutboxRepoFactory
	}

	// PlaceOrderUoWFactory creates new unit of work instances, one per
	// workflow run.
	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}
)
