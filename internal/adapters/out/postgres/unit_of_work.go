// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern for the order workflow. One unit of work spans the placed-order
// store and the event outbox, so a placed order and its staged events are
// committed atomically: either both land or neither does.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.PlacedOrderRepository().Add(ctx, priced); err != nil {
//	    return err
//	}
//	for _, event := range events {
//	    if err := uow.OutboxRepository().AddEvent(ctx, event); err != nil {
//	        return err
//	    }
//	}
//
//	return uow.Commit(ctx)
//
// Each business operation gets a fresh unit of work instance; concurrent
// operations must not share one.
package postgres

import (
	"context"

	"ordertaking/internal/adapters/out/postgres/outboxrepo"
	"ordertaking/internal/adapters/out/postgres/placedorderrepo"
	"ordertaking/internal/core/application/usecases/commands"
	"ordertaking/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances over a shared GORM
// database connection.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() commands.PlaceOrderUoW {
	return &GormUnitOfWork{
		db: f.db,
	}
}

// GormUnitOfWork coordinates one database transaction across the placed-order
// repository and the event outbox.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin initiates a new database transaction. Subsequent repository
// operations execute within this transaction. Calling Begin again on an
// instance with an active transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction. After
// commit the transaction is closed and cannot be reused.
//
// Returns an error if no active transaction exists or the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction. After
// rollback the transaction is closed and cannot be reused.
//
// Returns an error if no active transaction exists or the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// PlacedOrderRepository provides placed-order persistence within the unit of
// work. Operations run inside the current transaction if one is active,
// otherwise on the main connection.
func (uow *GormUnitOfWork) PlacedOrderRepository() ports.PlacedOrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return placedorderrepo.NewGormPlacedOrderRepository(db)
}

// OutboxRepository provides event staging within the unit of work. Operations
// run inside the current transaction if one is active, otherwise on the main
// connection.
func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return outboxrepo.NewGormOutboxRepository(db)
}
