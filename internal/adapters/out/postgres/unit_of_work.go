// Package postgres provides the GORM-based implementation of the Unit of Work pattern.
// A unit of work owns one database transaction and hands out repositories bound to it,
// so every write of a business operation commits or rolls back together.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	orders, err := uow.OrderRepository().GetForUpdate(ctx, ids...)
//	if err != nil {
//	    return err
//	}
//	// ... change the orders, append to the ledger
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit is a harmless no-op returning
// gorm.ErrInvalidTransaction, which is why the deferred call ignores its error.
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides an isolated transaction
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Row locks taken through GetForUpdate are held until Commit or Rollback
package postgres

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/consolidationrepo"
	"fulfillment/internal/adapters/out/postgres/historyrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/pgerr"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
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

// Create produces a new UnitOfWork with no transaction started.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction for a business operation.
// Repositories obtained before Begin, or after Commit/Rollback, run on the plain
// connection and auto-commit each statement.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

var _ ports.UnitOfWork = (*GormUnitOfWork)(nil)

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return pgerr.Wrap("begin transaction", tx.Error)
	}

	uow.tx = tx
	return nil
}

// Commit finalizes all changes made within the current transaction.
// A serialization failure at commit time is reported as a conflict.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return pgerr.Wrap("commit transaction", err)
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository provides order persistence bound to the current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// StatusHistoryRepository provides the status ledger bound to the current transaction.
func (uow *GormUnitOfWork) StatusHistoryRepository() ports.StatusHistoryRepository {
	return historyrepo.NewGormStatusHistoryRepository(uow.conn())
}

// ConsolidationRepository provides consolidated order persistence bound to the
// current transaction.
func (uow *GormUnitOfWork) ConsolidationRepository() ports.ConsolidationRepository {
	return consolidationrepo.NewGormConsolidationRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
