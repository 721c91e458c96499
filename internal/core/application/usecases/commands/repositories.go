// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and event publishing after commit.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// HistoryRepoFactory provides access to the status history ledger within a transaction.
	HistoryRepoFactory interface {
		StatusHistoryRepository() ports.StatusHistoryRepository
	}

	// ConsolidationRepoFactory provides access to consolidated orders within a transaction.
	ConsolidationRepoFactory interface {
		ConsolidationRepository() ports.ConsolidationRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// StatusUoW manages transactions that change an order's status and append to
	// the ledger. Both writes commit or neither does.
	StatusUoW interface {
		TxManager
		OrderRepoFactory
		HistoryRepoFactory
	}

	// StatusUoWFactory creates new status unit of work instances.
	StatusUoWFactory interface {
		Create() StatusUoW
	}

	// ConsolidationUoW manages transactions across orders and consolidated orders.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orders, err := uow.OrderRepository().GetForUpdate(ctx, plan.OrderIDs()...)
	//   // ... consolidate
	//   err = uow.ConsolidationRepository().Add(ctx, consolidated)
	//
	//   err = uow.Commit(ctx)
	ConsolidationUoW interface {
		TxManager
		OrderRepoFactory
		ConsolidationRepoFactory
	}

	// ConsolidationUoWFactory creates new consolidation unit of work instances.
	ConsolidationUoWFactory interface {
		Create() ConsolidationUoW
	}
)
