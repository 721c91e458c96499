package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/consolidation"
	"fulfillment/internal/core/domain/model/kernel"
)

// ConsolidationRepository defines the persistence contract for consolidated orders.
type ConsolidationRepository interface {
	// Add persists a new consolidated order with its item snapshot.
	Add(ctx context.Context, aggregate *consolidation.ConsolidatedOrder) error

	// Update persists status and destination, the only mutable fields.
	Update(ctx context.Context, aggregate *consolidation.ConsolidatedOrder) error

	// Get retrieves a consolidated order. Returns errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*consolidation.ConsolidatedOrder, error)

	// GetForUpdate is Get under a row lock held until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*consolidation.ConsolidatedOrder, error)
}
