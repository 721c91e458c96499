package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/history"
	"fulfillment/internal/core/domain/model/kernel"
)

// StatusHistoryRepository is the append-only store of status changes.
// There is no update or delete.
type StatusHistoryRepository interface {
	// Add writes one ledger row.
	Add(ctx context.Context, change *history.StatusChange) error

	// ListByOrder returns up to limit rows for the order, most recent first.
	// A non-positive limit returns every row.
	ListByOrder(ctx context.Context, orderID kernel.UUID, limit int) ([]*history.StatusChange, error)
}
