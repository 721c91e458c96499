package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// CatalogItem is what the catalog knows about a purchased line item.
type CatalogItem struct {
	ProductRef string
	SellerRef  string
	UnitPrice  kernel.Money
}

// Catalog supplies product, seller and price information.
type Catalog interface {
	// GetLineItem returns errs.ObjectNotFoundError for unknown items.
	GetLineItem(ctx context.Context, lineItemID kernel.UUID) (CatalogItem, error)

	// GetLineItems looks up several items in one round trip. Unknown items are
	// absent from the result rather than reported as errors.
	GetLineItems(ctx context.Context, lineItemIDs []kernel.UUID) (map[kernel.UUID]CatalogItem, error)
}

// Directory resolves operator identifiers for display.
type Directory interface {
	// GetDisplayName returns errs.ObjectNotFoundError for unknown operators.
	GetDisplayName(ctx context.Context, operatorID kernel.UUID) (string, error)
}

// EventPublisher delivers domain events to the event sink.
// Callers publish after commit and treat failures as non-fatal.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
}
