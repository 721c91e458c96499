package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/consolidation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// ScanOpportunitiesQueryHandler ranks a customer's open orders for consolidation.
// It is read-only: calling it repeatedly with no writes in between returns the same
// result, apart from the age component of the score moving with the clock.
type ScanOpportunitiesQueryHandler struct {
	orders  ports.OrderRepository
	catalog ports.Catalog
	scorer  services.OpportunityScorer
	now     func() time.Time
}

// NewScanOpportunitiesQueryHandler creates the handler. The scorer carries the flat
// shipping cost used for savings estimates.
func NewScanOpportunitiesQueryHandler(
	orders ports.OrderRepository,
	catalog ports.Catalog,
	scorer services.OpportunityScorer,
) ScanOpportunitiesQueryHandler {
	return ScanOpportunitiesQueryHandler{
		orders:  orders,
		catalog: catalog,
		scorer:  scorer,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// WithClock returns a copy that scores against the given clock.
func (h ScanOpportunitiesQueryHandler) WithClock(now func() time.Time) ScanOpportunitiesQueryHandler {
	h.now = now
	return h
}

// Handle loads open orders, attributes arrived items to sellers through the catalog
// and scores them. Items unknown to the catalog keep the seller stored on the order.
func (h ScanOpportunitiesQueryHandler) Handle(ctx context.Context, query ScanOpportunitiesQuery) (consolidation.ScanResult, error) {
	if err := query.Validate(); err != nil {
		return consolidation.ScanResult{}, err
	}

	orders, err := h.orders.FindOpenByCustomer(ctx, query.CustomerID(), query.Created())
	if err != nil {
		return consolidation.ScanResult{}, err
	}

	sellers, err := h.resolveSellers(ctx, orders)
	if err != nil {
		return consolidation.ScanResult{}, err
	}

	return h.scorer.Scan(query.CustomerID(), orders, func(item *order.LineItem) string {
		return sellers[item.ID()]
	}, h.now())
}

func (h ScanOpportunitiesQueryHandler) resolveSellers(ctx context.Context, orders []*order.Order) (map[kernel.UUID]string, error) {
	sellers := make(map[kernel.UUID]string)
	if h.catalog == nil {
		return sellers, nil
	}

	var ids []kernel.UUID
	for _, o := range orders {
		for _, item := range o.ArrivedUnconsolidatedItems() {
			ids = append(ids, item.ID())
		}
	}
	if len(ids) == 0 {
		return sellers, nil
	}

	known, err := h.catalog.GetLineItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for id, info := range known {
		sellers[id] = info.SellerRef
	}
	return sellers, nil
}
