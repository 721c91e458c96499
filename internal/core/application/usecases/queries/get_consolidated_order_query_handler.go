package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/consolidation"
	"fulfillment/internal/core/ports"
)

// GetConsolidatedOrderQueryHandler reads consolidated orders.
type GetConsolidatedOrderQueryHandler struct {
	consolidations ports.ConsolidationRepository
}

// NewGetConsolidatedOrderQueryHandler creates the handler.
func NewGetConsolidatedOrderQueryHandler(consolidations ports.ConsolidationRepository) GetConsolidatedOrderQueryHandler {
	return GetConsolidatedOrderQueryHandler{consolidations: consolidations}
}

// Handle returns errs.ObjectNotFoundError for unknown identifiers.
func (h GetConsolidatedOrderQueryHandler) Handle(
	ctx context.Context,
	query GetConsolidatedOrderQuery,
) (*consolidation.ConsolidatedOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.consolidations.Get(ctx, query.ID())
}
