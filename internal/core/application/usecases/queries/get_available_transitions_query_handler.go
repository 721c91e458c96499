package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// GetAvailableTransitionsQueryHandler reads an order's status and annotates every
// other status with the abnormality rule.
type GetAvailableTransitionsQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetAvailableTransitionsQueryHandler creates the handler over a non-transactional repository.
func NewGetAvailableTransitionsQueryHandler(orders ports.OrderRepository) GetAvailableTransitionsQueryHandler {
	return GetAvailableTransitionsQueryHandler{orders: orders}
}

// Handle returns errs.ObjectNotFoundError for unknown orders.
func (h GetAvailableTransitionsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableTransitionsQuery,
) (GetAvailableTransitionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAvailableTransitionsQueryResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return GetAvailableTransitionsQueryResponse{}, err
	}

	current := o.ShippingStatus()
	transitions := order.AvailableTransitions(current)
	views := make([]TransitionView, 0, len(transitions))
	for _, t := range transitions {
		views = append(views, TransitionView{
			Status:     t.Status,
			Label:      t.Status.Label(),
			IsAbnormal: t.IsAbnormal,
		})
	}

	return GetAvailableTransitionsQueryResponse{
		OrderID:      o.ID(),
		Current:      current,
		CurrentLabel: current.Label(),
		Transitions:  views,
	}, nil
}
