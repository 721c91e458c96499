package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetAvailableTransitionsQueryIsNotConstructed = errors.New(
	"GetAvailableTransitionsQuery must be created via NewGetAvailableTransitionsQuery constructor",
)

// GetAvailableTransitionsQuery lists the statuses an order can be moved to, each
// flagged when choosing it would be abnormal.
type GetAvailableTransitionsQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

// NewGetAvailableTransitionsQuery creates the query for one order.
func NewGetAvailableTransitionsQuery(orderID kernel.UUID) (GetAvailableTransitionsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetAvailableTransitionsQuery{}, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	return GetAvailableTransitionsQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableTransitionsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableTransitionsQueryIsNotConstructed)
}

// OrderID returns the order to inspect.
func (q GetAvailableTransitionsQuery) OrderID() kernel.UUID { return q.orderID }

// TransitionView is one candidate status with its display label.
type TransitionView struct {
	Status     order.Status
	Label      string
	IsAbnormal bool
}

// GetAvailableTransitionsQueryResponse holds the current status and every alternative.
type GetAvailableTransitionsQueryResponse struct {
	OrderID      kernel.UUID
	Current      order.Status
	CurrentLabel string
	Transitions  []TransitionView
}
