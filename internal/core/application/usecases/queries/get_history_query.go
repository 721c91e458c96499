package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

var ErrGetHistoryQueryIsNotConstructed = errors.New(
	"GetHistoryQuery must be created via NewGetHistoryQuery constructor",
)

// GetHistoryQuery reads an order's status history, most recent first.
//
// Example:
//
//	query, _ := NewGetHistoryQuery(orderID, 20)
//	entries, err := handler.Handle(ctx, query)
//	for _, e := range entries {
//	    fmt.Printf("%s -> %s by %s\n", e.FromLabel, e.ToLabel, e.OperatorName)
//	}
type GetHistoryQuery struct {
	orderID kernel.UUID
	limit   int
	guard   guard.ConstructorGuard
}

// NewGetHistoryQuery creates the query. A zero limit means DefaultHistoryLimit.
func NewGetHistoryQuery(orderID kernel.UUID, limit int) (GetHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetHistoryQuery{}, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	if limit == 0 {
		limit = DefaultHistoryLimit
	}
	if limit < 1 || limit > MaxHistoryLimit {
		return GetHistoryQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxHistoryLimit)
	}
	return GetHistoryQuery{orderID: orderID, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetHistoryQueryIsNotConstructed)
}

// OrderID returns the order whose ledger is read.
func (q GetHistoryQuery) OrderID() kernel.UUID { return q.orderID }

// Limit returns the maximum number of records, already defaulted and bounded.
func (q GetHistoryQuery) Limit() int { return q.limit }
