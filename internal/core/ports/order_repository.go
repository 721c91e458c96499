package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// DateRange bounds a query on creation time. Nil ends are open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Contains reports whether t lies inside the range, both ends inclusive.
func (r DateRange) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

// OrderRepository defines the persistence contract for order aggregates.
// Orders are always loaded with all of their line items.
type OrderRepository interface {
	// Add persists a new order and its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists shipping status, completion time and line item sub-states.
	// Identity, customer, amounts and destination are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier without locking.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate loads the given orders and their line items under a row lock held
	// until the surrounding transaction ends. Rows are locked in identifier order so
	// concurrent callers cannot deadlock on each other. The result follows the same
	// order. A missing order yields errs.ObjectNotFoundError.
	GetForUpdate(ctx context.Context, ids ...kernel.UUID) ([]*order.Order, error)

	// FindOpenByCustomer returns the customer's orders that are not completed and whose
	// payment is still open, optionally bounded by creation time, oldest first.
	FindOpenByCustomer(ctx context.Context, customerID kernel.UUID, created DateRange) ([]*order.Order, error)

	// FindCustomersWithOpenOrders lists every customer having at least one order that
	// FindOpenByCustomer would return.
	FindCustomersWithOpenOrders(ctx context.Context) ([]kernel.UUID, error)
}
