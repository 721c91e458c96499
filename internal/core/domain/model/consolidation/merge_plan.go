package consolidation

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// PlanOrder names one contributing order and the line items it gives up.
type PlanOrder struct {
	OrderID kernel.UUID
	ItemIDs []kernel.UUID
}

// MergePlan is the validated input of a consolidation. It is accepted as given;
// eligibility of the items is checked later, under lock.
type MergePlan struct {
	customerID kernel.UUID
	orders     []PlanOrder
}

// NewMergePlan checks the plan's shape. Errors name the offending order or item.
func NewMergePlan(customerID kernel.UUID, orders []PlanOrder) (MergePlan, error) {
	if err := customerID.Validate(); err != nil {
		return MergePlan{}, errs.NewValueIsInvalidErrorWithCause("customer id", err)
	}
	if len(orders) < 2 {
		return MergePlan{}, errs.NewValueIsInvalidErrorWithCause(
			"merge plan", fmt.Errorf("needs at least 2 orders, got %d", len(orders)))
	}

	seenOrders := make(map[kernel.UUID]struct{}, len(orders))
	seenItems := make(map[kernel.UUID]kernel.UUID)
	copied := make([]PlanOrder, 0, len(orders))

	for _, po := range orders {
		if err := po.OrderID.Validate(); err != nil {
			return MergePlan{}, errs.NewValueIsInvalidErrorWithCause("merge plan order id", err)
		}
		if _, dup := seenOrders[po.OrderID]; dup {
			return MergePlan{}, errs.NewValueIsInvalidErrorWithCause(
				"order "+po.OrderID.String(), errors.New("listed more than once"))
		}
		seenOrders[po.OrderID] = struct{}{}

		if len(po.ItemIDs) == 0 {
			return MergePlan{}, errs.NewValueIsInvalidErrorWithCause(
				"order "+po.OrderID.String(), errors.New("lists no line items"))
		}
		for _, itemID := range po.ItemIDs {
			if err := itemID.Validate(); err != nil {
				return MergePlan{}, errs.NewValueIsInvalidErrorWithCause(
					"line item of order "+po.OrderID.String(), err)
			}
			if other, dup := seenItems[itemID]; dup {
				return MergePlan{}, errs.NewValueIsInvalidErrorWithCause(
					fmt.Sprintf("line item %s of order %s", itemID, po.OrderID),
					fmt.Errorf("already listed under order %s", other))
			}
			seenItems[itemID] = po.OrderID
		}

		copied = append(copied, PlanOrder{
			OrderID: po.OrderID,
			ItemIDs: append([]kernel.UUID(nil), po.ItemIDs...),
		})
	}

	return MergePlan{customerID: customerID, orders: copied}, nil
}

// CustomerID returns the customer the plan was built for.
func (p MergePlan) CustomerID() kernel.UUID { return p.customerID }

// Orders returns the plan's orders in the order they were given.
func (p MergePlan) Orders() []PlanOrder {
	out := make([]PlanOrder, len(p.orders))
	copy(out, p.orders)
	return out
}

// OrderIDs returns the contributing order identifiers in plan order.
func (p MergePlan) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(p.orders))
	for _, po := range p.orders {
		ids = append(ids, po.OrderID)
	}
	return ids
}

// ItemCount returns the number of line items across all orders.
func (p MergePlan) ItemCount() int {
	n := 0
	for _, po := range p.orders {
		n += len(po.ItemIDs)
	}
	return n
}

// IsEmpty reports whether the plan is the zero value.
func (p MergePlan) IsEmpty() bool { return len(p.orders) == 0 }
