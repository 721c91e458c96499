package services

import (
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/consolidation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// Consolidator applies a merge plan to the contributing orders.
//
// Every referenced item is checked before anything changes. An item that is already
// consolidated yields a conflict, any other problem a validation error; both name the
// order and item. The destination is copied from the first order of the plan.
type Consolidator struct{}

// NewConsolidator creates a Consolidator.
func NewConsolidator() Consolidator {
	return Consolidator{}
}

// Consolidate retires the planned items from orders and builds the consolidated order.
// orders must hold every order named by the plan; extra orders are ignored.
func (c Consolidator) Consolidate(
	plan consolidation.MergePlan,
	orders []*order.Order,
	at time.Time,
) (*consolidation.ConsolidatedOrder, error) {
	if plan.IsEmpty() {
		return nil, errs.NewValueIsRequiredError("merge plan")
	}

	byID := make(map[kernel.UUID]*order.Order, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		byID[o.ID()] = o
	}

	planned := make([]*order.Order, 0, len(plan.Orders()))
	for _, po := range plan.Orders() {
		o, ok := byID[po.OrderID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("order", po.OrderID.String())
		}
		if !o.CustomerID().IsEqual(plan.CustomerID()) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"order "+o.ID().String(),
				fmt.Errorf("belongs to customer %s, not %s", o.CustomerID(), plan.CustomerID()))
		}
		for _, itemID := range po.ItemIDs {
			item, err := o.Item(itemID)
			if err != nil {
				return nil, errs.NewValueIsInvalidErrorWithCause(
					fmt.Sprintf("line item %s of order %s", itemID, o.ID()), err)
			}
			if err = item.CheckConsolidatable(); err != nil {
				return nil, fmt.Errorf("order %s: %w", o.ID(), err)
			}
		}
		planned = append(planned, o)
	}

	snapshots := make([]consolidation.ItemSnapshot, 0, plan.ItemCount())
	for i, po := range plan.Orders() {
		items, err := planned[i].ConsolidateItems(po.ItemIDs, at)
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", po.OrderID, err)
		}
		for _, item := range items {
			snapshots = append(snapshots, consolidation.SnapshotOf(item))
		}
	}

	return consolidation.NewConsolidatedOrder(
		plan.CustomerID(),
		plan.OrderIDs(),
		snapshots,
		planned[0].Destination(),
		at,
	)
}
