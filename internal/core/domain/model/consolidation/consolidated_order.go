package consolidation

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrConsolidatedOrderIsNotConstructed is returned when a ConsolidatedOrder was not
// created through NewConsolidatedOrder or RestoreConsolidatedOrder.
var ErrConsolidatedOrderIsNotConstructed = errors.New("ConsolidatedOrder must be created via NewConsolidatedOrder constructor")

// ConsolidatedOrder is a synthetic shipment subsuming several orders of one customer.
//
// Invariants:
//   - at least two original orders and at least one item snapshot
//   - every snapshot belongs to one of the original orders
//   - total equals the sum of snapshot line totals
//   - only status and destination change after creation
type ConsolidatedOrder struct {
	kernel.EventRecorder

	id               kernel.UUID
	customerID       kernel.UUID
	originalOrderIDs []kernel.UUID
	items            []ItemSnapshot
	total            kernel.Money
	destination      kernel.Address
	status           Status
	createdAt        time.Time
	updatedAt        time.Time

	isConstructed bool
}

// NewConsolidatedOrder creates a consolidated order in completed status and raises
// ConsolidationCompleted.
func NewConsolidatedOrder(
	customerID kernel.UUID,
	originalOrderIDs []kernel.UUID,
	items []ItemSnapshot,
	destination kernel.Address,
	at time.Time,
) (*ConsolidatedOrder, error) {
	co, err := RestoreConsolidatedOrder(
		kernel.NewUUID(), customerID, originalOrderIDs, items, destination, StatusCompleted, at, at)
	if err != nil {
		return nil, err
	}

	co.Record(ConsolidationCompleted{
		ConsolidatedOrderID: co.id,
		CustomerID:          customerID,
		OriginalOrderIDs:    co.OriginalOrderIDs(),
		ItemCount:           len(co.items),
		Total:               co.total.Amount().String(),
		Currency:            co.total.Currency(),
		Timestamp:           at,
	})
	return co, nil
}

// RestoreConsolidatedOrder rebuilds a consolidated order from storage.
func RestoreConsolidatedOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	originalOrderIDs []kernel.UUID,
	items []ItemSnapshot,
	destination kernel.Address,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*ConsolidatedOrder, error) {
	if err := errors.Join(id.Validate(), customerID.Validate(), destination.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if len(originalOrderIDs) < 2 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"original order ids", fmt.Errorf("needs at least 2 orders, got %d", len(originalOrderIDs)))
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("consolidated items")
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("created at")
	}

	originals := make(map[kernel.UUID]struct{}, len(originalOrderIDs))
	for _, oid := range originalOrderIDs {
		originals[oid] = struct{}{}
	}

	total, err := kernel.Zero(items[0].LineTotal.Currency())
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if _, ok := originals[item.OrderID]; !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("line item %s of order %s", item.LineItemID, item.OrderID),
				errors.New("order is not part of the consolidation"))
		}
		if total, err = total.Add(item.LineTotal); err != nil {
			return nil, err
		}
	}

	return &ConsolidatedOrder{
		id:               id,
		customerID:       customerID,
		originalOrderIDs: append([]kernel.UUID(nil), originalOrderIDs...),
		items:            append([]ItemSnapshot(nil), items...),
		total:            total,
		destination:      destination,
		status:           status,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		isConstructed:    true,
	}, nil
}

// Validate ensures the ConsolidatedOrder instance was properly constructed.
func (co *ConsolidatedOrder) Validate() error {
	if co == nil || !co.isConstructed {
		return ErrConsolidatedOrderIsNotConstructed
	}
	return nil
}

// ID returns the consolidated order identifier.
func (co *ConsolidatedOrder) ID() kernel.UUID { return co.id }

// CustomerID returns the customer owning every subsumed order.
func (co *ConsolidatedOrder) CustomerID() kernel.UUID { return co.customerID }

// Total returns the sum of the snapshot line totals.
func (co *ConsolidatedOrder) Total() kernel.Money { return co.total }

// Destination returns the current shipping destination.
func (co *ConsolidatedOrder) Destination() kernel.Address { return co.destination }

// Status returns the consolidation lifecycle status.
func (co *ConsolidatedOrder) Status() Status { return co.status }

// CreatedAt returns when the consolidation was executed.
func (co *ConsolidatedOrder) CreatedAt() time.Time { return co.createdAt }

// UpdatedAt returns the time of the last status or destination change.
func (co *ConsolidatedOrder) UpdatedAt() time.Time { return co.updatedAt }

// OriginalOrderIDs returns the subsumed orders in plan order.
func (co *ConsolidatedOrder) OriginalOrderIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), co.originalOrderIDs...)
}

// Items returns the item snapshots.
func (co *ConsolidatedOrder) Items() []ItemSnapshot {
	return append([]ItemSnapshot(nil), co.items...)
}

// ChangeStatus moves the consolidated order along its lifecycle.
func (co *ConsolidatedOrder) ChangeStatus(next Status, at time.Time) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if !co.status.CanChangeTo(next) {
		return errs.NewValueIsInvalidErrorWithCause(
			"consolidation status",
			fmt.Errorf("cannot change from %s to %s", co.status, next))
	}
	co.status = next
	co.updatedAt = at
	return nil
}

// ChangeDestination replaces the shipping destination. Cancelled consolidations are frozen.
func (co *ConsolidatedOrder) ChangeDestination(destination kernel.Address, at time.Time) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	if co.status == StatusCancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"consolidated order "+co.id.String(), errors.New("cancelled consolidation cannot change destination"))
	}
	co.destination = destination
	co.updatedAt = at
	return nil
}
