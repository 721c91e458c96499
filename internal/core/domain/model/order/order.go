package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is one customer purchase and the aggregate root for its line items.
//
// Invariants:
//   - identifier and customer are valid UUIDs
//   - at least one line item, all in the order's currency
//   - total amount equals the sum of line totals
//   - shipping status changes only through ChangeShippingStatus
//   - completed_at is set once, the first time the status becomes completed
type Order struct {
	kernel.EventRecorder

	id             kernel.UUID
	customerID     kernel.UUID
	paymentStatus  PaymentStatus
	shippingStatus Status
	currency       string
	totalAmount    kernel.Money
	destination    kernel.Address
	items          []*LineItem
	createdAt      time.Time
	completedAt    *time.Time

	isConstructed bool
}

// NewOrder creates an order in pending shipping status.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	price, _ := kernel.NewMoney(decimal.NewFromInt(1500), "TWD")
//	item, _ := order.NewLineItem(kernel.NewUUID(), orderID, "sku-1", "seller-9", 3, price)
//	o, err := order.NewOrder(orderID, customerID, order.PaymentConfirmed, destination, time.Now(), item)
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	paymentStatus PaymentStatus,
	destination kernel.Address,
	createdAt time.Time,
	items ...*LineItem,
) (*Order, error) {
	return RestoreOrder(id, customerID, paymentStatus, Pending, destination, createdAt, nil, items)
}

// RestoreOrder rebuilds an order from persisted state, re-checking every invariant.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	paymentStatus PaymentStatus,
	shippingStatus Status,
	destination kernel.Address,
	createdAt time.Time,
	completedAt *time.Time,
	items []*LineItem,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		paymentStatus.Validate(),
		shippingStatus.Validate(),
		destination.Validate(),
	); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("created at")
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("line items")
	}

	currency := items[0].UnitPrice().Currency()
	total, err := kernel.Zero(currency)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}
		if !item.OrderID().IsEqual(id) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"line item "+item.ID().String(),
				fmt.Errorf("belongs to order %s, not %s", item.OrderID(), id),
			)
		}
		if total, err = total.Add(item.LineTotal()); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:             id,
		customerID:     customerID,
		paymentStatus:  paymentStatus,
		shippingStatus: shippingStatus,
		currency:       currency,
		totalAmount:    total,
		destination:    destination,
		items:          items,
		createdAt:      createdAt,
		completedAt:    completedAt,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerID returns the purchasing customer.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// PaymentStatus returns the payment side of the order.
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }

// ShippingStatus returns the order-level fulfillment status.
func (o *Order) ShippingStatus() Status { return o.shippingStatus }

// Currency returns the currency shared by all line items.
func (o *Order) Currency() string { return o.currency }

// TotalAmount returns the sum of all line totals.
func (o *Order) TotalAmount() kernel.Money { return o.totalAmount }

// Destination returns the shipping address snapshot.
func (o *Order) Destination() kernel.Address { return o.destination }

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// CompletedAt returns when the order first became completed, or nil.
func (o *Order) CompletedAt() *time.Time { return o.completedAt }

// Items returns a copy of the line item slice; the items themselves are shared.
func (o *Order) Items() []*LineItem {
	items := make([]*LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Item returns the line item with the given identifier.
func (o *Order) Item(id kernel.UUID) (*LineItem, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(id) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("line item", id.String())
}

// ArrivedUnconsolidatedItems returns the items that can join a consolidation right now.
func (o *Order) ArrivedUnconsolidatedItems() []*LineItem {
	eligible := make([]*LineItem, 0, len(o.items))
	for _, item := range o.items {
		if item.IsEligibleForConsolidation() {
			eligible = append(eligible, item)
		}
	}
	return eligible
}

// IsOpenForConsolidation reports whether the order may contribute items to a consolidation:
// not yet completed and payment still open.
func (o *Order) IsOpenForConsolidation() bool {
	return o.shippingStatus != Completed && o.paymentStatus.IsOpen()
}

// ChangeShippingStatus applies a new shipping status. Abnormal changes succeed and are
// reported through the returned Transition. Setting the current status again is a no-op
// change that is still reported, so callers can audit repeated operator actions.
func (o *Order) ChangeShippingStatus(to Status, at time.Time) (Transition, error) {
	if err := to.Validate(); err != nil {
		return Transition{}, err
	}

	from := o.shippingStatus
	o.shippingStatus = to
	if to == Completed && o.completedAt == nil {
		completedAt := at
		o.completedAt = &completedAt
	}

	o.Record(StatusChanged{
		OrderID:    o.id,
		From:       from,
		To:         to,
		IsAbnormal: IsAbnormal(from, to),
		Timestamp:  at,
	})

	return Transition{Status: to, IsAbnormal: IsAbnormal(from, to)}, nil
}

// RecordItemArrival updates the arrival sub-state of one of the order's items.
func (o *Order) RecordItemArrival(itemID kernel.UUID, state ArrivalState) error {
	item, err := o.Item(itemID)
	if err != nil {
		return err
	}
	return item.RecordArrival(state)
}

// ConsolidateItems retires the given items into a consolidated shipment.
// Every item is checked before any is changed, so a failure leaves the order untouched.
func (o *Order) ConsolidateItems(itemIDs []kernel.UUID, at time.Time) ([]*LineItem, error) {
	items := make([]*LineItem, 0, len(itemIDs))
	for _, id := range itemIDs {
		item, err := o.Item(id)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("line item %s of order %s", id, o.id), err)
		}
		if err = item.CheckConsolidatable(); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	for _, item := range items {
		if err := item.markConsolidated(at); err != nil {
			return nil, err
		}
	}
	return items, nil
}
