package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem was not created through NewLineItem or RestoreLineItem.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

	// ErrLineItemNotArrived is the cause attached when a non-arrived item is offered for consolidation.
	ErrLineItemNotArrived = errors.New("line item has not arrived")

	// ErrLineItemAlreadyConsolidated is the cause attached when an item was already consolidated.
	ErrLineItemAlreadyConsolidated = errors.New("line item is already consolidated")
)

// LineItem is one purchased product inside an Order.
//
// Invariants:
//   - quantity is positive and line total = unit price * quantity
//   - consolidation happens at most once and only while arrival is "arrived"
//   - a consolidated item keeps its arrival state frozen
type LineItem struct {
	id             kernel.UUID
	orderID        kernel.UUID
	productRef     string
	sellerRef      string
	quantity       int
	unitPrice      kernel.Money
	lineTotal      kernel.Money
	arrival        ArrivalState
	consolidation  ConsolidationState
	consolidatedAt *time.Time
	guard          guard.ConstructorGuard
}

// NewLineItem creates a pending, unconsolidated line item.
func NewLineItem(
	id kernel.UUID,
	orderID kernel.UUID,
	productRef string,
	sellerRef string,
	quantity int,
	unitPrice kernel.Money,
) (*LineItem, error) {
	return RestoreLineItem(id, orderID, productRef, sellerRef, quantity, unitPrice, ArrivalPending, ConsolidationNone, nil)
}

// RestoreLineItem rebuilds a line item from persisted state, re-checking every invariant.
func RestoreLineItem(
	id kernel.UUID,
	orderID kernel.UUID,
	productRef string,
	sellerRef string,
	quantity int,
	unitPrice kernel.Money,
	arrival ArrivalState,
	consolidation ConsolidationState,
	consolidatedAt *time.Time,
) (*LineItem, error) {
	productRef = strings.TrimSpace(productRef)
	sellerRef = strings.TrimSpace(sellerRef)

	var problems []error
	if err := id.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := orderID.Validate(); err != nil {
		problems = append(problems, err)
	}
	if productRef == "" {
		problems = append(problems, errs.NewValueIsRequiredError("product reference"))
	}
	if sellerRef == "" {
		problems = append(problems, errs.NewValueIsRequiredError("seller reference"))
	}
	if quantity <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if err := unitPrice.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := arrival.Validate(); err != nil {
		problems = append(problems, err)
	}
	if consolidation == ConsolidationConsolidated && consolidatedAt == nil {
		problems = append(problems, errs.NewValueIsRequiredError("consolidation timestamp"))
	}
	if consolidation == ConsolidationConsolidated && arrival != ArrivalArrived {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"arrival state", fmt.Errorf("consolidated item must be arrived, got %s", arrival)))
	}
	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}

	lineTotal, err := unitPrice.Multiply(quantity)
	if err != nil {
		return nil, err
	}

	return &LineItem{
		id:             id,
		orderID:        orderID,
		productRef:     productRef,
		sellerRef:      sellerRef,
		quantity:       quantity,
		unitPrice:      unitPrice,
		lineTotal:      lineTotal,
		arrival:        arrival,
		consolidation:  consolidation,
		consolidatedAt: consolidatedAt,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was constructed through NewLineItem or RestoreLineItem.
func (li *LineItem) Validate() error {
	if li == nil {
		return ErrLineItemIsNotConstructed
	}
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ID returns the line item identifier.
func (li *LineItem) ID() kernel.UUID { return li.id }

// OrderID returns the owning order.
func (li *LineItem) OrderID() kernel.UUID { return li.orderID }

// ProductRef returns the catalog product reference.
func (li *LineItem) ProductRef() string { return li.productRef }

// SellerRef returns the seller stored with the item.
func (li *LineItem) SellerRef() string { return li.sellerRef }

// Quantity returns the purchased quantity.
func (li *LineItem) Quantity() int { return li.quantity }

// UnitPrice returns the price of one unit.
func (li *LineItem) UnitPrice() kernel.Money { return li.unitPrice }

// LineTotal returns unit price times quantity.
func (li *LineItem) LineTotal() kernel.Money { return li.lineTotal }

// Arrival returns the arrival sub-state.
func (li *LineItem) Arrival() ArrivalState { return li.arrival }

// Consolidation returns the consolidation sub-state.
func (li *LineItem) Consolidation() ConsolidationState { return li.consolidation }

// ConsolidatedAt returns when the item was consolidated, or nil.
func (li *LineItem) ConsolidatedAt() *time.Time { return li.consolidatedAt }

// IsConsolidated reports whether the item was retired into a consolidated order.
func (li *LineItem) IsConsolidated() bool { return li.consolidation == ConsolidationConsolidated }

// IsEligibleForConsolidation reports whether CheckConsolidatable passes.
func (li *LineItem) IsEligibleForConsolidation() bool { return li.CheckConsolidatable() == nil }

// CheckConsolidatable returns the reason the item cannot join a consolidation, or nil.
// An already consolidated item yields a ConflictError, anything else a validation error.
func (li *LineItem) CheckConsolidatable() error {
	if li.consolidation == ConsolidationConsolidated {
		return errs.NewConflictErrorWithCause("line item", li.id.String(), ErrLineItemAlreadyConsolidated)
	}
	if li.arrival != ArrivalArrived {
		return errs.NewValueIsInvalidErrorWithCause(
			"line item "+li.id.String(),
			fmt.Errorf("%w: arrival state is %s", ErrLineItemNotArrived, li.arrival),
		)
	}
	return nil
}

// RecordArrival updates the arrival sub-state. Consolidated items are frozen.
func (li *LineItem) RecordArrival(state ArrivalState) error {
	if err := state.Validate(); err != nil {
		return err
	}
	if li.IsConsolidated() {
		return errs.NewValueIsInvalidErrorWithCause("line item "+li.id.String(), ErrLineItemAlreadyConsolidated)
	}
	li.arrival = state
	return nil
}

// markConsolidated retires the item into a consolidated shipment.
func (li *LineItem) markConsolidated(at time.Time) error {
	if err := li.CheckConsolidatable(); err != nil {
		return err
	}
	li.consolidation = ConsolidationConsolidated
	li.consolidatedAt = &at
	return nil
}
