package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRecordItemArrivalCommandIsNotConstructed = errors.New(
	"RecordItemArrivalCommand must be created via NewRecordItemArrivalCommand constructor",
)

// RecordItemArrivalCommand sets a line item's arrival sub-state, as reported by the
// staging point.
type RecordItemArrivalCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	lineItemID kernel.UUID
	state      order.ArrivalState

	guard guard.ConstructorGuard
}

// NewRecordItemArrivalCommand validates identifiers and the arrival state.
func NewRecordItemArrivalCommand(orderID, lineItemID kernel.UUID, state order.ArrivalState) (RecordItemArrivalCommand, error) {
	if err := errors.Join(orderID.Validate(), lineItemID.Validate(), state.Validate()); err != nil {
		return RecordItemArrivalCommand{}, errs.NewValueIsInvalidErrorWithCause("item arrival", err)
	}

	return RecordItemArrivalCommand{
		orderID:    orderID,
		lineItemID: lineItemID,
		state:      state,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordItemArrivalCommand) Validate() error {
	return c.guard.Validate(ErrRecordItemArrivalCommandIsNotConstructed)
}

// OrderID returns the order owning the line item.
func (c RecordItemArrivalCommand) OrderID() kernel.UUID { return c.orderID }

// LineItemID returns the line item being updated.
func (c RecordItemArrivalCommand) LineItemID() kernel.UUID { return c.lineItemID }

// State returns the arrival sub-state to record.
func (c RecordItemArrivalCommand) State() order.ArrivalState { return c.state }
