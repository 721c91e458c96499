package commands

import (
	"context"
)

// RecordItemArrivalCommandHandler is the only writer of the arrival sub-state.
// The order row is locked so a concurrent consolidation sees either the old or the
// new state, never a mix.
type RecordItemArrivalCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecordItemArrivalCommandHandler creates a handler for arrival updates.
func NewRecordItemArrivalCommandHandler(uowFactory OrderUoWFactory) RecordItemArrivalCommandHandler {
	return RecordItemArrivalCommandHandler{uowFactory: uowFactory}
}

// Handle applies the arrival state. Consolidated items are rejected.
func (h RecordItemArrivalCommandHandler) Handle(ctx context.Context, cmd RecordItemArrivalCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	aggregate := orders[0]

	if err = aggregate.RecordItemArrival(cmd.LineItemID(), cmd.State()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
