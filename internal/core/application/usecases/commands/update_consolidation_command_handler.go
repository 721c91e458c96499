package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/consolidation"
	"fulfillment/internal/core/domain/model/kernel"
)

// UpdateConsolidationCommandHandler changes the mutable fields of a consolidated
// order: its status and its destination. Each change locks the row.
type UpdateConsolidationCommandHandler struct {
	uowFactory ConsolidationUoWFactory
}

// NewUpdateConsolidationCommandHandler creates a handler for consolidated order updates.
func NewUpdateConsolidationCommandHandler(uowFactory ConsolidationUoWFactory) UpdateConsolidationCommandHandler {
	return UpdateConsolidationCommandHandler{uowFactory: uowFactory}
}

// HandleStatus applies UpdateConsolidationStatusCommand.
func (h UpdateConsolidationCommandHandler) HandleStatus(ctx context.Context, cmd UpdateConsolidationStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.update(ctx, cmd.ConsolidatedOrderID(), func(co *consolidation.ConsolidatedOrder, at time.Time) error {
		return co.ChangeStatus(cmd.Status(), at)
	})
}

// HandleDestination applies UpdateConsolidatedDestinationCommand.
func (h UpdateConsolidationCommandHandler) HandleDestination(ctx context.Context, cmd UpdateConsolidatedDestinationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.update(ctx, cmd.ConsolidatedOrderID(), func(co *consolidation.ConsolidatedOrder, at time.Time) error {
		return co.ChangeDestination(cmd.Destination(), at)
	})
}

func (h UpdateConsolidationCommandHandler) update(
	ctx context.Context,
	id kernel.UUID,
	change func(*consolidation.ConsolidatedOrder, time.Time) error,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ConsolidationRepository()
	co, err := repo.GetForUpdate(ctx, id)
	if err != nil {
		return err
	}

	if err = change(co, time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, co); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
