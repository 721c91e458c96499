package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

var consolidationPlanRequired = errs.NewValueIsRequiredError("merge plan")

// ExecuteConsolidationCommandHandler merges line items of several orders of one
// customer into a consolidated order.
//
// Everything happens in one transaction:
//  1. the plan's orders are loaded with their items under row locks, in id order
//  2. every item is re-checked under the lock; a consolidated item is a conflict
//  3. the consolidated order is created with the item snapshot and the first
//     order's destination
//  4. every contributing item is marked consolidated
//
// Any failure, including cancellation before commit, rolls everything back.
// consolidation.completed is published after commit.
//
// Executing the same plan twice fails the second time with a conflict, which is what
// prevents double consolidation.
type ExecuteConsolidationCommandHandler struct {
	uowFactory   ConsolidationUoWFactory
	consolidator services.Consolidator
	publisher    ports.EventPublisher
	logger       *zap.Logger
}

// NewExecuteConsolidationCommandHandler creates the executor.
func NewExecuteConsolidationCommandHandler(
	uowFactory ConsolidationUoWFactory,
	consolidator services.Consolidator,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) ExecuteConsolidationCommandHandler {
	return ExecuteConsolidationCommandHandler{
		uowFactory:   uowFactory,
		consolidator: consolidator,
		publisher:    publisher,
		logger:       logger.With(zap.String("component", "consolidation_executor")),
	}
}

// Handle executes the plan and returns the new consolidated order's identifier.
func (h ExecuteConsolidationCommandHandler) Handle(ctx context.Context, cmd ExecuteConsolidationCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	plan := cmd.Plan()

	ctx, span := tracer.Start(ctx, "ExecuteConsolidation")
	defer span.End()
	span.SetAttributes(
		attribute.String("customer.id", plan.CustomerID().String()),
		attribute.Int("plan.orders", len(plan.OrderIDs())),
		attribute.Int("plan.items", plan.ItemCount()),
	)

	id, err := h.execute(ctx, cmd)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(errs.KindOf(err)))
		h.logger.Info("consolidation rejected",
			zap.String("customer_id", plan.CustomerID().String()),
			zap.String("kind", string(errs.KindOf(err))),
			zap.Error(err),
		)
		return kernel.UUID{}, err
	}
	return id, nil
}

func (h ExecuteConsolidationCommandHandler) execute(ctx context.Context, cmd ExecuteConsolidationCommand) (kernel.UUID, error) {
	plan := cmd.Plan()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	consolidationRepo := uow.ConsolidationRepository()

	orders, err := orderRepo.GetForUpdate(ctx, plan.OrderIDs()...)
	if err != nil {
		return kernel.UUID{}, err
	}

	consolidated, err := h.consolidator.Consolidate(plan, orders, time.Now().UTC())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = consolidationRepo.Add(ctx, consolidated); err != nil {
		return kernel.UUID{}, err
	}

	for _, o := range orders {
		if err = orderRepo.Update(ctx, o); err != nil {
			return kernel.UUID{}, err
		}
	}

	if err = ctx.Err(); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	h.logger.Info("orders consolidated",
		zap.String("consolidated_order_id", consolidated.ID().String()),
		zap.String("customer_id", plan.CustomerID().String()),
		zap.Int("items", len(consolidated.Items())),
	)

	publishCommitted(ctx, h.publisher, h.logger, consolidated.PullEvents())

	return consolidated.ID(), nil
}
