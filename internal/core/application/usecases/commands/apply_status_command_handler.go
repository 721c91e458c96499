package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/history"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"go.uber.org/zap"
)

// ApplyStatusCommandHandler changes an order's shipping status and appends the change
// to the status history in the same transaction.
//
// Abnormal changes are not errors: they are stored with is_abnormal set, logged at
// WARN and announced with an order.status_abnormal_transition event after commit.
type ApplyStatusCommandHandler struct {
	uowFactory StatusUoWFactory
	publisher  ports.EventPublisher
	logger     *zap.Logger
}

// NewApplyStatusCommandHandler creates a handler for single-order status changes.
func NewApplyStatusCommandHandler(
	uowFactory StatusUoWFactory,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) ApplyStatusCommandHandler {
	return ApplyStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With(zap.String("component", "apply_status")),
	}
}

// Handle applies the status. Failing to lock, update or record rolls back both writes.
func (h ApplyStatusCommandHandler) Handle(ctx context.Context, cmd ApplyStatusCommand) (ApplyStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return ApplyStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ApplyStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	historyRepo := uow.StatusHistoryRepository()

	orders, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return ApplyStatusResult{}, err
	}
	aggregate := orders[0]

	now := time.Now().UTC()
	from := aggregate.ShippingStatus()
	if _, err = aggregate.ChangeShippingStatus(cmd.Status(), now); err != nil {
		return ApplyStatusResult{}, err
	}

	change, err := history.NewStatusChange(aggregate.ID(), from, cmd.Status(), cmd.Reason(), cmd.OperatorID(), now)
	if err != nil {
		return ApplyStatusResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return ApplyStatusResult{}, err
	}

	if err = historyRepo.Add(ctx, change); err != nil {
		return ApplyStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ApplyStatusResult{}, err
	}

	result := ApplyStatusResult{
		RecordID:   change.ID(),
		OrderID:    aggregate.ID(),
		From:       from,
		To:         cmd.Status(),
		IsAbnormal: change.IsAbnormal(),
	}

	if result.IsAbnormal {
		h.logger.Warn("abnormal status transition",
			zap.Stringer("order_id", result.OrderID),
			zap.Stringer("from", result.From),
			zap.Stringer("to", result.To),
			zap.String("reason", cmd.Reason()),
			zap.String("operator", operatorName(cmd.OperatorID())),
		)
	}

	events := append(aggregate.PullEvents(), change.PullEvents()...)
	publishCommitted(ctx, h.publisher, h.logger, events)

	return result, nil
}

func operatorName(id *kernel.UUID) string {
	if id == nil {
		return history.SystemOperator
	}
	return id.String()
}
