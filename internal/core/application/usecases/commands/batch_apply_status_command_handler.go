package commands

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// BatchApplyStatusCommandHandler applies a status to many orders, each in its own
// transaction. One order failing does not stop the others. This is deliberately not
// atomic: bulk operator actions favor partial progress.
type BatchApplyStatusCommandHandler struct {
	apply  ApplyStatusCommandHandler
	logger *zap.Logger
}

// NewBatchApplyStatusCommandHandler wraps the single-order handler.
func NewBatchApplyStatusCommandHandler(apply ApplyStatusCommandHandler, logger *zap.Logger) BatchApplyStatusCommandHandler {
	return BatchApplyStatusCommandHandler{
		apply:  apply,
		logger: logger.With(zap.String("component", "batch_apply_status")),
	}
}

// Handle processes orders in the given sequence. Cancellation is honored between
// orders: applied orders stay applied, the rest are not attempted and the context
// error is returned with the partial result.
func (h BatchApplyStatusCommandHandler) Handle(ctx context.Context, cmd BatchApplyStatusCommand) (BatchApplyStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return BatchApplyStatusResult{}, err
	}

	ctx, span := tracer.Start(ctx, "BatchApplyStatus")
	defer span.End()

	result := BatchApplyStatusResult{Errors: []string{}}

	for _, orderID := range cmd.OrderIDs() {
		if err := ctx.Err(); err != nil {
			h.logger.Info("batch interrupted", zap.Int("applied", result.Success), zap.Error(err))
			return result, err
		}

		single, err := NewApplyStatusCommand(orderID, cmd.Status(), cmd.Reason(), cmd.OperatorID())
		if err == nil {
			_, err = h.apply.Handle(ctx, single)
		}
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, batchErrorMessage(orderID.String(), err))
			h.logger.Warn("status not applied", zap.String("order_id", orderID.String()), zap.Error(err))
			continue
		}
		result.Success++
	}

	span.SetAttributes(
		attribute.Int("batch.success", result.Success),
		attribute.Int("batch.failed", result.Failed),
	)
	return result, nil
}

func batchErrorMessage(orderID string, err error) string {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Sprintf("order %s not found", orderID)
	}
	return fmt.Sprintf("order %s: %v", orderID, err)
}
