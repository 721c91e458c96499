package queries

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/history"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"go.uber.org/zap"
)

// GetHistoryQueryHandler reads the ledger and resolves operator names through the
// directory. The ledger stores identifiers only.
type GetHistoryQueryHandler struct {
	history   ports.StatusHistoryRepository
	directory ports.Directory
	logger    *zap.Logger
}

// NewGetHistoryQueryHandler creates the handler.
func NewGetHistoryQueryHandler(
	historyRepo ports.StatusHistoryRepository,
	directory ports.Directory,
	logger *zap.Logger,
) GetHistoryQueryHandler {
	return GetHistoryQueryHandler{
		history:   historyRepo,
		directory: directory,
		logger:    logger.With(zap.String("component", "get_history")),
	}
}

// Handle returns the entries most recent first. An unknown order yields an empty list.
// Operators missing from the directory are shown by identifier; a failing directory
// degrades the same way instead of failing the read.
func (h GetHistoryQueryHandler) Handle(ctx context.Context, query GetHistoryQuery) ([]history.Entry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	changes, err := h.history.ListByOrder(ctx, query.OrderID(), query.Limit())
	if err != nil {
		return nil, err
	}

	names := make(map[kernel.UUID]string)
	entries := make([]history.Entry, 0, len(changes))
	for _, change := range changes {
		name := ""
		if operatorID := change.OperatorID(); operatorID != nil {
			name = h.displayName(ctx, *operatorID, names)
		}
		entries = append(entries, history.NewEntry(change, name))
	}
	return entries, nil
}

func (h GetHistoryQueryHandler) displayName(ctx context.Context, operatorID kernel.UUID, cache map[kernel.UUID]string) string {
	if name, ok := cache[operatorID]; ok {
		return name
	}

	name, err := h.directory.GetDisplayName(ctx, operatorID)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.Warn("operator directory unavailable", zap.String("operator_id", operatorID.String()), zap.Error(err))
		}
		name = operatorID.String()
	}
	cache[operatorID] = name
	return name
}
