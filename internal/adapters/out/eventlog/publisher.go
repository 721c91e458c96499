// Package eventlog is the event sink used when no broker is configured: every event is
// written to the structured log.
package eventlog

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"go.uber.org/zap"
)

// Publisher logs events at INFO level.
type Publisher struct {
	logger *zap.Logger
}

var _ ports.EventPublisher = (*Publisher)(nil)

// NewPublisher creates a log-backed publisher.
func NewPublisher(logger *zap.Logger) *Publisher {
	return &Publisher{logger: logger.With(zap.String("component", "event_log"))}
}

// Publish never fails.
func (p *Publisher) Publish(_ context.Context, events ...kernel.DomainEvent) error {
	for _, e := range events {
		fields := []zap.Field{
			zap.String("event", e.EventName()),
			zap.Time("occurred_at", e.OccurredAt()),
			zap.Any("payload", e),
		}
		if keyed, ok := e.(kernel.AggregateEvent); ok {
			fields = append(fields, zap.String("aggregate_id", keyed.AggregateID().String()))
		}
		p.logger.Info("domain event", fields...)
	}
	return nil
}
