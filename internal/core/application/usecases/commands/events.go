package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("fulfillment/commands")

// publishTimeout bounds how long a command waits on the event sink after commit.
var publishTimeout = time.Second

// publishCommitted hands events to the sink once the transaction is committed.
// Failures are logged and never returned: the write has already happened.
// The caller's cancellation does not reach the sink, publishTimeout does.
func publishCommitted(ctx context.Context, publisher ports.EventPublisher, logger *zap.Logger, events []kernel.DomainEvent) {
	if publisher == nil || len(events) == 0 {
		return
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := publisher.Publish(publishCtx, events...); err != nil {
		names := make([]string, 0, len(events))
		for _, e := range events {
			names = append(names, e.EventName())
		}
		logger.Error("failed to publish events", zap.Strings("events", names), zap.Error(err))
	}
}
