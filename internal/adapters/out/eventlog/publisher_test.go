package eventlog_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/eventlog"
	"fulfillment/internal/core/domain/model/consolidation"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestPublisher_LogsEveryEvent(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	publisher := eventlog.NewPublisher(zap.New(core))
	customerID := kernel.NewUUID()

	err := publisher.Publish(context.Background(),
		consolidation.OpportunityDetected{CustomerID: customerID, OrderCount: 3, Timestamp: time.Now()},
		consolidation.ConsolidationCompleted{ConsolidatedOrderID: kernel.NewUUID(), Timestamp: time.Now()},
	)
	require.NoError(t, err)

	entries := logs.FilterMessage("domain event").All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, "consolidation.opportunity_detected", first["event"])
	assert.Equal(t, customerID.String(), first["aggregate_id"])
	assert.Equal(t, "event_log", first["component"])
}
