package history_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/history"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatusChange(t *testing.T) {
	orderID := kernel.NewUUID()
	at := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

	t.Run("forward change is normal and raises nothing", func(t *testing.T) {
		change, err := history.NewStatusChange(orderID, order.Pending, order.Preparing, "picked", nil, at)

		require.NoError(t, err)
		require.NoError(t, change.Validate())
		assert.False(t, change.IsAbnormal())
		assert.True(t, change.IsSystem())
		assert.Empty(t, change.PullEvents())
	})

	t.Run("shipped back to preparing is abnormal and raises an alert", func(t *testing.T) {
		operator := kernel.NewUUID()

		change, err := history.NewStatusChange(orderID, order.Shipped, order.Preparing, "  returned by carrier ", &operator, at)

		require.NoError(t, err)
		assert.True(t, change.IsAbnormal())
		assert.Equal(t, "returned by carrier", change.Reason())

		events := change.PullEvents()
		require.Len(t, events, 1)
		alert, ok := events[0].(history.AbnormalTransitionDetected)
		require.True(t, ok)
		assert.Equal(t, "order.status_abnormal_transition", alert.EventName())
		assert.Equal(t, change.ID(), alert.RecordID)
		assert.Equal(t, &operator, alert.OperatorID)
		assert.Equal(t, at, alert.OccurredAt())
	})

	t.Run("rejects statuses outside the vocabulary", func(t *testing.T) {
		_, err := history.NewStatusChange(orderID, order.Pending, order.Status("lost"), "", nil, at)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requires a timestamp", func(t *testing.T) {
		_, err := history.NewStatusChange(orderID, order.Pending, order.Shipped, "", nil, time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreStatusChange_KeepsStoredFlag(t *testing.T) {
	change, err := history.RestoreStatusChange(kernel.NewUUID(), kernel.NewUUID(),
		order.Pending, order.Preparing, "", nil, true, time.Now())

	require.NoError(t, err)
	assert.True(t, change.IsAbnormal())
	assert.Empty(t, change.PullEvents())
}

func TestNewEntry(t *testing.T) {
	operator := kernel.NewUUID()
	change, _ := history.NewStatusChange(kernel.NewUUID(), order.OutOfStock, order.Processing, "", &operator, time.Now())

	t.Run("labels statuses and keeps operator name", func(t *testing.T) {
		entry := history.NewEntry(change, "Chen Yu")

		assert.Equal(t, "Out of stock", entry.FromLabel)
		assert.Equal(t, "Processing", entry.ToLabel)
		assert.Equal(t, "Chen Yu", entry.OperatorName)
	})

	t.Run("unknown operator falls back to system", func(t *testing.T) {
		entry := history.NewEntry(change, "")

		assert.Equal(t, history.SystemOperator, entry.OperatorName)
	})

	t.Run("system change ignores the provided name", func(t *testing.T) {
		systemChange, _ := history.NewStatusChange(kernel.NewUUID(), order.Pending, order.Shipped, "", nil, time.Now())

		entry := history.NewEntry(systemChange, "someone")

		assert.Equal(t, history.SystemOperator, entry.OperatorName)
	})
}
