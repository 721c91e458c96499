package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("should start pending with summed total", func(t *testing.T) {
		o := newOrder(t, 1000, 2500)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.ShippingStatus())
		assert.Equal(t, "TWD", o.Currency())
		assert.True(t, o.TotalAmount().Amount().Equal(decimal.NewFromInt(3500)))
		assert.Nil(t, o.CompletedAt())
		assert.Len(t, o.Items(), 2)
	})

	t.Run("should require line items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.PaymentPending,
			destination(t), time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject items of another order", func(t *testing.T) {
		item, _ := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), "sku", "s", 1, twd(t, 1))

		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.PaymentPending,
			destination(t), time.Now(), item)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "belongs to order")
	})

	t.Run("should reject mixed currencies", func(t *testing.T) {
		orderID := kernel.NewUUID()
		usd, _ := kernel.NewMoney(decimal.NewFromInt(1), "USD")
		a, _ := order.NewLineItem(kernel.NewUUID(), orderID, "sku", "s", 1, twd(t, 1))
		b, _ := order.NewLineItem(kernel.NewUUID(), orderID, "sku", "s", 1, usd)

		_, err := order.NewOrder(orderID, kernel.NewUUID(), order.PaymentPending, destination(t), time.Now(), a, b)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_ChangeShippingStatus(t *testing.T) {
	at := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	t.Run("forward move is normal and raises StatusChanged", func(t *testing.T) {
		o := newOrder(t, 100)

		tr, err := o.ChangeShippingStatus(order.Preparing, at)

		require.NoError(t, err)
		assert.False(t, tr.IsAbnormal)
		assert.Equal(t, order.Preparing, o.ShippingStatus())
		events := o.PullEvents()
		require.Len(t, events, 1)
		changed, ok := events[0].(order.StatusChanged)
		require.True(t, ok)
		assert.Equal(t, order.Pending, changed.From)
		assert.Equal(t, order.Preparing, changed.To)
		assert.Empty(t, o.PullEvents())
	})

	t.Run("shipped back to preparing succeeds but is abnormal", func(t *testing.T) {
		o := newOrder(t, 100)
		_, _ = o.ChangeShippingStatus(order.Shipped, at)

		tr, err := o.ChangeShippingStatus(order.Preparing, at)

		require.NoError(t, err)
		assert.True(t, tr.IsAbnormal)
		assert.Equal(t, order.Preparing, o.ShippingStatus())
	})

	t.Run("completed_at is stamped once", func(t *testing.T) {
		o := newOrder(t, 100)
		first := at
		later := at.Add(time.Hour)

		_, _ = o.ChangeShippingStatus(order.Completed, first)
		_, _ = o.ChangeShippingStatus(order.Shipped, later)
		_, _ = o.ChangeShippingStatus(order.Completed, later)

		require.NotNil(t, o.CompletedAt())
		assert.Equal(t, first, *o.CompletedAt())
	})

	t.Run("invalid status is rejected without side effects", func(t *testing.T) {
		o := newOrder(t, 100)

		_, err := o.ChangeShippingStatus(order.Status("lost"), at)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Pending, o.ShippingStatus())
		assert.Empty(t, o.PullEvents())
	})
}

func TestOrder_ConsolidateItems(t *testing.T) {
	at := time.Now()

	t.Run("marks arrived items consolidated", func(t *testing.T) {
		o := newOrder(t, 100, 200)
		items := o.Items()
		for _, it := range items {
			require.NoError(t, o.RecordItemArrival(it.ID(), order.ArrivalArrived))
		}

		consolidated, err := o.ConsolidateItems([]kernel.UUID{items[0].ID()}, at)

		require.NoError(t, err)
		require.Len(t, consolidated, 1)
		assert.True(t, items[0].IsConsolidated())
		assert.Equal(t, at, *items[0].ConsolidatedAt())
		assert.False(t, items[1].IsConsolidated())
		assert.Len(t, o.ArrivedUnconsolidatedItems(), 1)
	})

	t.Run("one ineligible item leaves every item untouched", func(t *testing.T) {
		o := newOrder(t, 100, 200)
		items := o.Items()
		require.NoError(t, o.RecordItemArrival(items[0].ID(), order.ArrivalArrived))

		_, err := o.ConsolidateItems([]kernel.UUID{items[0].ID(), items[1].ID()}, at)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.False(t, items[0].IsConsolidated())
		assert.False(t, items[1].IsConsolidated())
	})

	t.Run("unknown item names both item and order", func(t *testing.T) {
		o := newOrder(t, 100)
		missing := kernel.NewUUID()

		_, err := o.ConsolidateItems([]kernel.UUID{missing}, at)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), missing.String())
		assert.Contains(t, err.Error(), o.ID().String())
	})
}

func TestOrder_IsOpenForConsolidation(t *testing.T) {
	o := newOrder(t, 100)
	assert.True(t, o.IsOpenForConsolidation())

	_, _ = o.ChangeShippingStatus(order.Completed, time.Now())
	assert.False(t, o.IsOpenForConsolidation())
}
