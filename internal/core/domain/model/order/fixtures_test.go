package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func twd(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(decimal.NewFromInt(amount), "TWD")
	require.NoError(t, err)
	return m
}

func destination(t *testing.T) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress(kernel.AddressFields{
		Recipient: "Lin Mei",
		Line1:     "No. 7, Zhongshan Rd.",
		City:      "Taipei",
		Country:   "TW",
	})
	require.NoError(t, err)
	return a
}

func newOrder(t *testing.T, prices ...int64) *order.Order {
	t.Helper()
	orderID := kernel.NewUUID()
	items := make([]*order.LineItem, 0, len(prices))
	for _, p := range prices {
		item, err := order.NewLineItem(kernel.NewUUID(), orderID, "sku", "seller-1", 1, twd(t, p))
		require.NoError(t, err)
		items = append(items, item)
	}
	o, err := order.NewOrder(orderID, kernel.NewUUID(), order.PaymentConfirmed, destination(t),
		time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), items...)
	require.NoError(t, err)
	return o
}
