package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

type itemSpec struct {
	price   int64
	seller  string
	arrived bool
}

func arrived(price int64, seller string) itemSpec {
	return itemSpec{price: price, seller: seller, arrived: true}
}
func pending(price int64, seller string) itemSpec { return itemSpec{price: price, seller: seller} }

func buildOrder(t *testing.T, customerID kernel.UUID, line1 string, createdAt time.Time, specs ...itemSpec) *order.Order {
	t.Helper()
	orderID := kernel.NewUUID()
	items := make([]*order.LineItem, 0, len(specs))
	for _, s := range specs {
		price, err := kernel.NewMoney(decimal.NewFromInt(s.price), "TWD")
		require.NoError(t, err)
		item, err := order.NewLineItem(kernel.NewUUID(), orderID, "sku", s.seller, 1, price)
		require.NoError(t, err)
		if s.arrived {
			require.NoError(t, item.RecordArrival(order.ArrivalArrived))
		}
		items = append(items, item)
	}
	destination, err := kernel.NewAddress(kernel.AddressFields{Recipient: "Lee", Line1: line1, Country: "TW"})
	require.NoError(t, err)

	o, err := order.NewOrder(orderID, customerID, order.PaymentConfirmed, destination, createdAt, items...)
	require.NoError(t, err)
	return o
}

func itemIDs(o *order.Order) []kernel.UUID {
	ids := make([]kernel.UUID, 0)
	for _, item := range o.ArrivedUnconsolidatedItems() {
		ids = append(ids, item.ID())
	}
	return ids
}
