package consolidation_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/consolidation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(t *testing.T, orderID kernel.UUID, amount int64) consolidation.ItemSnapshot {
	t.Helper()
	price, err := kernel.NewMoney(decimal.NewFromInt(amount), "TWD")
	require.NoError(t, err)
	return consolidation.ItemSnapshot{
		LineItemID: kernel.NewUUID(),
		OrderID:    orderID,
		ProductRef: "sku",
		SellerRef:  "seller",
		Quantity:   1,
		UnitPrice:  price,
		LineTotal:  price,
	}
}

func address(t *testing.T, line1 string) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress(kernel.AddressFields{Recipient: "Wang", Line1: line1, Country: "tw"})
	require.NoError(t, err)
	return a
}

func TestNewConsolidatedOrder(t *testing.T) {
	customerID := kernel.NewUUID()
	first, second := kernel.NewUUID(), kernel.NewUUID()
	at := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)

	t.Run("sums snapshots and raises ConsolidationCompleted", func(t *testing.T) {
		items := []consolidation.ItemSnapshot{
			snapshot(t, first, 1200), snapshot(t, first, 300), snapshot(t, second, 500),
		}

		co, err := consolidation.NewConsolidatedOrder(customerID, []kernel.UUID{first, second}, items, address(t, "A"), at)

		require.NoError(t, err)
		require.NoError(t, co.Validate())
		assert.Equal(t, consolidation.StatusCompleted, co.Status())
		assert.True(t, co.Total().Amount().Equal(decimal.NewFromInt(2000)))
		assert.Equal(t, []kernel.UUID{first, second}, co.OriginalOrderIDs())
		assert.Len(t, co.Items(), 3)
		assert.Equal(t, at, co.CreatedAt())

		events := co.PullEvents()
		require.Len(t, events, 1)
		completed, ok := events[0].(consolidation.ConsolidationCompleted)
		require.True(t, ok)
		assert.Equal(t, co.ID(), completed.ConsolidatedOrderID)
		assert.Equal(t, 3, completed.ItemCount)
		assert.Equal(t, "2000", completed.Total)
	})

	t.Run("rejects snapshots of foreign orders", func(t *testing.T) {
		items := []consolidation.ItemSnapshot{snapshot(t, kernel.NewUUID(), 1)}

		_, err := consolidation.NewConsolidatedOrder(customerID, []kernel.UUID{first, second}, items, address(t, "A"), at)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "order is not part of the consolidation")
	})

	t.Run("rejects a single original order", func(t *testing.T) {
		_, err := consolidation.NewConsolidatedOrder(customerID, []kernel.UUID{first},
			[]consolidation.ItemSnapshot{snapshot(t, first, 1)}, address(t, "A"), at)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestConsolidatedOrder_ChangeStatus(t *testing.T) {
	first, second := kernel.NewUUID(), kernel.NewUUID()
	restore := func(t *testing.T, status consolidation.Status) *consolidation.ConsolidatedOrder {
		co, err := consolidation.RestoreConsolidatedOrder(kernel.NewUUID(), kernel.NewUUID(),
			[]kernel.UUID{first, second}, []consolidation.ItemSnapshot{snapshot(t, first, 1)},
			address(t, "A"), status, time.Now(), time.Now())
		require.NoError(t, err)
		return co
	}

	testCases := []struct {
		from, to consolidation.Status
		allowed  bool
	}{
		{consolidation.StatusPending, consolidation.StatusProcessing, true},
		{consolidation.StatusPending, consolidation.StatusCancelled, true},
		{consolidation.StatusPending, consolidation.StatusCompleted, false},
		{consolidation.StatusProcessing, consolidation.StatusCompleted, true},
		{consolidation.StatusProcessing, consolidation.StatusPending, false},
		{consolidation.StatusCompleted, consolidation.StatusCancelled, true},
		{consolidation.StatusCompleted, consolidation.StatusProcessing, false},
		{consolidation.StatusCancelled, consolidation.StatusPending, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			co := restore(t, tc.from)
			later := time.Now().Add(time.Minute)

			err := co.ChangeStatus(tc.to, later)

			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.to, co.Status())
				assert.Equal(t, later, co.UpdatedAt())
			} else {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Equal(t, tc.from, co.Status())
			}
		})
	}
}

func TestConsolidatedOrder_ChangeDestination(t *testing.T) {
	first, second := kernel.NewUUID(), kernel.NewUUID()

	t.Run("replaces destination", func(t *testing.T) {
		co, _ := consolidation.NewConsolidatedOrder(kernel.NewUUID(), []kernel.UUID{first, second},
			[]consolidation.ItemSnapshot{snapshot(t, first, 1)}, address(t, "Old"), time.Now())

		require.NoError(t, co.ChangeDestination(address(t, "New"), time.Now()))
		assert.Equal(t, "New", co.Destination().Fields().Line1)
	})

	t.Run("cancelled consolidation is frozen", func(t *testing.T) {
		co, _ := consolidation.NewConsolidatedOrder(kernel.NewUUID(), []kernel.UUID{first, second},
			[]consolidation.ItemSnapshot{snapshot(t, first, 1)}, address(t, "Old"), time.Now())
		require.NoError(t, co.ChangeStatus(consolidation.StatusCancelled, time.Now()))

		err := co.ChangeDestination(address(t, "New"), time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "Old", co.Destination().Fields().Line1)
	})
}
