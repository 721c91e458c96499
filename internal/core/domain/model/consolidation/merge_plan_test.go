package consolidation_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/consolidation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMergePlan(t *testing.T) {
	customerID := kernel.NewUUID()
	first, second := kernel.NewUUID(), kernel.NewUUID()
	a, b, c := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	t.Run("accepts two orders with items", func(t *testing.T) {
		plan, err := consolidation.NewMergePlan(customerID, []consolidation.PlanOrder{
			{OrderID: first, ItemIDs: []kernel.UUID{a, b}},
			{OrderID: second, ItemIDs: []kernel.UUID{c}},
		})

		require.NoError(t, err)
		assert.Equal(t, customerID, plan.CustomerID())
		assert.Equal(t, []kernel.UUID{first, second}, plan.OrderIDs())
		assert.Equal(t, 3, plan.ItemCount())
		assert.False(t, plan.IsEmpty())
	})

	t.Run("plan is a copy of the input", func(t *testing.T) {
		items := []kernel.UUID{a}
		plan, err := consolidation.NewMergePlan(customerID, []consolidation.PlanOrder{
			{OrderID: first, ItemIDs: items},
			{OrderID: second, ItemIDs: []kernel.UUID{c}},
		})
		require.NoError(t, err)

		items[0] = b

		assert.Equal(t, a, plan.Orders()[0].ItemIDs[0])
	})

	testCases := []struct {
		name    string
		orders  []consolidation.PlanOrder
		message string
	}{
		{
			name:    "single order",
			orders:  []consolidation.PlanOrder{{OrderID: first, ItemIDs: []kernel.UUID{a}}},
			message: "needs at least 2 orders, got 1",
		},
		{
			name: "same order twice",
			orders: []consolidation.PlanOrder{
				{OrderID: first, ItemIDs: []kernel.UUID{a}},
				{OrderID: first, ItemIDs: []kernel.UUID{b}},
			},
			message: "order " + first.String() + " (cause: listed more than once)",
		},
		{
			name: "order without items",
			orders: []consolidation.PlanOrder{
				{OrderID: first, ItemIDs: []kernel.UUID{a}},
				{OrderID: second},
			},
			message: "order " + second.String() + " (cause: lists no line items)",
		},
		{
			name: "item listed under two orders",
			orders: []consolidation.PlanOrder{
				{OrderID: first, ItemIDs: []kernel.UUID{a}},
				{OrderID: second, ItemIDs: []kernel.UUID{a}},
			},
			message: "line item " + a.String() + " of order " + second.String(),
		},
	}

	for _, tc := range testCases {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			_, err := consolidation.NewMergePlan(customerID, tc.orders)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, errs.KindValidation, errs.KindOf(err))
			assert.Contains(t, err.Error(), tc.message)
		})
	}

	t.Run("rejects missing customer", func(t *testing.T) {
		_, err := consolidation.NewMergePlan(kernel.UUID{}, []consolidation.PlanOrder{
			{OrderID: first, ItemIDs: []kernel.UUID{a}},
			{OrderID: second, ItemIDs: []kernel.UUID{c}},
		})

		require.Error(t, err)
	})
}
