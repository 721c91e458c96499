package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/consolidation"
	"fulfillment/internal/core/domain/model/history"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct {
	ports.OrderRepository
	mock.Mock
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindOpenByCustomer(
	ctx context.Context,
	customerID kernel.UUID,
	created ports.DateRange,
) ([]*order.Order, error) {
	args := m.Called(ctx, customerID, created)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockHistoryRepository struct {
	ports.StatusHistoryRepository
	mock.Mock
}

func (m *MockHistoryRepository) ListByOrder(ctx context.Context, orderID kernel.UUID, limit int) ([]*history.StatusChange, error) {
	args := m.Called(ctx, orderID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*history.StatusChange), args.Error(1)
}

type MockConsolidationRepository struct {
	ports.ConsolidationRepository
	mock.Mock
}

func (m *MockConsolidationRepository) Get(ctx context.Context, id kernel.UUID) (*consolidation.ConsolidatedOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*consolidation.ConsolidatedOrder), args.Error(1)
}

type MockDirectory struct{ mock.Mock }

func (m *MockDirectory) GetDisplayName(ctx context.Context, operatorID kernel.UUID) (string, error) {
	args := m.Called(ctx, operatorID)
	return args.String(0), args.Error(1)
}

type MockCatalog struct{ mock.Mock }

func (m *MockCatalog) GetLineItem(ctx context.Context, lineItemID kernel.UUID) (ports.CatalogItem, error) {
	args := m.Called(ctx, lineItemID)
	return args.Get(0).(ports.CatalogItem), args.Error(1)
}

func (m *MockCatalog) GetLineItems(ctx context.Context, lineItemIDs []kernel.UUID) (map[kernel.UUID]ports.CatalogItem, error) {
	args := m.Called(ctx, lineItemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]ports.CatalogItem), args.Error(1)
}

func openOrder(t *testing.T, customerID kernel.UUID, status order.Status, createdAt time.Time, arrivedPrices ...int64) *order.Order {
	t.Helper()
	orderID := kernel.NewUUID()
	items := make([]*order.LineItem, 0, len(arrivedPrices))
	for _, p := range arrivedPrices {
		price, err := kernel.NewMoney(decimal.NewFromInt(p), "TWD")
		require.NoError(t, err)
		item, err := order.RestoreLineItem(kernel.NewUUID(), orderID, "sku", "stored-seller", 1, price,
			order.ArrivalArrived, order.ConsolidationNone, nil)
		require.NoError(t, err)
		items = append(items, item)
	}
	destination, err := kernel.NewAddress(kernel.AddressFields{Recipient: "Lin", Line1: "No. 1", Country: "TW"})
	require.NoError(t, err)
	o, err := order.RestoreOrder(orderID, customerID, order.PaymentConfirmed, status, destination, createdAt, nil, items)
	require.NoError(t, err)
	return o
}
