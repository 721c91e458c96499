package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/consolidation"
	"fulfillment/internal/core/domain/model/history"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, ids ...kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
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

func (m *MockOrderRepository) FindCustomersWithOpenOrders(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Add(ctx context.Context, change *history.StatusChange) error {
	return m.Called(ctx, change).Error(0)
}

func (m *MockHistoryRepository) ListByOrder(ctx context.Context, orderID kernel.UUID, limit int) ([]*history.StatusChange, error) {
	args := m.Called(ctx, orderID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*history.StatusChange), args.Error(1)
}

type MockConsolidationRepository struct{ mock.Mock }

func (m *MockConsolidationRepository) Add(ctx context.Context, co *consolidation.ConsolidatedOrder) error {
	return m.Called(ctx, co).Error(0)
}

func (m *MockConsolidationRepository) Update(ctx context.Context, co *consolidation.ConsolidatedOrder) error {
	return m.Called(ctx, co).Error(0)
}

func (m *MockConsolidationRepository) Get(ctx context.Context, id kernel.UUID) (*consolidation.ConsolidatedOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*consolidation.ConsolidatedOrder), args.Error(1)
}

func (m *MockConsolidationRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*consolidation.ConsolidatedOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*consolidation.ConsolidatedOrder), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) StatusHistoryRepository() ports.StatusHistoryRepository {
	return m.Called().Get(0).(ports.StatusHistoryRepository)
}

func (m *MockUoW) ConsolidationRepository() ports.ConsolidationRepository {
	return m.Called().Get(0).(ports.ConsolidationRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockStatusUoWFactory struct{ mock.Mock }

func (m *MockStatusUoWFactory) Create() commands.StatusUoW {
	return m.Called().Get(0).(commands.StatusUoW)
}

type MockConsolidationUoWFactory struct{ mock.Mock }

func (m *MockConsolidationUoWFactory) Create() commands.ConsolidationUoW {
	return m.Called().Get(0).(commands.ConsolidationUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	return m.Called(ctx, events).Error(0)
}

// hasEvent matches a published batch containing an event with the given name.
func hasEvent(name string) any {
	return mock.MatchedBy(func(events []kernel.DomainEvent) bool {
		for _, e := range events {
			if e.EventName() == name {
				return true
			}
		}
		return false
	})
}

type line struct {
	price   int64
	arrived bool
}

func newTestOrder(t *testing.T, customerID kernel.UUID, status order.Status, lines ...line) *order.Order {
	t.Helper()
	if len(lines) == 0 {
		lines = []line{{price: 100}}
	}
	orderID := kernel.NewUUID()
	items := make([]*order.LineItem, 0, len(lines))
	for _, l := range lines {
		price, err := kernel.NewMoney(decimal.NewFromInt(l.price), "TWD")
		require.NoError(t, err)
		arrival := order.ArrivalPending
		if l.arrived {
			arrival = order.ArrivalArrived
		}
		item, err := order.RestoreLineItem(kernel.NewUUID(), orderID, "sku", "seller", 1, price,
			arrival, order.ConsolidationNone, nil)
		require.NoError(t, err)
		items = append(items, item)
	}
	destination, err := kernel.NewAddress(kernel.AddressFields{Recipient: "Lin", Line1: "No. 1", Country: "TW"})
	require.NoError(t, err)

	o, err := order.RestoreOrder(orderID, customerID, order.PaymentConfirmed, status, destination,
		time.Now().Add(-48*time.Hour), nil, items)
	require.NoError(t, err)
	return o
}

func arrivedItemIDs(o *order.Order) []kernel.UUID {
	ids := make([]kernel.UUID, 0)
	for _, item := range o.ArrivedUnconsolidatedItems() {
		ids = append(ids, item.ID())
	}
	return ids
}
