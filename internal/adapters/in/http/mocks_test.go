package http_test

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/consolidation"
	"fulfillment/internal/core/domain/model/history"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
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

// MockUnitOfWork serves every narrowed unit of work the handlers ask for.
type MockUnitOfWork struct {
	mock.Mock
	orders         *MockOrderRepository
	history        *MockHistoryRepository
	consolidations *MockConsolidationRepository
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUnitOfWork) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUnitOfWork) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUnitOfWork) OrderRepository() ports.OrderRepository { return m.orders }
func (m *MockUnitOfWork) StatusHistoryRepository() ports.StatusHistoryRepository {
	return m.history
}
func (m *MockUnitOfWork) ConsolidationRepository() ports.ConsolidationRepository {
	return m.consolidations
}

type orderUoWFactory struct{ uow *MockUnitOfWork }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow }

type statusUoWFactory struct{ uow *MockUnitOfWork }

func (f statusUoWFactory) Create() commands.StatusUoW { return f.uow }

type consolidationUoWFactory struct{ uow *MockUnitOfWork }

func (f consolidationUoWFactory) Create() commands.ConsolidationUoW { return f.uow }
