package historyrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/historyrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/pgtest"
	"fulfillment/internal/core/domain/model/history"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// StatusHistoryRepositoryIntegrationTestSuite verifies the ledger against PostgreSQL.
type StatusHistoryRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *historyrepo.GormStatusHistoryRepository
	orderID    kernel.UUID
}

func (suite *StatusHistoryRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *StatusHistoryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = historyrepo.NewGormStatusHistoryRepository(suite.database.DB)
	suite.orderID = suite.addOrder()
}

func (suite *StatusHistoryRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

func (suite *StatusHistoryRepositoryIntegrationTestSuite) TestAddAndList_RoundTripsRow() {
	ctx := context.Background()
	operator := kernel.NewUUID()
	at := time.Now().UTC()

	change, err := history.NewStatusChange(suite.orderID, order.Shipped, order.Preparing, "customer asked", &operator, at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, change))

	rows, err := suite.repository.ListByOrder(ctx, suite.orderID, 10)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)

	row := rows[0]
	suite.Equal(change.ID(), row.ID())
	suite.Equal(order.Shipped, row.From())
	suite.Equal(order.Preparing, row.To())
	suite.Equal("customer asked", row.Reason())
	suite.True(row.IsAbnormal())
	suite.Require().NotNil(row.OperatorID())
	suite.Equal(operator, *row.OperatorID())
	suite.WithinDuration(at, row.OccurredAt(), time.Millisecond)
}

func (suite *StatusHistoryRepositoryIntegrationTestSuite) TestAdd_SystemChangeHasNoOperator() {
	ctx := context.Background()

	change, err := history.NewStatusChange(suite.orderID, order.Pending, order.Preparing, "", nil, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, change))

	rows, err := suite.repository.ListByOrder(ctx, suite.orderID, 0)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.True(rows[0].IsSystem())
	suite.False(rows[0].IsAbnormal())
}

func (suite *StatusHistoryRepositoryIntegrationTestSuite) TestListByOrder_MostRecentFirstWithLimit() {
	ctx := context.Background()
	start := time.Now().UTC().Add(-time.Hour)
	path := []order.Status{order.Pending, order.Preparing, order.Processing, order.Shipped}

	for i := 1; i < len(path); i++ {
		change, err := history.NewStatusChange(
			suite.orderID, path[i-1], path[i], "", nil, start.Add(time.Duration(i)*time.Minute))
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.Add(ctx, change))
	}

	rows, err := suite.repository.ListByOrder(ctx, suite.orderID, 2)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal(order.Shipped, rows[0].To())
	suite.Equal(order.Processing, rows[1].To())

	all, err := suite.repository.ListByOrder(ctx, suite.orderID, 0)
	suite.Require().NoError(err)
	suite.Len(all, 3)
}

func (suite *StatusHistoryRepositoryIntegrationTestSuite) TestListByOrder_UnknownOrder_ReturnsEmpty() {
	rows, err := suite.repository.ListByOrder(context.Background(), kernel.NewUUID(), 10)

	suite.Require().NoError(err)
	suite.Empty(rows)
}

func (suite *StatusHistoryRepositoryIntegrationTestSuite) TestAdd_UnknownOrder_ReturnsPersistenceError() {
	change, err := history.NewStatusChange(kernel.NewUUID(), order.Pending, order.Preparing, "", nil, time.Now().UTC())
	suite.Require().NoError(err)

	err = suite.repository.Add(context.Background(), change)

	suite.Require().ErrorIs(err, errs.ErrPersistence)
}

func (suite *StatusHistoryRepositoryIntegrationTestSuite) addOrder() kernel.UUID {
	orderID := kernel.NewUUID()
	price, err := kernel.NewMoney(decimal.NewFromInt(100), "TWD")
	suite.Require().NoError(err)
	item, err := order.NewLineItem(kernel.NewUUID(), orderID, "sku-1", "seller-1", 1, price)
	suite.Require().NoError(err)
	destination, err := kernel.NewAddress(kernel.AddressFields{Recipient: "Chen Yu", Line1: "1 Harbor St", Country: "TW"})
	suite.Require().NoError(err)
	o, err := order.NewOrder(orderID, kernel.NewUUID(), order.PaymentPaid, destination, time.Now().UTC(), item)
	suite.Require().NoError(err)

	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.database.DB).Add(context.Background(), o))
	return orderID
}

func TestStatusHistoryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StatusHistoryRepositoryIntegrationTestSuite))
}
