package queries_test

import (
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/consolidation"
	"fulfillment/internal/core/domain/model/history"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func TestGetAvailableTransitionsQueryHandler_Handle(t *testing.T) {
	ctx := testContext(t)
	o := openOrder(t, kernel.NewUUID(), order.Shipped, fixedNow, 100)
	repo := new(MockOrderRepository)
	repo.On("Get", ctx, o.ID()).Return(o, nil).Once()

	query, err := queries.NewGetAvailableTransitionsQuery(o.ID())
	require.NoError(t, err)

	resp, err := queries.NewGetAvailableTransitionsQueryHandler(repo).Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, order.Shipped, resp.Current)
	assert.Equal(t, "Shipped", resp.CurrentLabel)
	require.Len(t, resp.Transitions, 5)
	assert.Equal(t, queries.TransitionView{Status: order.Pending, Label: "Pending", IsAbnormal: true}, resp.Transitions[1])
	assert.Equal(t, queries.TransitionView{Status: order.Completed, Label: "Completed", IsAbnormal: false}, resp.Transitions[4])
}

func TestGetAvailableTransitionsQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := testContext(t)
	id := kernel.NewUUID()
	repo := new(MockOrderRepository)
	repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()
	query, _ := queries.NewGetAvailableTransitionsQuery(id)

	_, err := queries.NewGetAvailableTransitionsQueryHandler(repo).Handle(ctx, query)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetHistoryQueryHandler_Handle(t *testing.T) {
	ctx := testContext(t)
	orderID := kernel.NewUUID()
	known, unknown := kernel.NewUUID(), kernel.NewUUID()

	newest, _ := history.RestoreStatusChange(kernel.NewUUID(), orderID, order.Shipped, order.Preparing, "returned", &known, true, fixedNow)
	middle, _ := history.RestoreStatusChange(kernel.NewUUID(), orderID, order.Preparing, order.Shipped, "", &unknown, false, fixedNow.Add(-time.Hour))
	oldest, _ := history.RestoreStatusChange(kernel.NewUUID(), orderID, order.Pending, order.Preparing, "", nil, false, fixedNow.Add(-2*time.Hour))
	again, _ := history.RestoreStatusChange(kernel.NewUUID(), orderID, order.Pending, order.Pending, "", &known, false, fixedNow.Add(-3*time.Hour))

	repo := new(MockHistoryRepository)
	repo.On("ListByOrder", ctx, orderID, queries.DefaultHistoryLimit).
		Return([]*history.StatusChange{newest, middle, oldest, again}, nil).Once()
	directory := new(MockDirectory)
	directory.On("GetDisplayName", ctx, known).Return("Chen Yu", nil).Once()
	directory.On("GetDisplayName", ctx, unknown).Return("", errs.NewObjectNotFoundError("operator", unknown.String())).Once()

	query, err := queries.NewGetHistoryQuery(orderID, 0)
	require.NoError(t, err)

	entries, err := queries.NewGetHistoryQueryHandler(repo, directory, zap.NewNop()).Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, "Chen Yu", entries[0].OperatorName)
	assert.Equal(t, "Shipped", entries[0].FromLabel)
	assert.Equal(t, "Preparing", entries[0].ToLabel)
	assert.True(t, entries[0].IsAbnormal())
	assert.Equal(t, unknown.String(), entries[1].OperatorName)
	assert.Equal(t, history.SystemOperator, entries[2].OperatorName)
	assert.Equal(t, "Chen Yu", entries[3].OperatorName)
	directory.AssertExpectations(t)
}

func TestGetHistoryQueryHandler_Handle_StoreError(t *testing.T) {
	ctx := testContext(t)
	orderID := kernel.NewUUID()
	repo := new(MockHistoryRepository)
	repo.On("ListByOrder", ctx, orderID, 10).Return(nil, errs.NewPersistenceError("list history", errors.New("down"))).Once()
	query, _ := queries.NewGetHistoryQuery(orderID, 10)

	_, err := queries.NewGetHistoryQueryHandler(repo, new(MockDirectory), zap.NewNop()).Handle(ctx, query)

	require.ErrorIs(t, err, errs.ErrPersistence)
}

func TestNewGetHistoryQuery_Limit(t *testing.T) {
	id := kernel.NewUUID()

	q, err := queries.NewGetHistoryQuery(id, 0)
	require.NoError(t, err)
	assert.Equal(t, queries.DefaultHistoryLimit, q.Limit())

	_, err = queries.NewGetHistoryQuery(id, -1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewGetHistoryQuery(id, queries.MaxHistoryLimit+1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestScanOpportunitiesQueryHandler_Handle(t *testing.T) {
	ctx := testContext(t)
	customerID := kernel.NewUUID()
	scorer, err := services.NewOpportunityScorer(decimal.NewFromInt(60))
	require.NoError(t, err)

	a := openOrder(t, customerID, order.Processing, fixedNow.AddDate(0, 0, -10), 1500, 1500, 1500)
	b := openOrder(t, customerID, order.Preparing, fixedNow, 100)
	orders := []*order.Order{b, a}

	repo := new(MockOrderRepository)
	repo.On("FindOpenByCustomer", ctx, customerID, ports.DateRange{}).Return(orders, nil)
	catalog := new(MockCatalog)
	known := make(map[kernel.UUID]ports.CatalogItem)
	for _, item := range a.Items() {
		known[item.ID()] = ports.CatalogItem{SellerRef: "seller-a"}
	}
	catalog.On("GetLineItems", ctx, mock.MatchedBy(func(ids []kernel.UUID) bool {
		return len(ids) == 4
	})).Return(known, nil).Twice()

	handler := queries.NewScanOpportunitiesQueryHandler(repo, catalog, scorer).WithClock(func() time.Time { return fixedNow })
	query, err := queries.NewScanOpportunitiesQuery(customerID, ports.DateRange{})
	require.NoError(t, err)

	first, err := handler.Handle(ctx, query)
	require.NoError(t, err)
	second, err := handler.Handle(ctx, query)
	require.NoError(t, err)

	require.Len(t, first.Opportunities, 2)
	assert.Equal(t, a.ID(), first.Opportunities[0].OrderID)
	assert.Equal(t, 74, first.Opportunities[0].Score)
	assert.Equal(t, []string{"seller-a"}, first.Opportunities[0].Sellers)
	assert.Equal(t, []string{"stored-seller"}, first.Opportunities[1].Sellers)
	assert.Equal(t, consolidation.ActionConsider, first.Recommendation.Action)
	assert.Equal(t, first, second)
	catalog.AssertNumberOfCalls(t, "GetLineItems", 2)
	catalog.AssertNotCalled(t, "GetLineItem", mock.Anything, mock.Anything)
}

func TestScanOpportunitiesQueryHandler_Handle_CatalogFailure(t *testing.T) {
	ctx := testContext(t)
	customerID := kernel.NewUUID()
	scorer, _ := services.NewOpportunityScorer(decimal.NewFromInt(60))
	o := openOrder(t, customerID, order.Processing, fixedNow, 100)

	repo := new(MockOrderRepository)
	repo.On("FindOpenByCustomer", ctx, customerID, ports.DateRange{}).Return([]*order.Order{o}, nil)
	catalog := new(MockCatalog)
	catalog.On("GetLineItems", ctx, []kernel.UUID{o.Items()[0].ID()}).Return(nil, errors.New("catalog timeout"))

	query, _ := queries.NewScanOpportunitiesQuery(customerID, ports.DateRange{})
	_, err := queries.NewScanOpportunitiesQueryHandler(repo, catalog, scorer).Handle(ctx, query)

	require.EqualError(t, err, "catalog timeout")
}

func TestNewScanOpportunitiesQuery_RejectsInvertedRange(t *testing.T) {
	from := fixedNow
	to := fixedNow.Add(-time.Hour)

	_, err := queries.NewScanOpportunitiesQuery(kernel.NewUUID(), ports.DateRange{From: &from, To: &to})

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetConsolidatedOrderQueryHandler_Handle(t *testing.T) {
	ctx := testContext(t)
	id := kernel.NewUUID()
	repo := new(MockConsolidationRepository)
	repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("consolidated order", id.String())).Once()
	query, err := queries.NewGetConsolidatedOrderQuery(id)
	require.NoError(t, err)

	_, err = queries.NewGetConsolidatedOrderQueryHandler(repo).Handle(ctx, query)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}
