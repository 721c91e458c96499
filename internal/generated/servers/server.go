package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Register an order with its line items
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// Apply one status to many orders, best effort
	// (POST /api/v1/orders/status/batch)
	BatchApplyOrderStatus(ctx echo.Context) error
	// Record a line item's arrival state
	// (PUT /api/v1/orders/{orderId}/items/{itemId}/arrival)
	RecordItemArrival(ctx echo.Context, orderId openapi_types.UUID, itemId openapi_types.UUID) error
	// List statuses the order can move to, flagging abnormal ones
	// (GET /api/v1/orders/{orderId}/transitions)
	GetAvailableTransitions(ctx echo.Context, orderId openapi_types.UUID) error
	// Change an order's shipping status and record it
	// (POST /api/v1/orders/{orderId}/status)
	ApplyOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error
	// Status history, most recent first
	// (GET /api/v1/orders/{orderId}/history)
	GetOrderHistory(ctx echo.Context, orderId openapi_types.UUID, params GetOrderHistoryParams) error
	// Rank a customer's open orders for consolidation
	// (GET /api/v1/customers/{customerId}/consolidation-opportunities)
	ScanOpportunities(ctx echo.Context, customerId openapi_types.UUID, params ScanOpportunitiesParams) error
	// Merge line items of several orders into one consolidated order
	// (POST /api/v1/consolidations)
	ExecuteConsolidation(ctx echo.Context) error
	// Read a consolidated order snapshot
	// (GET /api/v1/consolidations/{consolidationId})
	GetConsolidatedOrder(ctx echo.Context, consolidationId openapi_types.UUID) error
	// Move a consolidated order along its lifecycle
	// (PUT /api/v1/consolidations/{consolidationId}/status)
	UpdateConsolidationStatus(ctx echo.Context, consolidationId openapi_types.UUID) error
	// Replace a consolidated order's destination
	// (PUT /api/v1/consolidations/{consolidationId}/destination)
	UpdateConsolidatedDestination(ctx echo.Context, consolidationId openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindPathUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// BatchApplyOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) BatchApplyOrderStatus(ctx echo.Context) error {
	return w.Handler.BatchApplyOrderStatus(ctx)
}

// RecordItemArrival converts echo context to params.
func (w *ServerInterfaceWrapper) RecordItemArrival(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	itemId, err := bindPathUUID(ctx, "itemId")
	if err != nil {
		return err
	}
	return w.Handler.RecordItemArrival(ctx, orderId, itemId)
}

// GetAvailableTransitions converts echo context to params.
func (w *ServerInterfaceWrapper) GetAvailableTransitions(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetAvailableTransitions(ctx, orderId)
}

// ApplyOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ApplyOrderStatus(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ApplyOrderStatus(ctx, orderId)
}

// GetOrderHistory converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderHistory(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	var params GetOrderHistoryParams
	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return w.Handler.GetOrderHistory(ctx, orderId, params)
}

// ScanOpportunities converts echo context to params.
func (w *ServerInterfaceWrapper) ScanOpportunities(ctx echo.Context) error {
	customerId, err := bindPathUUID(ctx, "customerId")
	if err != nil {
		return err
	}

	var params ScanOpportunitiesParams
	err = runtime.BindQueryParameter("form", true, false, "from", ctx.QueryParams(), &params.From)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter from: %s", err))
	}
	err = runtime.BindQueryParameter("form", true, false, "to", ctx.QueryParams(), &params.To)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter to: %s", err))
	}

	return w.Handler.ScanOpportunities(ctx, customerId, params)
}

// ExecuteConsolidation converts echo context to params.
func (w *ServerInterfaceWrapper) ExecuteConsolidation(ctx echo.Context) error {
	return w.Handler.ExecuteConsolidation(ctx)
}

// GetConsolidatedOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetConsolidatedOrder(ctx echo.Context) error {
	consolidationId, err := bindPathUUID(ctx, "consolidationId")
	if err != nil {
		return err
	}
	return w.Handler.GetConsolidatedOrder(ctx, consolidationId)
}

// UpdateConsolidationStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateConsolidationStatus(ctx echo.Context) error {
	consolidationId, err := bindPathUUID(ctx, "consolidationId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateConsolidationStatus(ctx, consolidationId)
}

// UpdateConsolidatedDestination converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateConsolidatedDestination(ctx echo.Context) error {
	consolidationId, err := bindPathUUID(ctx, "consolidationId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateConsolidatedDestination(ctx, consolidationId)
}

// EchoRouter is the subset of echo.Echo and echo.Group used to register routes.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers with a base path prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.POST(baseURL+"/api/v1/orders/status/batch", wrapper.BatchApplyOrderStatus)
	router.PUT(baseURL+"/api/v1/orders/:orderId/items/:itemId/arrival", wrapper.RecordItemArrival)
	router.GET(baseURL+"/api/v1/orders/:orderId/transitions", wrapper.GetAvailableTransitions)
	router.POST(baseURL+"/api/v1/orders/:orderId/status", wrapper.ApplyOrderStatus)
	router.GET(baseURL+"/api/v1/orders/:orderId/history", wrapper.GetOrderHistory)
	router.GET(baseURL+"/api/v1/customers/:customerId/consolidation-opportunities", wrapper.ScanOpportunities)
	router.POST(baseURL+"/api/v1/consolidations", wrapper.ExecuteConsolidation)
	router.GET(baseURL+"/api/v1/consolidations/:consolidationId", wrapper.GetConsolidatedOrder)
	router.PUT(baseURL+"/api/v1/consolidations/:consolidationId/status", wrapper.UpdateConsolidationStatus)
	router.PUT(baseURL+"/api/v1/consolidations/:consolidationId/destination", wrapper.UpdateConsolidatedDestination)
}
