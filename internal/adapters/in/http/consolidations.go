package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/consolidation"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ScanOpportunities handles GET /api/v1/customers/{customerId}/consolidation-opportunities.
func (s *Server) ScanOpportunities(ctx echo.Context, customerId openapi_types.UUID, params servers.ScanOpportunitiesParams) error {
	customerID, err := toUUID("customer id", customerId)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	query, err := queries.NewScanOpportunitiesQuery(customerID, ports.DateRange{From: params.From, To: params.To})
	if err != nil {
		return s.badRequest(ctx, err)
	}

	result, err := s.scanOpportunitiesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "scan opportunities", err)
	}

	return ctx.JSON(http.StatusOK, fromScan(result))
}

// ExecuteConsolidation handles POST /api/v1/consolidations.
func (s *Server) ExecuteConsolidation(ctx echo.Context) error {
	var body servers.MergePlan
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, err)
	}

	cmd, err := newExecuteConsolidationCommand(body)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	id, err := s.executeConsolidationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "execute consolidation", err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: id.Bytes()})
}

func newExecuteConsolidationCommand(body servers.MergePlan) (commands.ExecuteConsolidationCommand, error) {
	customerID, err := toUUID("customer id", body.CustomerId)
	if err != nil {
		return commands.ExecuteConsolidationCommand{}, err
	}

	orders := make([]consolidation.PlanOrder, 0, len(body.Orders))
	for _, o := range body.Orders {
		orderID, err := toUUID("order id", o.OrderId)
		if err != nil {
			return commands.ExecuteConsolidationCommand{}, err
		}
		itemIDs, err := toUUIDs("line item id", o.ItemIds)
		if err != nil {
			return commands.ExecuteConsolidationCommand{}, err
		}
		orders = append(orders, consolidation.PlanOrder{OrderID: orderID, ItemIDs: itemIDs})
	}

	plan, err := consolidation.NewMergePlan(customerID, orders)
	if err != nil {
		return commands.ExecuteConsolidationCommand{}, err
	}
	return commands.NewExecuteConsolidationCommand(plan)
}

// GetConsolidatedOrder handles GET /api/v1/consolidations/{consolidationId}.
func (s *Server) GetConsolidatedOrder(ctx echo.Context, consolidationId openapi_types.UUID) error {
	id, err := toUUID("consolidated order id", consolidationId)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	query, err := queries.NewGetConsolidatedOrderQuery(id)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	co, err := s.getConsolidatedOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "retrieve consolidated order", err)
	}

	return ctx.JSON(http.StatusOK, fromConsolidatedOrder(co))
}

// UpdateConsolidationStatus handles PUT /api/v1/consolidations/{consolidationId}/status.
func (s *Server) UpdateConsolidationStatus(ctx echo.Context, consolidationId openapi_types.UUID) error {
	var body servers.ConsolidationStatusChange
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, err)
	}

	id, err := toUUID("consolidated order id", consolidationId)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	status, err := consolidation.ParseStatus(body.Status)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	cmd, err := commands.NewUpdateConsolidationStatusCommand(id, status)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	if err = s.updateConsolidationHandler.HandleStatus(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "update consolidation status", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateConsolidatedDestination handles PUT /api/v1/consolidations/{consolidationId}/destination.
func (s *Server) UpdateConsolidatedDestination(ctx echo.Context, consolidationId openapi_types.UUID) error {
	var body servers.Address
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, err)
	}

	id, err := toUUID("consolidated order id", consolidationId)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	cmd, err := commands.NewUpdateConsolidatedDestinationCommand(id, toAddressFields(body))
	if err != nil {
		return s.badRequest(ctx, err)
	}

	if err = s.updateConsolidationHandler.HandleDestination(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "update consolidated destination", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
