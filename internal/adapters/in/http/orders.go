package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// CreateOrder handles POST /api/v1/orders - registers an order with its line items.
// Missing identifiers are generated.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, err)
	}

	cmd, err := newCreateOrderCommand(body)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "create order", err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: cmd.OrderID().Bytes()})
}

func newCreateOrderCommand(body servers.NewOrder) (commands.CreateOrderCommand, error) {
	orderID := kernel.NewUUID()
	if body.Id != nil {
		id, err := toUUID("order id", *body.Id)
		if err != nil {
			return commands.CreateOrderCommand{}, err
		}
		orderID = id
	}
	customerID, err := toUUID("customer id", body.CustomerId)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	paymentStatus, err := order.ParsePaymentStatus(body.PaymentStatus)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	lines := make([]commands.OrderLine, 0, len(body.Items))
	for _, item := range body.Items {
		lineID := kernel.NewUUID()
		if item.Id != nil {
			if lineID, err = toUUID("line item id", *item.Id); err != nil {
				return commands.CreateOrderCommand{}, err
			}
		}
		price, parseErr := decimal.NewFromString(item.UnitPrice)
		if parseErr != nil {
			return commands.CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("unit price", parseErr)
		}
		lines = append(lines, commands.OrderLine{
			LineItemID: lineID,
			ProductRef: item.ProductRef,
			SellerRef:  item.SellerRef,
			Quantity:   item.Quantity,
			UnitPrice:  price,
		})
	}

	return commands.NewCreateOrderCommand(
		orderID,
		customerID,
		paymentStatus,
		body.Currency,
		toAddressFields(body.Destination),
		lines,
	)
}

// RecordItemArrival handles PUT /api/v1/orders/{orderId}/items/{itemId}/arrival.
func (s *Server) RecordItemArrival(ctx echo.Context, orderId openapi_types.UUID, itemId openapi_types.UUID) error {
	var body servers.ItemArrival
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, err)
	}

	orderID, err := toUUID("order id", orderId)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	itemID, err := toUUID("line item id", itemId)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	state, err := order.ParseArrivalState(body.State)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	cmd, err := commands.NewRecordItemArrivalCommand(orderID, itemID, state)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	if err = s.recordItemArrivalHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, "record item arrival", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAvailableTransitions handles GET /api/v1/orders/{orderId}/transitions.
func (s *Server) GetAvailableTransitions(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := toUUID("order id", orderId)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	query, err := queries.NewGetAvailableTransitionsQuery(orderID)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	response, err := s.getAvailableTransitionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "retrieve transitions", err)
	}

	return ctx.JSON(http.StatusOK, fromTransitions(response))
}

// ApplyOrderStatus handles POST /api/v1/orders/{orderId}/status. Abnormal transitions
// are applied and flagged in the result.
func (s *Server) ApplyOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.StatusChangeRequest
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, err)
	}

	orderID, err := toUUID("order id", orderId)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	status, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	operatorID, err := toOptionalUUID("operator id", body.OperatorId)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	cmd, err := commands.NewApplyStatusCommand(orderID, status, deref(body.Reason), operatorID)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	result, err := s.applyStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "apply status", err)
	}

	return ctx.JSON(http.StatusOK, servers.StatusChangeResult{
		RecordId:   result.RecordID.Bytes(),
		OrderId:    result.OrderID.Bytes(),
		From:       result.From.String(),
		To:         result.To.String(),
		IsAbnormal: result.IsAbnormal,
	})
}

// BatchApplyOrderStatus handles POST /api/v1/orders/status/batch. Individual failures
// are reported in the body; the request itself only fails when it is malformed.
func (s *Server) BatchApplyOrderStatus(ctx echo.Context) error {
	var body servers.BatchStatusChangeRequest
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, err)
	}

	orderIDs, err := toUUIDs("order id", body.OrderIds)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	status, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	operatorID, err := toOptionalUUID("operator id", body.OperatorId)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	cmd, err := commands.NewBatchApplyStatusCommand(orderIDs, status, deref(body.Reason), operatorID)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	result, err := s.batchApplyStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "apply batch status", err)
	}

	messages := result.Errors
	if messages == nil {
		messages = []string{}
	}
	return ctx.JSON(http.StatusOK, servers.BatchStatusChangeResult{
		Success: result.Success,
		Failed:  result.Failed,
		Errors:  messages,
	})
}

// GetOrderHistory handles GET /api/v1/orders/{orderId}/history.
func (s *Server) GetOrderHistory(ctx echo.Context, orderId openapi_types.UUID, params servers.GetOrderHistoryParams) error {
	orderID, err := toUUID("order id", orderId)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}
	query, err := queries.NewGetHistoryQuery(orderID, limit)
	if err != nil {
		return s.badRequest(ctx, err)
	}

	entries, err := s.getHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "retrieve history", err)
	}

	return ctx.JSON(http.StatusOK, fromHistory(entries))
}
