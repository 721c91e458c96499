package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// CreateOrderCommandHandler persists a new order in pending shipping status with
// every line item pending arrival.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the aggregate and stores it in one transaction.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := buildOrder(cmd, time.Now().UTC())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func buildOrder(cmd CreateOrderCommand, createdAt time.Time) (*order.Order, error) {
	lines := cmd.Lines()
	items := make([]*order.LineItem, 0, len(lines))
	for _, line := range lines {
		price, err := kernel.NewMoney(line.UnitPrice, cmd.Currency())
		if err != nil {
			return nil, err
		}
		item, err := order.NewLineItem(line.LineItemID, cmd.OrderID(), line.ProductRef, line.SellerRef, line.Quantity, price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.PaymentStatus(), cmd.Destination(), createdAt, items...)
}
