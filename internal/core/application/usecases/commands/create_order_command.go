package commands

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is one line of a new order as received from checkout.
type OrderLine struct {
	LineItemID kernel.UUID
	ProductRef string
	SellerRef  string
	Quantity   int
	UnitPrice  decimal.Decimal
}

// CreateOrderCommand registers a purchase and its line items. It stands in for the
// checkout flow, which lives outside this service.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, customerID, order.PaymentConfirmed, "TWD",
//	    kernel.AddressFields{Recipient: "Lin", Line1: "No. 7 Zhongshan Rd.", Country: "TW"},
//	    []OrderLine{{LineItemID: kernel.NewUUID(), ProductRef: "sku-1", SellerRef: "s-9", Quantity: 2,
//	        UnitPrice: decimal.NewFromInt(750)}})
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerID    kernel.UUID
	paymentStatus order.PaymentStatus
	currency      string
	destination   kernel.Address
	lines         []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request shape. Amount and item rules are
// enforced again by the Order aggregate.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	paymentStatus order.PaymentStatus,
	currency string,
	destination kernel.AddressFields,
	lines []OrderLine,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setPaymentStatus(paymentStatus),
		cmd.setCurrency(currency),
		cmd.setDestination(destination),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order is stored under.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerID returns the purchasing customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }

// PaymentStatus returns the payment state the order starts in.
func (c CreateOrderCommand) PaymentStatus() order.PaymentStatus { return c.paymentStatus }

// Currency returns the normalized currency shared by every line.
func (c CreateOrderCommand) Currency() string { return c.currency }

// Destination returns the shipping address snapshot.
func (c CreateOrderCommand) Destination() kernel.Address { return c.destination }

// Lines returns a copy of the requested line items.
func (c CreateOrderCommand) Lines() []OrderLine { return append([]OrderLine(nil), c.lines...) }

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer id", err)
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setPaymentStatus(status order.PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.paymentStatus = status
	return nil
}

func (c *CreateOrderCommand) setCurrency(currency string) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	c.currency = currency
	return nil
}

func (c *CreateOrderCommand) setDestination(fields kernel.AddressFields) error {
	destination, err := kernel.NewAddress(fields)
	if err != nil {
		return err
	}
	c.destination = destination
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}

	var priceErrs []error
	for i, line := range lines {
		if err := kernel.CheckAmount(line.UnitPrice); err != nil {
			priceErrs = append(priceErrs, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("unit price of line %d", i+1), err))
		}
	}
	if len(priceErrs) > 0 {
		return errors.Join(priceErrs...)
	}

	c.lines = append([]OrderLine(nil), lines...)
	return nil
}
