package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrApplyStatusCommandIsNotConstructed = errors.New(
	"ApplyStatusCommand must be created via NewApplyStatusCommand constructor",
)

// ApplyStatusCommand sets an order's shipping status. A nil operator means the
// change is made by the system.
//
// Example:
//
//	cmd, err := NewApplyStatusCommand(orderID, order.Shipped, "handed to carrier", &operatorID)
//	result, err := handler.Handle(ctx, cmd)
//	if result.IsAbnormal {
//	    // the change succeeded but an alert was raised
//	}
type ApplyStatusCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	status     order.Status
	reason     string
	operatorID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewApplyStatusCommand validates the order identifier, target status and operator.
func NewApplyStatusCommand(
	orderID kernel.UUID,
	status order.Status,
	reason string,
	operatorID *kernel.UUID,
) (ApplyStatusCommand, error) {
	cmd := ApplyStatusCommand{
		reason: strings.TrimSpace(reason),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setOperatorID(operatorID),
	); err != nil {
		return ApplyStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyStatusCommand) Validate() error {
	return c.guard.Validate(ErrApplyStatusCommandIsNotConstructed)
}

// OrderID returns the order whose status changes.
func (c ApplyStatusCommand) OrderID() kernel.UUID { return c.orderID }

// Status returns the target shipping status.
func (c ApplyStatusCommand) Status() order.Status { return c.status }

// Reason returns the operator-supplied reason, possibly empty.
func (c ApplyStatusCommand) Reason() string { return c.reason }

// OperatorID returns the acting operator, or nil for system changes.
func (c ApplyStatusCommand) OperatorID() *kernel.UUID { return c.operatorID }

func (c *ApplyStatusCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	c.orderID = id
	return nil
}

func (c *ApplyStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *ApplyStatusCommand) setOperatorID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("operator id", err)
	}
	operator := *id
	c.operatorID = &operator
	return nil
}

// ApplyStatusResult describes the recorded change.
type ApplyStatusResult struct {
	RecordID   kernel.UUID
	OrderID    kernel.UUID
	From       order.Status
	To         order.Status
	IsAbnormal bool
}
