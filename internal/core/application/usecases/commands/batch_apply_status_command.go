package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrBatchApplyStatusCommandIsNotConstructed = errors.New(
	"BatchApplyStatusCommand must be created via NewBatchApplyStatusCommand constructor",
)

// BatchApplyStatusCommand applies one status to many orders. Repeated identifiers
// are applied once, in first-seen order.
type BatchApplyStatusCommand struct { //nolint:recvcheck //using for validation
	orderIDs   []kernel.UUID
	status     order.Status
	reason     string
	operatorID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewBatchApplyStatusCommand validates the target status and that at least one order is named.
func NewBatchApplyStatusCommand(
	orderIDs []kernel.UUID,
	status order.Status,
	reason string,
	operatorID *kernel.UUID,
) (BatchApplyStatusCommand, error) {
	if len(orderIDs) == 0 {
		return BatchApplyStatusCommand{}, errs.NewValueIsRequiredError("order ids")
	}
	if err := status.Validate(); err != nil {
		return BatchApplyStatusCommand{}, err
	}
	if operatorID != nil {
		if err := operatorID.Validate(); err != nil {
			return BatchApplyStatusCommand{}, errs.NewValueIsInvalidErrorWithCause("operator id", err)
		}
	}

	seen := make(map[kernel.UUID]struct{}, len(orderIDs))
	unique := make([]kernel.UUID, 0, len(orderIDs))
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return BatchApplyStatusCommand{}, errs.NewValueIsInvalidErrorWithCause("order id", err)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return BatchApplyStatusCommand{
		orderIDs:   unique,
		status:     status,
		reason:     strings.TrimSpace(reason),
		operatorID: operatorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c BatchApplyStatusCommand) Validate() error {
	return c.guard.Validate(ErrBatchApplyStatusCommandIsNotConstructed)
}

// OrderIDs returns a copy of the targeted order ids in request order.
func (c BatchApplyStatusCommand) OrderIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.orderIDs...)
}

// Status returns the status applied to every order.
func (c BatchApplyStatusCommand) Status() order.Status { return c.status }

// Reason returns the reason recorded for every order.
func (c BatchApplyStatusCommand) Reason() string { return c.reason }

// OperatorID returns the acting operator, or nil for system changes.
func (c BatchApplyStatusCommand) OperatorID() *kernel.UUID { return c.operatorID }

// BatchApplyStatusResult aggregates the outcome. Errors holds one message per failed order.
type BatchApplyStatusResult struct {
	Success int
	Failed  int
	Errors  []string
}
