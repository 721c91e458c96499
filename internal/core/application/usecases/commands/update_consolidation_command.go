package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/consolidation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrUpdateConsolidationStatusCommandIsNotConstructed = errors.New(
		"UpdateConsolidationStatusCommand must be created via NewUpdateConsolidationStatusCommand constructor",
	)
	ErrUpdateConsolidatedDestinationCommandIsNotConstructed = errors.New(
		"UpdateConsolidatedDestinationCommand must be created via NewUpdateConsolidatedDestinationCommand constructor",
	)
)

// UpdateConsolidationStatusCommand moves a consolidated order along its lifecycle.
type UpdateConsolidationStatusCommand struct {
	consolidatedOrderID kernel.UUID
	status              consolidation.Status
	guard               guard.ConstructorGuard
}

// NewUpdateConsolidationStatusCommand validates the identifier and the status value.
// Whether the change is allowed is decided by the aggregate.
func NewUpdateConsolidationStatusCommand(
	consolidatedOrderID kernel.UUID,
	status consolidation.Status,
) (UpdateConsolidationStatusCommand, error) {
	if err := consolidatedOrderID.Validate(); err != nil {
		return UpdateConsolidationStatusCommand{}, errs.NewValueIsInvalidErrorWithCause("consolidated order id", err)
	}
	if err := status.Validate(); err != nil {
		return UpdateConsolidationStatusCommand{}, err
	}
	return UpdateConsolidationStatusCommand{
		consolidatedOrderID: consolidatedOrderID,
		status:              status,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateConsolidationStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateConsolidationStatusCommandIsNotConstructed)
}

// ConsolidatedOrderID returns the consolidated order to update.
func (c UpdateConsolidationStatusCommand) ConsolidatedOrderID() kernel.UUID {
	return c.consolidatedOrderID
}

// Status returns the target consolidation status.
func (c UpdateConsolidationStatusCommand) Status() consolidation.Status { return c.status }

// UpdateConsolidatedDestinationCommand replaces the shipping destination of a
// consolidated order.
type UpdateConsolidatedDestinationCommand struct {
	consolidatedOrderID kernel.UUID
	destination         kernel.Address
	guard               guard.ConstructorGuard
}

// NewUpdateConsolidatedDestinationCommand validates the identifier and the address.
func NewUpdateConsolidatedDestinationCommand(
	consolidatedOrderID kernel.UUID,
	destination kernel.AddressFields,
) (UpdateConsolidatedDestinationCommand, error) {
	if err := consolidatedOrderID.Validate(); err != nil {
		return UpdateConsolidatedDestinationCommand{}, errs.NewValueIsInvalidErrorWithCause("consolidated order id", err)
	}
	address, err := kernel.NewAddress(destination)
	if err != nil {
		return UpdateConsolidatedDestinationCommand{}, err
	}
	return UpdateConsolidatedDestinationCommand{
		consolidatedOrderID: consolidatedOrderID,
		destination:         address,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateConsolidatedDestinationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateConsolidatedDestinationCommandIsNotConstructed)
}

// ConsolidatedOrderID returns the consolidated order to update.
func (c UpdateConsolidatedDestinationCommand) ConsolidatedOrderID() kernel.UUID {
	return c.consolidatedOrderID
}

// Destination returns the replacement shipping address.
func (c UpdateConsolidatedDestinationCommand) Destination() kernel.Address { return c.destination }
