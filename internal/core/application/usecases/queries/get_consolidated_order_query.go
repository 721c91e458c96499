package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetConsolidatedOrderQueryIsNotConstructed = errors.New(
	"GetConsolidatedOrderQuery must be created via NewGetConsolidatedOrderQuery constructor",
)

// GetConsolidatedOrderQuery reads one consolidated order with its item snapshot.
type GetConsolidatedOrderQuery struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

// NewGetConsolidatedOrderQuery creates the query.
func NewGetConsolidatedOrderQuery(id kernel.UUID) (GetConsolidatedOrderQuery, error) {
	if err := id.Validate(); err != nil {
		return GetConsolidatedOrderQuery{}, errs.NewValueIsInvalidErrorWithCause("consolidated order id", err)
	}
	return GetConsolidatedOrderQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetConsolidatedOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetConsolidatedOrderQueryIsNotConstructed)
}

// ID returns the consolidated order identifier.
func (q GetConsolidatedOrderQuery) ID() kernel.UUID { return q.id }
