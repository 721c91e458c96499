package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrScanOpportunitiesQueryIsNotConstructed = errors.New(
	"ScanOpportunitiesQuery must be created via NewScanOpportunitiesQuery constructor",
)

// ScanOpportunitiesQuery looks for consolidation candidates among a customer's open
// orders, optionally bounded by order creation time.
type ScanOpportunitiesQuery struct {
	customerID kernel.UUID
	created    ports.DateRange
	guard      guard.ConstructorGuard
}

// NewScanOpportunitiesQuery validates the customer and that the range is not inverted.
func NewScanOpportunitiesQuery(customerID kernel.UUID, created ports.DateRange) (ScanOpportunitiesQuery, error) {
	if err := customerID.Validate(); err != nil {
		return ScanOpportunitiesQuery{}, errs.NewValueIsInvalidErrorWithCause("customer id", err)
	}
	if created.From != nil && created.To != nil && created.To.Before(*created.From) {
		return ScanOpportunitiesQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"date range", errors.New("end is before start"))
	}
	return ScanOpportunitiesQuery{customerID: customerID, created: created, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ScanOpportunitiesQuery) Validate() error {
	return q.guard.Validate(ErrScanOpportunitiesQueryIsNotConstructed)
}

// CustomerID returns the customer to scan.
func (q ScanOpportunitiesQuery) CustomerID() kernel.UUID { return q.customerID }

// Created returns the optional created_at bounds.
func (q ScanOpportunitiesQuery) Created() ports.DateRange { return q.created }
