package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// ArrivalState tracks whether a line item has physically reached the staging point.
type ArrivalState string

const (
	ArrivalPending ArrivalState = "pending"
	ArrivalArrived ArrivalState = "arrived"
	ArrivalPartial ArrivalState = "partial"
	ArrivalDamaged ArrivalState = "damaged"
	ArrivalMissing ArrivalState = "missing"
)

// ParseArrivalState converts a stored or transported value into an ArrivalState.
func ParseArrivalState(s string) (ArrivalState, error) {
	a := ArrivalState(s)
	if err := a.Validate(); err != nil {
		return "", err
	}
	return a, nil
}

// Validate returns an error for values outside the vocabulary.
func (a ArrivalState) Validate() error {
	switch a {
	case ArrivalPending, ArrivalArrived, ArrivalPartial, ArrivalDamaged, ArrivalMissing:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("arrival state", fmt.Errorf("%q is not a valid state", string(a)))
	}
}

// ConsolidationState tracks whether a line item was merged into a consolidated shipment.
type ConsolidationState string

const (
	ConsolidationNone         ConsolidationState = "none"
	ConsolidationConsolidated ConsolidationState = "consolidated"
)

// ParseConsolidationState converts a stored value into a ConsolidationState.
func ParseConsolidationState(s string) (ConsolidationState, error) {
	c := ConsolidationState(s)
	if c != ConsolidationNone && c != ConsolidationConsolidated {
		return "", errs.NewValueIsInvalidErrorWithCause("consolidation state", fmt.Errorf("%q is not a valid state", s))
	}
	return c, nil
}
