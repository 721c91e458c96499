package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// PaymentStatus is the payment side of an order. The engine never changes it;
// it only decides whether an order is still open for consolidation.
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentConfirmed  PaymentStatus = "confirmed"
	PaymentPaid       PaymentStatus = "paid"
	PaymentCancelled  PaymentStatus = "cancelled"
	PaymentRefunded   PaymentStatus = "refunded"
)

// OpenPaymentStatuses are the statuses that keep an order eligible for consolidation.
func OpenPaymentStatuses() []PaymentStatus {
	return []PaymentStatus{PaymentPending, PaymentProcessing, PaymentConfirmed}
}

// ParsePaymentStatus converts a stored or transported value into a PaymentStatus.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	p := PaymentStatus(s)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// Validate returns an error for values outside the vocabulary.
func (p PaymentStatus) Validate() error {
	switch p {
	case PaymentPending, PaymentProcessing, PaymentConfirmed, PaymentPaid, PaymentCancelled, PaymentRefunded:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment status", fmt.Errorf("%q is not a valid status", string(p)))
	}
}

// IsOpen reports whether the order is still pending, processing or confirmed.
func (p PaymentStatus) IsOpen() bool {
	return p == PaymentPending || p == PaymentProcessing || p == PaymentConfirmed
}
