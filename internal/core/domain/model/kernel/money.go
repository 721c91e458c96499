package kernel

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when a Money value was not created via NewMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or Zero")

// ErrCurrencyMismatch is the cause attached when amounts in different currencies are combined.
var ErrCurrencyMismatch = errors.New("currencies differ")

// MoneyScale is the number of fractional digits an amount may carry. Amounts are
// stored as numeric(14,2), so a finer amount would not read back unchanged.
const MoneyScale = 2

// Money is a non-negative amount in a single currency. Amounts are exact decimals;
// the engine never rounds except where a rule asks for a floor.
type Money struct {
	amount   decimal.Decimal
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney validates and creates an amount. Currency is normalized to upper case.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return Money{}, errs.NewValueIsRequiredError("currency")
	}
	if err := CheckAmount(amount); err != nil {
		return Money{}, err
	}

	return Money{
		amount:   amount,
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// CheckAmount rejects negative amounts and amounts with more than MoneyScale
// fractional digits. Trailing zeros do not count, so 1500.500 is accepted.
func CheckAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	if !amount.Equal(amount.Truncate(MoneyScale)) {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s has more than %d decimal places", amount.String(), MoneyScale),
		)
	}
	return nil
}

// Zero returns a zero amount in the given currency.
func Zero(currency string) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the ISO currency code, e.g. "TWD".
func (m Money) Currency() string {
	return m.currency
}

// Validate ensures the value was constructed.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Add returns the sum of both amounts. Currencies must match.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"currency",
			fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.currency, other.currency),
		)
	}
	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Multiply returns the amount multiplied by a non-negative quantity.
func (m Money) Multiply(quantity int) (Money, error) {
	if quantity < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}
	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(quantity))), m.currency)
}

// IsEqual compares amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String renders the amount with two decimals followed by the currency, e.g. "2000.00 TWD".
func (m Money) String() string {
	return m.amount.StringFixed(2) + " " + m.currency
}
