package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money and normalize currency", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("1500.50"), " twd ")

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "TWD", m.Currency())
		assert.True(t, m.Amount().Equal(decimal.RequireFromString("1500.5")))
		assert.Equal(t, "1500.50 TWD", m.String())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1), "TWD")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-1 is negative")
	})

	t.Run("should reject sub-cent amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.RequireFromString("19.999"), "TWD")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "19.999 has more than 2 decimal places")
	})

	t.Run("should accept trailing zeros beyond the scale", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("19.900"), "TWD")

		require.NoError(t, err)
		assert.Equal(t, "19.90 TWD", m.String())
	})

	t.Run("should require currency", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(1), "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var m kernel.Money

		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, m.Validate())
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	price, _ := kernel.NewMoney(decimal.NewFromInt(1500), "TWD")

	t.Run("should multiply by quantity", func(t *testing.T) {
		total, err := price.Multiply(3)

		require.NoError(t, err)
		assert.True(t, total.Amount().Equal(decimal.NewFromInt(4500)))
	})

	t.Run("should reject negative quantity", func(t *testing.T) {
		_, err := price.Multiply(-1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should add same currency", func(t *testing.T) {
		sum, err := price.Add(price)

		require.NoError(t, err)
		assert.True(t, sum.Amount().Equal(decimal.NewFromInt(3000)))
	})

	t.Run("should reject mixed currencies", func(t *testing.T) {
		usd, _ := kernel.NewMoney(decimal.NewFromInt(10), "USD")

		_, err := price.Add(usd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "currencies differ")
	})
}
