package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	valid := kernel.AddressFields{
		Recipient:  "Lin Mei",
		Phone:      "0912-345-678",
		Line1:      "No. 7, Sec. 2, Zhongshan Rd.",
		City:       "Taipei",
		PostalCode: "104",
		Country:    "tw",
	}

	t.Run("should create address and normalize country", func(t *testing.T) {
		a, err := kernel.NewAddress(valid)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "TW", a.Fields().Country)
		assert.Equal(t, "Lin Mei", a.Fields().Recipient)
	})

	t.Run("should require recipient, line1 and country", func(t *testing.T) {
		for _, mutate := range []func(*kernel.AddressFields){
			func(f *kernel.AddressFields) { f.Recipient = " " },
			func(f *kernel.AddressFields) { f.Line1 = "" },
			func(f *kernel.AddressFields) { f.Country = "" },
		} {
			f := valid
			mutate(&f)

			_, err := kernel.NewAddress(f)

			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})

	t.Run("should compare by value", func(t *testing.T) {
		a, _ := kernel.NewAddress(valid)
		b, _ := kernel.NewAddress(valid)
		other := valid
		other.City = "Taichung"
		c, _ := kernel.NewAddress(other)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var a kernel.Address

		assert.Equal(t, kernel.ErrAddressIsNotConstructed, a.Validate())
	})
}
