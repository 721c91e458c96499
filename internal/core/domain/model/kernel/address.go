package kernel

import (
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

// Address is an immutable shipping destination. Orders carry one as a snapshot
// taken at checkout; consolidated orders copy the first contributing order's.
type Address struct {
	recipient  string
	phone      string
	line1      string
	line2      string
	city       string
	postalCode string
	country    string
	guard      guard.ConstructorGuard
}

// AddressFields groups the raw attributes accepted by NewAddress.
type AddressFields struct {
	Recipient  string
	Phone      string
	Line1      string
	Line2      string
	City       string
	PostalCode string
	Country    string
}

// NewAddress validates the mandatory parts of a destination: recipient, first line and country.
func NewAddress(f AddressFields) (Address, error) {
	trim := strings.TrimSpace
	a := Address{
		recipient:  trim(f.Recipient),
		phone:      trim(f.Phone),
		line1:      trim(f.Line1),
		line2:      trim(f.Line2),
		city:       trim(f.City),
		postalCode: trim(f.PostalCode),
		country:    strings.ToUpper(trim(f.Country)),
		guard:      guard.NewConstructorGuard(),
	}

	switch {
	case a.recipient == "":
		return Address{}, errs.NewValueIsRequiredError("address recipient")
	case a.line1 == "":
		return Address{}, errs.NewValueIsRequiredError("address line1")
	case a.country == "":
		return Address{}, errs.NewValueIsRequiredError("address country")
	}

	return a, nil
}

// Fields returns the raw attributes, used by persistence and transport mappers.
func (a Address) Fields() AddressFields {
	return AddressFields{
		Recipient:  a.recipient,
		Phone:      a.phone,
		Line1:      a.line1,
		Line2:      a.line2,
		City:       a.city,
		PostalCode: a.postalCode,
		Country:    a.country,
	}
}

// Validate ensures the value was constructed.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// IsEqual compares all attributes.
func (a Address) IsEqual(other Address) bool {
	return a.Fields() == other.Fields()
}
