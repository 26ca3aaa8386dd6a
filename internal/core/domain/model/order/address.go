package order

import (
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not created through NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("Address must be created via NewAddress")

// Address is the shipping destination frozen into an order at checkout.
// It originates in the user's address book and is passed through unchanged;
// later edits to the address book never touch it.
type Address struct {
	fullName   string
	phone      string
	street     string
	city       string
	postalCode string
	country    string

	guard guard.ConstructorGuard
}

// NewAddress creates a shipping address. Street and city are required; the
// remaining fields are carried as given.
func NewAddress(fullName, phone, street, city, postalCode, country string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}

	return Address{
		fullName:   fullName,
		phone:      phone,
		street:     street,
		city:       city,
		postalCode: postalCode,
		country:    country,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Address was created via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// FullName returns the recipient's name.
func (a Address) FullName() string { return a.fullName }

// Phone returns the contact phone number.
func (a Address) Phone() string { return a.phone }

// Street returns the street line.
func (a Address) Street() string { return a.street }

// City returns the city.
func (a Address) City() string { return a.city }

// PostalCode returns the postal code.
func (a Address) PostalCode() string { return a.postalCode }

// Country returns the country.
func (a Address) Country() string { return a.country }
