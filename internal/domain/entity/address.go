package entity

import (
	"fmt"
	"strings"

	domainerrors "shop/internal/domain/errors"
)

// Address is a postal address value object. All fields are required and
// length-bounded; the zero value is tolerated only as an uninitialized
// placeholder and never passes validation.
type Address struct {
	street     string
	city       string
	state      string
	postalCode string
	country    string
}

// NewAddress creates a validated Address.
func NewAddress(street, city, state, postalCode, country string) (Address, error) {
	return newValueObject(Address{
		street:     strings.TrimSpace(street),
		city:       strings.TrimSpace(city),
		state:      strings.TrimSpace(state),
		postalCode: strings.TrimSpace(postalCode),
		country:    strings.TrimSpace(country),
	})
}

func (a Address) validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"street", a.street, 200},
		{"city", a.city, 100},
		{"state", a.state, 100},
		{"postalCode", a.postalCode, 20},
		{"country", a.country, 100},
	}

	for _, f := range fields {
		if f.value == "" {
			return domainerrors.ErrValidationFailed.WrapMessage(
				fmt.Sprintf("address %s is required", f.name))
		}
		if len(f.value) > f.max {
			return domainerrors.ErrValidationFailed.WrapMessage(
				fmt.Sprintf("address %s exceeds %d characters", f.name, f.max))
		}
	}

	return nil
}

// Street returns the street line.
func (a Address) Street() string { return a.street }

// City returns the city.
func (a Address) City() string { return a.city }

// State returns the state or province.
func (a Address) State() string { return a.state }

// PostalCode returns the postal code.
func (a Address) PostalCode() string { return a.postalCode }

// Country returns the country.
func (a Address) Country() string { return a.country }

// IsZero reports whether the address is entirely uninitialized.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Equals reports value equality across all fields.
func (a Address) Equals(other Address) bool {
	return a == other
}

func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s %s, %s", a.street, a.city, a.state, a.postalCode, a.country)
}
