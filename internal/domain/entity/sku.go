package entity

import (
	"fmt"
	"regexp"
	"strings"

	domainerrors "shop/internal/domain/errors"
)

var skuPattern = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

// Sku is a stock keeping unit: 3 to 20 uppercase alphanumeric characters.
// Input is case-normalized on creation.
type Sku struct {
	value string
}

// NewSku creates a Sku from raw input, upper-casing it first.
func NewSku(raw string) (Sku, error) {
	return newValueObject(Sku{value: strings.ToUpper(strings.TrimSpace(raw))})
}

func (s Sku) validate() error {
	if !skuPattern.MatchString(s.value) {
		return domainerrors.ErrValidationFailed.WrapMessage(
			fmt.Sprintf("sku %q must be 3-20 uppercase alphanumeric characters", s.value))
	}

	return nil
}

// Value returns the normalized SKU string.
func (s Sku) Value() string {
	return s.value
}

// Equals reports value equality.
func (s Sku) Equals(other Sku) bool {
	return s.value == other.value
}

func (s Sku) String() string {
	return s.value
}
