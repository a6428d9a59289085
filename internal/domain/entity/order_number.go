package entity

import (
	"fmt"
	"regexp"
	"time"

	domainerrors "shop/internal/domain/errors"
)

var orderNumberPattern = regexp.MustCompile(`^ORD-\d{8}-[A-Z0-9]{5}$`)

const orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandSource is the random source injected into identifier generation so
// aggregate construction stays deterministic under test. *rand.Rand from
// math/rand/v2 satisfies it.
type RandSource interface {
	IntN(n int) int
}

// OrderNumber is a human-readable order identifier in the form
// ORD-YYYYMMDD-XXXXX. Global uniqueness is enforced by the storage layer's
// unique index, not here.
type OrderNumber struct {
	value string
}

// NewOrderNumber validates an existing order number string.
func NewOrderNumber(raw string) (OrderNumber, error) {
	return newValueObject(OrderNumber{value: raw})
}

// GenerateOrderNumber builds a fresh order number from the clock date and
// five random characters drawn from the injected source.
func GenerateOrderNumber(now time.Time, rnd RandSource) OrderNumber {
	suffix := make([]byte, 5)
	for i := range suffix {
		suffix[i] = orderNumberAlphabet[rnd.IntN(len(orderNumberAlphabet))]
	}

	return OrderNumber{value: fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)}
}

func (n OrderNumber) validate() error {
	if !orderNumberPattern.MatchString(n.value) {
		return domainerrors.ErrValidationFailed.WrapMessage(
			fmt.Sprintf("order number %q does not match ORD-YYYYMMDD-XXXXX", n.value))
	}

	return nil
}

// Value returns the order number string.
func (n OrderNumber) Value() string {
	return n.value
}

// Equals reports value equality.
func (n OrderNumber) Equals(other OrderNumber) bool {
	return n.value == other.value
}

func (n OrderNumber) String() string {
	return n.value
}
