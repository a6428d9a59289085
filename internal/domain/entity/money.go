package entity

import (
	"fmt"
	"strings"
	"unicode"

	domainerrors "shop/internal/domain/errors"

	"github.com/shopspring/decimal"
)

// Money is an immutable amount in a single currency. Amounts are never
// negative and arithmetic across currencies is a programming error, not a
// user error.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney creates a Money value. The amount must be non-negative and the
// currency exactly three letters (normalized to upper case).
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	return newValueObject(Money{
		amount:   amount,
		currency: strings.ToUpper(currency),
	})
}

// ZeroMoney returns a zero amount in the given currency.
func ZeroMoney(currency string) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

func (m Money) validate() error {
	if m.amount.IsNegative() {
		return domainerrors.ErrInvariantViolation.WrapMessage(
			fmt.Sprintf("money amount %s is negative", m.amount))
	}
	if len(m.currency) != 3 {
		return domainerrors.ErrInvariantViolation.WrapMessage(
			fmt.Sprintf("currency %q must be exactly 3 letters", m.currency))
	}
	for _, r := range m.currency {
		if !unicode.IsLetter(r) {
			return domainerrors.ErrInvariantViolation.WrapMessage(
				fmt.Sprintf("currency %q must contain only letters", m.currency))
		}
	}

	return nil
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the 3-letter currency code.
func (m Money) Currency() string {
	return m.currency
}

// Add returns the sum of two amounts in the same currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return Money{}, err
	}

	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Subtract returns the difference of two amounts in the same currency.
// A result below zero is an invariant violation.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return Money{}, err
	}

	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, domainerrors.ErrInvariantViolation.WrapMessage(
			fmt.Sprintf("subtracting %s from %s yields a negative amount", other.amount, m.amount))
	}

	return Money{amount: result, currency: m.currency}, nil
}

// Multiply scales the amount by a non-negative integer factor.
func (m Money) Multiply(factor int) (Money, error) {
	if factor < 0 {
		return Money{}, domainerrors.ErrInvariantViolation.WrapMessage(
			fmt.Sprintf("money factor %d is negative", factor))
	}

	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(factor))), currency: m.currency}, nil
}

// Equals reports value equality across amount and currency.
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String renders the amount with its currency code, e.g. "19.99 USD".
func (m Money) String() string {
	return m.amount.String() + " " + m.currency
}

func (m Money) assertSameCurrency(other Money) error {
	if m.currency != other.currency {
		return domainerrors.ErrInvariantViolation.WrapMessage(
			fmt.Sprintf("currency mismatch: %s vs %s", m.currency, other.currency))
	}

	return nil
}
