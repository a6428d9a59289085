package entity

import (
	"testing"

	domainerrors "shop/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount, currency string) Money {
	t.Helper()

	dec, err := decimal.NewFromString(amount)
	require.NoError(t, err)
	m, err := NewMoney(dec, currency)
	require.NoError(t, err)

	return m
}

func TestNewMoneyNormalizesCurrency(t *testing.T) {
	m := mustMoney(t, "19.99", "usd")

	assert.Equal(t, "USD", m.Currency())
	assert.Equal(t, "19.99 USD", m.String())
}

func TestNewMoneyRejectsNegativeAmount(t *testing.T) {
	_, err := NewMoney(decimal.NewFromInt(-1), "USD")

	require.ErrorIs(t, err, domainerrors.ErrInvariantViolation)
}

func TestNewMoneyRejectsBadCurrency(t *testing.T) {
	cases := []string{"", "US", "USDT", "U5D"}
	for _, currency := range cases {
		_, err := NewMoney(decimal.NewFromInt(1), currency)
		assert.ErrorIs(t, err, domainerrors.ErrInvariantViolation, "currency %q", currency)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := mustMoney(t, "10.50", "USD")
	b := mustMoney(t, "4.50", "USD")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Equals(mustMoney(t, "15.00", "USD")))

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.True(t, diff.Equals(mustMoney(t, "6.00", "USD")))

	triple, err := b.Multiply(3)
	require.NoError(t, err)
	assert.True(t, triple.Equals(mustMoney(t, "13.50", "USD")))
}

func TestMoneySubtractBelowZeroFails(t *testing.T) {
	a := mustMoney(t, "5", "USD")
	b := mustMoney(t, "6", "USD")

	_, err := a.Subtract(b)

	require.ErrorIs(t, err, domainerrors.ErrInvariantViolation)
}

func TestMoneyCurrencyMismatchFails(t *testing.T) {
	usd := mustMoney(t, "5", "USD")
	eur := mustMoney(t, "5", "EUR")

	_, err := usd.Add(eur)
	require.ErrorIs(t, err, domainerrors.ErrInvariantViolation)

	_, err = usd.Subtract(eur)
	require.ErrorIs(t, err, domainerrors.ErrInvariantViolation)
}

func TestMoneyMultiplyRejectsNegativeFactor(t *testing.T) {
	m := mustMoney(t, "5", "USD")

	_, err := m.Multiply(-1)

	require.ErrorIs(t, err, domainerrors.ErrInvariantViolation)
}
