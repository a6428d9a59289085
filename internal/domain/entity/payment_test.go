package entity

import (
	"testing"

	domainerrors "shop/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPayment(t *testing.T) *Payment {
	t.Helper()

	payment, err := NewPayment(uuid.New(), mustMoney(t, "50", "USD"), "card")
	require.NoError(t, err)

	return payment
}

func TestNewPaymentStartsPending(t *testing.T) {
	payment := buildPayment(t)

	assert.Equal(t, PaymentStatusPending, payment.Status())
	assert.Empty(t, payment.TransactionID())
	assert.Empty(t, payment.DomainEvents())
}

func TestNewPaymentRequiresOrderID(t *testing.T) {
	_, err := NewPayment(uuid.Nil, mustMoney(t, "50", "USD"), "card")

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPaymentSettlesSuccessfully(t *testing.T) {
	payment := buildPayment(t)

	require.NoError(t, payment.UpdateStatus(PaymentStatusSuccessful, "txn-12345"))

	assert.Equal(t, PaymentStatusSuccessful, payment.Status())
	assert.Equal(t, "txn-12345", payment.TransactionID())

	events := payment.DomainEvents()
	require.Len(t, events, 1)
	change, ok := events[0].(PaymentStatusChanged)
	require.True(t, ok)
	assert.Equal(t, PaymentStatusPending, change.OldStatus)
	assert.Equal(t, PaymentStatusSuccessful, change.NewStatus)
}

func TestPaymentKeepsTransactionIDWhenEmpty(t *testing.T) {
	payment := buildPayment(t)
	require.NoError(t, payment.UpdateStatus(PaymentStatusFailed, "txn-1"))

	assert.Equal(t, "txn-1", payment.TransactionID())
}

func TestPaymentRejectsSelfTransition(t *testing.T) {
	payment := buildPayment(t)

	err := payment.UpdateStatus(PaymentStatusPending, "")

	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "already pending")
}

func TestPaymentRejectsTerminalTransition(t *testing.T) {
	payment := buildPayment(t)
	require.NoError(t, payment.UpdateStatus(PaymentStatusFailed, ""))

	err := payment.UpdateStatus(PaymentStatusSuccessful, "")

	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "terminal")
}

func TestPaymentRejectsUnknownStatus(t *testing.T) {
	payment := buildPayment(t)

	err := payment.UpdateStatus(PaymentStatus("refunded"), "")

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
