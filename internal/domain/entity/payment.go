package entity

import (
	"fmt"
	"time"

	domainerrors "shop/internal/domain/errors"

	"github.com/google/uuid"
)

// Payment is the payment aggregate root. It depends one-way on an existing
// order and settles exactly once: Successful and Failed are terminal.
type Payment struct {
	eventRecorder

	id            uuid.UUID
	orderID       uuid.UUID
	status        PaymentStatus
	amount        Money
	paymentMethod string
	transactionID string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewPayment creates a pending payment for an order.
func NewPayment(orderID uuid.UUID, amount Money, paymentMethod string) (*Payment, error) {
	if orderID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("order id is required")
	}

	now := time.Now().UTC()

	return &Payment{
		id:            uuid.New(),
		orderID:       orderID,
		status:        PaymentStatusPending,
		amount:        amount,
		paymentMethod: paymentMethod,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// RehydratePayment rebuilds a payment from persisted state without raising
// events. It is intended for the persistence layer only.
func RehydratePayment(
	id, orderID uuid.UUID,
	status PaymentStatus,
	amount Money,
	paymentMethod, transactionID string,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:            id,
		orderID:       orderID,
		status:        status,
		amount:        amount,
		paymentMethod: paymentMethod,
		transactionID: transactionID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// ID returns the aggregate identifier.
func (p *Payment) ID() uuid.UUID { return p.id }

// OrderID returns the settled order's identifier.
func (p *Payment) OrderID() uuid.UUID { return p.orderID }

// Status returns the current lifecycle state.
func (p *Payment) Status() PaymentStatus { return p.status }

// Amount returns the payment amount.
func (p *Payment) Amount() Money { return p.amount }

// PaymentMethod returns the optional payment method label.
func (p *Payment) PaymentMethod() string { return p.paymentMethod }

// TransactionID returns the optional external transaction reference.
func (p *Payment) TransactionID() string { return p.transactionID }

// CreatedAt returns the creation timestamp.
func (p *Payment) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the last modification timestamp.
func (p *Payment) UpdatedAt() time.Time { return p.updatedAt }

// UpdateStatus moves the payment along its lifecycle. Self-transitions and
// moves out of a terminal state are rejected with distinct messages; every
// successful transition raises PaymentStatusChanged.
func (p *Payment) UpdateStatus(newStatus PaymentStatus, transactionID string) error {
	if !newStatus.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage(
			fmt.Sprintf("unknown payment status %q", newStatus))
	}
	if newStatus == p.status {
		return domainerrors.ErrInvalidTransition.WrapMessage(
			fmt.Sprintf("payment status is already %s", p.status))
	}
	if p.status.IsTerminal() {
		return domainerrors.ErrInvalidTransition.WrapMessage(
			fmt.Sprintf("payment status %s is terminal", p.status))
	}
	if !p.status.CanTransitionTo(newStatus) {
		return domainerrors.ErrInvalidTransition.WrapMessage(
			fmt.Sprintf("payment cannot move from %s to %s", p.status, newStatus))
	}

	old := p.status
	p.status = newStatus
	if transactionID != "" {
		p.transactionID = transactionID
	}
	p.updatedAt = time.Now().UTC()
	p.record(PaymentStatusChanged{
		PaymentID: p.id,
		OrderID:   p.orderID,
		OldStatus: old,
		NewStatus: newStatus,
		Timestamp: p.updatedAt,
	})

	return nil
}
