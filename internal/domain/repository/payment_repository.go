package repository

import (
	"context"
	"errors"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPaymentNotFound is returned when a payment id does not resolve.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository defines the standard operations for payment persistence.
type PaymentRepository interface {
	// FindByID retrieves a single payment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// FindByOrderID returns all payments recorded for an order.
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.Payment, error)

	// Create persists a new payment aggregate.
	Create(ctx context.Context, payment *entity.Payment) error

	// Update persists changes to an existing payment aggregate.
	Update(ctx context.Context, payment *entity.Payment) error

	// Delete removes a payment.
	Delete(ctx context.Context, id uuid.UUID) error
}
