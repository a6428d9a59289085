package usecase

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePaymentInput defines the data required to record a payment attempt
// against an existing order.
type CreatePaymentInput struct {
	OrderID       string `json:"orderId" validate:"required,uuid"`
	Amount        string `json:"amount" validate:"required"`
	Currency      string `json:"currency" validate:"required,len=3,alpha"`
	PaymentMethod string `json:"paymentMethod" validate:"max=50"`
}

// UpdatePaymentStatusInput defines a payment settlement request.
type UpdatePaymentStatusInput struct {
	Status        string `json:"status" validate:"required,oneof=pending successful failed"`
	TransactionID string `json:"transactionId" validate:"max=100"`
}

// PaymentUsecase defines the payment-related business operations the
// delivery layer depends on.
type PaymentUsecase interface {
	CreatePayment(ctx context.Context, input *CreatePaymentInput) (*entity.Payment, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, input *UpdatePaymentStatusInput) (*entity.Payment, error)
	GetPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	ListPaymentsForOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.Payment, error)
}
