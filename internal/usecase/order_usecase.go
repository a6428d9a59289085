package usecase

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput carries a postal address through a command.
type AddressInput struct {
	Street     string `json:"street" validate:"required,max=200"`
	City       string `json:"city" validate:"required,max=100"`
	State      string `json:"state" validate:"required,max=100"`
	PostalCode string `json:"postalCode" validate:"required,max=20"`
	Country    string `json:"country" validate:"required,max=100"`
}

// OrderLineInput is one requested (product, quantity) pair. The same
// product may appear on several lines; placement merges them.
type OrderLineInput struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// PlaceOrderInput defines the data required to place an order.
type PlaceOrderInput struct {
	CustomerName    string           `json:"customerName" validate:"required,max=200"`
	CustomerEmail   string           `json:"customerEmail" validate:"required,email,max=320"`
	ShippingAddress AddressInput     `json:"shippingAddress" validate:"required"`
	Currency        string           `json:"currency" validate:"required,len=3,alpha"`
	Notes           string           `json:"notes" validate:"max=1000"`
	Lines           []OrderLineInput `json:"lines" validate:"required,min=1,dive"`
	Actor           string           `json:"actor" validate:"required,max=100"`
}

// UpdateOrderStatusInput defines an order status transition request.
type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed processing shipped delivered cancelled"`
	Actor  string `json:"actor" validate:"required,max=100"`
}

// CancelOrderInput defines an order cancellation request.
type CancelOrderInput struct {
	Reason string `json:"reason" validate:"required,max=500"`
	Actor  string `json:"actor" validate:"required,max=100"`
}

// ListOrdersInput narrows the read-side order projection.
type ListOrdersInput struct {
	Status        string `json:"status" validate:"omitempty,oneof=pending confirmed processing shipped delivered cancelled"`
	CustomerEmail string `json:"customerEmail" validate:"omitempty,email"`
	Limit         int    `json:"limit" validate:"gte=0,lte=200"`
	Offset        int    `json:"offset" validate:"gte=0"`
}

// OrderUsecase defines the order-related business operations the delivery
// layer depends on. PlaceOrder is the cross-aggregate workflow: it
// validates every line before mutating anything, then decrements stock and
// inserts the order under one unit-of-work commit.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, input *UpdateOrderStatusInput) (*entity.Order, error)
	CancelOrder(ctx context.Context, id uuid.UUID, input *CancelOrderInput) (*entity.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetOrderByNumber(ctx context.Context, number string) (*entity.Order, error)
	ListOrders(ctx context.Context, input *ListOrdersInput) ([]*entity.Order, error)
}
