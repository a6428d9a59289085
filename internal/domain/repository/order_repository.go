package repository

import (
	"context"
	"errors"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order id or number does not resolve.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows List results for the read-side projection.
type OrderFilter struct {
	Status        entity.OrderStatus
	CustomerEmail string
	Limit         int
	Offset        int
}

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDWithDetails retrieves an order including its line items.
	FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByOrderNumber retrieves an order by its natural key.
	FindByOrderNumber(ctx context.Context, number entity.OrderNumber) (*entity.Order, error)

	// List returns orders matching the filter for read-side projection.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// Create persists a new order aggregate including its line items.
	Create(ctx context.Context, order *entity.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, order *entity.Order) error

	// Delete removes an order and its line items.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsWithProduct reports whether any order line references the
	// product. Used by the product delete handler for the in-use guard.
	ExistsWithProduct(ctx context.Context, productID uuid.UUID) (bool, error)
}
