// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product id or SKU does not resolve.
var ErrProductNotFound = errors.New("product not found")

// ErrInsufficientStock is returned by DecrementStock when the conditional
// update affects no row because available stock is below the requested
// amount.
var ErrInsufficientStock = errors.New("insufficient stock")

// ProductFilter narrows List results for the read-side projection.
type ProductFilter struct {
	ActiveOnly   bool
	LowStockOnly bool
	Limit        int
	Offset       int
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDWithChildren retrieves a product including its details and images.
	FindByIDWithChildren(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindBySku retrieves a single product by its natural key.
	FindBySku(ctx context.Context, sku entity.Sku) (*entity.Product, error)

	// List returns products matching the filter for read-side projection.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// Create persists a new product aggregate.
	Create(ctx context.Context, product *entity.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product. Referential protection is the handler's job.
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock atomically subtracts quantity from the product's stock,
	// succeeding only if the remaining stock stays non-negative. This is the
	// storage-boundary check that closes the concurrent-placement race.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}
