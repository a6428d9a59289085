// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks. Every input struct is
// a command: it carries everything its handler needs and passes through the
// structural validation pipeline before the handler runs.
package usecase

import (
	"context"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to add a product to the catalog.
type CreateProductInput struct {
	Name              string `json:"name" validate:"required,max=200"`
	Description       string `json:"description" validate:"max=2000"`
	PriceAmount       string `json:"priceAmount" validate:"required"`
	Currency          string `json:"currency" validate:"required,len=3,alpha"`
	Sku               string `json:"sku" validate:"required,min=3,max=20,alphanum"`
	StockQuantity     int    `json:"stockQuantity" validate:"gte=0"`
	LowStockThreshold int    `json:"lowStockThreshold" validate:"gte=0"`
	Actor             string `json:"actor" validate:"required,max=100"`
}

// UpdateProductInput defines the data required to update descriptive fields and price.
type UpdateProductInput struct {
	Name              string `json:"name" validate:"required,max=200"`
	Description       string `json:"description" validate:"max=2000"`
	PriceAmount       string `json:"priceAmount" validate:"required"`
	Currency          string `json:"currency" validate:"required,len=3,alpha"`
	LowStockThreshold int    `json:"lowStockThreshold" validate:"gte=0"`
	Active            bool   `json:"active"`
	Actor             string `json:"actor" validate:"required,max=100"`
}

// UpdateStockInput defines a stock mutation: set outright, or adjust up/down.
type UpdateStockInput struct {
	Operation string `json:"operation" validate:"required,oneof=set increase decrease"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
	Actor     string `json:"actor" validate:"required,max=100"`
}

// ProductDetailInput defines a key/value attribute mutation.
type ProductDetailInput struct {
	Key   string `json:"key" validate:"required,max=100"`
	Value string `json:"value" validate:"max=500"`
	Actor string `json:"actor" validate:"required,max=100"`
}

// ProductImageInput defines an image addition.
type ProductImageInput struct {
	URL       string `json:"url" validate:"required,url,max=500"`
	AltText   string `json:"altText" validate:"max=200"`
	IsPrimary bool   `json:"isPrimary"`
	Actor     string `json:"actor" validate:"required,max=100"`
}

// ListProductsInput narrows the read-side product projection.
type ListProductsInput struct {
	ActiveOnly   bool `json:"activeOnly"`
	LowStockOnly bool `json:"lowStockOnly"`
	Limit        int  `json:"limit" validate:"gte=0,lte=200"`
	Offset       int  `json:"offset" validate:"gte=0"`
}

// ProductUsecase defines the product-related business operations the
// delivery layer depends on.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	UpdateStock(ctx context.Context, id uuid.UUID, input *UpdateStockInput) (*entity.Product, error)
	AddProductDetail(ctx context.Context, id uuid.UUID, input *ProductDetailInput) (*entity.Product, error)
	RemoveProductDetail(ctx context.Context, id uuid.UUID, key, actor string) (*entity.Product, error)
	AddProductImage(ctx context.Context, id uuid.UUID, input *ProductImageInput) (*entity.Product, error)
	RemoveProductImage(ctx context.Context, id, imageID uuid.UUID, actor string) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetProductBySku(ctx context.Context, sku string) (*entity.Product, error)
	ListProducts(ctx context.Context, input *ListProductsInput) ([]*entity.Product, error)
}
