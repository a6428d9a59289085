package entity

import (
	"fmt"
	"time"

	domainerrors "shop/internal/domain/errors"

	"github.com/google/uuid"
)

// ProductImage is a child of the Product aggregate. At most one image is
// primary at a time, enforced on insert.
type ProductImage struct {
	ID        uuid.UUID
	URL       string
	AltText   string
	IsPrimary bool
}

// Product is the catalog aggregate root. State is mutated only through
// behavior methods; children never leave the aggregate boundary.
type Product struct {
	eventRecorder

	id                uuid.UUID
	name              string
	description       string
	price             Money
	sku               Sku
	stock             StockQuantity
	lowStockThreshold int
	isActive          bool
	details           map[string]string
	images            []ProductImage
	createdAt         time.Time
	updatedAt         time.Time
	createdBy         string
	modifiedBy        string
}

// NewProduct creates an active product and records a ProductCreated event.
func NewProduct(name, description string, price Money, sku Sku, stock StockQuantity, lowStockThreshold int, actor string) (*Product, error) {
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("product name is required")
	}
	if lowStockThreshold < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("low stock threshold must be non-negative")
	}

	now := time.Now().UTC()
	product := &Product{
		id:                uuid.New(),
		name:              name,
		description:       description,
		price:             price,
		sku:               sku,
		stock:             stock,
		lowStockThreshold: lowStockThreshold,
		isActive:          true,
		details:           make(map[string]string),
		createdAt:         now,
		updatedAt:         now,
		createdBy:         actor,
		modifiedBy:        actor,
	}

	product.record(ProductCreated{
		ProductID: product.id,
		Name:      name,
		Sku:       sku.Value(),
		Price:     price,
		Timestamp: now,
	})

	return product, nil
}

// RehydrateProduct rebuilds a product from persisted state without raising
// events. It is intended for the persistence layer only.
func RehydrateProduct(
	id uuid.UUID,
	name, description string,
	price Money,
	sku Sku,
	stock StockQuantity,
	lowStockThreshold int,
	isActive bool,
	details map[string]string,
	images []ProductImage,
	createdAt, updatedAt time.Time,
	createdBy, modifiedBy string,
) *Product {
	if details == nil {
		details = make(map[string]string)
	}

	return &Product{
		id:                id,
		name:              name,
		description:       description,
		price:             price,
		sku:               sku,
		stock:             stock,
		lowStockThreshold: lowStockThreshold,
		isActive:          isActive,
		details:           details,
		images:            images,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		createdBy:         createdBy,
		modifiedBy:        modifiedBy,
	}
}

// ID returns the aggregate identifier.
func (p *Product) ID() uuid.UUID { return p.id }

// Name returns the product name.
func (p *Product) Name() string { return p.name }

// Description returns the optional product description.
func (p *Product) Description() string { return p.description }

// Price returns the current list price.
func (p *Product) Price() Money { return p.price }

// Sku returns the stock keeping unit.
func (p *Product) Sku() Sku { return p.sku }

// Stock returns the current stock quantity.
func (p *Product) Stock() StockQuantity { return p.stock }

// LowStockThreshold returns the low-stock signal threshold.
func (p *Product) LowStockThreshold() int { return p.lowStockThreshold }

// IsActive reports whether the product can be ordered.
func (p *Product) IsActive() bool { return p.isActive }

// CreatedAt returns the creation timestamp.
func (p *Product) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the last modification timestamp.
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

// CreatedBy returns the creating actor.
func (p *Product) CreatedBy() string { return p.createdBy }

// ModifiedBy returns the last modifying actor.
func (p *Product) ModifiedBy() string { return p.modifiedBy }

// Details returns a copy of the key/value detail collection.
func (p *Product) Details() map[string]string {
	out := make(map[string]string, len(p.details))
	for k, v := range p.details {
		out[k] = v
	}

	return out
}

// Images returns a copy of the image collection.
func (p *Product) Images() []ProductImage {
	out := make([]ProductImage, len(p.images))
	copy(out, p.images)

	return out
}

// IsLowStock reports whether stock is at or below the threshold.
func (p *Product) IsLowStock() bool {
	return p.stock.IsAtOrBelowThreshold(p.lowStockThreshold)
}

// Update changes the descriptive fields and price.
func (p *Product) Update(name, description string, price Money, lowStockThreshold int, actor string) error {
	if name == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("product name is required")
	}
	if lowStockThreshold < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("low stock threshold must be non-negative")
	}

	p.name = name
	p.description = description
	p.price = price
	p.lowStockThreshold = lowStockThreshold
	p.touch(actor)

	return nil
}

// Activate makes the product orderable again.
func (p *Product) Activate(actor string) {
	p.isActive = true
	p.touch(actor)
}

// Deactivate removes the product from sale without deleting it.
func (p *Product) Deactivate(actor string) {
	p.isActive = false
	p.touch(actor)
}

// UpdateStock replaces the stock count outright.
func (p *Product) UpdateStock(stock StockQuantity, actor string) {
	old := p.stock.Value()
	p.stock = stock
	p.touch(actor)
	p.recordStockChange(old)
}

// IncreaseStock adds units to stock.
func (p *Product) IncreaseStock(amount int, actor string) error {
	old := p.stock.Value()
	updated, err := p.stock.Add(amount)
	if err != nil {
		return err
	}

	p.stock = updated
	p.touch(actor)
	p.recordStockChange(old)

	return nil
}

// DecreaseStock removes units from stock, failing below zero. Dropping to
// or below the low-stock threshold is a signal, not an error.
func (p *Product) DecreaseStock(amount int, actor string) error {
	old := p.stock.Value()
	updated, err := p.stock.Subtract(amount)
	if err != nil {
		return err
	}

	p.stock = updated
	p.touch(actor)
	p.recordStockChange(old)

	return nil
}

// AddDetail sets a key/value attribute on the product.
func (p *Product) AddDetail(key, value string, actor string) error {
	if key == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("detail key is required")
	}

	p.details[key] = value
	p.touch(actor)

	return nil
}

// RemoveDetail deletes a key/value attribute.
func (p *Product) RemoveDetail(key string, actor string) error {
	if _, ok := p.details[key]; !ok {
		return domainerrors.ErrValidationFailed.WrapMessage(
			fmt.Sprintf("detail %q does not exist", key))
	}

	delete(p.details, key)
	p.touch(actor)

	return nil
}

// AddImage appends an image. Inserting a new primary demotes the current one
// so at most one image is primary at a time.
func (p *Product) AddImage(url, altText string, isPrimary bool, actor string) (ProductImage, error) {
	if url == "" {
		return ProductImage{}, domainerrors.ErrValidationFailed.WrapMessage("image url is required")
	}

	if isPrimary {
		for i := range p.images {
			p.images[i].IsPrimary = false
		}
	}

	image := ProductImage{
		ID:        uuid.New(),
		URL:       url,
		AltText:   altText,
		IsPrimary: isPrimary,
	}
	p.images = append(p.images, image)
	p.touch(actor)

	return image, nil
}

// RemoveImage deletes an image by id.
func (p *Product) RemoveImage(imageID uuid.UUID, actor string) error {
	for i, img := range p.images {
		if img.ID == imageID {
			p.images = append(p.images[:i], p.images[i+1:]...)
			p.touch(actor)

			return nil
		}
	}

	return domainerrors.ErrValidationFailed.WrapMessage(
		fmt.Sprintf("image %s does not exist", imageID))
}

func (p *Product) touch(actor string) {
	p.updatedAt = time.Now().UTC()
	p.modifiedBy = actor
}

func (p *Product) recordStockChange(oldStock int) {
	p.record(ProductStockChanged{
		ProductID: p.id,
		OldStock:  oldStock,
		NewStock:  p.stock.Value(),
		LowStock:  p.IsLowStock(),
		Timestamp: p.updatedAt,
	})
}
