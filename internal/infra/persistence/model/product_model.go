// Package model holds the GORM persistence models. They mirror tables
// one-to-one and never leave the infrastructure layer; repositories map
// them to domain entities at the boundary.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type ProductModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name              string          `gorm:"type:varchar(200);not null"`
	Description       string          `gorm:"type:text"`
	PriceAmount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency          string          `gorm:"type:char(3);not null"`
	Sku               string          `gorm:"type:varchar(20);unique;not null"`
	StockQuantity     int             `gorm:"not null;check:stock_quantity >= 0"`
	LowStockThreshold int             `gorm:"not null;default:0"`
	IsActive          bool            `gorm:"not null;default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	CreatedBy         string `gorm:"type:varchar(100)"`
	ModifiedBy        string `gorm:"type:varchar(100)"`

	Details []ProductDetailModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Images  []ProductImageModel  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductDetailModel mirrors the 'product_details' table, one row per
// key/value attribute.
type ProductDetailModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_details_key"`
	Key       string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_product_details_key"`
	Value     string    `gorm:"type:varchar(500)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductDetailModel) TableName() string {
	return "product_details"
}

// ProductImageModel mirrors the 'product_images' table.
type ProductImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	URL       string    `gorm:"type:varchar(500);not null"`
	AltText   string    `gorm:"type:varchar(200)"`
	IsPrimary bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductImageModel) TableName() string {
	return "product_images"
}
