package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. The order number carries a unique
// index, so a generation collision surfaces as a constraint violation
// instead of a silent duplicate.
type OrderModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderNumber        string          `gorm:"type:varchar(20);unique;not null"`
	CustomerName       string          `gorm:"type:varchar(200);not null"`
	CustomerEmail      string          `gorm:"type:varchar(320);not null;index"`
	ShippingStreet     string          `gorm:"type:varchar(200);not null"`
	ShippingCity       string          `gorm:"type:varchar(100);not null"`
	ShippingState      string          `gorm:"type:varchar(100);not null"`
	ShippingPostalCode string          `gorm:"type:varchar(20);not null"`
	ShippingCountry    string          `gorm:"type:varchar(100);not null"`
	Status             string          `gorm:"type:varchar(20);not null;index"`
	TotalAmount        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Currency           string          `gorm:"type:char(3);not null"`
	Notes              string          `gorm:"type:varchar(1000)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	CreatedBy          string `gorm:"type:varchar(100)"`
	ModifiedBy         string `gorm:"type:varchar(100)"`

	Details []OrderDetailModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderDetailModel mirrors the 'order_details' table. Product name, SKU and
// unit price are snapshots captured at placement time.
type OrderDetailModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName     string          `gorm:"type:varchar(200);not null"`
	ProductSku      string          `gorm:"type:varchar(20);not null"`
	Quantity        int             `gorm:"not null;check:quantity > 0"`
	UnitPriceAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	LineTotalAmount decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Currency        string          `gorm:"type:char(3);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderDetailModel) TableName() string {
	return "order_details"
}
