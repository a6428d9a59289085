package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentModel mirrors the 'shipments' table.
type ShipmentModel struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID               uuid.UUID       `gorm:"type:uuid;not null;index"`
	TrackingNumber        string          `gorm:"type:varchar(50);unique;not null"`
	Carrier               string          `gorm:"type:varchar(100);not null"`
	Status                string          `gorm:"type:varchar(20);not null"`
	OriginStreet          string          `gorm:"type:varchar(200);not null"`
	OriginCity            string          `gorm:"type:varchar(100);not null"`
	OriginState           string          `gorm:"type:varchar(100);not null"`
	OriginPostalCode      string          `gorm:"type:varchar(20);not null"`
	OriginCountry         string          `gorm:"type:varchar(100);not null"`
	DestinationStreet     string          `gorm:"type:varchar(200);not null"`
	DestinationCity       string          `gorm:"type:varchar(100);not null"`
	DestinationState      string          `gorm:"type:varchar(100);not null"`
	DestinationPostalCode string          `gorm:"type:varchar(20);not null"`
	DestinationCountry    string          `gorm:"type:varchar(100);not null"`
	WeightValue           decimal.Decimal `gorm:"type:numeric(10,3);not null"`
	WeightUnit            string          `gorm:"type:varchar(2);not null"`
	Length                decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Width                 decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Height                decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DimensionUnit         string          `gorm:"type:varchar(2);not null"`
	ShippingCostAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency              string          `gorm:"type:char(3);not null"`
	EstimatedDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time

	TrackingDetails []ShipmentTrackingModel `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
	Items           []ShipmentItemModel     `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ShipmentModel) TableName() string {
	return "shipments"
}

// ShipmentTrackingModel mirrors the 'shipment_tracking_details' table, an
// append-only history of locations and status changes.
type ShipmentTrackingModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ShipmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     string    `gorm:"type:varchar(20);not null"`
	Location   string    `gorm:"type:varchar(200)"`
	Notes      string    `gorm:"type:varchar(500)"`
	Timestamp  time.Time `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShipmentTrackingModel) TableName() string {
	return "shipment_tracking_details"
}

// ShipmentItemModel mirrors the 'shipment_items' table, snapshotting what
// physically went into the parcel.
type ShipmentItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null"`
	ProductName string    `gorm:"type:varchar(200);not null"`
	Quantity    int       `gorm:"not null;check:quantity > 0"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShipmentItemModel) TableName() string {
	return "shipment_items"
}
