package usecase

import (
	"context"
	"time"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateShipmentInput defines the data required to open a shipment for an
// order. When TrackingNumber is empty one is generated. Item snapshots are
// taken from the order's current line items.
type CreateShipmentInput struct {
	OrderID               string       `json:"orderId" validate:"required,uuid"`
	Carrier               string       `json:"carrier" validate:"required,max=100"`
	TrackingNumber        string       `json:"trackingNumber" validate:"omitempty,min=5,max=50"`
	OriginAddress         AddressInput `json:"originAddress" validate:"required"`
	WeightValue           string       `json:"weightValue" validate:"required"`
	WeightUnit            string       `json:"weightUnit" validate:"required,oneof=lb kg"`
	Length                string       `json:"length" validate:"required"`
	Width                 string       `json:"width" validate:"required"`
	Height                string       `json:"height" validate:"required"`
	DimensionUnit         string       `json:"dimensionUnit" validate:"required,oneof=in cm"`
	ShippingCostAmount    string       `json:"shippingCostAmount" validate:"required"`
	Currency              string       `json:"currency" validate:"required,len=3,alpha"`
	EstimatedDeliveryDate *time.Time   `json:"estimatedDeliveryDate"`
}

// UpdateShipmentStatusInput defines a shipment status transition request.
type UpdateShipmentStatusInput struct {
	Status   string `json:"status" validate:"required,oneof=pending shipped in_transit out_for_delivery delayed failed_delivery delivered returned"`
	Location string `json:"location" validate:"max=200"`
	Notes    string `json:"notes" validate:"max=500"`
}

// TrackingUpdateInput appends a location/notes entry without a status change.
type TrackingUpdateInput struct {
	Location string `json:"location" validate:"required,max=200"`
	Notes    string `json:"notes" validate:"max=500"`
}

// UpdateCarrierInput changes carrier and tracking number while Pending.
type UpdateCarrierInput struct {
	Carrier        string `json:"carrier" validate:"required,max=100"`
	TrackingNumber string `json:"trackingNumber" validate:"required,min=5,max=50"`
}

// ShipmentUsecase defines the shipment-related business operations the
// delivery layer depends on.
type ShipmentUsecase interface {
	CreateShipment(ctx context.Context, input *CreateShipmentInput) (*entity.Shipment, error)
	UpdateShipmentStatus(ctx context.Context, id uuid.UUID, input *UpdateShipmentStatusInput) (*entity.Shipment, error)
	AddTrackingUpdate(ctx context.Context, id uuid.UUID, input *TrackingUpdateInput) (*entity.Shipment, error)
	UpdateCarrier(ctx context.Context, id uuid.UUID, input *UpdateCarrierInput) (*entity.Shipment, error)
	GetShipment(ctx context.Context, id uuid.UUID) (*entity.Shipment, error)
	GetShipmentByTrackingNumber(ctx context.Context, number string) (*entity.Shipment, error)
	ListShipmentsForOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.Shipment, error)
}
