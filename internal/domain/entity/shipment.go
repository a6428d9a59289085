package entity

import (
	"fmt"
	"time"

	domainerrors "shop/internal/domain/errors"

	"github.com/google/uuid"
)

// TrackingDetail is one entry in the shipment's append-only tracking
// history.
type TrackingDetail struct {
	ID        uuid.UUID
	Status    ShipmentStatus
	Location  string
	Notes     string
	Timestamp time.Time
}

// ShipmentItem snapshots a product and quantity shipped.
type ShipmentItem struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
}

// Shipment is the fulfillment aggregate root. Carrier and tracking number
// are mutable only while the shipment is Pending; every status transition
// appends to the immutable tracking history.
type Shipment struct {
	eventRecorder

	id                    uuid.UUID
	orderID               uuid.UUID
	trackingNumber        TrackingNumber
	carrier               string
	status                ShipmentStatus
	originAddress         Address
	destinationAddress    Address
	weight                Weight
	dimensions            Dimensions
	shippingCost          Money
	estimatedDeliveryDate *time.Time
	actualDeliveryDate    *time.Time
	trackingDetails       []TrackingDetail
	items                 []ShipmentItem
	createdAt             time.Time
	updatedAt             time.Time
}

// NewShipment creates a pending shipment for an order.
func NewShipment(
	orderID uuid.UUID,
	trackingNumber TrackingNumber,
	carrier string,
	originAddress, destinationAddress Address,
	weight Weight,
	dimensions Dimensions,
	shippingCost Money,
	estimatedDeliveryDate *time.Time,
) (*Shipment, error) {
	if orderID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("order id is required")
	}
	if carrier == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("carrier is required")
	}

	now := time.Now().UTC()

	return &Shipment{
		id:                    uuid.New(),
		orderID:               orderID,
		trackingNumber:        trackingNumber,
		carrier:               carrier,
		status:                ShipmentStatusPending,
		originAddress:         originAddress,
		destinationAddress:    destinationAddress,
		weight:                weight,
		dimensions:            dimensions,
		shippingCost:          shippingCost,
		estimatedDeliveryDate: estimatedDeliveryDate,
		createdAt:             now,
		updatedAt:             now,
	}, nil
}

// RehydrateShipment rebuilds a shipment from persisted state without
// raising events. It is intended for the persistence layer only.
func RehydrateShipment(
	id, orderID uuid.UUID,
	trackingNumber TrackingNumber,
	carrier string,
	status ShipmentStatus,
	originAddress, destinationAddress Address,
	weight Weight,
	dimensions Dimensions,
	shippingCost Money,
	estimatedDeliveryDate, actualDeliveryDate *time.Time,
	trackingDetails []TrackingDetail,
	items []ShipmentItem,
	createdAt, updatedAt time.Time,
) *Shipment {
	return &Shipment{
		id:                    id,
		orderID:               orderID,
		trackingNumber:        trackingNumber,
		carrier:               carrier,
		status:                status,
		originAddress:         originAddress,
		destinationAddress:    destinationAddress,
		weight:                weight,
		dimensions:            dimensions,
		shippingCost:          shippingCost,
		estimatedDeliveryDate: estimatedDeliveryDate,
		actualDeliveryDate:    actualDeliveryDate,
		trackingDetails:       trackingDetails,
		items:                 items,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}
}

// ID returns the aggregate identifier.
func (s *Shipment) ID() uuid.UUID { return s.id }

// OrderID returns the fulfilled order's identifier.
func (s *Shipment) OrderID() uuid.UUID { return s.orderID }

// TrackingNumber returns the carrier tracking identifier.
func (s *Shipment) TrackingNumber() TrackingNumber { return s.trackingNumber }

// Carrier returns the carrier name.
func (s *Shipment) Carrier() string { return s.carrier }

// Status returns the current lifecycle state.
func (s *Shipment) Status() ShipmentStatus { return s.status }

// OriginAddress returns the shipping origin.
func (s *Shipment) OriginAddress() Address { return s.originAddress }

// DestinationAddress returns the delivery destination.
func (s *Shipment) DestinationAddress() Address { return s.destinationAddress }

// Weight returns the package weight.
func (s *Shipment) Weight() Weight { return s.weight }

// Dimensions returns the package dimensions.
func (s *Shipment) Dimensions() Dimensions { return s.dimensions }

// ShippingCost returns the shipping cost.
func (s *Shipment) ShippingCost() Money { return s.shippingCost }

// EstimatedDeliveryDate returns the optional delivery estimate.
func (s *Shipment) EstimatedDeliveryDate() *time.Time { return s.estimatedDeliveryDate }

// ActualDeliveryDate returns the delivery timestamp once delivered.
func (s *Shipment) ActualDeliveryDate() *time.Time { return s.actualDeliveryDate }

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }

// UpdatedAt returns the last modification timestamp.
func (s *Shipment) UpdatedAt() time.Time { return s.updatedAt }

// TrackingDetails returns a copy of the append-only tracking history.
func (s *Shipment) TrackingDetails() []TrackingDetail {
	out := make([]TrackingDetail, len(s.trackingDetails))
	copy(out, s.trackingDetails)

	return out
}

// Items returns a copy of the shipped item snapshots.
func (s *Shipment) Items() []ShipmentItem {
	out := make([]ShipmentItem, len(s.items))
	copy(out, s.items)

	return out
}

// AddItem snapshots a product and quantity into the shipment. Items can
// only be added while the shipment is Pending.
func (s *Shipment) AddItem(productID uuid.UUID, productName string, quantity int) error {
	if s.status != ShipmentStatusPending {
		return domainerrors.ErrConflict.WrapMessage(
			fmt.Sprintf("items cannot be added to a %s shipment", s.status))
	}
	if quantity <= 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
	}

	s.items = append(s.items, ShipmentItem{
		ID:          uuid.New(),
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
	})
	s.updatedAt = time.Now().UTC()

	return nil
}

// UpdateCarrier changes the carrier and tracking number, permitted only
// while the shipment is still Pending.
func (s *Shipment) UpdateCarrier(carrier string, trackingNumber TrackingNumber) error {
	if s.status != ShipmentStatusPending {
		return domainerrors.ErrConflict.WrapMessage(
			fmt.Sprintf("carrier cannot change once shipment is %s", s.status))
	}
	if carrier == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("carrier is required")
	}

	s.carrier = carrier
	s.trackingNumber = trackingNumber
	s.updatedAt = time.Now().UTC()

	return nil
}

// UpdateStatus moves the shipment along the lifecycle table. Every
// transition appends a TrackingDetail to the history and raises
// ShipmentStatusChanged; reaching Delivered stamps the actual delivery
// date.
func (s *Shipment) UpdateStatus(newStatus ShipmentStatus, location, notes string) error {
	if !newStatus.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage(
			fmt.Sprintf("unknown shipment status %q", newStatus))
	}
	if !s.status.CanTransitionTo(newStatus) {
		return domainerrors.ErrInvalidTransition.WrapMessage(
			fmt.Sprintf("shipment cannot move from %s to %s", s.status, newStatus))
	}

	old := s.status
	s.status = newStatus
	s.updatedAt = time.Now().UTC()
	if newStatus == ShipmentStatusDelivered {
		delivered := s.updatedAt
		s.actualDeliveryDate = &delivered
	}

	s.appendTracking(newStatus, location, notes)
	s.record(ShipmentStatusChanged{
		ShipmentID: s.id,
		OrderID:    s.orderID,
		OldStatus:  old,
		NewStatus:  newStatus,
		Location:   location,
		Timestamp:  s.updatedAt,
	})

	return nil
}

// AddTrackingUpdate appends a location/notes entry to the history without
// changing the status.
func (s *Shipment) AddTrackingUpdate(location, notes string) {
	s.updatedAt = time.Now().UTC()
	s.appendTracking(s.status, location, notes)
}

func (s *Shipment) appendTracking(status ShipmentStatus, location, notes string) {
	s.trackingDetails = append(s.trackingDetails, TrackingDetail{
		ID:        uuid.New(),
		Status:    status,
		Location:  location,
		Notes:     notes,
		Timestamp: s.updatedAt,
	})
}
