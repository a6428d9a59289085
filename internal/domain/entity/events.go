package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProductCreated is raised when a new product enters the catalog.
type ProductCreated struct {
	ProductID uuid.UUID
	Name      string
	Sku       string
	Price     Money
	Timestamp time.Time
}

func (e ProductCreated) EventType() string     { return "product.created" }
func (e ProductCreated) AggregateID() string   { return e.ProductID.String() }
func (e ProductCreated) OccurredAt() time.Time { return e.Timestamp }

// ProductStockChanged is raised on every stock mutation. LowStock flags a
// count at or below the product's threshold; it is a signal, not an error.
type ProductStockChanged struct {
	ProductID uuid.UUID
	OldStock  int
	NewStock  int
	LowStock  bool
	Timestamp time.Time
}

func (e ProductStockChanged) EventType() string     { return "product.stock_changed" }
func (e ProductStockChanged) AggregateID() string   { return e.ProductID.String() }
func (e ProductStockChanged) OccurredAt() time.Time { return e.Timestamp }

// OrderPlaced is raised when a new order is created.
type OrderPlaced struct {
	OrderID     uuid.UUID
	OrderNumber string
	TotalAmount Money
	Timestamp   time.Time
}

func (e OrderPlaced) EventType() string     { return "order.placed" }
func (e OrderPlaced) AggregateID() string   { return e.OrderID.String() }
func (e OrderPlaced) OccurredAt() time.Time { return e.Timestamp }

// OrderStatusChanged is raised on every order status transition.
type OrderStatusChanged struct {
	OrderID   uuid.UUID
	OldStatus OrderStatus
	NewStatus OrderStatus
	ChangedBy string
	Timestamp time.Time
}

func (e OrderStatusChanged) EventType() string     { return "order.status_changed" }
func (e OrderStatusChanged) AggregateID() string   { return e.OrderID.String() }
func (e OrderStatusChanged) OccurredAt() time.Time { return e.Timestamp }

// OrderCancelled is raised alongside OrderStatusChanged when an order is
// cancelled, carrying the cancellation reason.
type OrderCancelled struct {
	OrderID     uuid.UUID
	Reason      string
	CancelledBy string
	Timestamp   time.Time
}

func (e OrderCancelled) EventType() string     { return "order.cancelled" }
func (e OrderCancelled) AggregateID() string   { return e.OrderID.String() }
func (e OrderCancelled) OccurredAt() time.Time { return e.Timestamp }

// PaymentStatusChanged is raised on every payment status transition.
type PaymentStatusChanged struct {
	PaymentID uuid.UUID
	OrderID   uuid.UUID
	OldStatus PaymentStatus
	NewStatus PaymentStatus
	Timestamp time.Time
}

func (e PaymentStatusChanged) EventType() string     { return "payment.status_changed" }
func (e PaymentStatusChanged) AggregateID() string   { return e.PaymentID.String() }
func (e PaymentStatusChanged) OccurredAt() time.Time { return e.Timestamp }

// ShipmentStatusChanged is raised on every shipment status transition.
type ShipmentStatusChanged struct {
	ShipmentID uuid.UUID
	OrderID    uuid.UUID
	OldStatus  ShipmentStatus
	NewStatus  ShipmentStatus
	Location   string
	Timestamp  time.Time
}

func (e ShipmentStatusChanged) EventType() string     { return "shipment.status_changed" }
func (e ShipmentStatusChanged) AggregateID() string   { return e.ShipmentID.String() }
func (e ShipmentStatusChanged) OccurredAt() time.Time { return e.Timestamp }
