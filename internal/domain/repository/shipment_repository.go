package repository

import (
	"context"
	"errors"

	"shop/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrShipmentNotFound is returned when a shipment id or tracking number does not resolve.
var ErrShipmentNotFound = errors.New("shipment not found")

// ShipmentRepository defines the standard operations for shipment persistence.
type ShipmentRepository interface {
	// FindByID retrieves a single shipment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shipment, error)

	// FindByIDWithChildren retrieves a shipment including its tracking
	// history and item snapshots.
	FindByIDWithChildren(ctx context.Context, id uuid.UUID) (*entity.Shipment, error)

	// FindByTrackingNumber retrieves a shipment by its natural key.
	FindByTrackingNumber(ctx context.Context, number entity.TrackingNumber) (*entity.Shipment, error)

	// FindByOrderID returns all shipments fulfilling an order.
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.Shipment, error)

	// Create persists a new shipment aggregate including its children.
	Create(ctx context.Context, shipment *entity.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, shipment *entity.Shipment) error

	// Delete removes a shipment and its children.
	Delete(ctx context.Context, id uuid.UUID) error
}
