package entity

import (
	"testing"

	domainerrors "shop/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildShipment(t *testing.T) *Shipment {
	t.Helper()

	tracking, err := NewTrackingNumber("TRK-TEST-0001")
	require.NoError(t, err)
	origin, err := NewAddress("1 Warehouse Way", "Reno", "NV", "89501", "USA")
	require.NoError(t, err)
	destination, err := NewAddress("1 Main St", "Springfield", "IL", "62701", "USA")
	require.NoError(t, err)
	weight, err := NewWeight(decimal.NewFromFloat(2.5), WeightUnitKilograms)
	require.NoError(t, err)
	dims, err := NewDimensions(
		decimal.NewFromInt(30), decimal.NewFromInt(20), decimal.NewFromInt(10),
		DimensionUnitCentimeters,
	)
	require.NoError(t, err)

	shipment, err := NewShipment(
		uuid.New(), tracking, "UPS", origin, destination,
		weight, dims, mustMoney(t, "9.99", "USD"), nil,
	)
	require.NoError(t, err)

	return shipment
}

func TestNewShipmentStartsPending(t *testing.T) {
	shipment := buildShipment(t)

	assert.Equal(t, ShipmentStatusPending, shipment.Status())
	assert.Empty(t, shipment.TrackingDetails())
	assert.Nil(t, shipment.ActualDeliveryDate())
}

func TestNewShipmentRequiresOrderAndCarrier(t *testing.T) {
	base := buildShipment(t)

	_, err := NewShipment(uuid.Nil, base.TrackingNumber(), "UPS",
		base.OriginAddress(), base.DestinationAddress(), base.Weight(), base.Dimensions(),
		base.ShippingCost(), nil)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = NewShipment(uuid.New(), base.TrackingNumber(), "",
		base.OriginAddress(), base.DestinationAddress(), base.Weight(), base.Dimensions(),
		base.ShippingCost(), nil)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestShipmentStatusAppendsHistory(t *testing.T) {
	shipment := buildShipment(t)

	require.NoError(t, shipment.UpdateStatus(ShipmentStatusShipped, "Reno, NV", "picked up"))
	require.NoError(t, shipment.UpdateStatus(ShipmentStatusInTransit, "Salt Lake City, UT", ""))

	history := shipment.TrackingDetails()
	require.Len(t, history, 2)
	assert.Equal(t, ShipmentStatusShipped, history[0].Status)
	assert.Equal(t, "Reno, NV", history[0].Location)
	assert.Equal(t, ShipmentStatusInTransit, history[1].Status)
	assert.Len(t, shipment.DomainEvents(), 2)
}

func TestShipmentDeliveredStampsDate(t *testing.T) {
	shipment := buildShipment(t)
	require.NoError(t, shipment.UpdateStatus(ShipmentStatusShipped, "", ""))
	require.NoError(t, shipment.UpdateStatus(ShipmentStatusInTransit, "", ""))
	require.NoError(t, shipment.UpdateStatus(ShipmentStatusOutForDelivery, "", ""))

	require.NoError(t, shipment.UpdateStatus(ShipmentStatusDelivered, "Springfield, IL", ""))

	require.NotNil(t, shipment.ActualDeliveryDate())
	assert.Equal(t, shipment.UpdatedAt(), *shipment.ActualDeliveryDate())
}

func TestShipmentRejectsSkippedState(t *testing.T) {
	shipment := buildShipment(t)

	err := shipment.UpdateStatus(ShipmentStatusDelivered, "", "")

	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	assert.Empty(t, shipment.TrackingDetails())
}

func TestUpdateCarrierOnlyWhilePending(t *testing.T) {
	shipment := buildShipment(t)
	tracking, err := NewTrackingNumber("1Z999AA10123456784")
	require.NoError(t, err)

	require.NoError(t, shipment.UpdateCarrier("FedEx", tracking))
	assert.Equal(t, "FedEx", shipment.Carrier())
	assert.Equal(t, "1Z999AA10123456784", shipment.TrackingNumber().Value())

	require.NoError(t, shipment.UpdateStatus(ShipmentStatusShipped, "", ""))

	err = shipment.UpdateCarrier("DHL", tracking)
	require.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestAddItemOnlyWhilePending(t *testing.T) {
	shipment := buildShipment(t)

	require.NoError(t, shipment.AddItem(uuid.New(), "Widget", 2))
	require.Len(t, shipment.Items(), 1)

	require.ErrorIs(t, shipment.AddItem(uuid.New(), "Widget", 0), domainerrors.ErrValidationFailed)

	require.NoError(t, shipment.UpdateStatus(ShipmentStatusShipped, "", ""))
	require.ErrorIs(t, shipment.AddItem(uuid.New(), "Gadget", 1), domainerrors.ErrConflict)
}

func TestAddTrackingUpdateKeepsStatus(t *testing.T) {
	shipment := buildShipment(t)
	require.NoError(t, shipment.UpdateStatus(ShipmentStatusShipped, "Reno, NV", ""))

	shipment.AddTrackingUpdate("Winnemucca, NV", "passing through")

	history := shipment.TrackingDetails()
	require.Len(t, history, 2)
	assert.Equal(t, ShipmentStatusShipped, history[1].Status)
	assert.Equal(t, "Winnemucca, NV", history[1].Location)
	assert.Equal(t, ShipmentStatusShipped, shipment.Status())
}
