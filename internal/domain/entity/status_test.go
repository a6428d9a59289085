package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusShipped, false},
		{OrderStatusConfirmed, OrderStatusProcessing, true},
		{OrderStatusConfirmed, OrderStatusDelivered, false},
		{OrderStatusProcessing, OrderStatusShipped, true},
		{OrderStatusProcessing, OrderStatusCancelled, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusShipped, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusConfirmed, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.True(t, OrderStatusDelivered.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.False(t, OrderStatusShipped.IsTerminal())
}

func TestOrderStatusValidity(t *testing.T) {
	assert.True(t, OrderStatusPending.IsValid())
	assert.False(t, OrderStatus("unknown").IsValid())
}

func TestPaymentStatusTransitions(t *testing.T) {
	cases := []struct {
		from    PaymentStatus
		to      PaymentStatus
		allowed bool
	}{
		{PaymentStatusPending, PaymentStatusSuccessful, true},
		{PaymentStatusPending, PaymentStatusFailed, true},
		{PaymentStatusSuccessful, PaymentStatusFailed, false},
		{PaymentStatusFailed, PaymentStatusSuccessful, false},
		{PaymentStatusFailed, PaymentStatusPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}

	assert.True(t, PaymentStatusSuccessful.IsTerminal())
	assert.True(t, PaymentStatusFailed.IsTerminal())
	assert.False(t, PaymentStatusPending.IsTerminal())
}

func TestShipmentStatusTransitions(t *testing.T) {
	cases := []struct {
		from    ShipmentStatus
		to      ShipmentStatus
		allowed bool
	}{
		{ShipmentStatusPending, ShipmentStatusShipped, true},
		{ShipmentStatusPending, ShipmentStatusDelivered, false},
		{ShipmentStatusShipped, ShipmentStatusInTransit, true},
		{ShipmentStatusShipped, ShipmentStatusDelayed, true},
		{ShipmentStatusInTransit, ShipmentStatusOutForDelivery, true},
		{ShipmentStatusInTransit, ShipmentStatusReturned, false},
		{ShipmentStatusOutForDelivery, ShipmentStatusDelivered, true},
		{ShipmentStatusDelayed, ShipmentStatusInTransit, true},
		{ShipmentStatusFailedDelivery, ShipmentStatusReturned, true},
		{ShipmentStatusFailedDelivery, ShipmentStatusInTransit, true},
		{ShipmentStatusDelivered, ShipmentStatusReturned, false},
		{ShipmentStatusReturned, ShipmentStatusPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}

	assert.True(t, ShipmentStatusDelivered.IsTerminal())
	assert.True(t, ShipmentStatusReturned.IsTerminal())
	assert.False(t, ShipmentStatusDelayed.IsTerminal())
}
