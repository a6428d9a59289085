package entity

import (
	"testing"
	"time"

	domainerrors "shop/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildOrder(t *testing.T) *Order {
	t.Helper()

	email, err := NewEmail("jamie@example.com")
	require.NoError(t, err)
	address, err := NewAddress("1 Main St", "Springfield", "IL", "62701", "USA")
	require.NoError(t, err)

	order, err := NewOrder(
		GenerateOrderNumber(time.Now().UTC(), testRand()),
		"Jamie Doe", email, address, "", "USD", "tester",
	)
	require.NoError(t, err)

	return order
}

func TestNewOrderStartsPendingWithZeroTotal(t *testing.T) {
	order := buildOrder(t)

	assert.Equal(t, OrderStatusPending, order.Status())
	assert.True(t, order.TotalAmount().IsZero())
	assert.Equal(t, "USD", order.TotalAmount().Currency())
	assert.Empty(t, order.DomainEvents())
}

func TestAddDetailSnapshotsProduct(t *testing.T) {
	order := buildOrder(t)
	product := buildProduct(t, 10, 0)

	require.NoError(t, order.AddDetail(product, 2, "tester"))

	details := order.Details()
	require.Len(t, details, 1)
	assert.Equal(t, product.ID(), details[0].ProductID)
	assert.Equal(t, "Widget", details[0].ProductName)
	assert.Equal(t, "WID001", details[0].ProductSku)
	assert.Equal(t, 2, details[0].Quantity)
	assert.True(t, details[0].LineTotal.Equals(mustMoney(t, "20", "USD")))
	assert.True(t, order.TotalAmount().Equals(mustMoney(t, "20", "USD")))
}

func TestAddDetailMergesSameProduct(t *testing.T) {
	order := buildOrder(t)
	product := buildProduct(t, 10, 0)

	require.NoError(t, order.AddDetail(product, 3, "tester"))
	require.NoError(t, order.AddDetail(product, 4, "tester"))

	details := order.Details()
	require.Len(t, details, 1)
	assert.Equal(t, 7, details[0].Quantity)
	assert.True(t, order.TotalAmount().Equals(mustMoney(t, "70", "USD")))
}

func TestAddDetailRejectsNonPositiveQuantity(t *testing.T) {
	order := buildOrder(t)
	product := buildProduct(t, 10, 0)

	require.ErrorIs(t, order.AddDetail(product, 0, "tester"), domainerrors.ErrValidationFailed)
	require.ErrorIs(t, order.AddDetail(product, -1, "tester"), domainerrors.ErrValidationFailed)
}

func TestRemoveDetailRecomputesTotal(t *testing.T) {
	order := buildOrder(t)
	product := buildProduct(t, 10, 0)
	require.NoError(t, order.AddDetail(product, 2, "tester"))

	detailID := order.Details()[0].ID
	require.NoError(t, order.RemoveDetail(detailID, "tester"))

	assert.Empty(t, order.Details())
	assert.True(t, order.TotalAmount().IsZero())
}

func TestMarkPlacedRecordsEventWithTotal(t *testing.T) {
	order := buildOrder(t)
	product := buildProduct(t, 10, 0)
	require.NoError(t, order.AddDetail(product, 2, "tester"))

	order.MarkPlaced()

	events := order.DomainEvents()
	require.Len(t, events, 1)
	placed, ok := events[0].(OrderPlaced)
	require.True(t, ok)
	assert.Equal(t, order.OrderNumber().Value(), placed.OrderNumber)
	assert.True(t, placed.TotalAmount.Equals(mustMoney(t, "20", "USD")))
}

func TestUpdateStatusRejectsIllegalMove(t *testing.T) {
	order := buildOrder(t)

	err := order.UpdateStatus(OrderStatusShipped, "tester")

	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	assert.Equal(t, OrderStatusPending, order.Status())
}

func TestUpdateStatusWalksLifecycle(t *testing.T) {
	order := buildOrder(t)

	for _, status := range []OrderStatus{
		OrderStatusConfirmed,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
	} {
		require.NoError(t, order.UpdateStatus(status, "tester"))
	}

	assert.Equal(t, OrderStatusDelivered, order.Status())
	assert.Len(t, order.DomainEvents(), 4)
}

func TestCancelRaisesBothEvents(t *testing.T) {
	order := buildOrder(t)

	require.NoError(t, order.Cancel("changed my mind", "tester"))

	assert.Equal(t, OrderStatusCancelled, order.Status())
	events := order.DomainEvents()
	require.Len(t, events, 2)
	cancelled, ok := events[0].(OrderCancelled)
	require.True(t, ok)
	assert.Equal(t, "changed my mind", cancelled.Reason)
	_, ok = events[1].(OrderStatusChanged)
	require.True(t, ok)
}

func TestCancelFromTerminalFails(t *testing.T) {
	order := buildOrder(t)
	require.NoError(t, order.Cancel("first", "tester"))

	err := order.Cancel("again", "tester")

	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestTerminalOrderRejectsMutation(t *testing.T) {
	order := buildOrder(t)
	product := buildProduct(t, 10, 0)
	require.NoError(t, order.Cancel("done", "tester"))

	err := order.AddDetail(product, 1, "tester")

	require.ErrorIs(t, err, domainerrors.ErrConflict)
}
