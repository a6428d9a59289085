package entity

import (
	"testing"

	domainerrors "shop/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildProduct(t *testing.T, stock, threshold int) *Product {
	t.Helper()

	sku, err := NewSku("WID001")
	require.NoError(t, err)
	quantity, err := NewStockQuantity(stock)
	require.NoError(t, err)

	product, err := NewProduct("Widget", "A widget", mustMoney(t, "10", "USD"), sku, quantity, threshold, "tester")
	require.NoError(t, err)

	return product
}

func TestNewProductRecordsCreatedEvent(t *testing.T) {
	product := buildProduct(t, 20, 5)

	events := product.DomainEvents()
	require.Len(t, events, 1)

	created, ok := events[0].(ProductCreated)
	require.True(t, ok)
	assert.Equal(t, "WID001", created.Sku)
	assert.Equal(t, product.ID().String(), created.AggregateID())
	assert.True(t, product.IsActive())
}

func TestNewProductRequiresName(t *testing.T) {
	sku, err := NewSku("WID001")
	require.NoError(t, err)
	quantity, err := NewStockQuantity(1)
	require.NoError(t, err)

	_, err = NewProduct("", "", mustMoney(t, "10", "USD"), sku, quantity, 0, "tester")

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductIsLowStockAtCreation(t *testing.T) {
	assert.True(t, buildProduct(t, 5, 5).IsLowStock())
	assert.True(t, buildProduct(t, 3, 5).IsLowStock())
	assert.False(t, buildProduct(t, 6, 5).IsLowStock())
}

func TestDecreaseStockRaisesLowStockSignal(t *testing.T) {
	product := buildProduct(t, 10, 5)
	product.ClearEvents()

	require.NoError(t, product.DecreaseStock(6, "tester"))

	events := product.DomainEvents()
	require.Len(t, events, 1)

	change, ok := events[0].(ProductStockChanged)
	require.True(t, ok)
	assert.Equal(t, 10, change.OldStock)
	assert.Equal(t, 4, change.NewStock)
	assert.True(t, change.LowStock)
}

func TestDecreaseStockBelowZeroFails(t *testing.T) {
	product := buildProduct(t, 3, 0)
	product.ClearEvents()

	err := product.DecreaseStock(4, "tester")

	require.ErrorIs(t, err, domainerrors.ErrInvariantViolation)
	assert.Equal(t, 3, product.Stock().Value())
	assert.Empty(t, product.DomainEvents())
}

func TestIncreaseStock(t *testing.T) {
	product := buildProduct(t, 2, 5)
	product.ClearEvents()

	require.NoError(t, product.IncreaseStock(8, "tester"))

	assert.Equal(t, 10, product.Stock().Value())
	events := product.DomainEvents()
	require.Len(t, events, 1)
	assert.False(t, events[0].(ProductStockChanged).LowStock)
}

func TestAddImagePrimaryDemotesExisting(t *testing.T) {
	product := buildProduct(t, 1, 0)

	first, err := product.AddImage("https://cdn.example.com/a.jpg", "front", true, "tester")
	require.NoError(t, err)
	_, err = product.AddImage("https://cdn.example.com/b.jpg", "back", true, "tester")
	require.NoError(t, err)

	images := product.Images()
	require.Len(t, images, 2)
	for _, img := range images {
		if img.ID == first.ID {
			assert.False(t, img.IsPrimary)
		} else {
			assert.True(t, img.IsPrimary)
		}
	}
}

func TestRemoveMissingDetailFails(t *testing.T) {
	product := buildProduct(t, 1, 0)

	err := product.RemoveDetail("color", "tester")

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductDetailsAreCopied(t *testing.T) {
	product := buildProduct(t, 1, 0)
	require.NoError(t, product.AddDetail("color", "red", "tester"))

	details := product.Details()
	details["color"] = "blue"

	assert.Equal(t, "red", product.Details()["color"])
}
