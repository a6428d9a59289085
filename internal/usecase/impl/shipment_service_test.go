package impl_test

import (
	"context"
	"regexp"
	"testing"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	mockrepo "shop/internal/mocks/repository"
	mockservice "shop/internal/mocks/service"
	"shop/internal/usecase"
	"shop/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newShipmentService(factory *mockrepo.StubRepositoryFactory, publisher *mockservice.EventPublisher) usecase.ShipmentUsecase {
	return impl.NewShipmentService(
		&mockrepo.StubTransactionManager{Factory: factory},
		usecase.NewCommandValidator(),
		publisher,
		impl.NewRandSource(),
		testLogger(),
	)
}

func validShipmentInput(orderID uuid.UUID) *usecase.CreateShipmentInput {
	return &usecase.CreateShipmentInput{
		OrderID:            orderID.String(),
		Carrier:            "UPS",
		OriginAddress:      validAddressInput(),
		WeightValue:        "2.5",
		WeightUnit:         "kg",
		Length:             "30",
		Width:              "20",
		Height:             "10",
		DimensionUnit:      "cm",
		ShippingCostAmount: "9.99",
		Currency:           "USD",
	}
}

func TestCreateShipmentSnapshotsOrderItems(t *testing.T) {
	product := newTestProduct(t, "WID001", 10, 20)
	order := newTestOrder(t, product)

	orderRepo := new(mockrepo.OrderRepository)
	shipmentRepo := new(mockrepo.ShipmentRepository)
	orderRepo.On("FindByIDWithDetails", mock.Anything, order.ID()).Return(order, nil)
	shipmentRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Shipment")).Return(nil)

	service := newShipmentService(&mockrepo.StubRepositoryFactory{
		OrderRepo:    orderRepo,
		ShipmentRepo: shipmentRepo,
	}, new(mockservice.EventPublisher))

	shipment, err := service.CreateShipment(context.Background(), validShipmentInput(order.ID()))
	require.NoError(t, err)

	assert.Equal(t, entity.ShipmentStatusPending, shipment.Status())
	assert.Equal(t, order.ShippingAddress(), shipment.DestinationAddress())
	assert.Regexp(t, regexp.MustCompile(`^TRK-\d{8}-[A-Z0-9]{10}$`), shipment.TrackingNumber().Value())

	items := shipment.Items()
	require.Len(t, items, 1)
	assert.Equal(t, product.ID(), items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)

	shipmentRepo.AssertExpectations(t)
}

func TestCreateShipmentKeepsProvidedTrackingNumber(t *testing.T) {
	product := newTestProduct(t, "WID001", 10, 20)
	order := newTestOrder(t, product)

	orderRepo := new(mockrepo.OrderRepository)
	shipmentRepo := new(mockrepo.ShipmentRepository)
	orderRepo.On("FindByIDWithDetails", mock.Anything, order.ID()).Return(order, nil)
	shipmentRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Shipment")).Return(nil)

	service := newShipmentService(&mockrepo.StubRepositoryFactory{
		OrderRepo:    orderRepo,
		ShipmentRepo: shipmentRepo,
	}, new(mockservice.EventPublisher))

	input := validShipmentInput(order.ID())
	input.TrackingNumber = "1Z999AA10123456784"

	shipment, err := service.CreateShipment(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "1Z999AA10123456784", shipment.TrackingNumber().Value())
}

func TestUpdateShipmentStatusAppendsTracking(t *testing.T) {
	shipment := newTestShipment(t)

	shipmentRepo := new(mockrepo.ShipmentRepository)
	publisher := new(mockservice.EventPublisher)
	shipmentRepo.On("FindByIDWithChildren", mock.Anything, shipment.ID()).Return(shipment, nil)
	shipmentRepo.On("Update", mock.Anything, shipment).Return(nil)
	publisher.On("PublishDomainEvent", mock.Anything, mock.Anything).Return(nil)

	service := newShipmentService(&mockrepo.StubRepositoryFactory{ShipmentRepo: shipmentRepo}, publisher)

	updated, err := service.UpdateShipmentStatus(context.Background(), shipment.ID(), &usecase.UpdateShipmentStatusInput{
		Status:   "shipped",
		Location: "Springfield depot",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ShipmentStatusShipped, updated.Status())

	history := updated.TrackingDetails()
	require.Len(t, history, 1)
	assert.Equal(t, entity.ShipmentStatusShipped, history[0].Status)
	assert.Equal(t, "Springfield depot", history[0].Location)
}

func TestUpdateShipmentStatusRejectsSkippedState(t *testing.T) {
	shipment := newTestShipment(t)

	shipmentRepo := new(mockrepo.ShipmentRepository)
	shipmentRepo.On("FindByIDWithChildren", mock.Anything, shipment.ID()).Return(shipment, nil)

	service := newShipmentService(&mockrepo.StubRepositoryFactory{ShipmentRepo: shipmentRepo}, new(mockservice.EventPublisher))

	_, err := service.UpdateShipmentStatus(context.Background(), shipment.ID(), &usecase.UpdateShipmentStatusInput{
		Status: "delivered",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	shipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateCarrierAfterPendingFails(t *testing.T) {
	shipment := newTestShipment(t)
	require.NoError(t, shipment.UpdateStatus(entity.ShipmentStatusShipped, "", ""))
	shipment.ClearEvents()

	shipmentRepo := new(mockrepo.ShipmentRepository)
	shipmentRepo.On("FindByIDWithChildren", mock.Anything, shipment.ID()).Return(shipment, nil)

	service := newShipmentService(&mockrepo.StubRepositoryFactory{ShipmentRepo: shipmentRepo}, new(mockservice.EventPublisher))

	_, err := service.UpdateCarrier(context.Background(), shipment.ID(), &usecase.UpdateCarrierInput{
		Carrier:        "FedEx",
		TrackingNumber: "FDX-12345",
	})
	require.ErrorIs(t, err, domainerrors.ErrConflict)
}

func newTestShipment(t *testing.T) *entity.Shipment {
	t.Helper()

	address, err := entity.NewAddress("1 Main St", "Springfield", "IL", "62704", "USA")
	require.NoError(t, err)

	weight, err := entity.NewWeight(decimal.NewFromFloat(2.5), entity.WeightUnitKilograms)
	require.NoError(t, err)

	dims, err := entity.NewDimensions(
		decimal.NewFromInt(30), decimal.NewFromInt(20), decimal.NewFromInt(10),
		entity.DimensionUnitCentimeters)
	require.NoError(t, err)

	cost, err := entity.NewMoney(decimal.NewFromFloat(9.99), "USD")
	require.NoError(t, err)

	tracking, err := entity.NewTrackingNumber("TRK-TEST-0001")
	require.NoError(t, err)

	shipment, err := entity.NewShipment(uuid.New(), tracking, "UPS", address, address, weight, dims, cost, nil)
	require.NoError(t, err)

	return shipment
}
