package impl_test

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	mockrepo "shop/internal/mocks/repository"
	mockservice "shop/internal/mocks/service"
	"shop/internal/usecase"
	"shop/internal/usecase/impl"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestProduct(t *testing.T, sku string, price int64, stock int) *entity.Product {
	t.Helper()

	money, err := entity.NewMoney(decimal.NewFromInt(price), "USD")
	require.NoError(t, err)

	skuVal, err := entity.NewSku(sku)
	require.NoError(t, err)

	quantity, err := entity.NewStockQuantity(stock)
	require.NoError(t, err)

	product, err := entity.NewProduct("Widget", "A widget", money, skuVal, quantity, 5, "tester")
	require.NoError(t, err)
	product.ClearEvents()

	return product
}

func validAddressInput() usecase.AddressInput {
	return usecase.AddressInput{
		Street:     "1 Main St",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "62704",
		Country:    "USA",
	}
}

func newOrderService(factory *mockrepo.StubRepositoryFactory, publisher *mockservice.EventPublisher) usecase.OrderUsecase {
	return impl.NewOrderService(
		&mockrepo.StubTransactionManager{Factory: factory},
		usecase.NewCommandValidator(),
		publisher,
		impl.NewRandSource(),
		testLogger(),
	)
}

func TestPlaceOrderMergesLinesForSameProduct(t *testing.T) {
	product := newTestProduct(t, "WID001", 10, 20)

	productRepo := new(mockrepo.ProductRepository)
	orderRepo := new(mockrepo.OrderRepository)
	publisher := new(mockservice.EventPublisher)

	productRepo.On("FindByID", mock.Anything, product.ID()).Return(product, nil)
	productRepo.On("DecrementStock", mock.Anything, product.ID(), 7).Return(nil)
	orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil)
	publisher.On("PublishDomainEvent", mock.Anything, mock.Anything).Return(nil)

	service := newOrderService(&mockrepo.StubRepositoryFactory{
		ProductRepo: productRepo,
		OrderRepo:   orderRepo,
	}, publisher)

	order, err := service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{
		CustomerName:    "Ada Lovelace",
		CustomerEmail:   "ada@example.com",
		ShippingAddress: validAddressInput(),
		Currency:        "USD",
		Lines: []usecase.OrderLineInput{
			{ProductID: product.ID().String(), Quantity: 3},
			{ProductID: product.ID().String(), Quantity: 4},
		},
		Actor: "ada",
	})
	require.NoError(t, err)

	details := order.Details()
	require.Len(t, details, 1)
	assert.Equal(t, 7, details[0].Quantity)
	assert.Equal(t, "70", order.TotalAmount().Amount().String())
	assert.Equal(t, entity.OrderStatusPending, order.Status())
	assert.Regexp(t, regexp.MustCompile(`^ORD-\d{8}-[A-Z0-9]{5}$`), order.OrderNumber().Value())

	productRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestPlaceOrderInsufficientStockLeavesNothingBehind(t *testing.T) {
	plenty := newTestProduct(t, "WID001", 10, 50)
	scarce := newTestProduct(t, "WID002", 25, 2)

	productRepo := new(mockrepo.ProductRepository)
	orderRepo := new(mockrepo.OrderRepository)

	productRepo.On("FindByID", mock.Anything, plenty.ID()).Return(plenty, nil)
	productRepo.On("FindByID", mock.Anything, scarce.ID()).Return(scarce, nil)

	service := newOrderService(&mockrepo.StubRepositoryFactory{
		ProductRepo: productRepo,
		OrderRepo:   orderRepo,
	}, new(mockservice.EventPublisher))

	_, err := service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{
		CustomerName:    "Ada Lovelace",
		CustomerEmail:   "ada@example.com",
		ShippingAddress: validAddressInput(),
		Currency:        "USD",
		Lines: []usecase.OrderLineInput{
			{ProductID: plenty.ID().String(), Quantity: 1},
			{ProductID: scarce.ID().String(), Quantity: 3},
		},
		Actor: "ada",
	})
	require.Error(t, err)

	var stockErr *domainerrors.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, scarce.ID().String(), stockErr.ProductID)
	assert.Equal(t, 3, stockErr.Requested)
	assert.Equal(t, 2, stockErr.Available)

	productRepo.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlaceOrderRejectsInactiveProduct(t *testing.T) {
	product := newTestProduct(t, "WID001", 10, 20)
	product.Deactivate("tester")
	product.ClearEvents()

	productRepo := new(mockrepo.ProductRepository)
	orderRepo := new(mockrepo.OrderRepository)
	productRepo.On("FindByID", mock.Anything, product.ID()).Return(product, nil)

	service := newOrderService(&mockrepo.StubRepositoryFactory{
		ProductRepo: productRepo,
		OrderRepo:   orderRepo,
	}, new(mockservice.EventPublisher))

	_, err := service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{
		CustomerName:    "Ada Lovelace",
		CustomerEmail:   "ada@example.com",
		ShippingAddress: validAddressInput(),
		Currency:        "USD",
		Lines:           []usecase.OrderLineInput{{ProductID: product.ID().String(), Quantity: 1}},
		Actor:           "ada",
	})
	require.ErrorIs(t, err, domainerrors.ErrProductUnavailable)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlaceOrderConditionalDecrementLosesRace(t *testing.T) {
	product := newTestProduct(t, "WID001", 10, 20)

	productRepo := new(mockrepo.ProductRepository)
	orderRepo := new(mockrepo.OrderRepository)

	productRepo.On("FindByID", mock.Anything, product.ID()).Return(product, nil)
	// A concurrent placement drained the stock between the read and the
	// conditional update.
	productRepo.On("DecrementStock", mock.Anything, product.ID(), 5).
		Return(repository.ErrInsufficientStock)

	service := newOrderService(&mockrepo.StubRepositoryFactory{
		ProductRepo: productRepo,
		OrderRepo:   orderRepo,
	}, new(mockservice.EventPublisher))

	_, err := service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{
		CustomerName:    "Ada Lovelace",
		CustomerEmail:   "ada@example.com",
		ShippingAddress: validAddressInput(),
		Currency:        "USD",
		Lines:           []usecase.OrderLineInput{{ProductID: product.ID().String(), Quantity: 5}},
		Actor:           "ada",
	})
	require.Error(t, err)

	var stockErr *domainerrors.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlaceOrderRejectsEmptyLines(t *testing.T) {
	service := newOrderService(&mockrepo.StubRepositoryFactory{}, new(mockservice.EventPublisher))

	_, err := service.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{
		CustomerName:    "Ada Lovelace",
		CustomerEmail:   "ada@example.com",
		ShippingAddress: validAddressInput(),
		Currency:        "USD",
		Lines:           nil,
		Actor:           "ada",
	})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestUpdateOrderStatusRejectsIllegalTransition(t *testing.T) {
	product := newTestProduct(t, "WID001", 10, 20)
	order := newTestOrder(t, product)

	orderRepo := new(mockrepo.OrderRepository)
	orderRepo.On("FindByIDWithDetails", mock.Anything, order.ID()).Return(order, nil)

	service := newOrderService(&mockrepo.StubRepositoryFactory{OrderRepo: orderRepo}, new(mockservice.EventPublisher))

	_, err := service.UpdateOrderStatus(context.Background(), order.ID(), &usecase.UpdateOrderStatusInput{
		Status: "shipped",
		Actor:  "ops",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCancelOrderFromPending(t *testing.T) {
	product := newTestProduct(t, "WID001", 10, 20)
	order := newTestOrder(t, product)

	orderRepo := new(mockrepo.OrderRepository)
	publisher := new(mockservice.EventPublisher)
	orderRepo.On("FindByIDWithDetails", mock.Anything, order.ID()).Return(order, nil)
	orderRepo.On("Update", mock.Anything, order).Return(nil)
	publisher.On("PublishDomainEvent", mock.Anything, mock.Anything).Return(nil)

	service := newOrderService(&mockrepo.StubRepositoryFactory{OrderRepo: orderRepo}, publisher)

	cancelled, err := service.CancelOrder(context.Background(), order.ID(), &usecase.CancelOrderInput{
		Reason: "customer changed their mind",
		Actor:  "support",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status())

	// One order.cancelled plus one order.status_changed.
	publisher.AssertNumberOfCalls(t, "PublishDomainEvent", 2)
}

func TestGetOrderNotFound(t *testing.T) {
	orderRepo := new(mockrepo.OrderRepository)
	orderRepo.On("FindByIDWithDetails", mock.Anything, mock.Anything).
		Return(nil, repository.ErrOrderNotFound)

	service := newOrderService(&mockrepo.StubRepositoryFactory{OrderRepo: orderRepo}, new(mockservice.EventPublisher))

	_, err := service.GetOrder(context.Background(), newTestProduct(t, "WID001", 1, 1).ID())
	require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func newTestOrder(t *testing.T, product *entity.Product) *entity.Order {
	t.Helper()

	email, err := entity.NewEmail("ada@example.com")
	require.NoError(t, err)

	address, err := entity.NewAddress("1 Main St", "Springfield", "IL", "62704", "USA")
	require.NoError(t, err)

	number := entity.GenerateOrderNumber(time.Now().UTC(), impl.NewRandSource())

	order, err := entity.NewOrder(number, "Ada Lovelace", email, address, "", "USD", "ada")
	require.NoError(t, err)
	require.NoError(t, order.AddDetail(product, 2, "ada"))
	order.ClearEvents()

	return order
}
