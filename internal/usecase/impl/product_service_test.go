package impl_test

import (
	"context"
	"testing"

	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	mockrepo "shop/internal/mocks/repository"
	mockservice "shop/internal/mocks/service"
	"shop/internal/usecase"
	"shop/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductService(factory *mockrepo.StubRepositoryFactory, publisher *mockservice.EventPublisher) usecase.ProductUsecase {
	return impl.NewProductService(
		&mockrepo.StubTransactionManager{Factory: factory},
		usecase.NewCommandValidator(),
		publisher,
		testLogger(),
	)
}

func TestCreateProduct(t *testing.T) {
	productRepo := new(mockrepo.ProductRepository)
	publisher := new(mockservice.EventPublisher)

	productRepo.On("FindBySku", mock.Anything, mock.Anything).Return(nil, repository.ErrProductNotFound)
	productRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Product")).Return(nil)
	publisher.On("PublishDomainEvent", mock.Anything, mock.Anything).Return(nil)

	service := newProductService(&mockrepo.StubRepositoryFactory{ProductRepo: productRepo}, publisher)

	product, err := service.CreateProduct(context.Background(), &usecase.CreateProductInput{
		Name:              "Widget",
		Description:       "A widget",
		PriceAmount:       "19.99",
		Currency:          "usd",
		Sku:               "wid001",
		StockQuantity:     10,
		LowStockThreshold: 3,
		Actor:             "merch",
	})
	require.NoError(t, err)

	// SKU and currency are normalized to upper case.
	assert.Equal(t, "WID001", product.Sku().Value())
	assert.Equal(t, "USD", product.Price().Currency())
	assert.True(t, product.IsActive())
	assert.Equal(t, 10, product.Stock().Value())

	productRepo.AssertExpectations(t)
	publisher.AssertNumberOfCalls(t, "PublishDomainEvent", 1)
}

func TestCreateProductRejectsDuplicateSku(t *testing.T) {
	existing := newTestProduct(t, "WID001", 10, 5)

	productRepo := new(mockrepo.ProductRepository)
	productRepo.On("FindBySku", mock.Anything, mock.Anything).Return(existing, nil)

	service := newProductService(&mockrepo.StubRepositoryFactory{ProductRepo: productRepo}, new(mockservice.EventPublisher))

	_, err := service.CreateProduct(context.Background(), &usecase.CreateProductInput{
		Name:        "Widget",
		PriceAmount: "19.99",
		Currency:    "USD",
		Sku:         "WID001",
		Actor:       "merch",
	})
	require.ErrorIs(t, err, domainerrors.ErrDuplicateSku)
	productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	service := newProductService(&mockrepo.StubRepositoryFactory{}, new(mockservice.EventPublisher))

	_, err := service.CreateProduct(context.Background(), &usecase.CreateProductInput{
		Name:        "Widget",
		PriceAmount: "-1.00",
		Currency:    "USD",
		Sku:         "WID001",
		Actor:       "merch",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvariantViolation)
}

func TestUpdateStockDecrease(t *testing.T) {
	product := newTestProduct(t, "WID001", 10, 10)

	productRepo := new(mockrepo.ProductRepository)
	publisher := new(mockservice.EventPublisher)
	productRepo.On("FindByID", mock.Anything, product.ID()).Return(product, nil)
	productRepo.On("Update", mock.Anything, product).Return(nil)
	publisher.On("PublishDomainEvent", mock.Anything, mock.Anything).Return(nil)

	service := newProductService(&mockrepo.StubRepositoryFactory{ProductRepo: productRepo}, publisher)

	updated, err := service.UpdateStock(context.Background(), product.ID(), &usecase.UpdateStockInput{
		Operation: "decrease",
		Quantity:  4,
		Actor:     "merch",
	})
	require.NoError(t, err)
	assert.Equal(t, 6, updated.Stock().Value())
	productRepo.AssertExpectations(t)
}

func TestUpdateStockDecreaseBelowZeroFails(t *testing.T) {
	product := newTestProduct(t, "WID001", 10, 3)

	productRepo := new(mockrepo.ProductRepository)
	productRepo.On("FindByID", mock.Anything, product.ID()).Return(product, nil)

	service := newProductService(&mockrepo.StubRepositoryFactory{ProductRepo: productRepo}, new(mockservice.EventPublisher))

	_, err := service.UpdateStock(context.Background(), product.ID(), &usecase.UpdateStockInput{
		Operation: "decrease",
		Quantity:  5,
		Actor:     "merch",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvariantViolation)
	productRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteProductReferencedByOrder(t *testing.T) {
	product := newTestProduct(t, "WID001", 10, 3)

	productRepo := new(mockrepo.ProductRepository)
	orderRepo := new(mockrepo.OrderRepository)
	productRepo.On("FindByID", mock.Anything, product.ID()).Return(product, nil)
	orderRepo.On("ExistsWithProduct", mock.Anything, product.ID()).Return(true, nil)

	service := newProductService(&mockrepo.StubRepositoryFactory{
		ProductRepo: productRepo,
		OrderRepo:   orderRepo,
	}, new(mockservice.EventPublisher))

	err := service.DeleteProduct(context.Background(), product.ID())
	require.ErrorIs(t, err, domainerrors.ErrProductInUse)
	productRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteProductUnreferenced(t *testing.T) {
	product := newTestProduct(t, "WID001", 10, 3)

	productRepo := new(mockrepo.ProductRepository)
	orderRepo := new(mockrepo.OrderRepository)
	productRepo.On("FindByID", mock.Anything, product.ID()).Return(product, nil)
	orderRepo.On("ExistsWithProduct", mock.Anything, product.ID()).Return(false, nil)
	productRepo.On("Delete", mock.Anything, product.ID()).Return(nil)

	service := newProductService(&mockrepo.StubRepositoryFactory{
		ProductRepo: productRepo,
		OrderRepo:   orderRepo,
	}, new(mockservice.EventPublisher))

	require.NoError(t, service.DeleteProduct(context.Background(), product.ID()))
	productRepo.AssertExpectations(t)
}

func TestGetProductNotFound(t *testing.T) {
	productRepo := new(mockrepo.ProductRepository)
	productRepo.On("FindByIDWithChildren", mock.Anything, mock.Anything).
		Return(nil, repository.ErrProductNotFound)

	service := newProductService(&mockrepo.StubRepositoryFactory{ProductRepo: productRepo}, new(mockservice.EventPublisher))

	_, err := service.GetProduct(context.Background(), newTestProduct(t, "WID001", 1, 1).ID())
	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
