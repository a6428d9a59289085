package impl_test

import (
	"context"
	"testing"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
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

func newPaymentService(factory *mockrepo.StubRepositoryFactory, publisher *mockservice.EventPublisher) usecase.PaymentUsecase {
	return impl.NewPaymentService(
		&mockrepo.StubTransactionManager{Factory: factory},
		usecase.NewCommandValidator(),
		publisher,
		testLogger(),
	)
}

func newTestPayment(t *testing.T, orderID uuid.UUID) *entity.Payment {
	t.Helper()

	amount, err := entity.NewMoney(decimal.NewFromInt(50), "USD")
	require.NoError(t, err)

	payment, err := entity.NewPayment(orderID, amount, "card")
	require.NoError(t, err)

	return payment
}

func TestCreatePaymentForMissingOrder(t *testing.T) {
	orderRepo := new(mockrepo.OrderRepository)
	orderRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, repository.ErrOrderNotFound)

	service := newPaymentService(&mockrepo.StubRepositoryFactory{OrderRepo: orderRepo}, new(mockservice.EventPublisher))

	_, err := service.CreatePayment(context.Background(), &usecase.CreatePaymentInput{
		OrderID:       uuid.NewString(),
		Amount:        "50.00",
		Currency:      "USD",
		PaymentMethod: "card",
	})
	require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestUpdatePaymentStatusSettlesSuccessfully(t *testing.T) {
	orderID := uuid.New()
	payment := newTestPayment(t, orderID)

	paymentRepo := new(mockrepo.PaymentRepository)
	publisher := new(mockservice.EventPublisher)
	paymentRepo.On("FindByID", mock.Anything, payment.ID()).Return(payment, nil)
	paymentRepo.On("Update", mock.Anything, payment).Return(nil)
	publisher.On("PublishDomainEvent", mock.Anything, mock.Anything).Return(nil)

	service := newPaymentService(&mockrepo.StubRepositoryFactory{PaymentRepo: paymentRepo}, publisher)

	settled, err := service.UpdatePaymentStatus(context.Background(), payment.ID(), &usecase.UpdatePaymentStatusInput{
		Status:        "successful",
		TransactionID: "txn-12345",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusSuccessful, settled.Status())
	assert.Equal(t, "txn-12345", settled.TransactionID())
	publisher.AssertNumberOfCalls(t, "PublishDomainEvent", 1)
}

func TestUpdatePaymentStatusRejectsSelfTransition(t *testing.T) {
	payment := newTestPayment(t, uuid.New())

	paymentRepo := new(mockrepo.PaymentRepository)
	paymentRepo.On("FindByID", mock.Anything, payment.ID()).Return(payment, nil)

	service := newPaymentService(&mockrepo.StubRepositoryFactory{PaymentRepo: paymentRepo}, new(mockservice.EventPublisher))

	_, err := service.UpdatePaymentStatus(context.Background(), payment.ID(), &usecase.UpdatePaymentStatusInput{
		Status: "pending",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "already pending")
	paymentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdatePaymentStatusRejectsTerminalTransition(t *testing.T) {
	payment := newTestPayment(t, uuid.New())
	require.NoError(t, payment.UpdateStatus(entity.PaymentStatusFailed, ""))
	payment.ClearEvents()

	paymentRepo := new(mockrepo.PaymentRepository)
	paymentRepo.On("FindByID", mock.Anything, payment.ID()).Return(payment, nil)

	service := newPaymentService(&mockrepo.StubRepositoryFactory{PaymentRepo: paymentRepo}, new(mockservice.EventPublisher))

	_, err := service.UpdatePaymentStatus(context.Background(), payment.ID(), &usecase.UpdatePaymentStatusInput{
		Status: "successful",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "terminal")
}
