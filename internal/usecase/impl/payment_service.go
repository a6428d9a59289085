package impl

import (
	"context"
	"log/slog"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager repository.TransactionManager
	validator *usecase.CommandValidator
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(
	txManager repository.TransactionManager,
	validator *usecase.CommandValidator,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.PaymentUsecase {
	return &paymentService{
		txManager: txManager,
		validator: validator,
		publisher: publisher,
		logger:    logger,
	}
}

// CreatePayment records a pending payment attempt against an existing order.
func (srv *paymentService) CreatePayment(ctx context.Context, input *usecase.CreatePaymentInput) (*entity.Payment, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	orderID, err := uuid.Parse(input.OrderID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("order id is not a valid uuid")
	}

	amount, err := parseMoney(input.Amount, input.Currency)
	if err != nil {
		return nil, err
	}

	var payment *entity.Payment

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.Orders().FindByID(ctx, orderID); err != nil {
			return translateOrderErr(err)
		}

		created, err := entity.NewPayment(orderID, amount, input.PaymentMethod)
		if err != nil {
			return err
		}

		if err := repoFactory.Payments().Create(ctx, created); err != nil {
			return errors.Wrap(err, "failed to create payment")
		}
		payment = created

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Payment created", "paymentID", payment.ID(), "orderID", orderID, "amount", amount.String())

	return payment, nil
}

// UpdatePaymentStatus settles a payment attempt as successful or failed.
func (srv *paymentService) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, input *usecase.UpdatePaymentStatusInput) (*entity.Payment, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	var payment *entity.Payment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		paymentRepo := repoFactory.Payments()

		found, err := paymentRepo.FindByID(ctx, id)
		if err != nil {
			return translatePaymentErr(err)
		}

		if err := found.UpdateStatus(entity.PaymentStatus(input.Status), input.TransactionID); err != nil {
			return err
		}

		if err := paymentRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update payment")
		}
		payment = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	publishEvents(ctx, srv.publisher, srv.logger, payment)

	return payment, nil
}

// GetPayment retrieves a payment by id.
func (srv *paymentService) GetPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var payment *entity.Payment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.Payments().FindByID(ctx, id)
		if err != nil {
			return translatePaymentErr(err)
		}
		payment = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}

// ListPaymentsForOrder returns every payment attempt recorded for an order.
func (srv *paymentService) ListPaymentsForOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.Payment, error) {
	var payments []*entity.Payment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.Orders().FindByID(ctx, orderID); err != nil {
			return translateOrderErr(err)
		}

		found, err := repoFactory.Payments().FindByOrderID(ctx, orderID)
		if err != nil {
			return errors.Wrap(err, "failed to list payments")
		}
		payments = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return payments, nil
}

func translatePaymentErr(err error) error {
	if errors.Is(err, repository.ErrPaymentNotFound) {
		return errors.WithStack(domainerrors.ErrPaymentNotFound)
	}

	return errors.Wrap(err, "failed to load payment")
}
