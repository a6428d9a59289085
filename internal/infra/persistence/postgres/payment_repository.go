package postgres

import (
	"context"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements the domain's PaymentRepository interface using GORM.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// FindByID retrieves a single payment by its unique ID.
func (repo *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var data model.PaymentModel
	if err := repo.db.WithContext(ctx).First(&data, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by id")
	}

	return toPaymentDomain(&data)
}

// FindByOrderID returns all payments recorded for an order, oldest first.
func (repo *paymentRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.Payment, error) {
	var rows []model.PaymentModel
	err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payments by order id")
	}

	payments := make([]*entity.Payment, 0, len(rows))
	for i := range rows {
		payment, err := toPaymentDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}

	return payments, nil
}

// Create persists a new payment aggregate.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	data := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(data).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "payment references a missing order")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	return nil
}

// Update persists changes to an existing payment aggregate.
func (repo *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	data := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Save(data).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update payment")
	}

	return nil
}

// Delete removes a payment.
func (repo *paymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.PaymentModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete payment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPaymentDomain converts a GORM PaymentModel to a domain Payment entity.
func toPaymentDomain(data *model.PaymentModel) (*entity.Payment, error) {
	amount, err := entity.NewMoney(data.Amount, data.Currency)
	if err != nil {
		return nil, errors.Wrap(err, "stored payment amount is invalid")
	}

	return entity.RehydratePayment(
		data.ID,
		data.OrderID,
		entity.PaymentStatus(data.Status),
		amount,
		data.PaymentMethod,
		data.TransactionID,
		data.CreatedAt, data.UpdatedAt,
	), nil
}

// fromPaymentDomain converts a domain Payment entity to a GORM PaymentModel for persistence.
func fromPaymentDomain(payment *entity.Payment) *model.PaymentModel {
	return &model.PaymentModel{
		ID:            payment.ID(),
		OrderID:       payment.OrderID(),
		Status:        string(payment.Status()),
		Amount:        payment.Amount().Amount(),
		Currency:      payment.Amount().Currency(),
		PaymentMethod: payment.PaymentMethod(),
		TransactionID: payment.TransactionID(),
		CreatedAt:     payment.CreatedAt(),
		UpdatedAt:     payment.UpdatedAt(),
	}
}
