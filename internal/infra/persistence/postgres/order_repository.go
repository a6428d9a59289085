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
	"gorm.io/gorm/clause"
)

// orderRepository implements the domain's OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// FindByID retrieves a single order by its unique ID, without line items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var data model.OrderModel
	if err := repo.db.WithContext(ctx).First(&data, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&data)
}

// FindByIDWithDetails retrieves an order including its line items.
func (repo *orderRepository) FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var data model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Details").
		First(&data, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&data)
}

// FindByOrderNumber retrieves an order by its natural key.
func (repo *orderRepository) FindByOrderNumber(ctx context.Context, number entity.OrderNumber) (*entity.Order, error) {
	var data model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Details").
		First(&data, "order_number = ?", number.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by number")
	}

	return toOrderDomain(&data)
}

// List returns orders matching the filter, newest first.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	tx := repo.db.WithContext(ctx).Model(&model.OrderModel{})
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}
	if filter.CustomerEmail != "" {
		tx = tx.Where("customer_email = ?", filter.CustomerEmail)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	var rows []model.OrderModel
	err := tx.Preload("Details").
		Order("created_at DESC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(rows))
	for i := range rows {
		order, err := toOrderDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// Create persists a new order aggregate including its line items. A unique
// index on order_number turns a generation collision into an error here
// instead of a silent duplicate.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	data := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(data).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage(
				"order number " + order.OrderNumber().Value() + " already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "order references a missing row")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	return nil
}

// Update persists changes to an existing order aggregate.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	data := fromOrderDomain(order)

	tx := repo.db.WithContext(ctx)
	if err := tx.Omit(clause.Associations).Save(data).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update order")
	}

	if err := tx.Model(data).Association("Details").Unscoped().Replace(&data.Details); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace order details")
	}

	return nil
}

// Delete removes an order; line items cascade at the database level.
func (repo *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.OrderModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// ExistsWithProduct reports whether any order line references the product.
func (repo *orderRepository) ExistsWithProduct(ctx context.Context, productID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.OrderDetailModel{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to count order details by product")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	number, err := entity.NewOrderNumber(data.OrderNumber)
	if err != nil {
		return nil, errors.Wrap(err, "stored order number is invalid")
	}

	email, err := entity.NewEmail(data.CustomerEmail)
	if err != nil {
		return nil, errors.Wrap(err, "stored customer email is invalid")
	}

	address, err := entity.NewAddress(
		data.ShippingStreet, data.ShippingCity, data.ShippingState,
		data.ShippingPostalCode, data.ShippingCountry)
	if err != nil {
		return nil, errors.Wrap(err, "stored shipping address is invalid")
	}

	total, err := entity.NewMoney(data.TotalAmount, data.Currency)
	if err != nil {
		return nil, errors.Wrap(err, "stored order total is invalid")
	}

	details := make([]entity.OrderDetail, 0, len(data.Details))
	for _, row := range data.Details {
		unitPrice, err := entity.NewMoney(row.UnitPriceAmount, row.Currency)
		if err != nil {
			return nil, errors.Wrap(err, "stored unit price is invalid")
		}
		lineTotal, err := entity.NewMoney(row.LineTotalAmount, row.Currency)
		if err != nil {
			return nil, errors.Wrap(err, "stored line total is invalid")
		}

		details = append(details, entity.OrderDetail{
			ID:          row.ID,
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			ProductSku:  row.ProductSku,
			Quantity:    row.Quantity,
			UnitPrice:   unitPrice,
			LineTotal:   lineTotal,
		})
	}

	return entity.RehydrateOrder(
		data.ID,
		number,
		data.CustomerName,
		email,
		address,
		entity.OrderStatus(data.Status),
		total,
		data.Notes,
		details,
		data.CreatedAt, data.UpdatedAt,
		data.CreatedBy, data.ModifiedBy,
	), nil
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel for persistence.
func fromOrderDomain(order *entity.Order) *model.OrderModel {
	address := order.ShippingAddress()

	details := make([]model.OrderDetailModel, 0, len(order.Details()))
	for _, detail := range order.Details() {
		details = append(details, model.OrderDetailModel{
			ID:              detail.ID,
			OrderID:         order.ID(),
			ProductID:       detail.ProductID,
			ProductName:     detail.ProductName,
			ProductSku:      detail.ProductSku,
			Quantity:        detail.Quantity,
			UnitPriceAmount: detail.UnitPrice.Amount(),
			LineTotalAmount: detail.LineTotal.Amount(),
			Currency:        detail.UnitPrice.Currency(),
		})
	}

	return &model.OrderModel{
		ID:                 order.ID(),
		OrderNumber:        order.OrderNumber().Value(),
		CustomerName:       order.CustomerName(),
		CustomerEmail:      order.CustomerEmail().Value(),
		ShippingStreet:     address.Street(),
		ShippingCity:       address.City(),
		ShippingState:      address.State(),
		ShippingPostalCode: address.PostalCode(),
		ShippingCountry:    address.Country(),
		Status:             string(order.Status()),
		TotalAmount:        order.TotalAmount().Amount(),
		Currency:           order.TotalAmount().Currency(),
		Notes:              order.Notes(),
		CreatedAt:          order.CreatedAt(),
		UpdatedAt:          order.UpdatedAt(),
		CreatedBy:          order.CreatedBy(),
		ModifiedBy:         order.ModifiedBy(),
		Details:            details,
	}
}
