package postgres

import (
	"context"
	"time"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultListLimit = 50

// productRepository implements the domain's ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a single product by its unique ID, without children.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var data model.ProductModel
	if err := repo.db.WithContext(ctx).First(&data, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&data)
}

// FindByIDWithChildren retrieves a product including its details and images.
func (repo *productRepository) FindByIDWithChildren(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var data model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Details").
		Preload("Images").
		First(&data, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&data)
}

// FindBySku retrieves a single product by its natural key.
func (repo *productRepository) FindBySku(ctx context.Context, sku entity.Sku) (*entity.Product, error) {
	var data model.ProductModel
	if err := repo.db.WithContext(ctx).First(&data, "sku = ?", sku.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by sku")
	}

	return toProductDomain(&data)
}

// List returns products matching the filter, newest first.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	tx := repo.db.WithContext(ctx).Model(&model.ProductModel{})
	if filter.ActiveOnly {
		tx = tx.Where("is_active = ?", true)
	}
	if filter.LowStockOnly {
		tx = tx.Where("stock_quantity <= low_stock_threshold")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	var rows []model.ProductModel
	if err := tx.Order("created_at DESC").Limit(limit).Offset(filter.Offset).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(rows))
	for i := range rows {
		product, err := toProductDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

// Create persists a new product aggregate including its children.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	data := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(data).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateSku.WrapMessage(product.Sku().Value())
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvariantViolation.WrapMessage("product row violates a check constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	return nil
}

// Update persists changes to an existing product aggregate. Children are
// replaced wholesale so removed details and images are deleted.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	data := fromProductDomain(product)

	tx := repo.db.WithContext(ctx)
	if err := tx.Omit(clause.Associations).Save(data).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateSku.WrapMessage(product.Sku().Value())
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvariantViolation.WrapMessage("product row violates a check constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	if err := tx.Model(data).Association("Details").Unscoped().Replace(&data.Details); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace product details")
	}
	if err := tx.Model(data).Association("Images").Unscoped().Replace(&data.Images); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace product images")
	}

	return nil
}

// Delete removes a product; children cascade at the database level.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrProductInUse.WrapMessage(id.String())
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DecrementStock subtracts quantity, guarded by the database so the stock
// can never go negative under concurrent placements.
func (repo *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
		Where("id = ? AND stock_quantity >= ?", id, quantity).
		UpdateColumns(map[string]any{
			"stock_quantity": gorm.Expr("stock_quantity - ?", quantity),
			"updated_at":     time.Now().UTC(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInsufficientStock
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) (*entity.Product, error) {
	price, err := entity.NewMoney(data.PriceAmount, data.Currency)
	if err != nil {
		return nil, errors.Wrap(err, "stored product price is invalid")
	}

	sku, err := entity.NewSku(data.Sku)
	if err != nil {
		return nil, errors.Wrap(err, "stored product sku is invalid")
	}

	stock, err := entity.NewStockQuantity(data.StockQuantity)
	if err != nil {
		return nil, errors.Wrap(err, "stored product stock is invalid")
	}

	details := make(map[string]string, len(data.Details))
	for _, detail := range data.Details {
		details[detail.Key] = detail.Value
	}

	images := make([]entity.ProductImage, 0, len(data.Images))
	for _, image := range data.Images {
		images = append(images, entity.ProductImage{
			ID:        image.ID,
			URL:       image.URL,
			AltText:   image.AltText,
			IsPrimary: image.IsPrimary,
		})
	}

	return entity.RehydrateProduct(
		data.ID,
		data.Name, data.Description,
		price,
		sku,
		stock,
		data.LowStockThreshold,
		data.IsActive,
		details,
		images,
		data.CreatedAt, data.UpdatedAt,
		data.CreatedBy, data.ModifiedBy,
	), nil
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel for persistence.
func fromProductDomain(product *entity.Product) *model.ProductModel {
	details := make([]model.ProductDetailModel, 0, len(product.Details()))
	for key, value := range product.Details() {
		details = append(details, model.ProductDetailModel{
			ID:        uuid.New(),
			ProductID: product.ID(),
			Key:       key,
			Value:     value,
		})
	}

	images := make([]model.ProductImageModel, 0, len(product.Images()))
	for _, image := range product.Images() {
		images = append(images, model.ProductImageModel{
			ID:        image.ID,
			ProductID: product.ID(),
			URL:       image.URL,
			AltText:   image.AltText,
			IsPrimary: image.IsPrimary,
		})
	}

	return &model.ProductModel{
		ID:                product.ID(),
		Name:              product.Name(),
		Description:       product.Description(),
		PriceAmount:       product.Price().Amount(),
		Currency:          product.Price().Currency(),
		Sku:               product.Sku().Value(),
		StockQuantity:     product.Stock().Value(),
		LowStockThreshold: product.LowStockThreshold(),
		IsActive:          product.IsActive(),
		CreatedAt:         product.CreatedAt(),
		UpdatedAt:         product.UpdatedAt(),
		CreatedBy:         product.CreatedBy(),
		ModifiedBy:        product.ModifiedBy(),
		Details:           details,
		Images:            images,
	}
}
