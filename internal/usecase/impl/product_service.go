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
	"github.com/shopspring/decimal"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager repository.TransactionManager
	validator *usecase.CommandValidator
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	txManager repository.TransactionManager,
	validator *usecase.CommandValidator,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		txManager: txManager,
		validator: validator,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateProduct adds a new product to the catalog.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	price, err := parseMoney(input.PriceAmount, input.Currency)
	if err != nil {
		return nil, err
	}

	sku, err := entity.NewSku(input.Sku)
	if err != nil {
		return nil, err
	}

	stock, err := entity.NewStockQuantity(input.StockQuantity)
	if err != nil {
		return nil, err
	}

	product, err := entity.NewProduct(input.Name, input.Description, price, sku, stock, input.LowStockThreshold, input.Actor)
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Creating product", "sku", sku.Value(), "name", input.Name)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.Products()

		// SKU is a natural key; reject duplicates before inserting.
		if _, err := productRepo.FindBySku(ctx, sku); err == nil {
			return errors.Wrap(domainerrors.ErrDuplicateSku, sku.Value())
		} else if !errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(err, "failed to check sku uniqueness")
		}

		if err := productRepo.Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	publishEvents(ctx, srv.publisher, srv.logger, product)

	return product, nil
}

// UpdateProduct changes descriptive fields, price and active flag.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	price, err := parseMoney(input.PriceAmount, input.Currency)
	if err != nil {
		return nil, err
	}

	var product *entity.Product

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.Products()

		found, err := productRepo.FindByIDWithChildren(ctx, id)
		if err != nil {
			return translateProductErr(err)
		}

		if err := found.Update(input.Name, input.Description, price, input.LowStockThreshold, input.Actor); err != nil {
			return err
		}
		if input.Active {
			found.Activate(input.Actor)
		} else {
			found.Deactivate(input.Actor)
		}

		if err := productRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update product")
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	publishEvents(ctx, srv.publisher, srv.logger, product)

	return product, nil
}

// UpdateStock sets or adjusts the stock count.
func (srv *productService) UpdateStock(ctx context.Context, id uuid.UUID, input *usecase.UpdateStockInput) (*entity.Product, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.Products()

		found, err := productRepo.FindByID(ctx, id)
		if err != nil {
			return translateProductErr(err)
		}

		switch input.Operation {
		case "set":
			stock, err := entity.NewStockQuantity(input.Quantity)
			if err != nil {
				return err
			}
			found.UpdateStock(stock, input.Actor)
		case "increase":
			if err := found.IncreaseStock(input.Quantity, input.Actor); err != nil {
				return err
			}
		case "decrease":
			if err := found.DecreaseStock(input.Quantity, input.Actor); err != nil {
				return err
			}
		}

		if err := productRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update product stock")
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if product.IsLowStock() {
		srv.logger.Warn("Product stock at or below threshold",
			"productID", product.ID(), "stock", product.Stock().Value(),
			"threshold", product.LowStockThreshold())
	}

	publishEvents(ctx, srv.publisher, srv.logger, product)

	return product, nil
}

// AddProductDetail sets a key/value attribute.
func (srv *productService) AddProductDetail(ctx context.Context, id uuid.UUID, input *usecase.ProductDetailInput) (*entity.Product, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	return srv.mutateWithChildren(ctx, id, func(product *entity.Product) error {
		return product.AddDetail(input.Key, input.Value, input.Actor)
	})
}

// RemoveProductDetail deletes a key/value attribute.
func (srv *productService) RemoveProductDetail(ctx context.Context, id uuid.UUID, key, actor string) (*entity.Product, error) {
	return srv.mutateWithChildren(ctx, id, func(product *entity.Product) error {
		return product.RemoveDetail(key, actor)
	})
}

// AddProductImage appends an image, demoting the previous primary if needed.
func (srv *productService) AddProductImage(ctx context.Context, id uuid.UUID, input *usecase.ProductImageInput) (*entity.Product, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	return srv.mutateWithChildren(ctx, id, func(product *entity.Product) error {
		_, err := product.AddImage(input.URL, input.AltText, input.IsPrimary, input.Actor)

		return err
	})
}

// RemoveProductImage deletes an image by id.
func (srv *productService) RemoveProductImage(ctx context.Context, id, imageID uuid.UUID, actor string) (*entity.Product, error) {
	return srv.mutateWithChildren(ctx, id, func(product *entity.Product) error {
		return product.RemoveImage(imageID, actor)
	})
}

// DeleteProduct removes a product unless any order references it.
func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting product", "productID", id)

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.Products()
		orderRepo := repoFactory.Orders()

		if _, err := productRepo.FindByID(ctx, id); err != nil {
			return translateProductErr(err)
		}

		referenced, err := orderRepo.ExistsWithProduct(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to check product references")
		}
		if referenced {
			return errors.Wrap(domainerrors.ErrProductInUse, id.String())
		}

		if err := productRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete product")
		}

		return nil
	})
}

// GetProduct retrieves a product including its details and images.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.Products().FindByIDWithChildren(ctx, id)
		if err != nil {
			return translateProductErr(err)
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// GetProductBySku retrieves a product by its natural key.
func (srv *productService) GetProductBySku(ctx context.Context, rawSku string) (*entity.Product, error) {
	sku, err := entity.NewSku(rawSku)
	if err != nil {
		return nil, err
	}

	var product *entity.Product

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.Products().FindBySku(ctx, sku)
		if err != nil {
			return translateProductErr(err)
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// ListProducts returns the read-side product projection.
func (srv *productService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) ([]*entity.Product, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	var products []*entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.Products().List(ctx, repository.ProductFilter{
			ActiveOnly:   input.ActiveOnly,
			LowStockOnly: input.LowStockOnly,
			Limit:        input.Limit,
			Offset:       input.Offset,
		})
		if err != nil {
			return errors.Wrap(err, "failed to list products")
		}
		products = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (srv *productService) mutateWithChildren(ctx context.Context, id uuid.UUID, mutate func(*entity.Product) error) (*entity.Product, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.Products()

		found, err := productRepo.FindByIDWithChildren(ctx, id)
		if err != nil {
			return translateProductErr(err)
		}

		if err := mutate(found); err != nil {
			return err
		}

		if err := productRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update product")
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	publishEvents(ctx, srv.publisher, srv.logger, product)

	return product, nil
}

func translateProductErr(err error) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return errors.WithStack(domainerrors.ErrProductNotFound)
	}

	return errors.Wrap(err, "failed to load product")
}

// parseMoney builds a Money value from a decimal string and currency code.
func parseMoney(amount, currency string) (entity.Money, error) {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return entity.Money{}, domainerrors.ErrValidationFailed.WrapMessage(
			"amount " + amount + " is not a valid decimal")
	}

	return entity.NewMoney(value, currency)
}
