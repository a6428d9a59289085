package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	validator *usecase.CommandValidator
	publisher service.EventPublisher
	rnd       entity.RandSource
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	validator *usecase.CommandValidator,
	publisher service.EventPublisher,
	rnd entity.RandSource,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager: txManager,
		validator: validator,
		publisher: publisher,
		rnd:       rnd,
		logger:    logger,
	}
}

// PlaceOrder runs the placement workflow in two phases inside one
// transaction. Phase one validates every line against the catalog without
// mutating anything, so a failing line leaves no partial state. Phase two
// builds the order and decrements stock through the conditional update,
// which is the authoritative guard against concurrent placements.
func (srv *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	email, err := entity.NewEmail(input.CustomerEmail)
	if err != nil {
		return nil, err
	}

	address, err := entity.NewAddress(
		input.ShippingAddress.Street,
		input.ShippingAddress.City,
		input.ShippingAddress.State,
		input.ShippingAddress.PostalCode,
		input.ShippingAddress.Country,
	)
	if err != nil {
		return nil, err
	}

	// Merge lines per product up front; availability is judged against the
	// combined quantity, not line by line.
	requested := make(map[uuid.UUID]int, len(input.Lines))
	productIDs := make([]uuid.UUID, 0, len(input.Lines))
	for _, line := range input.Lines {
		productID, err := uuid.Parse(line.ProductID)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage(
				fmt.Sprintf("product id %s is not a valid uuid", line.ProductID))
		}
		if _, seen := requested[productID]; !seen {
			productIDs = append(productIDs, productID)
		}
		requested[productID] += line.Quantity
	}

	var (
		order    *entity.Order
		products map[uuid.UUID]*entity.Product
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.Products()
		orderRepo := repoFactory.Orders()

		products = make(map[uuid.UUID]*entity.Product, len(productIDs))
		for _, productID := range productIDs {
			product, err := productRepo.FindByID(ctx, productID)
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductUnavailable,
					fmt.Sprintf("product %s does not exist", productID))
			}
			if err != nil {
				return errors.Wrap(err, "failed to load product")
			}
			if !product.IsActive() {
				return errors.Wrap(domainerrors.ErrProductUnavailable,
					fmt.Sprintf("product %s is inactive", productID))
			}
			if product.Price().Currency() != input.Currency {
				return domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf(
					"product %s is priced in %s, order currency is %s",
					productID, product.Price().Currency(), input.Currency))
			}
			if product.Stock().Value() < requested[productID] {
				return domainerrors.NewInsufficientStockError(
					productID.String(), requested[productID], product.Stock().Value())
			}
			products[productID] = product
		}

		orderNumber := entity.GenerateOrderNumber(time.Now().UTC(), srv.rnd)

		newOrder, err := entity.NewOrder(orderNumber, input.CustomerName, email, address, input.Notes, input.Currency, input.Actor)
		if err != nil {
			return err
		}

		for _, line := range input.Lines {
			productID, _ := uuid.Parse(line.ProductID)
			if err := newOrder.AddDetail(products[productID], line.Quantity, input.Actor); err != nil {
				return err
			}
		}
		newOrder.MarkPlaced()

		for _, productID := range productIDs {
			// The in-memory decrement only raises the stock-changed event with
			// the snapshot this transaction observed; the conditional update
			// below is what the stored quantity answers to.
			if err := products[productID].DecreaseStock(requested[productID], input.Actor); err != nil {
				return err
			}

			err := productRepo.DecrementStock(ctx, productID, requested[productID])
			if errors.Is(err, repository.ErrInsufficientStock) {
				return domainerrors.NewInsufficientStockError(
					productID.String(), requested[productID], products[productID].Stock().Value())
			}
			if err != nil {
				return errors.Wrap(err, "failed to decrement stock")
			}
		}

		if err := orderRepo.Create(ctx, newOrder); err != nil {
			return errors.Wrap(err, "failed to create order")
		}
		order = newOrder

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Order placed",
		"orderID", order.ID(), "orderNumber", order.OrderNumber().Value(),
		"total", order.TotalAmount().String())

	carriers := make([]entity.EventCarrier, 0, len(productIDs)+1)
	carriers = append(carriers, order)
	for _, productID := range productIDs {
		carriers = append(carriers, products[productID])
	}
	publishEvents(ctx, srv.publisher, srv.logger, carriers...)

	return order, nil
}

// UpdateOrderStatus moves an order along its lifecycle.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.Orders()

		found, err := orderRepo.FindByIDWithDetails(ctx, id)
		if err != nil {
			return translateOrderErr(err)
		}

		if err := found.UpdateStatus(entity.OrderStatus(input.Status), input.Actor); err != nil {
			return err
		}

		if err := orderRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	publishEvents(ctx, srv.publisher, srv.logger, order)

	return order, nil
}

// CancelOrder cancels a non-terminal order with a reason.
func (srv *orderService) CancelOrder(ctx context.Context, id uuid.UUID, input *usecase.CancelOrderInput) (*entity.Order, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.Orders()

		found, err := orderRepo.FindByIDWithDetails(ctx, id)
		if err != nil {
			return translateOrderErr(err)
		}

		if err := found.Cancel(input.Reason, input.Actor); err != nil {
			return err
		}

		if err := orderRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Order cancelled", "orderID", id, "reason", input.Reason)

	publishEvents(ctx, srv.publisher, srv.logger, order)

	return order, nil
}

// GetOrder retrieves an order including its line items.
func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.Orders().FindByIDWithDetails(ctx, id)
		if err != nil {
			return translateOrderErr(err)
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrderByNumber retrieves an order by its natural key.
func (srv *orderService) GetOrderByNumber(ctx context.Context, number string) (*entity.Order, error) {
	orderNumber, err := entity.NewOrderNumber(number)
	if err != nil {
		return nil, err
	}

	var order *entity.Order

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.Orders().FindByOrderNumber(ctx, orderNumber)
		if err != nil {
			return translateOrderErr(err)
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrders returns the read-side order projection.
func (srv *orderService) ListOrders(ctx context.Context, input *usecase.ListOrdersInput) ([]*entity.Order, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	var orders []*entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.Orders().List(ctx, repository.OrderFilter{
			Status:        entity.OrderStatus(input.Status),
			CustomerEmail: input.CustomerEmail,
			Limit:         input.Limit,
			Offset:        input.Offset,
		})
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}
		orders = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func translateOrderErr(err error) error {
	if errors.Is(err, repository.ErrOrderNotFound) {
		return errors.WithStack(domainerrors.ErrOrderNotFound)
	}

	return errors.Wrap(err, "failed to load order")
}
