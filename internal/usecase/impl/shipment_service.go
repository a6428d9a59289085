package impl

import (
	"context"
	"log/slog"
	"time"

	"shop/internal/domain/entity"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/repository"
	"shop/internal/domain/service"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// shipmentService implements the ShipmentUsecase interface.
type shipmentService struct {
	txManager repository.TransactionManager
	validator *usecase.CommandValidator
	publisher service.EventPublisher
	rnd       entity.RandSource
	logger    *slog.Logger
}

// NewShipmentService is the constructor for shipmentService.
func NewShipmentService(
	txManager repository.TransactionManager,
	validator *usecase.CommandValidator,
	publisher service.EventPublisher,
	rnd entity.RandSource,
	logger *slog.Logger,
) usecase.ShipmentUsecase {
	return &shipmentService{
		txManager: txManager,
		validator: validator,
		publisher: publisher,
		rnd:       rnd,
		logger:    logger,
	}
}

// CreateShipment opens a pending shipment for an order, snapshotting the
// order's line items. The destination is the order's shipping address; a
// tracking number is generated when the caller does not supply one.
func (srv *shipmentService) CreateShipment(ctx context.Context, input *usecase.CreateShipmentInput) (*entity.Shipment, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	orderID, err := uuid.Parse(input.OrderID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("order id is not a valid uuid")
	}

	origin, err := entity.NewAddress(
		input.OriginAddress.Street,
		input.OriginAddress.City,
		input.OriginAddress.State,
		input.OriginAddress.PostalCode,
		input.OriginAddress.Country,
	)
	if err != nil {
		return nil, err
	}

	weight, err := parseWeight(input.WeightValue, input.WeightUnit)
	if err != nil {
		return nil, err
	}

	dimensions, err := parseDimensions(input.Length, input.Width, input.Height, input.DimensionUnit)
	if err != nil {
		return nil, err
	}

	shippingCost, err := parseMoney(input.ShippingCostAmount, input.Currency)
	if err != nil {
		return nil, err
	}

	var trackingNumber entity.TrackingNumber
	if input.TrackingNumber != "" {
		trackingNumber, err = entity.NewTrackingNumber(input.TrackingNumber)
		if err != nil {
			return nil, err
		}
	} else {
		trackingNumber = entity.GenerateTrackingNumber(time.Now().UTC(), srv.rnd)
	}

	var shipment *entity.Shipment

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		order, err := repoFactory.Orders().FindByIDWithDetails(ctx, orderID)
		if err != nil {
			return translateOrderErr(err)
		}

		created, err := entity.NewShipment(
			orderID,
			trackingNumber,
			input.Carrier,
			origin,
			order.ShippingAddress(),
			weight,
			dimensions,
			shippingCost,
			input.EstimatedDeliveryDate,
		)
		if err != nil {
			return err
		}

		for _, detail := range order.Details() {
			if err := created.AddItem(detail.ProductID, detail.ProductName, detail.Quantity); err != nil {
				return err
			}
		}

		if err := repoFactory.Shipments().Create(ctx, created); err != nil {
			return errors.Wrap(err, "failed to create shipment")
		}
		shipment = created

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Shipment created",
		"shipmentID", shipment.ID(), "orderID", orderID,
		"trackingNumber", trackingNumber.Value())

	return shipment, nil
}

// UpdateShipmentStatus moves a shipment along its lifecycle, appending a
// tracking entry for the transition.
func (srv *shipmentService) UpdateShipmentStatus(ctx context.Context, id uuid.UUID, input *usecase.UpdateShipmentStatusInput) (*entity.Shipment, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	return srv.mutate(ctx, id, func(shipment *entity.Shipment) error {
		return shipment.UpdateStatus(entity.ShipmentStatus(input.Status), input.Location, input.Notes)
	})
}

// AddTrackingUpdate appends a location entry without changing status.
func (srv *shipmentService) AddTrackingUpdate(ctx context.Context, id uuid.UUID, input *usecase.TrackingUpdateInput) (*entity.Shipment, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	return srv.mutate(ctx, id, func(shipment *entity.Shipment) error {
		shipment.AddTrackingUpdate(input.Location, input.Notes)

		return nil
	})
}

// UpdateCarrier changes the carrier and tracking number while pending.
func (srv *shipmentService) UpdateCarrier(ctx context.Context, id uuid.UUID, input *usecase.UpdateCarrierInput) (*entity.Shipment, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	trackingNumber, err := entity.NewTrackingNumber(input.TrackingNumber)
	if err != nil {
		return nil, err
	}

	return srv.mutate(ctx, id, func(shipment *entity.Shipment) error {
		return shipment.UpdateCarrier(input.Carrier, trackingNumber)
	})
}

// GetShipment retrieves a shipment including its tracking history and items.
func (srv *shipmentService) GetShipment(ctx context.Context, id uuid.UUID) (*entity.Shipment, error) {
	var shipment *entity.Shipment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.Shipments().FindByIDWithChildren(ctx, id)
		if err != nil {
			return translateShipmentErr(err)
		}
		shipment = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return shipment, nil
}

// GetShipmentByTrackingNumber retrieves a shipment by its natural key.
func (srv *shipmentService) GetShipmentByTrackingNumber(ctx context.Context, number string) (*entity.Shipment, error) {
	trackingNumber, err := entity.NewTrackingNumber(number)
	if err != nil {
		return nil, err
	}

	var shipment *entity.Shipment

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.Shipments().FindByTrackingNumber(ctx, trackingNumber)
		if err != nil {
			return translateShipmentErr(err)
		}
		shipment = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return shipment, nil
}

// ListShipmentsForOrder returns every shipment fulfilling an order.
func (srv *shipmentService) ListShipmentsForOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.Shipment, error) {
	var shipments []*entity.Shipment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.Orders().FindByID(ctx, orderID); err != nil {
			return translateOrderErr(err)
		}

		found, err := repoFactory.Shipments().FindByOrderID(ctx, orderID)
		if err != nil {
			return errors.Wrap(err, "failed to list shipments")
		}
		shipments = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return shipments, nil
}

func (srv *shipmentService) mutate(ctx context.Context, id uuid.UUID, mutate func(*entity.Shipment) error) (*entity.Shipment, error) {
	var shipment *entity.Shipment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shipmentRepo := repoFactory.Shipments()

		found, err := shipmentRepo.FindByIDWithChildren(ctx, id)
		if err != nil {
			return translateShipmentErr(err)
		}

		if err := mutate(found); err != nil {
			return err
		}

		if err := shipmentRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update shipment")
		}
		shipment = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	publishEvents(ctx, srv.publisher, srv.logger, shipment)

	return shipment, nil
}

func translateShipmentErr(err error) error {
	if errors.Is(err, repository.ErrShipmentNotFound) {
		return errors.WithStack(domainerrors.ErrShipmentNotFound)
	}

	return errors.Wrap(err, "failed to load shipment")
}

func parseWeight(value, unit string) (entity.Weight, error) {
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return entity.Weight{}, domainerrors.ErrValidationFailed.WrapMessage(
			"weight " + value + " is not a valid decimal")
	}

	return entity.NewWeight(parsed, entity.WeightUnit(unit))
}

func parseDimensions(length, width, height, unit string) (entity.Dimensions, error) {
	values := make([]decimal.Decimal, 0, 3)
	for _, raw := range []string{length, width, height} {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			return entity.Dimensions{}, domainerrors.ErrValidationFailed.WrapMessage(
				"dimension " + raw + " is not a valid decimal")
		}
		values = append(values, parsed)
	}

	return entity.NewDimensions(values[0], values[1], values[2], entity.DimensionUnit(unit))
}
