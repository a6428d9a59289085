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

// shipmentRepository implements the domain's ShipmentRepository interface using GORM.
type shipmentRepository struct {
	db *gorm.DB
}

// NewShipmentRepository is the constructor for shipmentRepository.
func NewShipmentRepository(db *gorm.DB) repository.ShipmentRepository {
	return &shipmentRepository{db: db}
}

// FindByID retrieves a single shipment by its unique ID, without children.
func (repo *shipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shipment, error) {
	var data model.ShipmentModel
	if err := repo.db.WithContext(ctx).First(&data, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShipmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find shipment by id")
	}

	return toShipmentDomain(&data)
}

// FindByIDWithChildren retrieves a shipment including its tracking history
// and item snapshots.
func (repo *shipmentRepository) FindByIDWithChildren(ctx context.Context, id uuid.UUID) (*entity.Shipment, error) {
	var data model.ShipmentModel
	err := repo.db.WithContext(ctx).
		Preload("TrackingDetails", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp ASC")
		}).
		Preload("Items").
		First(&data, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShipmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find shipment by id")
	}

	return toShipmentDomain(&data)
}

// FindByTrackingNumber retrieves a shipment by its natural key.
func (repo *shipmentRepository) FindByTrackingNumber(ctx context.Context, number entity.TrackingNumber) (*entity.Shipment, error) {
	var data model.ShipmentModel
	err := repo.db.WithContext(ctx).
		Preload("TrackingDetails", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp ASC")
		}).
		Preload("Items").
		First(&data, "tracking_number = ?", number.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShipmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find shipment by tracking number")
	}

	return toShipmentDomain(&data)
}

// FindByOrderID returns all shipments fulfilling an order, oldest first.
func (repo *shipmentRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.Shipment, error) {
	var rows []model.ShipmentModel
	err := repo.db.WithContext(ctx).
		Preload("TrackingDetails", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp ASC")
		}).
		Preload("Items").
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shipments by order id")
	}

	shipments := make([]*entity.Shipment, 0, len(rows))
	for i := range rows {
		shipment, err := toShipmentDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, shipment)
	}

	return shipments, nil
}

// Create persists a new shipment aggregate including its children.
func (repo *shipmentRepository) Create(ctx context.Context, shipment *entity.Shipment) error {
	data := fromShipmentDomain(shipment)

	if err := repo.db.WithContext(ctx).Create(data).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage(
				"tracking number " + shipment.TrackingNumber().Value() + " already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "shipment references a missing order")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shipment")
	}

	return nil
}

// Update persists changes to an existing shipment aggregate.
func (repo *shipmentRepository) Update(ctx context.Context, shipment *entity.Shipment) error {
	data := fromShipmentDomain(shipment)

	tx := repo.db.WithContext(ctx)
	if err := tx.Omit(clause.Associations).Save(data).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update shipment")
	}

	if err := tx.Model(data).Association("TrackingDetails").Unscoped().Replace(&data.TrackingDetails); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace tracking details")
	}
	if err := tx.Model(data).Association("Items").Unscoped().Replace(&data.Items); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace shipment items")
	}

	return nil
}

// Delete removes a shipment; children cascade at the database level.
func (repo *shipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ShipmentModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete shipment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShipmentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toShipmentDomain converts a GORM ShipmentModel to a domain Shipment entity.
func toShipmentDomain(data *model.ShipmentModel) (*entity.Shipment, error) {
	trackingNumber, err := entity.NewTrackingNumber(data.TrackingNumber)
	if err != nil {
		return nil, errors.Wrap(err, "stored tracking number is invalid")
	}

	origin, err := entity.NewAddress(
		data.OriginStreet, data.OriginCity, data.OriginState,
		data.OriginPostalCode, data.OriginCountry)
	if err != nil {
		return nil, errors.Wrap(err, "stored origin address is invalid")
	}

	destination, err := entity.NewAddress(
		data.DestinationStreet, data.DestinationCity, data.DestinationState,
		data.DestinationPostalCode, data.DestinationCountry)
	if err != nil {
		return nil, errors.Wrap(err, "stored destination address is invalid")
	}

	weight, err := entity.NewWeight(data.WeightValue, entity.WeightUnit(data.WeightUnit))
	if err != nil {
		return nil, errors.Wrap(err, "stored weight is invalid")
	}

	dimensions, err := entity.NewDimensions(data.Length, data.Width, data.Height, entity.DimensionUnit(data.DimensionUnit))
	if err != nil {
		return nil, errors.Wrap(err, "stored dimensions are invalid")
	}

	cost, err := entity.NewMoney(data.ShippingCostAmount, data.Currency)
	if err != nil {
		return nil, errors.Wrap(err, "stored shipping cost is invalid")
	}

	trackingDetails := make([]entity.TrackingDetail, 0, len(data.TrackingDetails))
	for _, row := range data.TrackingDetails {
		trackingDetails = append(trackingDetails, entity.TrackingDetail{
			ID:        row.ID,
			Status:    entity.ShipmentStatus(row.Status),
			Location:  row.Location,
			Notes:     row.Notes,
			Timestamp: row.Timestamp,
		})
	}

	items := make([]entity.ShipmentItem, 0, len(data.Items))
	for _, row := range data.Items {
		items = append(items, entity.ShipmentItem{
			ID:          row.ID,
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
		})
	}

	return entity.RehydrateShipment(
		data.ID, data.OrderID,
		trackingNumber,
		data.Carrier,
		entity.ShipmentStatus(data.Status),
		origin, destination,
		weight,
		dimensions,
		cost,
		data.EstimatedDeliveryDate, data.ActualDeliveryDate,
		trackingDetails,
		items,
		data.CreatedAt, data.UpdatedAt,
	), nil
}

// fromShipmentDomain converts a domain Shipment entity to a GORM ShipmentModel for persistence.
func fromShipmentDomain(shipment *entity.Shipment) *model.ShipmentModel {
	origin := shipment.OriginAddress()
	destination := shipment.DestinationAddress()

	trackingDetails := make([]model.ShipmentTrackingModel, 0, len(shipment.TrackingDetails()))
	for _, detail := range shipment.TrackingDetails() {
		trackingDetails = append(trackingDetails, model.ShipmentTrackingModel{
			ID:         detail.ID,
			ShipmentID: shipment.ID(),
			Status:     string(detail.Status),
			Location:   detail.Location,
			Notes:      detail.Notes,
			Timestamp:  detail.Timestamp,
		})
	}

	items := make([]model.ShipmentItemModel, 0, len(shipment.Items()))
	for _, item := range shipment.Items() {
		items = append(items, model.ShipmentItemModel{
			ID:          item.ID,
			ShipmentID:  shipment.ID(),
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
		})
	}

	return &model.ShipmentModel{
		ID:                    shipment.ID(),
		OrderID:               shipment.OrderID(),
		TrackingNumber:        shipment.TrackingNumber().Value(),
		Carrier:               shipment.Carrier(),
		Status:                string(shipment.Status()),
		OriginStreet:          origin.Street(),
		OriginCity:            origin.City(),
		OriginState:           origin.State(),
		OriginPostalCode:      origin.PostalCode(),
		OriginCountry:         origin.Country(),
		DestinationStreet:     destination.Street(),
		DestinationCity:       destination.City(),
		DestinationState:      destination.State(),
		DestinationPostalCode: destination.PostalCode(),
		DestinationCountry:    destination.Country(),
		WeightValue:           shipment.Weight().Value(),
		WeightUnit:            string(shipment.Weight().Unit()),
		Length:                shipment.Dimensions().Length(),
		Width:                 shipment.Dimensions().Width(),
		Height:                shipment.Dimensions().Height(),
		DimensionUnit:         string(shipment.Dimensions().Unit()),
		ShippingCostAmount:    shipment.ShippingCost().Amount(),
		Currency:              shipment.ShippingCost().Currency(),
		EstimatedDeliveryDate: shipment.EstimatedDeliveryDate(),
		ActualDeliveryDate:    shipment.ActualDeliveryDate(),
		CreatedAt:             shipment.CreatedAt(),
		UpdatedAt:             shipment.UpdatedAt(),
		TrackingDetails:       trackingDetails,
		Items:                 items,
	}
}
