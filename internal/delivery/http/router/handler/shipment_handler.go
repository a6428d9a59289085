package handler

import (
	"log/slog"
	"net/http"

	"shop/internal/delivery/http/response"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ShipmentHandler holds dependencies for shipment-related handlers.
type ShipmentHandler struct {
	uc     usecase.ShipmentUsecase
	logger *slog.Logger
}

// NewShipmentHandler is the constructor for ShipmentHandler, injected by Fx.
func NewShipmentHandler(uc usecase.ShipmentUsecase, logger *slog.Logger) *ShipmentHandler {
	return &ShipmentHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateShipment handles opening a shipment for an order.
func (h *ShipmentHandler) CreateShipment(c echo.Context) error {
	var input *usecase.CreateShipmentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shipment input")
	}

	shipment, err := h.uc.CreateShipment(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toShipmentView(shipment), "Shipment created successfully")
}

// UpdateStatus handles a shipment status transition request.
func (h *ShipmentHandler) UpdateStatus(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid shipment ID")
	}

	var input *usecase.UpdateShipmentStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	shipment, err := h.uc.UpdateShipmentStatus(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toShipmentView(shipment), "Shipment status updated successfully")
}

// AddTrackingUpdate handles appending a tracking history entry.
func (h *ShipmentHandler) AddTrackingUpdate(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid shipment ID")
	}

	var input *usecase.TrackingUpdateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tracking input")
	}

	shipment, err := h.uc.AddTrackingUpdate(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toShipmentView(shipment), "Tracking update added successfully")
}

// UpdateCarrier handles changing carrier and tracking number while pending.
func (h *ShipmentHandler) UpdateCarrier(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid shipment ID")
	}

	var input *usecase.UpdateCarrierInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid carrier input")
	}

	shipment, err := h.uc.UpdateCarrier(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toShipmentView(shipment), "Carrier updated successfully")
}

// GetShipment handles fetching one shipment by ID.
func (h *ShipmentHandler) GetShipment(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid shipment ID")
	}

	shipment, err := h.uc.GetShipment(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toShipmentView(shipment), "Shipment retrieved successfully")
}

// GetByTrackingNumber handles fetching one shipment by tracking number.
func (h *ShipmentHandler) GetByTrackingNumber(c echo.Context) error {
	number := c.Param("number")
	if number == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Tracking number is required")
	}

	shipment, err := h.uc.GetShipmentByTrackingNumber(c.Request().Context(), number)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toShipmentView(shipment), "Shipment retrieved successfully")
}

// ListForOrder handles listing the shipments opened for an order.
func (h *ShipmentHandler) ListForOrder(c echo.Context) error {
	orderID, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	shipments, err := h.uc.ListShipmentsForOrder(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toShipmentViews(shipments), "Shipments retrieved successfully")
}
