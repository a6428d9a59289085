package handler

import (
	"log/slog"
	"net/http"

	"shop/internal/delivery/http/response"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// PlaceOrder handles the order placement request.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var input *usecase.PlaceOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderView(order), "Order placed successfully")
}

// UpdateStatus handles an order status transition request.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	var input *usecase.UpdateOrderStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "Order status updated successfully")
}

// CancelOrder handles an order cancellation request.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	var input *usecase.CancelOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cancellation input")
	}

	order, err := h.uc.CancelOrder(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "Order cancelled successfully")
}

// GetOrder handles fetching one order by ID.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "Order retrieved successfully")
}

// GetOrderByNumber handles fetching one order by its business number.
func (h *OrderHandler) GetOrderByNumber(c echo.Context) error {
	number := c.Param("number")
	if number == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Order number is required")
	}

	order, err := h.uc.GetOrderByNumber(c.Request().Context(), number)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "Order retrieved successfully")
}

// ListOrders handles the order listing request.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	input := &usecase.ListOrdersInput{
		Status:        c.QueryParam("status"),
		CustomerEmail: c.QueryParam("customerEmail"),
		Limit:         parseIntQuery(c, "limit"),
		Offset:        parseIntQuery(c, "offset"),
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderViews(orders), "Orders retrieved successfully")
}
