package handler

import (
	"log/slog"
	"net/http"

	"shop/internal/delivery/http/response"
	"shop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for payment-related handlers.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreatePayment handles recording a payment attempt against an order.
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var input *usecase.CreatePaymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	payment, err := h.uc.CreatePayment(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPaymentView(payment), "Payment created successfully")
}

// UpdateStatus handles a payment settlement request.
func (h *PaymentHandler) UpdateStatus(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid payment ID")
	}

	var input *usecase.UpdatePaymentStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	payment, err := h.uc.UpdatePaymentStatus(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPaymentView(payment), "Payment status updated successfully")
}

// GetPayment handles fetching one payment by ID.
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid payment ID")
	}

	payment, err := h.uc.GetPayment(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPaymentView(payment), "Payment retrieved successfully")
}

// ListForOrder handles listing the payment attempts recorded for an order.
func (h *PaymentHandler) ListForOrder(c echo.Context) error {
	orderID, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	payments, err := h.uc.ListPaymentsForOrder(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPaymentViews(payments), "Payments retrieved successfully")
}
