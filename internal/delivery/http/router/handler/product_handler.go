// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"shop/internal/delivery/http/response"
	"shop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog-related handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateProduct handles the product creation request.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var input *usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductView(product), "Product created successfully")
}

// UpdateProduct handles descriptive field and price updates.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	var input *usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "Product updated successfully")
}

// UpdateStock handles set/increase/decrease stock mutations.
func (h *ProductHandler) UpdateStock(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	var input *usecase.UpdateStockInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock input")
	}

	product, err := h.uc.UpdateStock(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "Stock updated successfully")
}

// AddDetail handles adding a key/value attribute to a product.
func (h *ProductHandler) AddDetail(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	var input *usecase.ProductDetailInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid detail input")
	}

	product, err := h.uc.AddProductDetail(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "Product detail added successfully")
}

// RemoveDetail handles removing a key/value attribute from a product.
func (h *ProductHandler) RemoveDetail(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	key := c.Param("key")
	if key == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Detail key is required")
	}

	product, err := h.uc.RemoveProductDetail(c.Request().Context(), id, key, c.QueryParam("actor"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "Product detail removed successfully")
}

// AddImage handles adding an image to a product.
func (h *ProductHandler) AddImage(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	var input *usecase.ProductImageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid image input")
	}

	product, err := h.uc.AddProductImage(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "Product image added successfully")
}

// RemoveImage handles removing an image from a product.
func (h *ProductHandler) RemoveImage(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	imageID, err := parseUUIDParam(c, "imageId")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid image ID")
	}

	product, err := h.uc.RemoveProductImage(c.Request().Context(), id, imageID, c.QueryParam("actor"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "Product image removed successfully")
}

// DeleteProduct handles removing a product from the catalog.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// GetProduct handles fetching one product by ID.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "Product retrieved successfully")
}

// GetProductBySku handles fetching one product by SKU.
func (h *ProductHandler) GetProductBySku(c echo.Context) error {
	sku := c.Param("sku")
	if sku == "" {
		return response.BadRequest(c, "INVALID_INPUT", "SKU is required")
	}

	product, err := h.uc.GetProductBySku(c.Request().Context(), sku)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "Product retrieved successfully")
}

// ListProducts handles the catalog listing request.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	input := &usecase.ListProductsInput{
		ActiveOnly:   c.QueryParam("activeOnly") == "true",
		LowStockOnly: c.QueryParam("lowStockOnly") == "true",
		Limit:        parseIntQuery(c, "limit"),
		Offset:       parseIntQuery(c, "offset"),
	}

	products, err := h.uc.ListProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products), "Products retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

func parseIntQuery(c echo.Context, name string) int {
	val, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}

	return val
}
