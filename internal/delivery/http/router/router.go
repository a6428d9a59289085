// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shop/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler  *handler.ProductHandler
	OrderHandler    *handler.OrderHandler
	PaymentHandler  *handler.PaymentHandler
	ShipmentHandler *handler.ShipmentHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler  *handler.ProductHandler
	orderHandler    *handler.OrderHandler
	paymentHandler  *handler.PaymentHandler
	shipmentHandler *handler.ShipmentHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler:  params.ProductHandler,
		orderHandler:    params.OrderHandler,
		paymentHandler:  params.PaymentHandler,
		shipmentHandler: params.ShipmentHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	productGroup := e.Group("/products")
	{
		productGroup.POST("", r.productHandler.CreateProduct)
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/:id", r.productHandler.GetProduct)
		productGroup.GET("/sku/:sku", r.productHandler.GetProductBySku)
		productGroup.PUT("/:id", r.productHandler.UpdateProduct)
		productGroup.DELETE("/:id", r.productHandler.DeleteProduct)
		productGroup.PUT("/:id/stock", r.productHandler.UpdateStock)
		productGroup.POST("/:id/details", r.productHandler.AddDetail)
		productGroup.DELETE("/:id/details/:key", r.productHandler.RemoveDetail)
		productGroup.POST("/:id/images", r.productHandler.AddImage)
		productGroup.DELETE("/:id/images/:imageId", r.productHandler.RemoveImage)
	}

	orderGroup := e.Group("/orders")
	{
		orderGroup.POST("", r.orderHandler.PlaceOrder)
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.GET("/number/:number", r.orderHandler.GetOrderByNumber)
		orderGroup.PUT("/:id/status", r.orderHandler.UpdateStatus)
		orderGroup.POST("/:id/cancel", r.orderHandler.CancelOrder)
		orderGroup.GET("/:id/payments", r.paymentHandler.ListForOrder)
		orderGroup.GET("/:id/shipments", r.shipmentHandler.ListForOrder)
	}

	paymentGroup := e.Group("/payments")
	{
		paymentGroup.POST("", r.paymentHandler.CreatePayment)
		paymentGroup.GET("/:id", r.paymentHandler.GetPayment)
		paymentGroup.PUT("/:id/status", r.paymentHandler.UpdateStatus)
	}

	shipmentGroup := e.Group("/shipments")
	{
		shipmentGroup.POST("", r.shipmentHandler.CreateShipment)
		shipmentGroup.GET("/:id", r.shipmentHandler.GetShipment)
		shipmentGroup.GET("/tracking/:number", r.shipmentHandler.GetByTrackingNumber)
		shipmentGroup.PUT("/:id/status", r.shipmentHandler.UpdateStatus)
		shipmentGroup.POST("/:id/tracking", r.shipmentHandler.AddTrackingUpdate)
		shipmentGroup.PUT("/:id/carrier", r.shipmentHandler.UpdateCarrier)
	}
}
