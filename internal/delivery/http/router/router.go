// Package router contains routing setup for the storefront delivery.
package router

import (
	"glovia/internal/delivery/http/middleware"
	"glovia/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler   *handler.CatalogHandler
	QuotationHandler *handler.QuotationHandler
	OrderHandler     *handler.OrderHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler   *handler.CatalogHandler
	quotationHandler *handler.QuotationHandler
	orderHandler     *handler.OrderHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:   params.CatalogHandler,
		quotationHandler: params.QuotationHandler,
		orderHandler:     params.OrderHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the storefront routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog routes, no authentication required
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.catalogHandler.ListProducts)
		productGroup.GET("/:id", r.catalogHandler.GetProduct)
		productGroup.GET("/:id/price", r.catalogHandler.QuotePrice)
	}

	// Quotation routes require a logged-in customer
	quotationGroup := e.Group("/quotations")
	quotationGroup.Use(r.authMiddleware.Authenticate)
	{
		quotationGroup.POST("", r.quotationHandler.CreateQuotation)
		quotationGroup.GET("", r.quotationHandler.ListQuotations)
		quotationGroup.GET("/:id", r.quotationHandler.GetQuotation)
		quotationGroup.PUT("/:id/items", r.quotationHandler.UpdateItems)
		quotationGroup.POST("/:id/submit", r.quotationHandler.Submit)
	}

	// Order tracking routes require a logged-in customer
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
	}
}
