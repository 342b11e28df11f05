// Package router contains routing setup for the admin API delivery.
package router

import (
	"glovia/internal/delivery/api/middleware"
	"glovia/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler       *handler.ProductHandler
	QuotationHandler     *handler.QuotationHandler
	OrderHandler         *handler.OrderHandler
	InvoiceHandler       *handler.InvoiceHandler
	FollowUpHandler      *handler.FollowUpHandler
	CommunicationHandler *handler.CommunicationHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler       *handler.ProductHandler
	quotationHandler     *handler.QuotationHandler
	orderHandler         *handler.OrderHandler
	invoiceHandler       *handler.InvoiceHandler
	followUpHandler      *handler.FollowUpHandler
	communicationHandler *handler.CommunicationHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler:       params.ProductHandler,
		quotationHandler:     params.QuotationHandler,
		orderHandler:         params.OrderHandler,
		invoiceHandler:       params.InvoiceHandler,
		followUpHandler:      params.FollowUpHandler,
		communicationHandler: params.CommunicationHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the admin API routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Every admin route requires authentication and the "admin" role
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)
	apiV1.Use(r.authMiddleware.RequireRole(middleware.RoleAdmin))

	// Product catalog management routes
	productsGroup := apiV1.Group("/products")
	{
		productsGroup.POST("", r.productHandler.CreateProduct)
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
		productsGroup.PUT("/:id", r.productHandler.UpdateProduct)
		productsGroup.PUT("/:id/tiers", r.productHandler.ReplaceTiers)
	}

	// Quotation review routes
	quotationsGroup := apiV1.Group("/quotations")
	{
		quotationsGroup.GET("", r.quotationHandler.ListQuotations)
		quotationsGroup.GET("/:id", r.quotationHandler.GetQuotation)
		quotationsGroup.POST("/:id/decision", r.quotationHandler.Decide)
		quotationsGroup.POST("/:id/convert", r.quotationHandler.ConvertToOrder)
	}

	// Order fulfilment routes
	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.PUT("/:id/status", r.orderHandler.UpdateStatus)
		ordersGroup.GET("/:id/status-log", r.orderHandler.GetStatusLog)
		ordersGroup.GET("/:orderId/invoice", r.invoiceHandler.GetInvoiceByOrder)
	}

	// Invoicing routes
	invoicesGroup := apiV1.Group("/invoices")
	{
		invoicesGroup.POST("", r.invoiceHandler.Generate)
		invoicesGroup.GET("", r.invoiceHandler.ListInvoices)
		invoicesGroup.GET("/:id", r.invoiceHandler.GetInvoice)
		invoicesGroup.POST("/:id/payment", r.invoiceHandler.MarkPaid)
		invoicesGroup.POST("/:id/cancel", r.invoiceHandler.Cancel)
		invoicesGroup.POST("/:id/tax-invoice", r.invoiceHandler.IssueTaxInvoice)
		invoicesGroup.GET("/:id/qr", r.invoiceHandler.PaymentQR)
	}

	// Follow-up task routes
	followUpsGroup := apiV1.Group("/follow-ups")
	{
		followUpsGroup.POST("", r.followUpHandler.Schedule)
		followUpsGroup.GET("/today", r.followUpHandler.ListToday)
		followUpsGroup.GET("/overdue", r.followUpHandler.ListOverdue)
		followUpsGroup.POST("/:id/complete", r.followUpHandler.Complete)
		followUpsGroup.POST("/:id/cancel", r.followUpHandler.Cancel)
	}

	// Customer message log routes
	communicationsGroup := apiV1.Group("/communications")
	{
		communicationsGroup.POST("", r.communicationHandler.Record)
		communicationsGroup.GET("/customer/:customerId", r.communicationHandler.ListByCustomer)
	}
}
