package handler

import (
	"log/slog"
	"net/http"
	"time"

	"glovia/internal/delivery/api/response"
	"glovia/internal/domain/entity"
	"glovia/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InvoiceHandlerParams holds dependencies for InvoiceHandler, injected by Fx.
type InvoiceHandlerParams struct {
	fx.In

	InvoiceUC usecase.InvoiceUsecase
	Logger    *slog.Logger
}

// InvoiceHandler holds dependencies for invoicing handlers
type InvoiceHandler struct {
	invoiceUC usecase.InvoiceUsecase
	logger    *slog.Logger
}

// NewInvoiceHandler is the constructor for InvoiceHandler
func NewInvoiceHandler(params InvoiceHandlerParams) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceUC: params.InvoiceUC,
		logger:    params.Logger,
	}
}

// GenerateRequest represents the request body for invoice generation
type GenerateRequest struct {
	OrderID uuid.UUID  `json:"order_id" validate:"required"`
	DueDate *time.Time `json:"due_date,omitempty"`
}

// CancelRequest represents the request body for voiding an invoice
type CancelRequest struct {
	Notes string `json:"notes"`
}

// Generate handles creating the invoice for an order
func (h *InvoiceHandler) Generate(c echo.Context) error {
	actorID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req GenerateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invoice input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	// A zero due date makes the usecase fall back to the configured default.
	var dueDate time.Time
	if req.DueDate != nil {
		dueDate = *req.DueDate
	}

	invoice, err := h.invoiceUC.Generate(c.Request().Context(), req.OrderID, dueDate, actorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, invoice)
}

// ListInvoices handles listing invoices, optionally filtered by status
func (h *InvoiceHandler) ListInvoices(c echo.Context) error {
	var status *entity.InvoiceStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := entity.InvoiceStatus(raw)
		if !s.Valid() {
			return response.BadRequest(c, "INVALID_STATUS", "Unknown invoice status")
		}
		status = &s
	}

	invoices, err := h.invoiceUC.ListInvoices(c.Request().Context(), status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invoices)
}

// GetInvoice handles retrieving one invoice with its items
func (h *InvoiceHandler) GetInvoice(c echo.Context) error {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid invoice ID")
	}

	invoice, err := h.invoiceUC.GetInvoice(c.Request().Context(), invoiceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invoice)
}

// GetInvoiceByOrder handles retrieving the invoice of an order
func (h *InvoiceHandler) GetInvoiceByOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	invoice, err := h.invoiceUC.GetInvoiceByOrder(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invoice)
}

// MarkPaid handles settling a pending invoice
func (h *InvoiceHandler) MarkPaid(c echo.Context) error {
	actorID, err := getUserID(c)
	if err != nil {
		return err
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid invoice ID")
	}

	var req usecase.MarkPaidInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	invoice, err := h.invoiceUC.MarkPaid(c.Request().Context(), invoiceID, actorID, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invoice)
}

// Cancel handles voiding a pending invoice
func (h *InvoiceHandler) Cancel(c echo.Context) error {
	actorID, err := getUserID(c)
	if err != nil {
		return err
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid invoice ID")
	}

	var req CancelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cancel input")
	}

	invoice, err := h.invoiceUC.Cancel(c.Request().Context(), invoiceID, actorID, req.Notes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invoice)
}

// IssueTaxInvoice handles issuing the PPN tax invoice for a B2B customer
func (h *InvoiceHandler) IssueTaxInvoice(c echo.Context) error {
	actorID, err := getUserID(c)
	if err != nil {
		return err
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid invoice ID")
	}

	taxInvoice, err := h.invoiceUC.IssueTaxInvoice(c.Request().Context(), invoiceID, actorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, taxInvoice)
}

// PaymentQR handles rendering the payment QR code of a pending invoice
func (h *InvoiceHandler) PaymentQR(c echo.Context) error {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid invoice ID")
	}

	png, err := h.invoiceUC.PaymentQR(c.Request().Context(), invoiceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
