package handler

import (
	"log/slog"
	"net/http"

	"glovia/internal/delivery/http/response"
	"glovia/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// QuotationHandlerParams holds dependencies for QuotationHandler, injected by Fx.
type QuotationHandlerParams struct {
	fx.In

	QuotationUC usecase.QuotationUsecase
	Logger      *slog.Logger
}

// QuotationHandler holds dependencies for quotation (cart) handlers
type QuotationHandler struct {
	quotationUC usecase.QuotationUsecase
	logger      *slog.Logger
}

// NewQuotationHandler is the constructor for QuotationHandler
func NewQuotationHandler(params QuotationHandlerParams) *QuotationHandler {
	return &QuotationHandler{
		quotationUC: params.QuotationUC,
		logger:      params.Logger,
	}
}

// UpdateItemsRequest represents the request body for replacing quotation items
type UpdateItemsRequest struct {
	Items []usecase.QuotationItemInput `json:"items" validate:"min=1,dive"`
}

// CreateQuotation handles creating a new draft quotation
func (h *QuotationHandler) CreateQuotation(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req usecase.CreateQuotationInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quotation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	quotation, err := h.quotationUC.CreateQuotation(c.Request().Context(), customerID, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, quotation)
}

// UpdateItems handles replacing the item list of a draft quotation
func (h *QuotationHandler) UpdateItems(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return err
	}

	quotationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid quotation ID")
	}

	var req UpdateItemsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid items input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	quotation, err := h.quotationUC.UpdateItems(c.Request().Context(), customerID, quotationID, req.Items)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quotation)
}

// GetQuotation handles retrieving one of the customer's quotations
func (h *QuotationHandler) GetQuotation(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return err
	}

	quotationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid quotation ID")
	}

	quotation, err := h.quotationUC.GetCustomerQuotation(c.Request().Context(), customerID, quotationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quotation)
}

// ListQuotations handles listing the customer's quotations
func (h *QuotationHandler) ListQuotations(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return err
	}

	quotations, err := h.quotationUC.ListCustomerQuotations(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quotations)
}

// Submit handles submitting a draft quotation for review
func (h *QuotationHandler) Submit(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return err
	}

	quotationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid quotation ID")
	}

	quotation, err := h.quotationUC.Submit(c.Request().Context(), customerID, quotationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quotation)
}
