package handler

import (
	"log/slog"
	"net/http"

	"glovia/internal/delivery/api/response"
	"glovia/internal/domain/entity"
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

// QuotationHandler holds dependencies for quotation review handlers
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

// DecideRequest represents the request body for accepting or rejecting a quotation
type DecideRequest struct {
	Decision entity.QuotationStatus `json:"decision" validate:"required"`
}

// ListQuotations handles listing quotations, optionally filtered by status
func (h *QuotationHandler) ListQuotations(c echo.Context) error {
	var status *entity.QuotationStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := entity.QuotationStatus(raw)
		if !s.Valid() {
			return response.BadRequest(c, "INVALID_STATUS", "Unknown quotation status")
		}
		status = &s
	}

	quotations, err := h.quotationUC.ListQuotations(c.Request().Context(), status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quotations)
}

// GetQuotation handles retrieving one quotation with its items
func (h *QuotationHandler) GetQuotation(c echo.Context) error {
	quotationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid quotation ID")
	}

	quotation, err := h.quotationUC.GetQuotation(c.Request().Context(), quotationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quotation)
}

// Decide handles accepting or rejecting a submitted quotation
func (h *QuotationHandler) Decide(c echo.Context) error {
	actorID, err := getUserID(c)
	if err != nil {
		return err
	}

	quotationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid quotation ID")
	}

	var req DecideRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid decision input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	quotation, err := h.quotationUC.Decide(c.Request().Context(), quotationID, req.Decision, actorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quotation)
}

// ConvertToOrder handles converting an accepted quotation into an order
func (h *QuotationHandler) ConvertToOrder(c echo.Context) error {
	actorID, err := getUserID(c)
	if err != nil {
		return err
	}

	quotationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid quotation ID")
	}

	orderID, err := h.quotationUC.ConvertToOrder(c.Request().Context(), quotationID, actorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"order_id": orderID})
}
