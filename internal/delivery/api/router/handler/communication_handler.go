package handler

import (
	"log/slog"
	"net/http"

	"glovia/internal/delivery/api/response"
	"glovia/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CommunicationHandlerParams holds dependencies for CommunicationHandler, injected by Fx.
type CommunicationHandlerParams struct {
	fx.In

	CommunicationUC usecase.CommunicationUsecase
	Logger          *slog.Logger
}

// CommunicationHandler holds dependencies for the customer message log handlers
type CommunicationHandler struct {
	communicationUC usecase.CommunicationUsecase
	logger          *slog.Logger
}

// NewCommunicationHandler is the constructor for CommunicationHandler
func NewCommunicationHandler(params CommunicationHandlerParams) *CommunicationHandler {
	return &CommunicationHandler{
		communicationUC: params.CommunicationUC,
		logger:          params.Logger,
	}
}

// Record handles appending one message log entry
func (h *CommunicationHandler) Record(c echo.Context) error {
	actorID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req usecase.RecordCommunicationInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid communication input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	communication, err := h.communicationUC.Record(c.Request().Context(), actorID, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, communication)
}

// ListByCustomer handles listing the message history of a customer
func (h *CommunicationHandler) ListByCustomer(c echo.Context) error {
	customerID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer ID")
	}

	communications, err := h.communicationUC.ListByCustomer(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, communications)
}
