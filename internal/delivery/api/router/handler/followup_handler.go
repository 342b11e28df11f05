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

// FollowUpHandlerParams holds dependencies for FollowUpHandler, injected by Fx.
type FollowUpHandlerParams struct {
	fx.In

	FollowUpUC usecase.FollowUpUsecase
	Logger     *slog.Logger
}

// FollowUpHandler holds dependencies for follow-up task handlers
type FollowUpHandler struct {
	followUpUC usecase.FollowUpUsecase
	logger     *slog.Logger
}

// NewFollowUpHandler is the constructor for FollowUpHandler
func NewFollowUpHandler(params FollowUpHandlerParams) *FollowUpHandler {
	return &FollowUpHandler{
		followUpUC: params.FollowUpUC,
		logger:     params.Logger,
	}
}

// ResolveRequest represents the request body for cancelling a follow-up
type ResolveRequest struct {
	Notes string `json:"notes"`
}

// Schedule handles creating a new follow-up task
func (h *FollowUpHandler) Schedule(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req usecase.ScheduleFollowUpInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid follow-up input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	followUp, err := h.followUpUC.Schedule(c.Request().Context(), ownerID, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, followUp)
}

// ListToday handles listing follow-ups scheduled for the current day
func (h *FollowUpHandler) ListToday(c echo.Context) error {
	ownerID, err := ownerFilter(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid owner ID")
	}

	followUps, err := h.followUpUC.ListToday(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, followUps)
}

// ListOverdue handles listing follow-ups whose scheduled time has passed
func (h *FollowUpHandler) ListOverdue(c echo.Context) error {
	ownerID, err := ownerFilter(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid owner ID")
	}

	followUps, err := h.followUpUC.ListOverdue(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, followUps)
}

// Complete handles marking a pending follow-up as done
func (h *FollowUpHandler) Complete(c echo.Context) error {
	actorID, err := getUserID(c)
	if err != nil {
		return err
	}

	followUpID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid follow-up ID")
	}

	var req usecase.CompleteFollowUpInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resolve input")
	}

	followUp, err := h.followUpUC.Complete(c.Request().Context(), followUpID, req, actorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, followUp)
}

// Cancel handles cancelling a pending follow-up
func (h *FollowUpHandler) Cancel(c echo.Context) error {
	followUpID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid follow-up ID")
	}

	var req ResolveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resolve input")
	}

	followUp, err := h.followUpUC.Cancel(c.Request().Context(), followUpID, req.Notes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, followUp)
}

// ownerFilter parses the optional owner_id query parameter
func ownerFilter(c echo.Context) (*uuid.UUID, error) {
	raw := c.QueryParam("owner_id")
	if raw == "" {
		return nil, nil
	}

	ownerID, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}

	return &ownerID, nil
}
