// Package handler contains the storefront HTTP handlers.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"glovia/internal/delivery/http/response"
	"glovia/internal/domain/repository"
	"glovia/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for catalog browsing handlers
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListProducts handles catalog listing with filters and pagination.
// Storefront listings only ever show active products.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	filter := repository.ProductFilter{
		CategorySlug: c.QueryParam("category"),
		BrandSlug:    c.QueryParam("brand"),
		Search:       c.QueryParam("q"),
		FeaturedOnly: c.QueryParam("featured") == "true",
		ActiveOnly:   true,
	}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.PerPage, _ = strconv.Atoi(c.QueryParam("per_page"))

	page, err := h.catalogUC.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// GetProduct handles retrieving one product with its tiers
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// QuotePrice handles resolving the tier price for a quantity
func (h *CatalogHandler) QuotePrice(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	quantity, err := strconv.Atoi(c.QueryParam("quantity"))
	if err != nil {
		return response.BadRequest(c, "INVALID_QUANTITY", "Quantity must be a number")
	}

	quote, err := h.catalogUC.QuotePrice(c.Request().Context(), productID, quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote)
}
