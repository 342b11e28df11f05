// Package usecase defines the application use case interfaces and their DTOs.
package usecase

import (
	"context"

	"glovia/internal/domain/entity"
	"glovia/internal/domain/repository"

	"github.com/google/uuid"
)

// ProductPage is one page of a catalog listing.
type ProductPage struct {
	Products []*entity.Product `json:"products"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PerPage  int               `json:"per_page"`
}

// PriceQuote is the resolved price for a product at a given quantity.
type PriceQuote struct {
	ProductID   uuid.UUID `json:"product_id"`
	Quantity    int       `json:"quantity"`
	UnitPrice   int64     `json:"unit_price"`
	LineTotal   int64     `json:"line_total"`
	TierApplied bool      `json:"tier_applied"` // False when the base price was used.
}

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	SKU         string      `json:"sku" validate:"required"`
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description"`
	BasePrice   int64       `json:"base_price" validate:"gte=0"`
	Stock       int         `json:"stock" validate:"gte=0"`
	IsActive    bool        `json:"is_active"`
	IsFeatured  bool        `json:"is_featured"`
	BrandID     uuid.UUID   `json:"brand_id" validate:"required"`
	CategoryIDs []uuid.UUID `json:"category_ids"`
}

// TierInput carries one pricing tier row for tier replacement.
type TierInput struct {
	MinQuantity  int   `json:"min_quantity" validate:"gte=1"`
	MaxQuantity  *int  `json:"max_quantity,omitempty"`
	PricePerUnit int64 `json:"price_per_unit" validate:"gte=0"`
}

// CatalogUsecase defines catalog browsing, price resolution and product administration.
type CatalogUsecase interface {
	// ListProducts retrieves a filtered catalog page.
	ListProducts(ctx context.Context, filter repository.ProductFilter) (*ProductPage, error)

	// GetProduct retrieves one product with brand, categories and tiers.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// QuotePrice resolves the tier price for a product at a quantity.
	QuotePrice(ctx context.Context, productID uuid.UUID, quantity int) (*PriceQuote, error)

	// CreateProduct creates a new catalog product.
	CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error)

	// UpdateProduct replaces the writable fields of a product.
	UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput) (*entity.Product, error)

	// ReplaceTiers validates and replaces the pricing tier list of a product.
	ReplaceTiers(ctx context.Context, productID uuid.UUID, tiers []TierInput) (*entity.Product, error)
}
