// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"glovia/internal/domain/entity"
	"glovia/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateSKU is returned when a product with the same SKU already exists.
	ErrDuplicateSKU = errors.New("product SKU already exists")
)

// ProductFilter narrows catalog listings. Zero values mean "no filter".
type ProductFilter struct {
	CategorySlug string
	BrandSlug    string
	Search       string // Matches product name or SKU, case-insensitive.
	FeaturedOnly bool
	ActiveOnly   bool
	Page         int // 1-based; defaults to 1.
	PerPage      int // Defaults to 20.
}

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// CreateProduct persists a new product with its category links and tiers.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// UpdateProduct updates the mutable fields of an existing product.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product with brand, categories and tiers.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts retrieves a page of products matching the filter and the total count.
	ListProducts(ctx context.Context, filter ProductFilter) ([]*entity.Product, int64, error)

	// ReplaceTiers replaces the full pricing tier list of a product.
	ReplaceTiers(ctx context.Context, productID uuid.UUID, tiers []entity.PricingTier) error
}
