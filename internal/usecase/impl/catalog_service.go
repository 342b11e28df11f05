// Package impl contains the concrete implementations of the use case interfaces.
package impl

import (
	"context"
	"time"

	"glovia/internal/domain/entity"
	domainerrors "glovia/internal/domain/errors"
	"glovia/internal/domain/repository"
	"glovia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type catalogService struct {
	productRepo repository.ProductRepository
	now         func() time.Time
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(productRepo repository.ProductRepository) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: productRepo,
		now:         time.Now,
	}
}

// ListProducts retrieves a filtered catalog page
func (s *catalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) (*usecase.ProductPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = 20
	}

	products, total, err := s.productRepo.ListProducts(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductPage{
		Products: products,
		Total:    total,
		Page:     filter.Page,
		PerPage:  filter.PerPage,
	}, nil
}

// GetProduct retrieves one product with brand, categories and tiers
func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return product, nil
}

// QuotePrice resolves the tier price for a product at a quantity
func (s *catalogService) QuotePrice(ctx context.Context, productID uuid.UUID, quantity int) (*usecase.PriceQuote, error) {
	if quantity < 1 {
		return nil, domainerrors.ErrValidation.WithDetails("quantity must be at least 1")
	}

	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	tierApplied := false
	for _, tier := range product.Tiers {
		if tier.Matches(quantity) {
			tierApplied = true

			break
		}
	}

	unitPrice := product.UnitPriceFor(quantity)

	return &usecase.PriceQuote{
		ProductID:   productID,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		LineTotal:   unitPrice * int64(quantity),
		TierApplied: tierApplied,
	}, nil
}

// CreateProduct creates a new catalog product
func (s *catalogService) CreateProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	if input.BasePrice < 0 {
		return nil, domainerrors.ErrValidation.WithDetails("base price must not be negative")
	}
	if input.Stock < 0 {
		return nil, domainerrors.ErrValidation.WithDetails("stock must not be negative")
	}

	now := s.now()
	product := &entity.Product{
		ID:          uuid.New(),
		SKU:         input.SKU,
		Name:        input.Name,
		Description: input.Description,
		BasePrice:   input.BasePrice,
		Stock:       input.Stock,
		IsActive:    input.IsActive,
		IsFeatured:  input.IsFeatured,
		BrandID:     input.BrandID,
		Categories:  categoriesFromIDs(input.CategoryIDs),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicateSKU) {
			return nil, domainerrors.ErrValidation.WithDetails("SKU already in use")
		}

		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// UpdateProduct replaces the writable fields of a product
func (s *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	if input.BasePrice < 0 {
		return nil, domainerrors.ErrValidation.WithDetails("base price must not be negative")
	}
	if input.Stock < 0 {
		return nil, domainerrors.ErrValidation.WithDetails("stock must not be negative")
	}

	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.SKU = input.SKU
	product.Name = input.Name
	product.Description = input.Description
	product.BasePrice = input.BasePrice
	product.Stock = input.Stock
	product.IsActive = input.IsActive
	product.IsFeatured = input.IsFeatured
	product.BrandID = input.BrandID
	product.Categories = categoriesFromIDs(input.CategoryIDs)
	product.UpdatedAt = s.now()

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicateSKU) {
			return nil, domainerrors.ErrValidation.WithDetails("SKU already in use")
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// ReplaceTiers validates and replaces the pricing tier list of a product
func (s *catalogService) ReplaceTiers(ctx context.Context, productID uuid.UUID, tierInputs []usecase.TierInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	tiers := make([]entity.PricingTier, 0, len(tierInputs))
	for _, input := range tierInputs {
		tiers = append(tiers, entity.PricingTier{
			ID:           uuid.New(),
			ProductID:    productID,
			MinQuantity:  input.MinQuantity,
			MaxQuantity:  input.MaxQuantity,
			PricePerUnit: input.PricePerUnit,
		})
	}

	entity.SortTiers(tiers)
	if err := entity.ValidateTiers(tiers); err != nil {
		return nil, domainerrors.ErrValidation.WithDetails(err.Error())
	}

	if err := s.productRepo.ReplaceTiers(ctx, productID, tiers); err != nil {
		return nil, errors.Wrap(err, "failed to replace pricing tiers")
	}

	product.Tiers = tiers

	return product, nil
}

func categoriesFromIDs(ids []uuid.UUID) []entity.Category {
	categories := make([]entity.Category, 0, len(ids))
	for _, id := range ids {
		categories = append(categories, entity.Category{ID: id})
	}

	return categories
}
