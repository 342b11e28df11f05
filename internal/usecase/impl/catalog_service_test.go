package impl

import (
	"context"
	"testing"
	"time"

	"glovia/internal/domain/entity"
	domainerrors "glovia/internal/domain/errors"
	"glovia/internal/domain/repository"
	mockRepo "glovia/internal/mocks/repository"
	"glovia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewCatalogService(productRepo)
	service.(*catalogService).now = func() time.Time {
		return time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	}

	return catalogServiceFixtures{
		service:     service,
		productRepo: productRepo,
	}
}

func intPtr(v int) *int {
	return &v
}

func gloveProduct() *entity.Product {
	return &entity.Product{
		ID:        uuid.New(),
		SKU:       "GLV-NIT-A",
		Name:      "Nitrile Gloves Grade A",
		BasePrice: 12000,
		Stock:     5000,
		IsActive:  true,
		Tiers: []entity.PricingTier{
			{MinQuantity: 1, MaxQuantity: intPtr(9), PricePerUnit: 10000},
			{MinQuantity: 10, MaxQuantity: intPtr(49), PricePerUnit: 9500},
			{MinQuantity: 50, MaxQuantity: intPtr(99), PricePerUnit: 9000},
			{MinQuantity: 100, MaxQuantity: nil, PricePerUnit: 8500},
		},
	}
}

func TestCatalogService_ListProducts_DefaultsPagination(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	products := []*entity.Product{gloveProduct()}

	fx.productRepo.EXPECT().
		ListProducts(ctx, repository.ProductFilter{Page: 1, PerPage: 20}).
		Return(products, int64(1), nil)

	page, err := fx.service.ListProducts(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, products, page.Products)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PerPage)
}

func TestCatalogService_QuotePrice_TierApplied(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	product := gloveProduct()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, product.ID).
		Return(product, nil)

	quote, err := fx.service.QuotePrice(ctx, product.ID, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(9000), quote.UnitPrice)
	assert.Equal(t, int64(450000), quote.LineTotal)
	assert.True(t, quote.TierApplied)
}

func TestCatalogService_QuotePrice_BasePriceFallback(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	product := gloveProduct()
	product.Tiers = []entity.PricingTier{
		{MinQuantity: 10, MaxQuantity: intPtr(49), PricePerUnit: 9500},
	}

	fx.productRepo.EXPECT().
		FindProductByID(ctx, product.ID).
		Return(product, nil)

	quote, err := fx.service.QuotePrice(ctx, product.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(12000), quote.UnitPrice)
	assert.Equal(t, int64(60000), quote.LineTotal)
	assert.False(t, quote.TierApplied)
}

func TestCatalogService_QuotePrice_QuantityBelowOne(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.QuotePrice(context.Background(), uuid.New(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestCatalogService_QuotePrice_ProductNotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.QuotePrice(ctx, productID, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	brandID := uuid.New()
	input := usecase.ProductInput{
		SKU:       "GLV-LTX-B",
		Name:      "Latex Gloves Grade B",
		BasePrice: 8000,
		Stock:     2000,
		IsActive:  true,
		BrandID:   brandID,
	}

	fx.productRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, input)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, input.SKU, product.SKU)
	assert.Equal(t, input.BasePrice, product.BasePrice)
	assert.Equal(t, brandID, product.BrandID)
	assert.True(t, product.IsActive)
}

func TestCatalogService_CreateProduct_DuplicateSKU(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := usecase.ProductInput{
		SKU:       "GLV-NIT-A",
		Name:      "Nitrile Gloves Grade A",
		BasePrice: 12000,
		BrandID:   uuid.New(),
	}

	fx.productRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(repository.ErrDuplicateSKU)

	_, err := fx.service.CreateProduct(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestCatalogService_CreateProduct_NegativeBasePrice(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.CreateProduct(context.Background(), usecase.ProductInput{
		SKU:       "GLV-BAD",
		Name:      "Broken",
		BasePrice: -1,
		BrandID:   uuid.New(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestCatalogService_UpdateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	product := gloveProduct()
	input := usecase.ProductInput{
		SKU:       product.SKU,
		Name:      "Nitrile Gloves Grade A (boxed)",
		BasePrice: 12500,
		Stock:     4500,
		IsActive:  true,
		BrandID:   uuid.New(),
	}

	fx.productRepo.EXPECT().
		FindProductByID(ctx, product.ID).
		Return(product, nil)

	fx.productRepo.EXPECT().
		UpdateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	updated, err := fx.service.UpdateProduct(ctx, product.ID, input)
	require.NoError(t, err)
	assert.Equal(t, input.Name, updated.Name)
	assert.Equal(t, int64(12500), updated.BasePrice)
}

func TestCatalogService_ReplaceTiers_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	product := gloveProduct()
	inputs := []usecase.TierInput{
		{MinQuantity: 100, MaxQuantity: nil, PricePerUnit: 8500},
		{MinQuantity: 1, MaxQuantity: intPtr(99), PricePerUnit: 10000},
	}

	fx.productRepo.EXPECT().
		FindProductByID(ctx, product.ID).
		Return(product, nil)

	fx.productRepo.EXPECT().
		ReplaceTiers(ctx, product.ID, mock.AnythingOfType("[]entity.PricingTier")).
		Return(nil)

	updated, err := fx.service.ReplaceTiers(ctx, product.ID, inputs)
	require.NoError(t, err)
	require.Len(t, updated.Tiers, 2)
	assert.Equal(t, 1, updated.Tiers[0].MinQuantity)
	assert.Equal(t, 100, updated.Tiers[1].MinQuantity)
}

func TestCatalogService_ReplaceTiers_OverlapRejected(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	product := gloveProduct()
	inputs := []usecase.TierInput{
		{MinQuantity: 1, MaxQuantity: intPtr(50), PricePerUnit: 10000},
		{MinQuantity: 50, MaxQuantity: intPtr(99), PricePerUnit: 9000},
	}

	fx.productRepo.EXPECT().
		FindProductByID(ctx, product.ID).
		Return(product, nil)

	_, err := fx.service.ReplaceTiers(ctx, product.ID, inputs)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestCatalogService_GetProduct_RepositoryFailure(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(nil, errors.New("connection refused"))

	_, err := fx.service.GetProduct(ctx, productID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrProductNotFound)
}
