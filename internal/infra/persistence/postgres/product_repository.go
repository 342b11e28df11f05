// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"glovia/internal/domain/entity"
	domainerrors "glovia/internal/domain/errors"
	"glovia/internal/domain/repository"
	"glovia/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// CreateProduct persists a new product with its category links and tiers.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSKU
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("invalid brand or category reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// UpdateProduct updates the mutable fields of an existing product and
// replaces its category links.
func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	updates := map[string]any{
		"sku":         productM.SKU,
		"name":        productM.Name,
		"description": productM.Description,
		"base_price":  productM.BasePrice,
		"stock":       productM.Stock,
		"is_active":   productM.IsActive,
		"is_featured": productM.IsFeatured,
		"brand_id":    productM.BrandID,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(updates)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateSKU
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{ID: product.ID}).
		Association("Categories").
		Replace(productM.Categories); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace product categories")
	}

	return nil
}

// FindProductByID retrieves a product with brand, categories and tiers.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Brand").
		Preload("Categories").
		Preload("Tiers", func(db *gorm.DB) *gorm.DB {
			return db.Order("min_quantity ASC")
		}).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// ListProducts retrieves a page of products matching the filter and the total count.
func (repo *productRepository) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.ActiveOnly {
		query = query.Where("products.is_active = ?", true)
	}
	if filter.FeaturedOnly {
		query = query.Where("products.is_featured = ?", true)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("products.name ILIKE ? OR products.sku ILIKE ?", pattern, pattern)
	}
	if filter.BrandSlug != "" {
		query = query.Joins("JOIN brands ON brands.id = products.brand_id").
			Where("brands.slug = ?", filter.BrandSlug)
	}
	if filter.CategorySlug != "" {
		query = query.Joins("JOIN product_categories pc ON pc.product_model_id = products.id").
			Joins("JOIN categories ON categories.id = pc.category_model_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productModels []*model.ProductModel
	if err := query.
		Preload("Brand").
		Preload("Categories").
		Preload("Tiers", func(db *gorm.DB) *gorm.DB {
			return db.Order("min_quantity ASC")
		}).
		Order("products.created_at DESC").
		Offset((filter.Page - 1) * filter.PerPage).
		Limit(filter.PerPage).
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}

// ReplaceTiers replaces the full pricing tier list of a product.
func (repo *productRepository) ReplaceTiers(ctx context.Context, productID uuid.UUID, tiers []entity.PricingTier) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).
			Delete(&model.PricingTierModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete pricing tiers")
		}

		if len(tiers) == 0 {
			return nil
		}

		tierModels := make([]model.PricingTierModel, 0, len(tiers))
		for _, tier := range tiers {
			tierModels = append(tierModels, fromTierDomain(productID, tier))
		}

		if err := tx.Create(&tierModels).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return repository.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to create pricing tiers")
		}

		return nil
	})
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	categories := make([]entity.Category, 0, len(data.Categories))
	for _, categoryM := range data.Categories {
		categories = append(categories, entity.Category{
			ID:   categoryM.ID,
			Name: categoryM.Name,
			Slug: categoryM.Slug,
		})
	}

	tiers := make([]entity.PricingTier, 0, len(data.Tiers))
	for _, tierM := range data.Tiers {
		tiers = append(tiers, entity.PricingTier{
			ID:           tierM.ID,
			ProductID:    tierM.ProductID,
			MinQuantity:  tierM.MinQuantity,
			MaxQuantity:  tierM.MaxQuantity,
			PricePerUnit: tierM.PricePerUnit,
		})
	}

	var brand *entity.Brand
	if data.Brand != nil {
		brand = &entity.Brand{
			ID:   data.Brand.ID,
			Name: data.Brand.Name,
			Slug: data.Brand.Slug,
		}
	}

	return &entity.Product{
		ID:          data.ID,
		SKU:         data.SKU,
		Name:        data.Name,
		Description: data.Description,
		BasePrice:   data.BasePrice,
		Stock:       data.Stock,
		IsActive:    data.IsActive,
		IsFeatured:  data.IsFeatured,
		BrandID:     data.BrandID,
		Brand:       brand,
		Categories:  categories,
		Tiers:       tiers,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	categories := make([]model.CategoryModel, 0, len(data.Categories))
	for _, category := range data.Categories {
		categories = append(categories, model.CategoryModel{ID: category.ID})
	}

	tiers := make([]model.PricingTierModel, 0, len(data.Tiers))
	for _, tier := range data.Tiers {
		tiers = append(tiers, fromTierDomain(data.ID, tier))
	}

	return &model.ProductModel{
		ID:          data.ID,
		SKU:         data.SKU,
		Name:        data.Name,
		Description: data.Description,
		BasePrice:   data.BasePrice,
		Stock:       data.Stock,
		IsActive:    data.IsActive,
		IsFeatured:  data.IsFeatured,
		BrandID:     data.BrandID,
		Categories:  categories,
		Tiers:       tiers,
	}
}

// fromTierDomain converts a domain PricingTier to a GORM PricingTierModel.
func fromTierDomain(productID uuid.UUID, data entity.PricingTier) model.PricingTierModel {
	return model.PricingTierModel{
		ID:           data.ID,
		ProductID:    productID,
		MinQuantity:  data.MinQuantity,
		MaxQuantity:  data.MaxQuantity,
		PricePerUnit: data.PricePerUnit,
	}
}
