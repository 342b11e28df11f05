// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// BrandModel mirrors the 'brands' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type BrandModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name string    `gorm:"type:varchar(100);not null"`
	Slug string    `gorm:"type:varchar(100);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (BrandModel) TableName() string {
	return "brands"
}

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name string    `gorm:"type:varchar(100);not null"`
	Slug string    `gorm:"type:varchar(100);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// PricingTierModel mirrors the 'pricing_tiers' table. MaxQuantity is NULL for
// an open-ended tier; prices are bigint minor currency units.
type PricingTierModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index"`
	MinQuantity  int       `gorm:"not null"`
	MaxQuantity  *int
	PricePerUnit int64 `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PricingTierModel) TableName() string {
	return "pricing_tiers"
}

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SKU         string    `gorm:"column:sku;type:varchar(64);unique;not null"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	BasePrice   int64     `gorm:"not null"`
	Stock       int       `gorm:"not null;default:0"`
	IsActive    bool      `gorm:"not null;default:true"`
	IsFeatured  bool      `gorm:"not null;default:false"`
	BrandID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Brand      *BrandModel        `gorm:"foreignKey:BrandID"`
	Categories []CategoryModel    `gorm:"many2many:product_categories"`
	Tiers      []PricingTierModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
