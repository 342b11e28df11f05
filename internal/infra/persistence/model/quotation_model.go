package model

import (
	"time"

	"github.com/google/uuid"
)

// QuotationModel mirrors the 'quotations' table. ConvertedOrderID is set
// exactly once, when the quotation becomes an order.
type QuotationModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Status           string    `gorm:"type:varchar(16);not null;index"`
	ShippingAddress  string    `gorm:"type:text"`
	Notes            string    `gorm:"type:text"`
	ValidUntil       *time.Time
	ConvertedOrderID *uuid.UUID `gorm:"type:uuid;unique"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Items []QuotationItemModel `gorm:"foreignKey:QuotationID"`
}

// TableName explicitly sets the table name for GORM.
func (QuotationModel) TableName() string {
	return "quotations"
}

// QuotationItemModel mirrors the 'quotation_items' table. UnitPrice is the
// tier-resolved snapshot taken when the line was added.
type QuotationItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	QuotationID uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	SKU         string    `gorm:"column:sku;type:varchar(64);not null"`
	Quantity    int       `gorm:"not null"`
	UnitPrice   int64     `gorm:"not null"`
	LineTotal   int64     `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (QuotationItemModel) TableName() string {
	return "quotation_items"
}
