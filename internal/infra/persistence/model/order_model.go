package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	QuotationID     *uuid.UUID `gorm:"type:uuid;unique"`
	Status          string     `gorm:"type:varchar(16);not null;index"`
	ShippingAddress string     `gorm:"type:text"`
	TrackingNumber  string     `gorm:"type:varchar(64)"`
	ShippedAt       *time.Time
	DeliveredAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	SKU         string    `gorm:"column:sku;type:varchar(64);not null"`
	Quantity    int       `gorm:"not null"`
	UnitPrice   int64     `gorm:"not null"`
	TotalPrice  int64     `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// OrderStatusLogModel mirrors the append-only 'order_status_logs' table.
type OrderStatusLogModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FromStatus string    `gorm:"type:varchar(16);not null"`
	ToStatus   string    `gorm:"type:varchar(16);not null"`
	Notes      string    `gorm:"type:text"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderStatusLogModel) TableName() string {
	return "order_status_logs"
}
