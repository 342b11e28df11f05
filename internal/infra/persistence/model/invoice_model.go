package model

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceModel mirrors the 'invoices' table. OrderID and InvoiceNumber both
// carry unique constraints: one invoice per order, one number per document.
type InvoiceModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID       uuid.UUID `gorm:"type:uuid;unique;not null"`
	InvoiceNumber string    `gorm:"type:varchar(32);unique;not null"`
	Status        string    `gorm:"type:varchar(16);not null;index"`
	Subtotal      int64     `gorm:"not null"`
	TaxAmount     int64     `gorm:"not null"`
	TotalAmount   int64     `gorm:"not null"`
	DueDate       time.Time `gorm:"not null"`
	PaidAt        *time.Time
	PaymentMethod string `gorm:"type:varchar(64)"`
	PaymentNotes  string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items []InvoiceItemModel `gorm:"foreignKey:InvoiceID"`
}

// TableName explicitly sets the table name for GORM.
func (InvoiceModel) TableName() string {
	return "invoices"
}

// InvoiceItemModel mirrors the 'invoice_items' table.
type InvoiceItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	InvoiceID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	Quantity    int       `gorm:"not null"`
	UnitPrice   int64     `gorm:"not null"`
	TotalPrice  int64     `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (InvoiceItemModel) TableName() string {
	return "invoice_items"
}

// InvoiceSequenceModel mirrors the 'invoice_sequences' table: one row per
// calendar year, advanced atomically when numbering a new invoice.
type InvoiceSequenceModel struct {
	Year      int   `gorm:"primaryKey"`
	LastValue int64 `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (InvoiceSequenceModel) TableName() string {
	return "invoice_sequences"
}

// TaxInvoiceModel mirrors the 'tax_invoices' table, at most one row per invoice.
type TaxInvoiceModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	InvoiceID    uuid.UUID `gorm:"type:uuid;unique;not null"`
	CompanyName  string    `gorm:"type:varchar(255);not null"`
	CompanyTaxID string    `gorm:"type:varchar(32);not null"`
	PPNRate      float64   `gorm:"column:ppn_rate;not null"`
	PPNAmount    int64     `gorm:"column:ppn_amount;not null"`
	TotalWithPPN int64     `gorm:"column:total_with_ppn;not null"`
	IssuedAt     time.Time `gorm:"not null"`
	IssuedBy     uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName explicitly sets the table name for GORM.
func (TaxInvoiceModel) TableName() string {
	return "tax_invoices"
}
