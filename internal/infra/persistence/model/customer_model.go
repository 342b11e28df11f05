package model

import (
	"time"

	"github.com/google/uuid"
)

// CompanyModel mirrors the 'companies' table. TaxID holds the NPWP.
type CompanyModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string    `gorm:"type:varchar(255);not null"`
	TaxID          string    `gorm:"type:varchar(32)"`
	BillingAddress string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (CompanyModel) TableName() string {
	return "companies"
}

// CustomerModel mirrors the 'customers' table.
type CustomerModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string     `gorm:"type:varchar(255);not null"`
	Email     string     `gorm:"type:varchar(255);unique;not null"`
	Phone     string     `gorm:"type:varchar(32)"`
	Type      string     `gorm:"type:varchar(3);not null"`
	CompanyID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Company *CompanyModel `gorm:"foreignKey:CompanyID"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
