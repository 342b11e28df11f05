package model

import (
	"time"

	"github.com/google/uuid"
)

// CommunicationModel mirrors the append-only 'communications' table.
type CommunicationModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	QuotationID       *uuid.UUID `gorm:"type:uuid"`
	OrderID           *uuid.UUID `gorm:"type:uuid"`
	Channel           string     `gorm:"type:varchar(16);not null"`
	Direction         string     `gorm:"type:varchar(8);not null"`
	Content           string     `gorm:"type:text;not null"`
	ExternalMessageID *string    `gorm:"type:varchar(128)"`
	RecordedBy        *uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommunicationModel) TableName() string {
	return "communications"
}
