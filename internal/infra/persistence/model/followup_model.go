package model

import (
	"time"

	"github.com/google/uuid"
)

// FollowUpModel mirrors the 'follow_ups' table.
type FollowUpModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	QuotationID     *uuid.UUID `gorm:"type:uuid"`
	OrderID         *uuid.UUID `gorm:"type:uuid"`
	Type            string     `gorm:"type:varchar(32);not null"`
	Status          string     `gorm:"type:varchar(16);not null;index"`
	ScheduledAt     time.Time  `gorm:"not null;index"`
	Notes           string     `gorm:"type:text"`
	ResolutionNotes string     `gorm:"type:text"`
	OwnerID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	ResolvedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (FollowUpModel) TableName() string {
	return "follow_ups"
}
