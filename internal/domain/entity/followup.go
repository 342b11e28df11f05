package entity

import (
	"time"

	"github.com/google/uuid"
)

// FollowUpType enumerates the kinds of scheduled customer outreach.
type FollowUpType string

const (
	FollowUpQuotationReminder FollowUpType = "QUOTATION_REMINDER"
	FollowUpPaymentReminder   FollowUpType = "PAYMENT_REMINDER"
	FollowUpDeliveryCheck     FollowUpType = "DELIVERY_CHECK"
	FollowUpReorderOffer      FollowUpType = "REORDER_OFFER"
)

// Valid reports whether the value is a known follow-up type.
func (t FollowUpType) Valid() bool {
	switch t {
	case FollowUpQuotationReminder, FollowUpPaymentReminder, FollowUpDeliveryCheck, FollowUpReorderOffer:
		return true
	}

	return false
}

// FollowUpStatus enumerates the resolution states of a follow-up task.
type FollowUpStatus string

const (
	FollowUpPending   FollowUpStatus = "PENDING"
	FollowUpCompleted FollowUpStatus = "COMPLETED"
	FollowUpCancelled FollowUpStatus = "CANCELLED"
)

// IsTerminal reports whether the follow-up has been resolved.
func (s FollowUpStatus) IsTerminal() bool {
	return s == FollowUpCompleted || s == FollowUpCancelled
}

// FollowUp is a scheduled outreach task owned by an admin user, optionally
// tied to the quotation or order that prompted it. Dueness is computed at
// read time from the clock; there is no background timer.
type FollowUp struct {
	ID              uuid.UUID      `json:"id"`
	CustomerID      uuid.UUID      `json:"customer_id"`
	QuotationID     *uuid.UUID     `json:"quotation_id,omitempty"`
	OrderID         *uuid.UUID     `json:"order_id,omitempty"`
	Type            FollowUpType   `json:"type"`
	Status          FollowUpStatus `json:"status"`
	ScheduledAt     time.Time      `json:"scheduled_at"`
	Notes           string         `json:"notes,omitempty"`
	ResolutionNotes string         `json:"resolution_notes,omitempty"`
	OwnerID         uuid.UUID      `json:"owner_id"`
	ResolvedAt      *time.Time     `json:"resolved_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
