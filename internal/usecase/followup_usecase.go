package usecase

import (
	"context"
	"time"

	"glovia/internal/domain/entity"

	"github.com/google/uuid"
)

// CompleteFollowUpInput carries the resolution of a follow-up. Setting
// Channel records the outreach that closed it on the customer's
// communication log; Notes are required in that case.
type CompleteFollowUpInput struct {
	Notes   string                       `json:"notes"`
	Channel *entity.CommunicationChannel `json:"channel,omitempty"`
}

// ScheduleFollowUpInput carries the fields of a new outreach task.
type ScheduleFollowUpInput struct {
	CustomerID  uuid.UUID           `json:"customer_id" validate:"required"`
	QuotationID *uuid.UUID          `json:"quotation_id,omitempty"`
	OrderID     *uuid.UUID          `json:"order_id,omitempty"`
	Type        entity.FollowUpType `json:"type" validate:"required"`
	ScheduledAt time.Time           `json:"scheduled_at" validate:"required"`
	Notes       string              `json:"notes"`
}

// FollowUpUsecase defines scheduling and resolution of customer outreach tasks.
// Dueness is pull-based: computed from the clock when listing, never by a timer.
type FollowUpUsecase interface {
	// Schedule creates a new PENDING follow-up; no deduplication is applied.
	Schedule(ctx context.Context, ownerID uuid.UUID, input ScheduleFollowUpInput) (*entity.FollowUp, error)

	// ListToday retrieves PENDING follow-ups scheduled within the current
	// calendar day, optionally restricted to one owning admin.
	ListToday(ctx context.Context, ownerID *uuid.UUID) ([]*entity.FollowUp, error)

	// ListOverdue retrieves PENDING follow-ups scheduled strictly before now,
	// optionally restricted to one owning admin.
	ListOverdue(ctx context.Context, ownerID *uuid.UUID) ([]*entity.FollowUp, error)

	// Complete resolves a PENDING follow-up as done, optionally appending
	// the closing outreach to the customer's communication log.
	Complete(ctx context.Context, id uuid.UUID, input CompleteFollowUpInput, actorID uuid.UUID) (*entity.FollowUp, error)

	// Cancel resolves a PENDING follow-up as abandoned.
	Cancel(ctx context.Context, id uuid.UUID, notes string) (*entity.FollowUp, error)
}
