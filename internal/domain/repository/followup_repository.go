package repository

import (
	"context"
	"time"

	"glovia/internal/domain/entity"
	"glovia/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for follow-up persistence.
var (
	// ErrFollowUpNotFound is returned when a follow-up is not found.
	ErrFollowUpNotFound = errors.New("follow-up not found")
	// ErrFollowUpResolved is returned when resolving a follow-up that is no longer pending.
	ErrFollowUpResolved = errors.New("follow-up already resolved")
)

// FollowUpRepository defines the interface for follow-up-related database operations.
type FollowUpRepository interface {
	// CreateFollowUp persists a new follow-up task.
	CreateFollowUp(ctx context.Context, followUp *entity.FollowUp) error

	// FindFollowUpByID retrieves a follow-up by its unique ID.
	FindFollowUpByID(ctx context.Context, id uuid.UUID) (*entity.FollowUp, error)

	// FindPendingInWindow retrieves PENDING follow-ups scheduled inside
	// [from, to), optionally restricted to one owning admin, soonest first.
	FindPendingInWindow(ctx context.Context, from, to time.Time, ownerID *uuid.UUID) ([]*entity.FollowUp, error)

	// FindPendingBefore retrieves PENDING follow-ups scheduled strictly before
	// the given instant, optionally restricted to one owning admin, oldest first.
	FindPendingBefore(ctx context.Context, before time.Time, ownerID *uuid.UUID) ([]*entity.FollowUp, error)

	// Resolve moves a PENDING follow-up to COMPLETED or CANCELLED, recording
	// resolution notes and timestamp. Returns ErrFollowUpResolved when the
	// follow-up is no longer pending.
	Resolve(ctx context.Context, id uuid.UUID, to entity.FollowUpStatus, notes string, resolvedAt time.Time) error
}
