package repository

import (
	"context"

	"glovia/internal/domain/entity"

	"github.com/google/uuid"
)

// CommunicationRepository defines the interface for the append-only message log.
type CommunicationRepository interface {
	// CreateCommunication appends one message log entry.
	CreateCommunication(ctx context.Context, communication *entity.Communication) error

	// FindCommunicationsByCustomer retrieves the message log of a customer, newest first.
	FindCommunicationsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Communication, error)
}
