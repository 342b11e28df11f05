package usecase

import (
	"context"

	"glovia/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordCommunicationInput carries one message log entry.
type RecordCommunicationInput struct {
	CustomerID        uuid.UUID                     `json:"customer_id" validate:"required"`
	QuotationID       *uuid.UUID                    `json:"quotation_id,omitempty"`
	OrderID           *uuid.UUID                    `json:"order_id,omitempty"`
	Channel           entity.CommunicationChannel   `json:"channel" validate:"required"`
	Direction         entity.CommunicationDirection `json:"direction" validate:"required"`
	Content           string                        `json:"content" validate:"required"`
	ExternalMessageID *string                       `json:"external_message_id,omitempty"`
}

// CommunicationUsecase defines the append-only customer message log.
type CommunicationUsecase interface {
	// Record appends one message log entry.
	Record(ctx context.Context, actorID uuid.UUID, input RecordCommunicationInput) (*entity.Communication, error)

	// ListByCustomer retrieves the message log of a customer, newest first.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Communication, error)
}
