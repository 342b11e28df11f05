package impl

import (
	"context"
	"time"

	"glovia/internal/domain/entity"
	domainerrors "glovia/internal/domain/errors"
	"glovia/internal/domain/repository"
	"glovia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type communicationService struct {
	communicationRepo repository.CommunicationRepository
	customerRepo      repository.CustomerRepository
	now               func() time.Time
}

// NewCommunicationService creates a new communication log service instance
func NewCommunicationService(
	communicationRepo repository.CommunicationRepository,
	customerRepo repository.CustomerRepository,
) usecase.CommunicationUsecase {
	return &communicationService{
		communicationRepo: communicationRepo,
		customerRepo:      customerRepo,
		now:               time.Now,
	}
}

// Record appends one message log entry
func (s *communicationService) Record(ctx context.Context, actorID uuid.UUID, input usecase.RecordCommunicationInput) (*entity.Communication, error) {
	if !input.Channel.Valid() {
		return nil, domainerrors.ErrValidation.WithDetails("unknown communication channel")
	}
	if !input.Direction.Valid() {
		return nil, domainerrors.ErrValidation.WithDetails("unknown communication direction")
	}
	if input.Content == "" {
		return nil, domainerrors.ErrValidation.WithDetails("content is required")
	}

	if _, err := s.customerRepo.FindCustomerByID(ctx, input.CustomerID); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	communication := &entity.Communication{
		ID:                uuid.New(),
		CustomerID:        input.CustomerID,
		QuotationID:       input.QuotationID,
		OrderID:           input.OrderID,
		Channel:           input.Channel,
		Direction:         input.Direction,
		Content:           input.Content,
		ExternalMessageID: input.ExternalMessageID,
		RecordedBy:        &actorID,
		CreatedAt:         s.now(),
	}

	if err := s.communicationRepo.CreateCommunication(ctx, communication); err != nil {
		return nil, errors.Wrap(err, "failed to create communication entry")
	}

	return communication, nil
}

// ListByCustomer retrieves the message log of a customer, newest first
func (s *communicationService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Communication, error) {
	communications, err := s.communicationRepo.FindCommunicationsByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find communications by customer")
	}

	return communications, nil
}
