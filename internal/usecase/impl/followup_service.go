package impl

import (
	"context"
	"log/slog"
	"time"

	"glovia/internal/domain/entity"
	domainerrors "glovia/internal/domain/errors"
	"glovia/internal/domain/repository"
	"glovia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type followUpService struct {
	followUpRepo      repository.FollowUpRepository
	customerRepo      repository.CustomerRepository
	communicationRepo repository.CommunicationRepository
	logger            *slog.Logger
	now               func() time.Time
}

// NewFollowUpService creates a new follow-up service instance
func NewFollowUpService(
	followUpRepo repository.FollowUpRepository,
	customerRepo repository.CustomerRepository,
	communicationRepo repository.CommunicationRepository,
	logger *slog.Logger,
) usecase.FollowUpUsecase {
	return &followUpService{
		followUpRepo:      followUpRepo,
		customerRepo:      customerRepo,
		communicationRepo: communicationRepo,
		logger:            logger,
		now:               time.Now,
	}
}

// Schedule creates a new PENDING follow-up. Duplicates for the same customer
// and type are allowed on purpose, dedup is the admin's call.
func (s *followUpService) Schedule(ctx context.Context, ownerID uuid.UUID, input usecase.ScheduleFollowUpInput) (*entity.FollowUp, error) {
	if !input.Type.Valid() {
		return nil, domainerrors.ErrValidation.WithDetails("unknown follow-up type")
	}
	if input.ScheduledAt.IsZero() {
		return nil, domainerrors.ErrValidation.WithDetails("scheduled time is required")
	}

	if _, err := s.customerRepo.FindCustomerByID(ctx, input.CustomerID); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	now := s.now()
	followUp := &entity.FollowUp{
		ID:          uuid.New(),
		CustomerID:  input.CustomerID,
		QuotationID: input.QuotationID,
		OrderID:     input.OrderID,
		Type:        input.Type,
		Status:      entity.FollowUpPending,
		ScheduledAt: input.ScheduledAt,
		Notes:       input.Notes,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.followUpRepo.CreateFollowUp(ctx, followUp); err != nil {
		return nil, errors.Wrap(err, "failed to create follow-up")
	}

	return followUp, nil
}

// ListToday retrieves PENDING follow-ups scheduled within the current calendar day
func (s *followUpService) ListToday(ctx context.Context, ownerID *uuid.UUID) ([]*entity.FollowUp, error) {
	dayStart := startOfDay(s.now())
	dayEnd := dayStart.AddDate(0, 0, 1)

	followUps, err := s.followUpRepo.FindPendingInWindow(ctx, dayStart, dayEnd, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find follow-ups due today")
	}

	return followUps, nil
}

// ListOverdue retrieves PENDING follow-ups scheduled strictly before now
func (s *followUpService) ListOverdue(ctx context.Context, ownerID *uuid.UUID) ([]*entity.FollowUp, error) {
	followUps, err := s.followUpRepo.FindPendingBefore(ctx, s.now(), ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find overdue follow-ups")
	}

	return followUps, nil
}

// Complete resolves a PENDING follow-up as done. When a channel is given,
// the closing outreach is appended to the customer's communication log.
func (s *followUpService) Complete(ctx context.Context, id uuid.UUID, input usecase.CompleteFollowUpInput, actorID uuid.UUID) (*entity.FollowUp, error) {
	if input.Channel != nil {
		if !input.Channel.Valid() {
			return nil, domainerrors.ErrValidation.WithDetails("unknown communication channel")
		}
		if input.Notes == "" {
			return nil, domainerrors.ErrValidation.WithDetails("notes are required to log the outreach")
		}
	}

	followUp, err := s.resolve(ctx, id, entity.FollowUpCompleted, input.Notes)
	if err != nil {
		return nil, err
	}

	if input.Channel != nil {
		s.logOutreach(ctx, followUp, *input.Channel, input.Notes, actorID)
	}

	return followUp, nil
}

// logOutreach appends the closing outreach to the customer's communication
// log. Best-effort: the completed follow-up stands even if the log write fails.
func (s *followUpService) logOutreach(ctx context.Context, followUp *entity.FollowUp, channel entity.CommunicationChannel, notes string, actorID uuid.UUID) {
	entry := &entity.Communication{
		ID:          uuid.New(),
		CustomerID:  followUp.CustomerID,
		QuotationID: followUp.QuotationID,
		OrderID:     followUp.OrderID,
		Channel:     channel,
		Direction:   entity.DirectionOutbound,
		Content:     notes,
		RecordedBy:  &actorID,
		CreatedAt:   s.now(),
	}
	if err := s.communicationRepo.CreateCommunication(ctx, entry); err != nil {
		s.logger.Warn("failed to log follow-up outreach",
			slog.String("followUpID", followUp.ID.String()),
			slog.Any("error", err))
	}
}

// Cancel resolves a PENDING follow-up as abandoned
func (s *followUpService) Cancel(ctx context.Context, id uuid.UUID, notes string) (*entity.FollowUp, error) {
	return s.resolve(ctx, id, entity.FollowUpCancelled, notes)
}

func (s *followUpService) resolve(ctx context.Context, id uuid.UUID, to entity.FollowUpStatus, notes string) (*entity.FollowUp, error) {
	followUp, err := s.followUpRepo.FindFollowUpByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFollowUpNotFound) {
			return nil, domainerrors.ErrFollowUpNotFound
		}

		return nil, errors.Wrap(err, "failed to find follow-up by ID")
	}

	if followUp.Status.IsTerminal() {
		return nil, domainerrors.ErrAlreadyResolved
	}

	resolvedAt := s.now()
	if err := s.followUpRepo.Resolve(ctx, id, to, notes, resolvedAt); err != nil {
		if errors.Is(err, repository.ErrFollowUpResolved) {
			return nil, domainerrors.ErrAlreadyResolved
		}

		return nil, errors.Wrap(err, "failed to resolve follow-up")
	}

	followUp.Status = to
	followUp.ResolutionNotes = notes
	followUp.ResolvedAt = &resolvedAt
	followUp.UpdatedAt = resolvedAt

	return followUp, nil
}
