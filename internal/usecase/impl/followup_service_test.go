package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"glovia/internal/domain/entity"
	domainerrors "glovia/internal/domain/errors"
	"glovia/internal/domain/repository"
	mockRepo "glovia/internal/mocks/repository"
	"glovia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// followUpServiceFixtures holds all test dependencies for follow-up service tests.
type followUpServiceFixtures struct {
	service           usecase.FollowUpUsecase
	followUpRepo      *mockRepo.MockFollowUpRepository
	customerRepo      *mockRepo.MockCustomerRepository
	communicationRepo *mockRepo.MockCommunicationRepository
	now               time.Time
}

func createTestFollowUpService(t *testing.T) followUpServiceFixtures {
	followUpRepo := mockRepo.NewMockFollowUpRepository(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	communicationRepo := mockRepo.NewMockCommunicationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	service := NewFollowUpService(followUpRepo, customerRepo, communicationRepo, logger)
	service.(*followUpService).now = func() time.Time { return now }

	return followUpServiceFixtures{
		service:           service,
		followUpRepo:      followUpRepo,
		customerRepo:      customerRepo,
		communicationRepo: communicationRepo,
		now:               now,
	}
}

func TestFollowUpService_Schedule_Success(t *testing.T) {
	fx := createTestFollowUpService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	customer := &entity.Customer{ID: uuid.New(), Name: "Budi Santoso"}
	scheduledAt := fx.now.AddDate(0, 0, 3)

	fx.customerRepo.EXPECT().
		FindCustomerByID(ctx, customer.ID).
		Return(customer, nil)

	fx.followUpRepo.EXPECT().
		CreateFollowUp(ctx, mock.AnythingOfType("*entity.FollowUp")).
		Return(nil)

	followUp, err := fx.service.Schedule(ctx, ownerID, usecase.ScheduleFollowUpInput{
		CustomerID:  customer.ID,
		Type:        entity.FollowUpQuotationReminder,
		ScheduledAt: scheduledAt,
		Notes:       "chase the pending offer",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.FollowUpPending, followUp.Status)
	assert.Equal(t, ownerID, followUp.OwnerID)
	assert.Equal(t, scheduledAt, followUp.ScheduledAt)
}

func TestFollowUpService_Schedule_UnknownType(t *testing.T) {
	fx := createTestFollowUpService(t)

	_, err := fx.service.Schedule(context.Background(), uuid.New(), usecase.ScheduleFollowUpInput{
		CustomerID:  uuid.New(),
		Type:        entity.FollowUpType("BIRTHDAY"),
		ScheduledAt: fx.now,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestFollowUpService_Schedule_MissingScheduledAt(t *testing.T) {
	fx := createTestFollowUpService(t)

	_, err := fx.service.Schedule(context.Background(), uuid.New(), usecase.ScheduleFollowUpInput{
		CustomerID: uuid.New(),
		Type:       entity.FollowUpPaymentReminder,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestFollowUpService_Schedule_CustomerNotFound(t *testing.T) {
	fx := createTestFollowUpService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.customerRepo.EXPECT().
		FindCustomerByID(ctx, customerID).
		Return(nil, repository.ErrCustomerNotFound)

	_, err := fx.service.Schedule(ctx, uuid.New(), usecase.ScheduleFollowUpInput{
		CustomerID:  customerID,
		Type:        entity.FollowUpReorderOffer,
		ScheduledAt: fx.now,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestFollowUpService_ListToday_UsesCalendarDayWindow(t *testing.T) {
	fx := createTestFollowUpService(t)

	ctx := context.Background()
	dayStart := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	dayEnd := time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC)
	followUps := []*entity.FollowUp{
		{ID: uuid.New(), Status: entity.FollowUpPending, ScheduledAt: fx.now},
	}

	fx.followUpRepo.EXPECT().
		FindPendingInWindow(ctx, dayStart, dayEnd, (*uuid.UUID)(nil)).
		Return(followUps, nil)

	got, err := fx.service.ListToday(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, followUps, got)
}

func TestFollowUpService_ListOverdue_FiltersByOwner(t *testing.T) {
	fx := createTestFollowUpService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.followUpRepo.EXPECT().
		FindPendingBefore(ctx, fx.now, &ownerID).
		Return([]*entity.FollowUp{}, nil)

	got, err := fx.service.ListOverdue(ctx, &ownerID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFollowUpService_Complete_Success(t *testing.T) {
	fx := createTestFollowUpService(t)

	ctx := context.Background()
	followUp := &entity.FollowUp{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		Type:        entity.FollowUpDeliveryCheck,
		Status:      entity.FollowUpPending,
		ScheduledAt: fx.now.AddDate(0, 0, -1),
	}

	fx.followUpRepo.EXPECT().
		FindFollowUpByID(ctx, followUp.ID).
		Return(followUp, nil)

	fx.followUpRepo.EXPECT().
		Resolve(ctx, followUp.ID, entity.FollowUpCompleted, "spoke with the buyer", fx.now).
		Return(nil)

	resolved, err := fx.service.Complete(ctx, followUp.ID, usecase.CompleteFollowUpInput{Notes: "spoke with the buyer"}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, entity.FollowUpCompleted, resolved.Status)
	assert.Equal(t, "spoke with the buyer", resolved.ResolutionNotes)
	require.NotNil(t, resolved.ResolvedAt)
	assert.Equal(t, fx.now, *resolved.ResolvedAt)
}

func TestFollowUpService_Complete_LogsOutreach(t *testing.T) {
	fx := createTestFollowUpService(t)

	ctx := context.Background()
	actorID := uuid.New()
	quotationID := uuid.New()
	channel := entity.ChannelWhatsApp
	followUp := &entity.FollowUp{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		QuotationID: &quotationID,
		Type:        entity.FollowUpQuotationReminder,
		Status:      entity.FollowUpPending,
	}

	fx.followUpRepo.EXPECT().
		FindFollowUpByID(ctx, followUp.ID).
		Return(followUp, nil)

	fx.followUpRepo.EXPECT().
		Resolve(ctx, followUp.ID, entity.FollowUpCompleted, "reminded via WA, will order next week", fx.now).
		Return(nil)

	var entry *entity.Communication
	fx.communicationRepo.EXPECT().
		CreateCommunication(ctx, mock.AnythingOfType("*entity.Communication")).
		RunAndReturn(func(_ context.Context, communication *entity.Communication) error {
			entry = communication

			return nil
		})

	resolved, err := fx.service.Complete(ctx, followUp.ID, usecase.CompleteFollowUpInput{
		Notes:   "reminded via WA, will order next week",
		Channel: &channel,
	}, actorID)
	require.NoError(t, err)
	assert.Equal(t, entity.FollowUpCompleted, resolved.Status)
	require.NotNil(t, entry)
	assert.Equal(t, followUp.CustomerID, entry.CustomerID)
	assert.Equal(t, &quotationID, entry.QuotationID)
	assert.Equal(t, entity.ChannelWhatsApp, entry.Channel)
	assert.Equal(t, entity.DirectionOutbound, entry.Direction)
	assert.Equal(t, "reminded via WA, will order next week", entry.Content)
	require.NotNil(t, entry.RecordedBy)
	assert.Equal(t, actorID, *entry.RecordedBy)
}

func TestFollowUpService_Complete_ChannelRequiresNotes(t *testing.T) {
	fx := createTestFollowUpService(t)

	channel := entity.ChannelPhone
	_, err := fx.service.Complete(context.Background(), uuid.New(), usecase.CompleteFollowUpInput{
		Channel: &channel,
	}, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestFollowUpService_Complete_UnknownChannel(t *testing.T) {
	fx := createTestFollowUpService(t)

	channel := entity.CommunicationChannel("FAX")
	_, err := fx.service.Complete(context.Background(), uuid.New(), usecase.CompleteFollowUpInput{
		Notes:   "sent by fax",
		Channel: &channel,
	}, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestFollowUpService_Complete_OutreachLogFailureKeepsResolution(t *testing.T) {
	fx := createTestFollowUpService(t)

	ctx := context.Background()
	channel := entity.ChannelEmail
	followUp := &entity.FollowUp{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Type:       entity.FollowUpPaymentReminder,
		Status:     entity.FollowUpPending,
	}

	fx.followUpRepo.EXPECT().
		FindFollowUpByID(ctx, followUp.ID).
		Return(followUp, nil)

	fx.followUpRepo.EXPECT().
		Resolve(ctx, followUp.ID, entity.FollowUpCompleted, "emailed the invoice again", fx.now).
		Return(nil)

	fx.communicationRepo.EXPECT().
		CreateCommunication(ctx, mock.AnythingOfType("*entity.Communication")).
		Return(errors.New("connection refused"))

	resolved, err := fx.service.Complete(ctx, followUp.ID, usecase.CompleteFollowUpInput{
		Notes:   "emailed the invoice again",
		Channel: &channel,
	}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, entity.FollowUpCompleted, resolved.Status)
}

func TestFollowUpService_Cancel_AlreadyResolved(t *testing.T) {
	fx := createTestFollowUpService(t)

	ctx := context.Background()
	followUp := &entity.FollowUp{
		ID:     uuid.New(),
		Status: entity.FollowUpCompleted,
	}

	fx.followUpRepo.EXPECT().
		FindFollowUpByID(ctx, followUp.ID).
		Return(followUp, nil)

	_, err := fx.service.Cancel(ctx, followUp.ID, "no longer needed")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyResolved)
}

func TestFollowUpService_Complete_LostRace(t *testing.T) {
	fx := createTestFollowUpService(t)

	ctx := context.Background()
	followUp := &entity.FollowUp{
		ID:     uuid.New(),
		Status: entity.FollowUpPending,
	}

	fx.followUpRepo.EXPECT().
		FindFollowUpByID(ctx, followUp.ID).
		Return(followUp, nil)

	fx.followUpRepo.EXPECT().
		Resolve(ctx, followUp.ID, entity.FollowUpCompleted, "", fx.now).
		Return(repository.ErrFollowUpResolved)

	_, err := fx.service.Complete(ctx, followUp.ID, usecase.CompleteFollowUpInput{}, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyResolved)
}

func TestFollowUpService_Complete_NotFound(t *testing.T) {
	fx := createTestFollowUpService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.followUpRepo.EXPECT().
		FindFollowUpByID(ctx, id).
		Return(nil, repository.ErrFollowUpNotFound)

	_, err := fx.service.Complete(ctx, id, usecase.CompleteFollowUpInput{}, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrFollowUpNotFound)
}
