package impl

import (
	"context"
	"testing"
	"time"

	"glovia/internal/domain/entity"
	domainerrors "glovia/internal/domain/errors"
	"glovia/internal/domain/repository"
	mockRepo "glovia/internal/mocks/repository"
	"glovia/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// communicationServiceFixtures holds all test dependencies for communication service tests.
type communicationServiceFixtures struct {
	service           usecase.CommunicationUsecase
	communicationRepo *mockRepo.MockCommunicationRepository
	customerRepo      *mockRepo.MockCustomerRepository
	now               time.Time
}

func createTestCommunicationService(t *testing.T) communicationServiceFixtures {
	communicationRepo := mockRepo.NewMockCommunicationRepository(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)

	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	service := NewCommunicationService(communicationRepo, customerRepo)
	service.(*communicationService).now = func() time.Time { return now }

	return communicationServiceFixtures{
		service:           service,
		communicationRepo: communicationRepo,
		customerRepo:      customerRepo,
		now:               now,
	}
}

func TestCommunicationService_Record_Success(t *testing.T) {
	fx := createTestCommunicationService(t)

	ctx := context.Background()
	actorID := uuid.New()
	customer := &entity.Customer{ID: uuid.New(), Name: "Budi Santoso"}
	quotationID := uuid.New()

	fx.customerRepo.EXPECT().
		FindCustomerByID(ctx, customer.ID).
		Return(customer, nil)

	fx.communicationRepo.EXPECT().
		CreateCommunication(ctx, mock.AnythingOfType("*entity.Communication")).
		Return(nil)

	communication, err := fx.service.Record(ctx, actorID, usecase.RecordCommunicationInput{
		CustomerID:  customer.ID,
		QuotationID: &quotationID,
		Channel:     entity.ChannelWhatsApp,
		Direction:   entity.DirectionOutbound,
		Content:     "Penawaran harga sudah dikirim, mohon dicek.",
	})
	require.NoError(t, err)
	assert.Equal(t, customer.ID, communication.CustomerID)
	assert.Equal(t, &quotationID, communication.QuotationID)
	assert.Equal(t, entity.ChannelWhatsApp, communication.Channel)
	assert.Equal(t, entity.DirectionOutbound, communication.Direction)
	require.NotNil(t, communication.RecordedBy)
	assert.Equal(t, actorID, *communication.RecordedBy)
	assert.Equal(t, fx.now, communication.CreatedAt)
}

func TestCommunicationService_Record_UnknownChannel(t *testing.T) {
	fx := createTestCommunicationService(t)

	_, err := fx.service.Record(context.Background(), uuid.New(), usecase.RecordCommunicationInput{
		CustomerID: uuid.New(),
		Channel:    entity.CommunicationChannel("FAX"),
		Direction:  entity.DirectionInbound,
		Content:    "hello",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestCommunicationService_Record_UnknownDirection(t *testing.T) {
	fx := createTestCommunicationService(t)

	_, err := fx.service.Record(context.Background(), uuid.New(), usecase.RecordCommunicationInput{
		CustomerID: uuid.New(),
		Channel:    entity.ChannelEmail,
		Direction:  entity.CommunicationDirection("SIDEWAYS"),
		Content:    "hello",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestCommunicationService_Record_EmptyContent(t *testing.T) {
	fx := createTestCommunicationService(t)

	_, err := fx.service.Record(context.Background(), uuid.New(), usecase.RecordCommunicationInput{
		CustomerID: uuid.New(),
		Channel:    entity.ChannelWhatsApp,
		Direction:  entity.DirectionInbound,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestCommunicationService_Record_CustomerNotFound(t *testing.T) {
	fx := createTestCommunicationService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.customerRepo.EXPECT().
		FindCustomerByID(ctx, customerID).
		Return(nil, repository.ErrCustomerNotFound)

	_, err := fx.service.Record(ctx, uuid.New(), usecase.RecordCommunicationInput{
		CustomerID: customerID,
		Channel:    entity.ChannelPhone,
		Direction:  entity.DirectionInbound,
		Content:    "asked about bulk discount",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestCommunicationService_ListByCustomer_Success(t *testing.T) {
	fx := createTestCommunicationService(t)

	ctx := context.Background()
	customerID := uuid.New()
	entries := []*entity.Communication{
		{ID: uuid.New(), CustomerID: customerID, Channel: entity.ChannelWhatsApp, Direction: entity.DirectionInbound},
	}

	fx.communicationRepo.EXPECT().
		FindCommunicationsByCustomer(ctx, customerID).
		Return(entries, nil)

	got, err := fx.service.ListByCustomer(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}
