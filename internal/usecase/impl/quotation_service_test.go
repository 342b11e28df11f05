package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"glovia/config"
	"glovia/internal/domain/entity"
	domainerrors "glovia/internal/domain/errors"
	"glovia/internal/domain/repository"
	mockRepo "glovia/internal/mocks/repository"
	mockService "glovia/internal/mocks/service"
	"glovia/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// quotationServiceFixtures holds all test dependencies for quotation service tests.
type quotationServiceFixtures struct {
	service       usecase.QuotationUsecase
	quotationRepo *mockRepo.MockQuotationRepository
	productRepo   *mockRepo.MockProductRepository
	txManager     *mockRepo.MockTransactionManager
	notifier      *mockService.MockNotificationSender
	now           time.Time
}

func createTestQuotationService(t *testing.T) quotationServiceFixtures {
	quotationRepo := mockRepo.NewMockQuotationRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	notifier := mockService.NewMockNotificationSender(t)
	cfg := &config.Config{
		Quotation:    &config.QuotationConfig{ValidityDays: 14},
		Notification: &config.NotificationConfig{AdminPhone: "6281200000001"},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	service := NewQuotationService(quotationRepo, productRepo, txManager, notifier, cfg, logger)
	service.(*quotationService).now = func() time.Time { return now }

	return quotationServiceFixtures{
		service:       service,
		quotationRepo: quotationRepo,
		productRepo:   productRepo,
		txManager:     txManager,
		notifier:      notifier,
		now:           now,
	}
}

func draftQuotation(customerID uuid.UUID) *entity.Quotation {
	quotationID := uuid.New()

	return &entity.Quotation{
		ID:         quotationID,
		CustomerID: customerID,
		Status:     entity.QuotationDraft,
		Items: []entity.QuotationItem{
			{
				ID:          uuid.New(),
				QuotationID: quotationID,
				ProductID:   uuid.New(),
				ProductName: "Nitrile Gloves Grade A",
				SKU:         "GLV-NIT-A",
				Quantity:    50,
				UnitPrice:   9000,
				LineTotal:   450000,
			},
		},
		ShippingAddress: "Jl. Industri No. 7, Bekasi",
	}
}

func TestQuotationService_CreateQuotation_SnapshotsTierPrices(t *testing.T) {
	fx := createTestQuotationService(t)

	ctx := context.Background()
	customerID := uuid.New()
	product := gloveProduct()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, product.ID).
		Return(product, nil)

	fx.quotationRepo.EXPECT().
		CreateQuotation(ctx, mock.AnythingOfType("*entity.Quotation")).
		Return(nil)

	quotation, err := fx.service.CreateQuotation(ctx, customerID, usecase.CreateQuotationInput{
		ShippingAddress: "Jl. Industri No. 7, Bekasi",
		Items: []usecase.QuotationItemInput{
			{ProductID: product.ID, Quantity: 50},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.QuotationDraft, quotation.Status)
	assert.Equal(t, customerID, quotation.CustomerID)
	require.Len(t, quotation.Items, 1)
	assert.Equal(t, product.Name, quotation.Items[0].ProductName)
	assert.Equal(t, product.SKU, quotation.Items[0].SKU)
	assert.Equal(t, int64(9000), quotation.Items[0].UnitPrice)
	assert.Equal(t, int64(450000), quotation.Items[0].LineTotal)
	assert.Equal(t, int64(450000), quotation.Subtotal())
}

func TestQuotationService_CreateQuotation_InactiveProduct(t *testing.T) {
	fx := createTestQuotationService(t)

	ctx := context.Background()
	product := gloveProduct()
	product.IsActive = false

	fx.productRepo.EXPECT().
		FindProductByID(ctx, product.ID).
		Return(product, nil)

	_, err := fx.service.CreateQuotation(ctx, uuid.New(), usecase.CreateQuotationInput{
		ShippingAddress: "Jl. Industri No. 7, Bekasi",
		Items: []usecase.QuotationItemInput{
			{ProductID: product.ID, Quantity: 10},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestQuotationService_CreateQuotation_UnknownProduct(t *testing.T) {
	fx := createTestQuotationService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.CreateQuotation(ctx, uuid.New(), usecase.CreateQuotationInput{
		ShippingAddress: "Jl. Industri No. 7, Bekasi",
		Items: []usecase.QuotationItemInput{
			{ProductID: productID, Quantity: 10},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestQuotationService_UpdateItems_NonDraftRejected(t *testing.T) {
	fx := createTestQuotationService(t)

	ctx := context.Background()
	customerID := uuid.New()
	quotation := draftQuotation(customerID)
	quotation.Status = entity.QuotationSent

	fx.quotationRepo.EXPECT().
		FindQuotationByID(ctx, quotation.ID).
		Return(quotation, nil)

	_, err := fx.service.UpdateItems(ctx, customerID, quotation.ID, []usecase.QuotationItemInput{
		{ProductID: uuid.New(), Quantity: 5},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPreconditionFailed)
}

func TestQuotationService_GetCustomerQuotation_HidesOtherCustomers(t *testing.T) {
	fx := createTestQuotationService(t)

	ctx := context.Background()
	quotation := draftQuotation(uuid.New())

	fx.quotationRepo.EXPECT().
		FindQuotationByID(ctx, quotation.ID).
		Return(quotation, nil)

	_, err := fx.service.GetCustomerQuotation(ctx, uuid.New(), quotation.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrQuotationNotFound)
}

func TestQuotationService_Submit_StampsValidity(t *testing.T) {
	fx := createTestQuotationService(t)

	ctx := context.Background()
	customerID := uuid.New()
	quotation := draftQuotation(customerID)
	validUntil := fx.now.AddDate(0, 0, 14)

	fx.quotationRepo.EXPECT().
		FindQuotationByID(ctx, quotation.ID).
		Return(quotation, nil)

	fx.quotationRepo.EXPECT().
		UpdateQuotationStatus(ctx, quotation.ID, entity.QuotationDraft, entity.QuotationSent, &validUntil).
		Return(nil)

	fx.notifier.EXPECT().
		Send(ctx, entity.ChannelWhatsApp, "6281200000001", "quotation_submitted", mock.Anything).
		Return(nil)

	submitted, err := fx.service.Submit(ctx, customerID, quotation.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QuotationSent, submitted.Status)
	require.NotNil(t, submitted.ValidUntil)
	assert.Equal(t, validUntil, *submitted.ValidUntil)
}

func TestQuotationService_Submit_EmptyQuotation(t *testing.T) {
	fx := createTestQuotationService(t)

	ctx := context.Background()
	customerID := uuid.New()
	quotation := draftQuotation(customerID)
	quotation.Items = nil

	fx.quotationRepo.EXPECT().
		FindQuotationByID(ctx, quotation.ID).
		Return(quotation, nil)

	_, err := fx.service.Submit(ctx, customerID, quotation.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPreconditionFailed)
}

func TestQuotationService_Submit_AlreadySent(t *testing.T) {
	fx := createTestQuotationService(t)

	ctx := context.Background()
	customerID := uuid.New()
	quotation := draftQuotation(customerID)
	quotation.Status = entity.QuotationSent

	fx.quotationRepo.EXPECT().
		FindQuotationByID(ctx, quotation.ID).
		Return(quotation, nil)

	_, err := fx.service.Submit(ctx, customerID, quotation.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestQuotationService_Decide_Accepts(t *testing.T) {
	fx := createTestQuotationService(t)

	ctx := context.Background()
	actorID := uuid.New()
	quotation := draftQuotation(uuid.New())
	quotation.Status = entity.QuotationSent

	fx.quotationRepo.EXPECT().
		FindQuotationByID(ctx, quotation.ID).
		Return(quotation, nil)

	fx.quotationRepo.EXPECT().
		UpdateQuotationStatus(ctx, quotation.ID, entity.QuotationSent, entity.QuotationAccepted, (*time.Time)(nil)).
		Return(nil)

	decided, err := fx.service.Decide(ctx, quotation.ID, entity.QuotationAccepted, actorID)
	require.NoError(t, err)
	assert.Equal(t, entity.QuotationAccepted, decided.Status)
}

func TestQuotationService_Decide_InvalidTarget(t *testing.T) {
	fx := createTestQuotationService(t)

	_, err := fx.service.Decide(context.Background(), uuid.New(), entity.QuotationConverted, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestQuotationService_Decide_StatusConflict(t *testing.T) {
	fx := createTestQuotationService(t)

	ctx := context.Background()
	quotation := draftQuotation(uuid.New())
	quotation.Status = entity.QuotationSent

	fx.quotationRepo.EXPECT().
		FindQuotationByID(ctx, quotation.ID).
		Return(quotation, nil)

	fx.quotationRepo.EXPECT().
		UpdateQuotationStatus(ctx, quotation.ID, entity.QuotationSent, entity.QuotationRejected, (*time.Time)(nil)).
		Return(repository.ErrQuotationStatusConflict)

	_, err := fx.service.Decide(ctx, quotation.ID, entity.QuotationRejected, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestQuotationService_ConvertToOrder_Success(t *testing.T) {
	fx := createTestQuotationService(t)

	ctx := context.Background()
	customerID := uuid.New()
	quotation := draftQuotation(customerID)
	quotation.Status = entity.QuotationAccepted

	txQuotationRepo := mockRepo.NewMockQuotationRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewQuotationRepository().Return(txQuotationRepo)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	txQuotationRepo.EXPECT().
		FindQuotationByID(ctx, quotation.ID).
		Return(quotation, nil)

	var createdOrder *entity.Order
	txOrderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		RunAndReturn(func(_ context.Context, order *entity.Order) error {
			createdOrder = order

			return nil
		})

	txQuotationRepo.EXPECT().
		MarkConverted(ctx, quotation.ID, mock.AnythingOfType("uuid.UUID")).
		Return(nil)

	orderID, err := fx.service.ConvertToOrder(ctx, quotation.ID, uuid.New())
	require.NoError(t, err)
	require.NotNil(t, createdOrder)
	assert.Equal(t, createdOrder.ID, orderID)
	assert.Equal(t, customerID, createdOrder.CustomerID)
	assert.Equal(t, entity.OrderNew, createdOrder.Status)
	assert.Equal(t, quotation.ShippingAddress, createdOrder.ShippingAddress)
	require.Len(t, createdOrder.Items, 1)
	assert.Equal(t, quotation.Items[0].ProductID, createdOrder.Items[0].ProductID)
	assert.Equal(t, int64(9000), createdOrder.Items[0].UnitPrice)
	assert.Equal(t, int64(450000), createdOrder.Items[0].TotalPrice)
	assert.Equal(t, createdOrder.ID, createdOrder.Items[0].OrderID)
}

func TestQuotationService_ConvertToOrder_AlreadyConverted(t *testing.T) {
	fx := createTestQuotationService(t)

	ctx := context.Background()
	existingOrderID := uuid.New()
	quotation := draftQuotation(uuid.New())
	quotation.Status = entity.QuotationConverted
	quotation.ConvertedOrderID = &existingOrderID

	txQuotationRepo := mockRepo.NewMockQuotationRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewQuotationRepository().Return(txQuotationRepo)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	txQuotationRepo.EXPECT().
		FindQuotationByID(ctx, quotation.ID).
		Return(quotation, nil)

	_, err := fx.service.ConvertToOrder(ctx, quotation.ID, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyConverted)
}

func TestQuotationService_ConvertToOrder_NotAccepted(t *testing.T) {
	fx := createTestQuotationService(t)

	ctx := context.Background()
	quotation := draftQuotation(uuid.New())
	quotation.Status = entity.QuotationSent

	txQuotationRepo := mockRepo.NewMockQuotationRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewQuotationRepository().Return(txQuotationRepo)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	txQuotationRepo.EXPECT().
		FindQuotationByID(ctx, quotation.ID).
		Return(quotation, nil)

	_, err := fx.service.ConvertToOrder(ctx, quotation.ID, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestQuotationService_ConvertToOrder_LostRace(t *testing.T) {
	fx := createTestQuotationService(t)

	ctx := context.Background()
	quotation := draftQuotation(uuid.New())
	quotation.Status = entity.QuotationAccepted

	txQuotationRepo := mockRepo.NewMockQuotationRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewQuotationRepository().Return(txQuotationRepo)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	txQuotationRepo.EXPECT().
		FindQuotationByID(ctx, quotation.ID).
		Return(quotation, nil)

	txOrderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	txQuotationRepo.EXPECT().
		MarkConverted(ctx, quotation.ID, mock.AnythingOfType("uuid.UUID")).
		Return(repository.ErrQuotationConverted)

	_, err := fx.service.ConvertToOrder(ctx, quotation.ID, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyConverted)
}
