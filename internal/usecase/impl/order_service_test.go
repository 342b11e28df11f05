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
	mockService "glovia/internal/mocks/service"
	"glovia/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service      usecase.OrderUsecase
	orderRepo    *mockRepo.MockOrderRepository
	customerRepo *mockRepo.MockCustomerRepository
	txManager    *mockRepo.MockTransactionManager
	notifier     *mockService.MockNotificationSender
	now          time.Time
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	notifier := mockService.NewMockNotificationSender(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	service := NewOrderService(orderRepo, customerRepo, txManager, notifier, logger)
	service.(*orderService).now = func() time.Time { return now }

	return orderServiceFixtures{
		service:      service,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		txManager:    txManager,
		notifier:     notifier,
		now:          now,
	}
}

func newOrder(customerID uuid.UUID) *entity.Order {
	orderID := uuid.New()

	return &entity.Order{
		ID:         orderID,
		CustomerID: customerID,
		Status:     entity.OrderNew,
		Items: []entity.OrderItem{
			{
				ID:          uuid.New(),
				OrderID:     orderID,
				ProductID:   uuid.New(),
				ProductName: "Nitrile Gloves Grade A",
				SKU:         "GLV-NIT-A",
				Quantity:    50,
				UnitPrice:   9000,
				TotalPrice:  450000,
			},
		},
		ShippingAddress: "Jl. Industri No. 7, Bekasi",
	}
}

// expectOrderTx routes the transaction callback to a dedicated order repository mock.
func expectOrderTx(t *testing.T, fx orderServiceFixtures, ctx context.Context) *mockRepo.MockOrderRepository {
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return txOrderRepo
}

func TestOrderService_GetCustomerOrder_HidesOtherCustomers(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := newOrder(uuid.New())

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	_, err := fx.service.GetCustomerOrder(ctx, uuid.New(), order.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListOrders_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	status := entity.OrderStatus("RETURNED")
	_, err := fx.service.ListOrders(context.Background(), &status)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestOrderService_UpdateStatus_ToProcessing(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	actorID := uuid.New()
	order := newOrder(uuid.New())
	txOrderRepo := expectOrderTx(t, fx, ctx)

	txOrderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	txOrderRepo.EXPECT().
		UpdateOrderStatus(ctx, mock.AnythingOfType("*entity.Order"), entity.OrderNew).
		Return(nil)

	var statusLog *entity.OrderStatusLog
	txOrderRepo.EXPECT().
		AppendStatusLog(ctx, mock.AnythingOfType("*entity.OrderStatusLog")).
		RunAndReturn(func(_ context.Context, log *entity.OrderStatusLog) error {
			statusLog = log

			return nil
		})

	updated, err := fx.service.UpdateStatus(ctx, order.ID, actorID, usecase.UpdateOrderStatusInput{
		Target: entity.OrderProcessing,
		Notes:  "stock picked",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderProcessing, updated.Status)
	require.NotNil(t, statusLog)
	assert.Equal(t, order.ID, statusLog.OrderID)
	assert.Equal(t, entity.OrderNew, statusLog.FromStatus)
	assert.Equal(t, entity.OrderProcessing, statusLog.ToStatus)
	assert.Equal(t, "stock picked", statusLog.Notes)
	assert.Equal(t, actorID, statusLog.ActorID)
}

func TestOrderService_UpdateStatus_ShippedRequiresTracking(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := newOrder(uuid.New())
	order.Status = entity.OrderProcessing
	txOrderRepo := expectOrderTx(t, fx, ctx)

	txOrderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	_, err := fx.service.UpdateStatus(ctx, order.ID, uuid.New(), usecase.UpdateOrderStatusInput{
		Target: entity.OrderShipped,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPreconditionFailed)
}

func TestOrderService_UpdateStatus_ShippedNotifiesCustomer(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customer := &entity.Customer{
		ID:    uuid.New(),
		Name:  "Budi Santoso",
		Phone: "+6281234567890",
	}
	order := newOrder(customer.ID)
	order.Status = entity.OrderProcessing
	txOrderRepo := expectOrderTx(t, fx, ctx)

	txOrderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	txOrderRepo.EXPECT().
		UpdateOrderStatus(ctx, mock.AnythingOfType("*entity.Order"), entity.OrderProcessing).
		Return(nil)

	txOrderRepo.EXPECT().
		AppendStatusLog(ctx, mock.AnythingOfType("*entity.OrderStatusLog")).
		Return(nil)

	fx.customerRepo.EXPECT().
		FindCustomerByID(ctx, customer.ID).
		Return(customer, nil)

	fx.notifier.EXPECT().
		Send(ctx, entity.ChannelWhatsApp, customer.Phone, "order_shipped", map[string]string{
			"customer_name":   customer.Name,
			"tracking_number": "JNE-1234567890",
		}).
		Return(nil)

	updated, err := fx.service.UpdateStatus(ctx, order.ID, uuid.New(), usecase.UpdateOrderStatusInput{
		Target:         entity.OrderShipped,
		TrackingNumber: "JNE-1234567890",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderShipped, updated.Status)
	assert.Equal(t, "JNE-1234567890", updated.TrackingNumber)
	require.NotNil(t, updated.ShippedAt)
	assert.Equal(t, fx.now, *updated.ShippedAt)
}

func TestOrderService_UpdateStatus_DeliveredStampsTimestamp(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := newOrder(uuid.New())
	order.Status = entity.OrderShipped
	order.TrackingNumber = "JNE-1234567890"
	txOrderRepo := expectOrderTx(t, fx, ctx)

	txOrderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	txOrderRepo.EXPECT().
		UpdateOrderStatus(ctx, mock.AnythingOfType("*entity.Order"), entity.OrderShipped).
		Return(nil)

	txOrderRepo.EXPECT().
		AppendStatusLog(ctx, mock.AnythingOfType("*entity.OrderStatusLog")).
		Return(nil)

	updated, err := fx.service.UpdateStatus(ctx, order.ID, uuid.New(), usecase.UpdateOrderStatusInput{
		Target: entity.OrderDelivered,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.DeliveredAt)
	assert.Equal(t, fx.now, *updated.DeliveredAt)
}

func TestOrderService_UpdateStatus_InvalidTransition(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := newOrder(uuid.New())
	txOrderRepo := expectOrderTx(t, fx, ctx)

	txOrderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	_, err := fx.service.UpdateStatus(ctx, order.ID, uuid.New(), usecase.UpdateOrderStatusInput{
		Target: entity.OrderDelivered,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestOrderService_UpdateStatus_UnknownTarget(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.UpdateStatus(context.Background(), uuid.New(), uuid.New(), usecase.UpdateOrderStatusInput{
		Target: entity.OrderStatus("RETURNED"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestOrderService_UpdateStatus_LostRace(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := newOrder(uuid.New())
	txOrderRepo := expectOrderTx(t, fx, ctx)

	txOrderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	txOrderRepo.EXPECT().
		UpdateOrderStatus(ctx, mock.AnythingOfType("*entity.Order"), entity.OrderNew).
		Return(repository.ErrOrderStatusConflict)

	_, err := fx.service.UpdateStatus(ctx, order.ID, uuid.New(), usecase.UpdateOrderStatusInput{
		Target: entity.OrderCancelled,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestOrderService_GetStatusLog_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := newOrder(uuid.New())
	logs := []*entity.OrderStatusLog{
		{ID: uuid.New(), OrderID: order.ID, FromStatus: entity.OrderNew, ToStatus: entity.OrderProcessing},
	}

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	fx.orderRepo.EXPECT().
		FindStatusLogs(ctx, order.ID).
		Return(logs, nil)

	got, err := fx.service.GetStatusLog(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, logs, got)
}

func TestOrderService_GetStatusLog_OrderNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.GetStatusLog(ctx, orderID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
