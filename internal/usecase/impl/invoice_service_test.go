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

// invoiceServiceFixtures holds all test dependencies for invoice service tests.
type invoiceServiceFixtures struct {
	service      usecase.InvoiceUsecase
	invoiceRepo  *mockRepo.MockInvoiceRepository
	orderRepo    *mockRepo.MockOrderRepository
	customerRepo *mockRepo.MockCustomerRepository
	txManager    *mockRepo.MockTransactionManager
	qrcodeSvc    *mockService.MockQRCodeService
	notifier     *mockService.MockNotificationSender
	now          time.Time
}

func createTestInvoiceService(t *testing.T) invoiceServiceFixtures {
	invoiceRepo := mockRepo.NewMockInvoiceRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	qrcodeSvc := mockService.NewMockQRCodeService(t)
	notifier := mockService.NewMockNotificationSender(t)
	cfg := &config.Config{
		Tax:     &config.TaxConfig{PPNRate: 0.11},
		Invoice: &config.InvoiceConfig{NumberPrefix: "INV", DueDays: 14},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	service := NewInvoiceService(invoiceRepo, orderRepo, customerRepo, txManager, qrcodeSvc, notifier, cfg, logger)
	service.(*invoiceService).now = func() time.Time { return now }

	return invoiceServiceFixtures{
		service:      service,
		invoiceRepo:  invoiceRepo,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		txManager:    txManager,
		qrcodeSvc:    qrcodeSvc,
		notifier:     notifier,
		now:          now,
	}
}

func pendingInvoice(orderID uuid.UUID) *entity.Invoice {
	return &entity.Invoice{
		ID:            uuid.New(),
		OrderID:       orderID,
		InvoiceNumber: "INV-2026-000007",
		Status:        entity.InvoicePending,
		Subtotal:      450000,
		TaxAmount:     49500,
		TotalAmount:   499500,
		DueDate:       time.Date(2026, time.March, 29, 0, 0, 0, 0, time.UTC),
	}
}

// expectInvoiceTx routes the transaction callback to dedicated invoice and order repository mocks.
func expectInvoiceTx(t *testing.T, fx invoiceServiceFixtures, ctx context.Context) (*mockRepo.MockInvoiceRepository, *mockRepo.MockOrderRepository) {
	txInvoiceRepo := mockRepo.NewMockInvoiceRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewInvoiceRepository().Return(txInvoiceRepo)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return txInvoiceRepo, txOrderRepo
}

func TestInvoiceService_Generate_Success(t *testing.T) {
	fx := createTestInvoiceService(t)

	ctx := context.Background()
	customer := &entity.Customer{
		ID:    uuid.New(),
		Name:  "Budi Santoso",
		Phone: "+6281234567890",
	}
	order := newOrder(customer.ID)
	txInvoiceRepo, txOrderRepo := expectInvoiceTx(t, fx, ctx)

	txOrderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	txInvoiceRepo.EXPECT().
		FindInvoiceByOrder(ctx, order.ID).
		Return(nil, repository.ErrInvoiceNotFound)

	txInvoiceRepo.EXPECT().
		NextInvoiceSequence(ctx, 2026).
		Return(int64(1), nil)

	txInvoiceRepo.EXPECT().
		CreateInvoice(ctx, mock.AnythingOfType("*entity.Invoice")).
		Return(nil)

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	fx.customerRepo.EXPECT().
		FindCustomerByID(ctx, customer.ID).
		Return(customer, nil)

	fx.notifier.EXPECT().
		Send(ctx, entity.ChannelWhatsApp, customer.Phone, "invoice_issued", mock.Anything).
		Return(nil)

	invoice, err := fx.service.Generate(ctx, order.ID, time.Time{}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-000001", invoice.InvoiceNumber)
	assert.Equal(t, entity.InvoicePending, invoice.Status)
	assert.Equal(t, int64(450000), invoice.Subtotal)
	assert.Equal(t, int64(49500), invoice.TaxAmount)
	assert.Equal(t, int64(499500), invoice.TotalAmount)
	assert.Equal(t, fx.now.AddDate(0, 0, 14), invoice.DueDate)
	require.Len(t, invoice.Items, 1)
	assert.Equal(t, invoice.ID, invoice.Items[0].InvoiceID)
	assert.Equal(t, order.Items[0].ProductName, invoice.Items[0].ProductName)
	assert.Equal(t, int64(450000), invoice.Items[0].TotalPrice)
}

func TestInvoiceService_Generate_PastDueDate(t *testing.T) {
	fx := createTestInvoiceService(t)

	dueDate := time.Date(2026, time.March, 14, 23, 59, 0, 0, time.UTC)
	_, err := fx.service.Generate(context.Background(), uuid.New(), dueDate, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestInvoiceService_Generate_AlreadyInvoiced(t *testing.T) {
	fx := createTestInvoiceService(t)

	ctx := context.Background()
	order := newOrder(uuid.New())
	txInvoiceRepo, txOrderRepo := expectInvoiceTx(t, fx, ctx)

	txOrderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	txInvoiceRepo.EXPECT().
		FindInvoiceByOrder(ctx, order.ID).
		Return(pendingInvoice(order.ID), nil)

	_, err := fx.service.Generate(ctx, order.ID, time.Time{}, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyInvoiced)
}

func TestInvoiceService_Generate_OrderNotFound(t *testing.T) {
	fx := createTestInvoiceService(t)

	ctx := context.Background()
	orderID := uuid.New()
	_, txOrderRepo := expectInvoiceTx(t, fx, ctx)

	txOrderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.Generate(ctx, orderID, time.Time{}, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestInvoiceService_MarkPaid_Success(t *testing.T) {
	fx := createTestInvoiceService(t)

	ctx := context.Background()
	invoice := pendingInvoice(uuid.New())

	fx.invoiceRepo.EXPECT().
		FindInvoiceByID(ctx, invoice.ID).
		Return(invoice, nil)

	fx.invoiceRepo.EXPECT().
		UpdateInvoiceStatus(ctx, invoice.ID, entity.InvoicePending, entity.InvoicePaid, &fx.now, "bank_transfer", "BCA ref 981").
		Return(nil)

	paid, err := fx.service.MarkPaid(ctx, invoice.ID, uuid.New(), usecase.MarkPaidInput{
		PaymentMethod: "bank_transfer",
		Notes:         "BCA ref 981",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.InvoicePaid, paid.Status)
	require.NotNil(t, paid.PaidAt)
	assert.Equal(t, fx.now, *paid.PaidAt)
	assert.Equal(t, "bank_transfer", paid.PaymentMethod)
}

func TestInvoiceService_MarkPaid_AlreadyPaid(t *testing.T) {
	fx := createTestInvoiceService(t)

	ctx := context.Background()
	invoice := pendingInvoice(uuid.New())
	invoice.Status = entity.InvoicePaid

	fx.invoiceRepo.EXPECT().
		FindInvoiceByID(ctx, invoice.ID).
		Return(invoice, nil)

	_, err := fx.service.MarkPaid(ctx, invoice.ID, uuid.New(), usecase.MarkPaidInput{PaymentMethod: "cash"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyPaid)
}

func TestInvoiceService_Cancel_AlreadyCancelled(t *testing.T) {
	fx := createTestInvoiceService(t)

	ctx := context.Background()
	invoice := pendingInvoice(uuid.New())
	invoice.Status = entity.InvoiceCancelled

	fx.invoiceRepo.EXPECT().
		FindInvoiceByID(ctx, invoice.ID).
		Return(invoice, nil)

	_, err := fx.service.Cancel(ctx, invoice.ID, uuid.New(), "duplicate")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvoiceCancelled)
}

func TestInvoiceService_Cancel_Success(t *testing.T) {
	fx := createTestInvoiceService(t)

	ctx := context.Background()
	invoice := pendingInvoice(uuid.New())

	fx.invoiceRepo.EXPECT().
		FindInvoiceByID(ctx, invoice.ID).
		Return(invoice, nil)

	fx.invoiceRepo.EXPECT().
		UpdateInvoiceStatus(ctx, invoice.ID, entity.InvoicePending, entity.InvoiceCancelled, (*time.Time)(nil), "", "wrong amount").
		Return(nil)

	cancelled, err := fx.service.Cancel(ctx, invoice.ID, uuid.New(), "wrong amount")
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceCancelled, cancelled.Status)
	assert.Equal(t, "wrong amount", cancelled.PaymentNotes)
}

func TestInvoiceService_IssueTaxInvoice_Success(t *testing.T) {
	fx := createTestInvoiceService(t)

	ctx := context.Background()
	customer := &entity.Customer{
		ID:   uuid.New(),
		Name: "Siti Rahma",
		Type: entity.CustomerB2B,
		Company: &entity.Company{
			Name:  "PT Maju Jaya",
			TaxID: "01.234.567.8-901.000",
		},
	}
	order := newOrder(customer.ID)
	invoice := pendingInvoice(order.ID)
	actorID := uuid.New()

	fx.invoiceRepo.EXPECT().
		FindInvoiceByID(ctx, invoice.ID).
		Return(invoice, nil)

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	fx.customerRepo.EXPECT().
		FindCustomerByID(ctx, customer.ID).
		Return(customer, nil)

	fx.invoiceRepo.EXPECT().
		CreateTaxInvoice(ctx, mock.AnythingOfType("*entity.TaxInvoice")).
		Return(nil)

	taxInvoice, err := fx.service.IssueTaxInvoice(ctx, invoice.ID, actorID)
	require.NoError(t, err)
	assert.Equal(t, invoice.ID, taxInvoice.InvoiceID)
	assert.Equal(t, "PT Maju Jaya", taxInvoice.CompanyName)
	assert.Equal(t, "01.234.567.8-901.000", taxInvoice.CompanyTaxID)
	assert.Equal(t, 0.11, taxInvoice.PPNRate)
	assert.Equal(t, int64(49500), taxInvoice.PPNAmount)
	assert.Equal(t, int64(499500), taxInvoice.TotalWithPPN)
	assert.Equal(t, actorID, taxInvoice.IssuedBy)
}

func TestInvoiceService_IssueTaxInvoice_B2CRejected(t *testing.T) {
	fx := createTestInvoiceService(t)

	ctx := context.Background()
	customer := &entity.Customer{
		ID:   uuid.New(),
		Name: "Budi Santoso",
		Type: entity.CustomerB2C,
	}
	order := newOrder(customer.ID)
	invoice := pendingInvoice(order.ID)

	fx.invoiceRepo.EXPECT().
		FindInvoiceByID(ctx, invoice.ID).
		Return(invoice, nil)

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	fx.customerRepo.EXPECT().
		FindCustomerByID(ctx, customer.ID).
		Return(customer, nil)

	_, err := fx.service.IssueTaxInvoice(ctx, invoice.ID, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTaxInvoiceNotAllowed)
}

func TestInvoiceService_IssueTaxInvoice_Duplicate(t *testing.T) {
	fx := createTestInvoiceService(t)

	ctx := context.Background()
	customer := &entity.Customer{
		ID:   uuid.New(),
		Type: entity.CustomerB2B,
		Company: &entity.Company{
			Name:  "PT Maju Jaya",
			TaxID: "01.234.567.8-901.000",
		},
	}
	order := newOrder(customer.ID)
	invoice := pendingInvoice(order.ID)

	fx.invoiceRepo.EXPECT().
		FindInvoiceByID(ctx, invoice.ID).
		Return(invoice, nil)

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	fx.customerRepo.EXPECT().
		FindCustomerByID(ctx, customer.ID).
		Return(customer, nil)

	fx.invoiceRepo.EXPECT().
		CreateTaxInvoice(ctx, mock.AnythingOfType("*entity.TaxInvoice")).
		Return(repository.ErrTaxInvoiceExists)

	_, err := fx.service.IssueTaxInvoice(ctx, invoice.ID, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTaxInvoiceExists)
}

func TestInvoiceService_PaymentQR_Success(t *testing.T) {
	fx := createTestInvoiceService(t)

	ctx := context.Background()
	invoice := pendingInvoice(uuid.New())
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.invoiceRepo.EXPECT().
		FindInvoiceByID(ctx, invoice.ID).
		Return(invoice, nil)

	fx.qrcodeSvc.EXPECT().
		GeneratePaymentQR(invoice.InvoiceNumber, invoice.TotalAmount).
		Return(png, nil)

	got, err := fx.service.PaymentQR(ctx, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestInvoiceService_PaymentQR_NotPending(t *testing.T) {
	fx := createTestInvoiceService(t)

	ctx := context.Background()
	invoice := pendingInvoice(uuid.New())
	invoice.Status = entity.InvoicePaid

	fx.invoiceRepo.EXPECT().
		FindInvoiceByID(ctx, invoice.ID).
		Return(invoice, nil)

	_, err := fx.service.PaymentQR(ctx, invoice.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPreconditionFailed)
}

func TestPPNAmount(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		want     int64
	}{
		{"worked scenario", 450000, 49500},
		{"rounds half up", 50, 6},
		{"rounds fraction up", 5, 1},
		{"rounds fraction down", 4, 0},
		{"zero subtotal", 0, 0},
		{"beyond float53 precision", 9007199254740993, 990791918021509},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ppnAmount(tt.subtotal, 0.11))
		})
	}
}

func TestInvoiceService_ListInvoices_UnknownStatus(t *testing.T) {
	fx := createTestInvoiceService(t)

	status := entity.InvoiceStatus("OVERDUE")
	_, err := fx.service.ListInvoices(context.Background(), &status)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}
