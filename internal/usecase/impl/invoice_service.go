package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"glovia/config"
	"glovia/internal/domain/entity"
	domainerrors "glovia/internal/domain/errors"
	"glovia/internal/domain/repository"
	"glovia/internal/domain/service"
	"glovia/internal/usecase"
	"glovia/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type invoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	txManager    repository.TransactionManager
	qrcodeSvc    service.QRCodeService
	notifier     service.NotificationSender
	cfg          *config.Config
	logger       *slog.Logger
	now          func() time.Time
}

// NewInvoiceService creates a new invoice service instance
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	txManager repository.TransactionManager,
	qrcodeSvc service.QRCodeService,
	notifier service.NotificationSender,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.InvoiceUsecase {
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		txManager:    txManager,
		qrcodeSvc:    qrcodeSvc,
		notifier:     notifier,
		cfg:          cfg,
		logger:       logger,
		now:          time.Now,
	}
}

// Generate creates the invoice for an order in one atomic transaction.
func (s *invoiceService) Generate(ctx context.Context, orderID uuid.UUID, dueDate time.Time, actorID uuid.UUID) (*entity.Invoice, error) {
	now := s.now()
	if dueDate.IsZero() {
		dueDate = now.AddDate(0, 0, s.cfg.Invoice.DueDays)
	}
	if startOfDay(dueDate).Before(startOfDay(now)) {
		return nil, domainerrors.ErrValidation.WithDetails("due date must be today or later")
	}

	var invoice *entity.Invoice

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		invoiceRepo := repoFactory.NewInvoiceRepository()
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindOrderByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order by ID")
		}

		if _, err := invoiceRepo.FindInvoiceByOrder(ctx, orderID); err == nil {
			return domainerrors.ErrAlreadyInvoiced
		} else if !errors.Is(err, repository.ErrInvoiceNotFound) {
			return errors.Wrap(err, "failed to check existing invoice")
		}

		// Per-year atomic sequence keeps numbers unique and monotonic even
		// under concurrent generation.
		sequence, err := invoiceRepo.NextInvoiceSequence(ctx, now.Year())
		if err != nil {
			return errors.Wrap(err, "failed to advance invoice sequence")
		}

		subtotal := order.Subtotal()
		taxAmount := ppnAmount(subtotal, s.cfg.Tax.PPNRate)

		created := &entity.Invoice{
			ID:            uuid.New(),
			OrderID:       order.ID,
			InvoiceNumber: fmt.Sprintf("%s-%d-%06d", s.cfg.Invoice.NumberPrefix, now.Year(), sequence),
			Status:        entity.InvoicePending,
			Subtotal:      subtotal,
			TaxAmount:     taxAmount,
			TotalAmount:   subtotal + taxAmount,
			DueDate:       dueDate,
			Items:         invoiceItemsFromOrder(order.Items),
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		for i := range created.Items {
			created.Items[i].InvoiceID = created.ID
		}

		if err := invoiceRepo.CreateInvoice(ctx, created); err != nil {
			if errors.Is(err, repository.ErrOrderAlreadyInvoiced) {
				return domainerrors.ErrAlreadyInvoiced
			}

			return errors.Wrap(err, "failed to create invoice")
		}

		invoice = created

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("invoice generated",
		slog.String("invoiceNumber", invoice.InvoiceNumber),
		slog.String("orderID", orderID.String()),
		slog.String("actorID", actorID.String()))

	s.notifyGenerated(ctx, invoice)

	return invoice, nil
}

// GetInvoice retrieves one invoice with its items
func (s *invoiceService) GetInvoice(ctx context.Context, invoiceID uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			return nil, domainerrors.ErrInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find invoice by ID")
	}

	return invoice, nil
}

// GetInvoiceByOrder retrieves the invoice of an order
func (s *invoiceService) GetInvoiceByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			return nil, domainerrors.ErrInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find invoice by order")
	}

	return invoice, nil
}

// ListInvoices retrieves invoices, optionally filtered by status
func (s *invoiceService) ListInvoices(ctx context.Context, status *entity.InvoiceStatus) ([]*entity.Invoice, error) {
	if status != nil && !status.Valid() {
		return nil, domainerrors.ErrValidation.WithDetails("unknown invoice status")
	}

	invoices, err := s.invoiceRepo.ListInvoices(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list invoices")
	}

	return invoices, nil
}

// MarkPaid settles a PENDING invoice
func (s *invoiceService) MarkPaid(ctx context.Context, invoiceID uuid.UUID, actorID uuid.UUID, input usecase.MarkPaidInput) (*entity.Invoice, error) {
	invoice, err := s.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	switch invoice.Status {
	case entity.InvoicePaid:
		return nil, domainerrors.ErrAlreadyPaid
	case entity.InvoiceCancelled:
		return nil, domainerrors.ErrInvoiceCancelled
	}

	paidAt := s.now()
	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, invoiceID, entity.InvoicePending, entity.InvoicePaid, &paidAt, input.PaymentMethod, input.Notes); err != nil {
		if errors.Is(err, repository.ErrInvoiceStatusConflict) {
			return nil, domainerrors.ErrInvalidTransition
		}

		return nil, errors.Wrap(err, "failed to mark invoice paid")
	}

	s.logger.Info("invoice paid",
		slog.String("invoiceNumber", invoice.InvoiceNumber),
		slog.String("paymentMethod", input.PaymentMethod),
		slog.String("actorID", actorID.String()))

	invoice.Status = entity.InvoicePaid
	invoice.PaidAt = &paidAt
	invoice.PaymentMethod = input.PaymentMethod
	invoice.PaymentNotes = input.Notes
	invoice.UpdatedAt = paidAt

	return invoice, nil
}

// Cancel voids a PENDING invoice
func (s *invoiceService) Cancel(ctx context.Context, invoiceID uuid.UUID, actorID uuid.UUID, notes string) (*entity.Invoice, error) {
	invoice, err := s.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	switch invoice.Status {
	case entity.InvoicePaid:
		return nil, domainerrors.ErrAlreadyPaid
	case entity.InvoiceCancelled:
		return nil, domainerrors.ErrInvoiceCancelled
	}

	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, invoiceID, entity.InvoicePending, entity.InvoiceCancelled, nil, "", notes); err != nil {
		if errors.Is(err, repository.ErrInvoiceStatusConflict) {
			return nil, domainerrors.ErrInvalidTransition
		}

		return nil, errors.Wrap(err, "failed to cancel invoice")
	}

	invoice.Status = entity.InvoiceCancelled
	invoice.PaymentNotes = notes
	invoice.UpdatedAt = s.now()

	return invoice, nil
}

// IssueTaxInvoice issues the PPN tax invoice for a B2B customer's invoice
func (s *invoiceService) IssueTaxInvoice(ctx context.Context, invoiceID, actorID uuid.UUID) (*entity.TaxInvoice, error) {
	invoice, err := s.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindOrderByID(ctx, invoice.OrderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, order.CustomerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	if !customer.CanReceiveTaxInvoice() {
		return nil, domainerrors.ErrTaxInvoiceNotAllowed
	}

	taxInvoice := &entity.TaxInvoice{
		ID:           uuid.New(),
		InvoiceID:    invoice.ID,
		CompanyName:  customer.Company.Name,
		CompanyTaxID: customer.Company.TaxID,
		PPNRate:      s.cfg.Tax.PPNRate,
		PPNAmount:    invoice.TaxAmount,
		TotalWithPPN: invoice.TotalAmount,
		IssuedAt:     s.now(),
		IssuedBy:     actorID,
	}

	if err := s.invoiceRepo.CreateTaxInvoice(ctx, taxInvoice); err != nil {
		if errors.Is(err, repository.ErrTaxInvoiceExists) {
			return nil, domainerrors.ErrTaxInvoiceExists
		}

		return nil, errors.Wrap(err, "failed to create tax invoice")
	}

	return taxInvoice, nil
}

// PaymentQR returns a PNG QR code with the payment payload of a PENDING invoice
func (s *invoiceService) PaymentQR(ctx context.Context, invoiceID uuid.UUID) ([]byte, error) {
	invoice, err := s.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if invoice.Status != entity.InvoicePending {
		return nil, domainerrors.ErrPreconditionFailed.WithDetails("payment QR is only available for PENDING invoices")
	}

	qrCode, err := s.qrcodeSvc.GeneratePaymentQR(invoice.InvoiceNumber, invoice.TotalAmount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate payment QR")
	}

	return qrCode, nil
}

// notifyGenerated sends payment instructions to the billed customer.
// Fire-and-forget: failures are logged, the committed invoice stands.
func (s *invoiceService) notifyGenerated(ctx context.Context, invoice *entity.Invoice) {
	order, err := s.orderRepo.FindOrderByID(ctx, invoice.OrderID)
	if err != nil {
		s.logger.Warn("skipping invoice notification, order lookup failed",
			slog.String("invoiceNumber", invoice.InvoiceNumber),
			slog.Any("error", err))

		return
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, order.CustomerID)
	if err != nil {
		s.logger.Warn("skipping invoice notification, customer lookup failed",
			slog.String("invoiceNumber", invoice.InvoiceNumber),
			slog.Any("error", err))

		return
	}

	params := map[string]string{
		"customer_name":  customer.Name,
		"invoice_number": invoice.InvoiceNumber,
		"total_amount":   util.FormatRupiah(invoice.TotalAmount),
		"due_date":       util.FormatDate(invoice.DueDate, util.LocaleIndonesian),
	}
	if err := s.notifier.Send(ctx, entity.ChannelWhatsApp, customer.Phone, "invoice_issued", params); err != nil {
		s.logger.Warn("failed to send invoice notification",
			slog.String("invoiceNumber", invoice.InvoiceNumber),
			slog.Any("error", err))
	}
}

// ppnAmount computes the tax in minor units with half-up rounding. The rate
// is converted to basis points once so the multiplication stays integral and
// exact at any subtotal.
func ppnAmount(subtotal int64, rate float64) int64 {
	basisPoints := int64(math.Round(rate * 10000))
	quotient, remainder := subtotal/10000, subtotal%10000

	return quotient*basisPoints + (remainder*basisPoints+5000)/10000
}

func invoiceItemsFromOrder(items []entity.OrderItem) []entity.InvoiceItem {
	invoiceItems := make([]entity.InvoiceItem, 0, len(items))
	for _, item := range items {
		invoiceItems = append(invoiceItems, entity.InvoiceItem{
			ID:          uuid.New(),
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	return invoiceItems
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
