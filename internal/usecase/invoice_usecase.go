package usecase

import (
	"context"
	"time"

	"glovia/internal/domain/entity"

	"github.com/google/uuid"
)

// MarkPaidInput carries the payment details recorded on an invoice.
type MarkPaidInput struct {
	PaymentMethod string `json:"payment_method" validate:"required"`
	Notes         string `json:"notes"`
}

// InvoiceUsecase defines invoice generation, payment and PPN tax invoicing.
type InvoiceUsecase interface {
	// Generate creates the invoice for an order in one atomic transaction:
	// sequential number, amount snapshot with PPN, one item per order line.
	// A second call for the same order fails with ErrAlreadyInvoiced.
	Generate(ctx context.Context, orderID uuid.UUID, dueDate time.Time, actorID uuid.UUID) (*entity.Invoice, error)

	// GetInvoice retrieves one invoice with its items.
	GetInvoice(ctx context.Context, invoiceID uuid.UUID) (*entity.Invoice, error)

	// GetInvoiceByOrder retrieves the invoice of an order.
	GetInvoiceByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Invoice, error)

	// ListInvoices retrieves invoices, optionally filtered by status.
	ListInvoices(ctx context.Context, status *entity.InvoiceStatus) ([]*entity.Invoice, error)

	// MarkPaid settles a PENDING invoice, stamping PaidAt and the payment
	// method. Fails with ErrAlreadyPaid or ErrInvoiceCancelled otherwise.
	MarkPaid(ctx context.Context, invoiceID uuid.UUID, actorID uuid.UUID, input MarkPaidInput) (*entity.Invoice, error)

	// Cancel voids a PENDING invoice.
	Cancel(ctx context.Context, invoiceID uuid.UUID, actorID uuid.UUID, notes string) (*entity.Invoice, error)

	// IssueTaxInvoice issues the PPN tax invoice for a B2B customer's invoice,
	// at most once per invoice.
	IssueTaxInvoice(ctx context.Context, invoiceID, actorID uuid.UUID) (*entity.TaxInvoice, error)

	// PaymentQR returns a PNG QR code with the payment payload of a PENDING invoice.
	PaymentQR(ctx context.Context, invoiceID uuid.UUID) ([]byte, error)
}
