package repository

import (
	"context"
	"time"

	"glovia/internal/domain/entity"
	"glovia/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for invoice persistence.
var (
	// ErrInvoiceNotFound is returned when an invoice is not found.
	ErrInvoiceNotFound = errors.New("invoice not found")
	// ErrOrderAlreadyInvoiced is returned when creating a second invoice for an order.
	ErrOrderAlreadyInvoiced = errors.New("order already has an invoice")
	// ErrInvoiceStatusConflict is returned when a guarded status update matched
	// no row because the stored status differs from the expected one.
	ErrInvoiceStatusConflict = errors.New("invoice status changed concurrently")
	// ErrTaxInvoiceExists is returned when a tax invoice was already issued for an invoice.
	ErrTaxInvoiceExists = errors.New("tax invoice already issued")
	// ErrTaxInvoiceNotFound is returned when a tax invoice is not found.
	ErrTaxInvoiceNotFound = errors.New("tax invoice not found")
)

// InvoiceRepository defines the interface for invoice-related database operations.
type InvoiceRepository interface {
	// CreateInvoice persists a new invoice with its items. Returns
	// ErrOrderAlreadyInvoiced when the order already has one.
	CreateInvoice(ctx context.Context, invoice *entity.Invoice) error

	// FindInvoiceByID retrieves an invoice with its items.
	FindInvoiceByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)

	// FindInvoiceByOrder retrieves the invoice of an order, if any.
	FindInvoiceByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Invoice, error)

	// ListInvoices retrieves invoices, optionally filtered by status, newest first.
	ListInvoices(ctx context.Context, status *entity.InvoiceStatus) ([]*entity.Invoice, error)

	// NextInvoiceSequence atomically increments and returns the per-year
	// invoice counter used to build sequential invoice numbers.
	NextInvoiceSequence(ctx context.Context, year int) (int64, error)

	// UpdateInvoiceStatus moves an invoice from one status to another, guarded
	// by the expected current status, recording payment fields when provided.
	// Returns ErrInvoiceStatusConflict when the stored status no longer matches.
	UpdateInvoiceStatus(ctx context.Context, id uuid.UUID, from, to entity.InvoiceStatus, paidAt *time.Time, paymentMethod, paymentNotes string) error

	// CreateTaxInvoice persists the PPN tax invoice for an invoice. Returns
	// ErrTaxInvoiceExists when one was already issued.
	CreateTaxInvoice(ctx context.Context, taxInvoice *entity.TaxInvoice) error

	// FindTaxInvoiceByInvoice retrieves the tax invoice of an invoice, if any.
	FindTaxInvoiceByInvoice(ctx context.Context, invoiceID uuid.UUID) (*entity.TaxInvoice, error)
}
