package repository

import (
	"context"
	"time"

	"glovia/internal/domain/entity"
	"glovia/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for quotation persistence.
var (
	// ErrQuotationNotFound is returned when a quotation is not found.
	ErrQuotationNotFound = errors.New("quotation not found")
	// ErrQuotationStatusConflict is returned when a guarded status update
	// matched no row because the stored status differs from the expected one.
	ErrQuotationStatusConflict = errors.New("quotation status changed concurrently")
	// ErrQuotationConverted is returned when marking a quotation converted
	// that has already been converted.
	ErrQuotationConverted = errors.New("quotation already converted")
)

// QuotationRepository defines the interface for quotation-related database operations.
type QuotationRepository interface {
	// CreateQuotation persists a new quotation with its items.
	CreateQuotation(ctx context.Context, quotation *entity.Quotation) error

	// FindQuotationByID retrieves a quotation with its items.
	FindQuotationByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)

	// FindQuotationsByCustomer retrieves all quotations for a customer, newest first.
	FindQuotationsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Quotation, error)

	// ListQuotations retrieves quotations, optionally filtered by status, newest first.
	ListQuotations(ctx context.Context, status *entity.QuotationStatus) ([]*entity.Quotation, error)

	// ReplaceItems replaces the full item list of a quotation.
	ReplaceItems(ctx context.Context, quotationID uuid.UUID, items []entity.QuotationItem) error

	// UpdateQuotationStatus moves a quotation from one status to another, guarded
	// by the expected current status. ValidUntil is set when non-nil. Returns
	// ErrQuotationStatusConflict when the stored status no longer matches.
	UpdateQuotationStatus(ctx context.Context, id uuid.UUID, from, to entity.QuotationStatus, validUntil *time.Time) error

	// MarkConverted atomically flips an ACCEPTED, unconverted quotation to
	// CONVERTED and links the created order. Returns ErrQuotationConverted
	// when the quotation was already converted.
	MarkConverted(ctx context.Context, id, orderID uuid.UUID) error
}
