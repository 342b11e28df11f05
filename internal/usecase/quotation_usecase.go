package usecase

import (
	"context"

	"glovia/internal/domain/entity"

	"github.com/google/uuid"
)

// QuotationItemInput is one requested line of a quotation; the unit price is
// resolved server-side from the product's pricing tiers.
type QuotationItemInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gte=1"`
}

// CreateQuotationInput carries the fields for a new draft quotation.
type CreateQuotationInput struct {
	ShippingAddress string               `json:"shipping_address" validate:"required"`
	Notes           string               `json:"notes"`
	Items           []QuotationItemInput `json:"items" validate:"min=1,dive"`
}

// QuotationUsecase defines the quotation lifecycle: draft (cart), submission,
// decision and conversion into an order.
type QuotationUsecase interface {
	// CreateQuotation creates a DRAFT quotation with price snapshots.
	CreateQuotation(ctx context.Context, customerID uuid.UUID, input CreateQuotationInput) (*entity.Quotation, error)

	// UpdateItems replaces the item list of a customer's DRAFT quotation.
	UpdateItems(ctx context.Context, customerID, quotationID uuid.UUID, items []QuotationItemInput) (*entity.Quotation, error)

	// GetCustomerQuotation retrieves one quotation owned by the customer.
	GetCustomerQuotation(ctx context.Context, customerID, quotationID uuid.UUID) (*entity.Quotation, error)

	// ListCustomerQuotations retrieves all quotations of a customer, newest first.
	ListCustomerQuotations(ctx context.Context, customerID uuid.UUID) ([]*entity.Quotation, error)

	// Submit moves a customer's DRAFT quotation to SENT and stamps its validity window.
	Submit(ctx context.Context, customerID, quotationID uuid.UUID) (*entity.Quotation, error)

	// GetQuotation retrieves one quotation (admin).
	GetQuotation(ctx context.Context, quotationID uuid.UUID) (*entity.Quotation, error)

	// ListQuotations retrieves quotations, optionally filtered by status (admin).
	ListQuotations(ctx context.Context, status *entity.QuotationStatus) ([]*entity.Quotation, error)

	// Decide moves a quotation to ACCEPTED, REJECTED or EXPIRED (admin).
	Decide(ctx context.Context, quotationID uuid.UUID, target entity.QuotationStatus, actorID uuid.UUID) (*entity.Quotation, error)

	// ConvertToOrder materializes an order from an ACCEPTED quotation in one
	// atomic transaction and returns the new order ID. A second call for the
	// same quotation fails with ErrAlreadyConverted.
	ConvertToOrder(ctx context.Context, quotationID, actorID uuid.UUID) (uuid.UUID, error)
}
