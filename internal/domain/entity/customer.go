package entity

import (
	"time"

	"github.com/google/uuid"
)

// CustomerType separates retail buyers from business accounts.
type CustomerType string

const (
	CustomerB2C CustomerType = "B2C"
	CustomerB2B CustomerType = "B2B"
)

// Company holds the legal identity of a B2B customer. TaxID is the
// Indonesian NPWP; it must be present before a tax invoice can be issued.
type Company struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	TaxID          string    `json:"tax_id"`
	BillingAddress string    `json:"billing_address"`
}

// Customer is a storefront account, individual or company-backed.
type Customer struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone"` // WhatsApp-capable number for outreach.
	Type      CustomerType `json:"type"`
	CompanyID *uuid.UUID   `json:"company_id,omitempty"`
	Company   *Company     `json:"company,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// CanReceiveTaxInvoice reports whether PPN tax invoices may be issued for
// this customer: B2B with a company holding a registered tax ID.
func (c *Customer) CanReceiveTaxInvoice() bool {
	return c.Type == CustomerB2B && c.Company != nil && c.Company.TaxID != ""
}
