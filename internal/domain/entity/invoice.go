package entity

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceStatus enumerates the payment states of an invoice.
type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "PENDING"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

var invoiceTransitions = map[InvoiceStatus]map[InvoiceStatus]bool{
	InvoicePending:   {InvoicePaid: true, InvoiceCancelled: true},
	InvoicePaid:      {},
	InvoiceCancelled: {},
}

// CanTransitionTo reports whether the status may move to target.
func (s InvoiceStatus) CanTransitionTo(target InvoiceStatus) bool {
	return invoiceTransitions[s][target]
}

// IsTerminal reports whether no further transition is allowed.
func (s InvoiceStatus) IsTerminal() bool {
	return len(invoiceTransitions[s]) == 0
}

// Valid reports whether the value is a known invoice status.
func (s InvoiceStatus) Valid() bool {
	_, ok := invoiceTransitions[s]

	return ok
}

// InvoiceItem snapshots one order line onto the invoice.
type InvoiceItem struct {
	ID          uuid.UUID `json:"id"`
	InvoiceID   uuid.UUID `json:"invoice_id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   int64     `json:"unit_price"`
	TotalPrice  int64     `json:"total_price"`
}

// Invoice bills exactly one order. InvoiceNumber follows
// INV-<year>-<six digit sequence>, unique per calendar year.
// All amounts are in minor currency units.
type Invoice struct {
	ID            uuid.UUID     `json:"id"`
	OrderID       uuid.UUID     `json:"order_id"`
	InvoiceNumber string        `json:"invoice_number"`
	Status        InvoiceStatus `json:"status"`
	Subtotal      int64         `json:"subtotal"`
	TaxAmount     int64         `json:"tax_amount"`
	TotalAmount   int64         `json:"total_amount"`
	DueDate       time.Time     `json:"due_date"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	PaymentNotes  string        `json:"payment_notes,omitempty"`
	Items         []InvoiceItem `json:"items,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// TaxInvoice is the PPN (Indonesian VAT) document issued at most once per
// invoice, only for B2B customers whose company holds a registered tax ID.
type TaxInvoice struct {
	ID           uuid.UUID `json:"id"`
	InvoiceID    uuid.UUID `json:"invoice_id"`
	CompanyName  string    `json:"company_name"`
	CompanyTaxID string    `json:"company_tax_id"` // NPWP of the billed company.
	PPNRate      float64   `json:"ppn_rate"`
	PPNAmount    int64     `json:"ppn_amount"`
	TotalWithPPN int64     `json:"total_with_ppn"`
	IssuedAt     time.Time `json:"issued_at"`
	IssuedBy     uuid.UUID `json:"issued_by"`
}
