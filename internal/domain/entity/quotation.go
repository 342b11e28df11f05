package entity

import (
	"time"

	"github.com/google/uuid"
)

// QuotationStatus enumerates the lifecycle states of a quotation.
type QuotationStatus string

const (
	QuotationDraft     QuotationStatus = "DRAFT"
	QuotationSent      QuotationStatus = "SENT"
	QuotationAccepted  QuotationStatus = "ACCEPTED"
	QuotationRejected  QuotationStatus = "REJECTED"
	QuotationExpired   QuotationStatus = "EXPIRED"
	QuotationConverted QuotationStatus = "CONVERTED"
)

var quotationTransitions = map[QuotationStatus]map[QuotationStatus]bool{
	QuotationDraft:     {QuotationSent: true, QuotationRejected: true},
	QuotationSent:      {QuotationAccepted: true, QuotationRejected: true, QuotationExpired: true},
	QuotationAccepted:  {QuotationConverted: true},
	QuotationRejected:  {},
	QuotationExpired:   {},
	QuotationConverted: {},
}

// CanTransitionTo reports whether the status may move to target.
func (s QuotationStatus) CanTransitionTo(target QuotationStatus) bool {
	return quotationTransitions[s][target]
}

// IsTerminal reports whether no further transition is allowed.
func (s QuotationStatus) IsTerminal() bool {
	return len(quotationTransitions[s]) == 0
}

// Valid reports whether the value is a known quotation status.
func (s QuotationStatus) Valid() bool {
	_, ok := quotationTransitions[s]

	return ok
}

// QuotationItem is one line of a quotation. UnitPrice is the tier-resolved
// price snapshot taken when the line was added, in minor currency units.
type QuotationItem struct {
	ID          uuid.UUID `json:"id"`
	QuotationID uuid.UUID `json:"quotation_id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	SKU         string    `json:"sku"`
	Quantity    int       `json:"quantity"`
	UnitPrice   int64     `json:"unit_price"`
	LineTotal   int64     `json:"line_total"`
}

// Quotation is a priced offer to a customer, convertible into a binding order.
// A DRAFT quotation doubles as the storefront cart. Once CONVERTED it is
// immutable and ConvertedOrderID points at the order it produced.
type Quotation struct {
	ID               uuid.UUID       `json:"id"`
	CustomerID       uuid.UUID       `json:"customer_id"`
	Status           QuotationStatus `json:"status"`
	Items            []QuotationItem `json:"items,omitempty"`
	ShippingAddress  string          `json:"shipping_address"`
	Notes            string          `json:"notes,omitempty"`
	ValidUntil       *time.Time      `json:"valid_until,omitempty"`
	ConvertedOrderID *uuid.UUID      `json:"converted_order_id,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// Subtotal sums the line totals of all items.
func (q *Quotation) Subtotal() int64 {
	var total int64
	for _, item := range q.Items {
		total += item.LineTotal
	}

	return total
}
