package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuotationStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    QuotationStatus
		to      QuotationStatus
		allowed bool
	}{
		{QuotationDraft, QuotationSent, true},
		{QuotationDraft, QuotationRejected, true},
		{QuotationDraft, QuotationAccepted, false},
		{QuotationDraft, QuotationConverted, false},
		{QuotationSent, QuotationAccepted, true},
		{QuotationSent, QuotationRejected, true},
		{QuotationSent, QuotationExpired, true},
		{QuotationSent, QuotationConverted, false},
		{QuotationAccepted, QuotationConverted, true},
		{QuotationAccepted, QuotationRejected, false},
		{QuotationRejected, QuotationSent, false},
		{QuotationExpired, QuotationSent, false},
		{QuotationConverted, QuotationDraft, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestQuotationStatus_IsTerminal(t *testing.T) {
	assert.False(t, QuotationDraft.IsTerminal())
	assert.False(t, QuotationSent.IsTerminal())
	assert.False(t, QuotationAccepted.IsTerminal())
	assert.True(t, QuotationRejected.IsTerminal())
	assert.True(t, QuotationExpired.IsTerminal())
	assert.True(t, QuotationConverted.IsTerminal())
}

func TestQuotationStatus_Valid(t *testing.T) {
	assert.True(t, QuotationDraft.Valid())
	assert.True(t, QuotationConverted.Valid())
	assert.False(t, QuotationStatus("PENDING").Valid())
	assert.False(t, QuotationStatus("").Valid())
}

func TestQuotation_Subtotal(t *testing.T) {
	quotation := &Quotation{
		Items: []QuotationItem{
			{Quantity: 50, UnitPrice: 9000, LineTotal: 450000},
			{Quantity: 10, UnitPrice: 9500, LineTotal: 95000},
		},
	}

	assert.Equal(t, int64(545000), quotation.Subtotal())
	assert.Equal(t, int64(0), (&Quotation{}).Subtotal())
}
