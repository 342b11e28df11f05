package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, InvoicePending.CanTransitionTo(InvoicePaid))
	assert.True(t, InvoicePending.CanTransitionTo(InvoiceCancelled))
	assert.False(t, InvoicePaid.CanTransitionTo(InvoicePending))
	assert.False(t, InvoicePaid.CanTransitionTo(InvoiceCancelled))
	assert.False(t, InvoiceCancelled.CanTransitionTo(InvoicePaid))
}

func TestInvoiceStatus_IsTerminal(t *testing.T) {
	assert.False(t, InvoicePending.IsTerminal())
	assert.True(t, InvoicePaid.IsTerminal())
	assert.True(t, InvoiceCancelled.IsTerminal())
}

func TestInvoiceStatus_Valid(t *testing.T) {
	assert.True(t, InvoicePending.Valid())
	assert.False(t, InvoiceStatus("OVERDUE").Valid())
}
