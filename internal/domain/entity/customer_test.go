package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomer_CanReceiveTaxInvoice(t *testing.T) {
	b2bWithTaxID := &Customer{
		Type:    CustomerB2B,
		Company: &Company{Name: "PT Maju Jaya", TaxID: "01.234.567.8-901.000"},
	}
	assert.True(t, b2bWithTaxID.CanReceiveTaxInvoice())

	b2bWithoutTaxID := &Customer{
		Type:    CustomerB2B,
		Company: &Company{Name: "PT Maju Jaya"},
	}
	assert.False(t, b2bWithoutTaxID.CanReceiveTaxInvoice())

	b2bWithoutCompany := &Customer{Type: CustomerB2B}
	assert.False(t, b2bWithoutCompany.CanReceiveTaxInvoice())

	b2c := &Customer{
		Type:    CustomerB2C,
		Company: &Company{Name: "PT Maju Jaya", TaxID: "01.234.567.8-901.000"},
	}
	assert.False(t, b2c.CanReceiveTaxInvoice())
}
