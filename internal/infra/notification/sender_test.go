package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Template names the lifecycle services send with. A rename on either side
// breaks delivery silently because sends are fire-and-forget, so the names
// are pinned here.
func TestMessageTemplates_CoverServiceTemplateNames(t *testing.T) {
	sent := []string{"order_shipped", "invoice_issued", "quotation_submitted"}

	for _, name := range sent {
		assert.Contains(t, messageTemplates, name, "template %q must exist", name)
	}
	assert.Len(t, messageTemplates, len(sent), "every template must have a sender")
}

func TestRenderTemplate_FillsPlaceholders(t *testing.T) {
	body, err := renderTemplate("order_shipped", map[string]string{
		"customer_name":   "Budi Santoso",
		"tracking_number": "JNE-1234567890",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "Budi Santoso")
	assert.Contains(t, body, "JNE-1234567890")
	assert.NotContains(t, body, "{{")
}

func TestRenderTemplate_QuotationSubmitted(t *testing.T) {
	body, err := renderTemplate("quotation_submitted", map[string]string{
		"quotation_id": "0195f1a2-0000-7000-8000-000000000001",
		"subtotal":     "Rp450.000",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "0195f1a2-0000-7000-8000-000000000001")
	assert.Contains(t, body, "Rp450.000")
}

func TestRenderTemplate_UnknownName(t *testing.T) {
	_, err := renderTemplate("quotation_reminder", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown notification template")
}
