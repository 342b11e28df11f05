// Package qrcode generates payment QR codes for invoices.
package qrcode

import (
	"encoding/json"
	"fmt"

	"glovia/config"
	"glovia/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	merchantID string
	size       int
}

// PaymentPayload is the QR code payload scanned by the customer's banking app.
type PaymentPayload struct {
	MerchantID    string `json:"merchant_id"`
	Type          string `json:"type"`
	InvoiceNumber string `json:"invoice_number"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	return &qrcodeService{
		merchantID: cfg.Invoice.QRMerchantID,
		size:       cfg.Invoice.QRSize,
	}
}

// GeneratePaymentQR generates a PNG QR code carrying the invoice payment payload.
func (s *qrcodeService) GeneratePaymentQR(invoiceNumber string, totalAmount int64) ([]byte, error) {
	payload := PaymentPayload{
		MerchantID:    s.merchantID,
		Type:          "invoice_payment",
		InvoiceNumber: invoiceNumber,
		Amount:        totalAmount,
		Currency:      "IDR",
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code payload: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
