package service

// QRCodeService generates QR code images.
type QRCodeService interface {
	// GeneratePaymentQR returns a PNG QR code encoding the payment payload
	// for an invoice (number and total amount in minor currency units).
	GeneratePaymentQR(invoiceNumber string, totalAmount int64) ([]byte, error)
}
