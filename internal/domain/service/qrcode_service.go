package service

// QRCodeService defines the interface for QR code rendering.
type QRCodeService interface {
	// GeneratePaymentQR renders the payment confirmation URL as a PNG image.
	GeneratePaymentQR(confirmationURL string) ([]byte, error)
}
