package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateConfirmationQR renders the confirmation link as a PNG QR code
	GenerateConfirmationQR(link string) ([]byte, error)
}
