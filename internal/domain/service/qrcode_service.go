package service

// QRCodeService defines the interface for generating shareable QR codes.
type QRCodeService interface {
	// GenerateListingQR renders a PNG QR code encoding the listing share URL.
	GenerateListingQR(slug string) ([]byte, error)
}
