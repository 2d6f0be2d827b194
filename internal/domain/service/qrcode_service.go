package service

// QRCodeService renders text (the shop's WhatsApp chat link) as a PNG
// QR code suitable for printed material.
type QRCodeService interface {
	EncodePNG(content string) ([]byte, error)
}
