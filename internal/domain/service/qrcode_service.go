package service

import "github.com/google/uuid"

// QRCodeService generates shareable QR codes for posts.
type QRCodeService interface {
	// GeneratePostQR renders a PNG QR code encoding a deep link to the post.
	GeneratePostQR(postID uuid.UUID) ([]byte, error)

	// ParsePostQR decodes QR payload data back into a post ID.
	ParsePostQR(qrData string) (uuid.UUID, error)
}
