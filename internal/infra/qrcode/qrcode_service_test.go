package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GeneratePostQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://localhelp.example.com")
	postID := uuid.New()

	qrBytes, err := service.GeneratePostQR(postID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParsePostQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "")
	postID := uuid.New()

	payload, err := json.Marshal(QRCodeData{PostID: postID.String(), Type: "post"})
	require.NoError(t, err)

	parsed, err := service.ParsePostQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, postID, parsed)
}

func TestQRCodeService_ParsePostQR_Errors(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	tests := []struct {
		name   string
		qrData string
	}{
		{"not JSON", "not-json"},
		{"wrong type", `{"post_id":"` + uuid.New().String() + `","type":"subscription"}`},
		{"bad UUID", `{"post_id":"nope","type":"post"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParsePostQR(tt.qrData)
			assert.Error(t, err)
		})
	}
}
