package google

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"localhelp/config"

	"github.com/stretchr/testify/assert"
)

func TestNewIdentityService_MissingOAuthConfig(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewIdentityService(&config.Config{}, logger)
	assert.NotNil(t, svc)

	// Without a client ID every token must fail validation
	identity, err := svc.VerifyIDToken(context.Background(), "not-a-real-token")
	assert.Error(t, err)
	assert.Nil(t, identity)
}

func TestClaimString(t *testing.T) {
	claims := map[string]any{
		"email":          "user@example.com",
		"email_verified": true,
	}

	assert.Equal(t, "user@example.com", claimString(claims, "email"))
	assert.Empty(t, claimString(claims, "name"))
	// Non-string claims are treated as absent
	assert.Empty(t, claimString(claims, "email_verified"))
}
