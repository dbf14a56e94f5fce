// Package google verifies Google-issued ID tokens against the configured
// OAuth client ID.
package google

import (
	"context"
	"log/slog"

	"localhelp/config"
	"localhelp/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// identityService implements service.IdentityService on top of Google's
// idtoken validator, which checks the signature, expiry and audience.
type identityService struct {
	clientID string
	logger   *slog.Logger
}

// NewIdentityService creates a new Google identity service.
func NewIdentityService(cfg *config.Config, logger *slog.Logger) service.IdentityService {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &identityService{
		clientID: clientID,
		logger:   logger,
	}
}

// VerifyIDToken validates a Google ID token and returns the identity it asserts.
func (s *identityService) VerifyIDToken(ctx context.Context, idToken string) (*service.Identity, error) {
	payload, err := idtoken.Validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.Error("Google ID token validation failed", slog.String("error", err.Error()))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	identity := &service.Identity{
		UserID:    payload.Subject,
		Email:     claimString(payload.Claims, "email"),
		Name:      claimString(payload.Claims, "name"),
		AvatarURL: claimString(payload.Claims, "picture"),
	}

	s.logger.Info("Google ID token verified",
		slog.String("userID", identity.UserID),
		slog.String("email", identity.Email))

	return identity, nil
}

func claimString(claims map[string]any, key string) string {
	value, _ := claims[key].(string)

	return value
}
