package service

import "context"

// Identity is the external identity provider's view of a user.
type Identity struct {
	UserID    string
	Email     string
	Name      string
	AvatarURL string
}

// IdentityService verifies identity-provider credentials. It is a pure
// lookup with no side effects of its own.
type IdentityService interface {
	// VerifyIDToken validates a provider-issued ID token and returns the
	// identity it asserts.
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)
}
