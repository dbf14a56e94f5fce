package usecase

import (
	"context"

	"localhelp/internal/domain/entity"
)

// SignInResult is what a successful sign-in hands back to the client.
type SignInResult struct {
	AccessToken  string
	RefreshToken string
	Profile      *entity.Profile
}

// AuthUsecase defines the interface for authentication use cases. Identity
// lives at the external provider; this service verifies provider tokens,
// caches the asserted profile and issues this service's own JWT pair.
type AuthUsecase interface {
	// SignInWithGoogle verifies a Google ID token, refreshes the cached
	// profile and issues access and refresh tokens.
	SignInWithGoogle(ctx context.Context, idToken string) (*SignInResult, error)

	// RefreshTokens exchanges a valid refresh token for a new token pair.
	RefreshTokens(ctx context.Context, refreshToken string) (*SignInResult, error)

	// GetProfile retrieves the cached profile of a user.
	GetProfile(ctx context.Context, userID string) (*entity.Profile, error)
}
