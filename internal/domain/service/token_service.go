// Package service defines domain-level service contracts implemented by the
// infrastructure layer.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the interface for generating and validating the JWTs
// issued after an identity-provider sign-in.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a user.
	GenerateTokens(userID string) (accessToken string, refreshToken string, err error)

	// ValidateToken checks a token string against the given secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
