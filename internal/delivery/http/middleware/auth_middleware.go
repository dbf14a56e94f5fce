package middleware

import (
	"strings"

	"localhelp/config"
	domainerrors "localhelp/internal/domain/errors"
	"localhelp/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is where Authenticate stores the caller's user ID.
const ContextKeyUserID = "userID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate validates the JWT access token and stores the caller's user ID
// on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := m.resolveUserID(c)
		if err != nil {
			return err
		}

		c.Set(ContextKeyUserID, userID)

		return next(c)
	}
}

// OptionalAuthenticate resolves the caller's user ID when a valid token is
// present and continues anonymously otherwise. Used on read endpoints that
// personalize results (own-post exclusion, registered-address fallback) but
// do not require sign-in.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if userID, err := m.resolveUserID(c); err == nil {
			c.Set(ContextKeyUserID, userID)
		}

		return next(c)
	}
}

func (m *AuthMiddleware) resolveUserID(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", domainerrors.ErrUnauthorized.WithDetails("Authorization header is missing")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return "", domainerrors.ErrUnauthorized.WithDetails("Invalid token format, must be Bearer token")
	}

	token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
	if err != nil || !token.Valid {
		return "", domainerrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domainerrors.ErrInvalidToken.WithDetails("Failed to parse token claims")
	}

	// Refresh tokens must not pass as access tokens.
	if tokenType, _ := claims["type"].(string); tokenType != "access" {
		return "", domainerrors.ErrInvalidToken.WithDetails("Not an access token")
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return "", domainerrors.ErrInvalidToken.WithDetails("User ID missing from token")
	}

	return userID, nil
}

// UserID returns the authenticated caller's user ID from the context, or an
// empty string for anonymous requests.
func UserID(c echo.Context) string {
	if userID, ok := c.Get(ContextKeyUserID).(string); ok {
		return userID
	}

	return ""
}
