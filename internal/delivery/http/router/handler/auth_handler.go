// Package handler contains the echo HTTP handlers.
package handler

import (
	"net/http"
	"time"

	"localhelp/internal/delivery/http/middleware"
	"localhelp/internal/delivery/http/response"
	"localhelp/internal/domain/entity"
	"localhelp/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles sign-in, token refresh and profile lookup.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

type googleSignInRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type profileResponse struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

type signInResponse struct {
	AccessToken  string           `json:"accessToken"`
	RefreshToken string           `json:"refreshToken"`
	User         *profileResponse `json:"user,omitempty"`
}

func toProfileResponse(profile *entity.Profile) *profileResponse {
	if profile == nil {
		return nil
	}

	return &profileResponse{
		UserID:    profile.UserID,
		Email:     profile.Email,
		Name:      profile.Name,
		AvatarURL: profile.AvatarURL,
		CreatedAt: profile.CreatedAt,
	}
}

// GoogleSignIn handles POST /auth/google.
func (h *AuthHandler) GoogleSignIn(c echo.Context) error {
	var req googleSignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authUsecase.SignInWithGoogle(c.Request().Context(), req.IDToken)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, signInResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		User:         toProfileResponse(result.Profile),
	}, "Signed in")
}

// Refresh handles POST /auth/refresh.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authUsecase.RefreshTokens(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, signInResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		User:         toProfileResponse(result.Profile),
	}, "Tokens refreshed")
}

// GetProfile handles GET /auth/profile.
func (h *AuthHandler) GetProfile(c echo.Context) error {
	profile, err := h.authUsecase.GetProfile(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile), "")
}
