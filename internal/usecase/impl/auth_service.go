package impl

import (
	"context"
	"log/slog"

	"localhelp/config"
	"localhelp/internal/domain/entity"
	domainerrors "localhelp/internal/domain/errors"
	"localhelp/internal/domain/repository"
	"localhelp/internal/domain/service"
	"localhelp/internal/errors"
	"localhelp/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
)

type authService struct {
	identityService service.IdentityService
	tokenService    service.TokenService
	profileRepo     repository.ProfileRepository
	refreshSecret   string
	logger          *slog.Logger
}

// NewAuthService creates a new authentication service instance
func NewAuthService(
	identityService service.IdentityService,
	tokenService service.TokenService,
	profileRepo repository.ProfileRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		identityService: identityService,
		tokenService:    tokenService,
		profileRepo:     profileRepo,
		refreshSecret:   cfg.SecretKey.Refresh,
		logger:          logger,
	}
}

// SignInWithGoogle verifies a Google ID token, refreshes the cached profile
// and issues this service's own token pair.
func (s *authService) SignInWithGoogle(ctx context.Context, idToken string) (*usecase.SignInResult, error) {
	identity, err := s.identityService.VerifyIDToken(ctx, idToken)
	if err != nil {
		s.logger.WarnContext(ctx, "google ID token rejected",
			slog.String("error", err.Error()))

		return nil, domainerrors.ErrInvalidToken
	}

	profile := &entity.Profile{
		UserID:    identity.UserID,
		Email:     identity.Email,
		Name:      identity.Name,
		AvatarURL: identity.AvatarURL,
	}

	if err := s.profileRepo.UpsertProfile(ctx, profile); err != nil {
		return nil, err
	}

	accessToken, refreshToken, err := s.tokenService.GenerateTokens(identity.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "generate token pair")
	}

	s.logger.InfoContext(ctx, "user signed in",
		slog.String("user_id", identity.UserID))

	return &usecase.SignInResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Profile:      profile,
	}, nil
}

// RefreshTokens exchanges a valid refresh token for a new token pair.
func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*usecase.SignInResult, error) {
	token, err := s.tokenService.ValidateToken(refreshToken, s.refreshSecret)
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrInvalidToken
	}

	// Access tokens carry the same signature scheme; the type claim keeps
	// them from being replayed on the refresh endpoint.
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return nil, domainerrors.ErrInvalidToken
	}

	userID, err := claims.GetSubject()
	if err != nil || userID == "" {
		return nil, domainerrors.ErrInvalidToken
	}

	accessToken, newRefreshToken, err := s.tokenService.GenerateTokens(userID)
	if err != nil {
		return nil, errors.Wrap(err, "generate token pair")
	}

	profile, err := s.profileRepo.FindProfileByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return nil, err
		}
		profile = nil
	}

	return &usecase.SignInResult{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		Profile:      profile,
	}, nil
}

// GetProfile retrieves the cached profile of a user.
func (s *authService) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	profile, err := s.profileRepo.FindProfileByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, err
	}

	return profile, nil
}
