package impl

import (
	"context"
	"testing"

	"localhelp/config"
	"localhelp/internal/domain/entity"
	domainerrors "localhelp/internal/domain/errors"
	"localhelp/internal/domain/repository"
	"localhelp/internal/domain/service"
	"localhelp/internal/errors"
	mockRepo "localhelp/internal/mocks/repository"
	mockService "localhelp/internal/mocks/service"
	"localhelp/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testRefreshSecret = "refresh-secret"

func newAuthServiceForTest(t *testing.T) (usecase.AuthUsecase, *mockService.MockIdentityService, *mockService.MockTokenService, *mockRepo.MockProfileRepository) {
	t.Helper()

	identityService := mockService.NewMockIdentityService(t)
	tokenService := mockService.NewMockTokenService(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)

	cfg := &config.Config{}
	cfg.SecretKey.Refresh = testRefreshSecret

	svc := NewAuthService(identityService, tokenService, profileRepo, cfg, newTestLogger())

	return svc, identityService, tokenService, profileRepo
}

func refreshTokenFor(userID string) *jwt.Token {
	return &jwt.Token{
		Valid: true,
		Claims: jwt.MapClaims{
			"sub":  userID,
			"type": "refresh",
		},
	}
}

func TestAuthService_SignInWithGoogle_Success(t *testing.T) {
	svc, identityService, tokenService, profileRepo := newAuthServiceForTest(t)
	ctx := context.Background()

	identityService.EXPECT().
		VerifyIDToken(ctx, "google-id-token").
		Return(&service.Identity{
			UserID:    "google-uid",
			Email:     "alex@example.com",
			Name:      "Alex",
			AvatarURL: "https://example.com/a.png",
		}, nil)

	profileRepo.EXPECT().
		UpsertProfile(ctx, mock.AnythingOfType("*entity.Profile")).
		Return(nil)

	tokenService.EXPECT().
		GenerateTokens("google-uid").
		Return("access", "refresh", nil)

	result, err := svc.SignInWithGoogle(ctx, "google-id-token")
	require.NoError(t, err)
	assert.Equal(t, "access", result.AccessToken)
	assert.Equal(t, "refresh", result.RefreshToken)
	assert.Equal(t, "Alex", result.Profile.Name)
}

func TestAuthService_SignInWithGoogle_InvalidToken(t *testing.T) {
	svc, identityService, _, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	identityService.EXPECT().
		VerifyIDToken(ctx, "bad-token").
		Return(nil, assert.AnError)

	result, err := svc.SignInWithGoogle(ctx, "bad-token")
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthService_RefreshTokens_Success(t *testing.T) {
	svc, _, tokenService, profileRepo := newAuthServiceForTest(t)
	ctx := context.Background()

	tokenService.EXPECT().
		ValidateToken("old-refresh", testRefreshSecret).
		Return(refreshTokenFor("google-uid"), nil)

	tokenService.EXPECT().
		GenerateTokens("google-uid").
		Return("new-access", "new-refresh", nil)

	profileRepo.EXPECT().
		FindProfileByUser(ctx, "google-uid").
		Return(&entity.Profile{UserID: "google-uid", Name: "Alex"}, nil)

	result, err := svc.RefreshTokens(ctx, "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-access", result.AccessToken)
	assert.Equal(t, "new-refresh", result.RefreshToken)
}

func TestAuthService_RefreshTokens_RejectsAccessToken(t *testing.T) {
	svc, _, tokenService, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	accessToken := &jwt.Token{
		Valid: true,
		Claims: jwt.MapClaims{
			"sub":  "google-uid",
			"type": "access",
		},
	}

	tokenService.EXPECT().
		ValidateToken("access-as-refresh", testRefreshSecret).
		Return(accessToken, nil)

	result, err := svc.RefreshTokens(ctx, "access-as-refresh")
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthService_RefreshTokens_RejectsInvalidToken(t *testing.T) {
	svc, _, tokenService, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	tokenService.EXPECT().
		ValidateToken("garbage", testRefreshSecret).
		Return(nil, assert.AnError)

	result, err := svc.RefreshTokens(ctx, "garbage")
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthService_RefreshTokens_MissingProfileStillSucceeds(t *testing.T) {
	svc, _, tokenService, profileRepo := newAuthServiceForTest(t)
	ctx := context.Background()

	tokenService.EXPECT().
		ValidateToken("old-refresh", testRefreshSecret).
		Return(refreshTokenFor("google-uid"), nil)

	tokenService.EXPECT().
		GenerateTokens("google-uid").
		Return("new-access", "new-refresh", nil)

	profileRepo.EXPECT().
		FindProfileByUser(ctx, "google-uid").
		Return(nil, repository.ErrProfileNotFound)

	result, err := svc.RefreshTokens(ctx, "old-refresh")
	require.NoError(t, err)
	assert.Nil(t, result.Profile)
}

func TestAuthService_GetProfile_NotFound(t *testing.T) {
	svc, _, _, profileRepo := newAuthServiceForTest(t)
	ctx := context.Background()

	profileRepo.EXPECT().
		FindProfileByUser(ctx, "ghost").
		Return(nil, repository.ErrProfileNotFound)

	profile, err := svc.GetProfile(ctx, "ghost")
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
