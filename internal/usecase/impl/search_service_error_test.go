package impl

import (
	"context"
	"testing"

	domainerrors "localhelp/internal/domain/errors"
	"localhelp/internal/domain/repository"
	"localhelp/internal/errors"
	"localhelp/internal/usecase"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchService_SearchNearbyPosts_NegativeRadiusRejected(t *testing.T) {
	service, _, _, _ := newSearchServiceForTest(t)

	results, err := service.SearchNearbyPosts(context.Background(), &usecase.NearbyPostsInput{
		UserID:    "requester",
		Latitude:  testOriginLat,
		Longitude: testOriginLng,
		RadiusKm:  lo.ToPtr(-1.0),
	})
	assert.Nil(t, results)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRadius))
}

func TestSearchService_SearchNearbyPosts_ExplicitZeroRadiusRejected(t *testing.T) {
	service, _, _, _ := newSearchServiceForTest(t)

	// Zero only means "use the default" when the radius is absent entirely.
	// A caller who sends radius_km=0 asked for an empty circle and gets an
	// error instead of a silent substitution.
	results, err := service.SearchNearbyPosts(context.Background(), &usecase.NearbyPostsInput{
		UserID:    "requester",
		Latitude:  testOriginLat,
		Longitude: testOriginLng,
		RadiusKm:  lo.ToPtr(0.0),
	})
	assert.Nil(t, results)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRadius))
}

func TestSearchService_SearchNearbyLostFound_ExplicitZeroRadiusRejected(t *testing.T) {
	service, _, _, _ := newSearchServiceForTest(t)

	results, err := service.SearchNearbyLostFound(context.Background(), &usecase.NearbyLostFoundInput{
		UserID:    "requester",
		Latitude:  testOriginLat,
		Longitude: testOriginLng,
		RadiusKm:  lo.ToPtr(0.0),
	})
	assert.Nil(t, results)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRadius))
}

func TestSearchService_SearchNearbyPosts_UnlocatableOriginYieldsEmpty(t *testing.T) {
	service, _, _, addressRepo := newSearchServiceForTest(t)
	ctx := context.Background()

	addressRepo.EXPECT().
		FindAddressByUser(ctx, "requester").
		Return(nil, repository.ErrAddressNotFound)

	results, err := service.SearchNearbyPosts(ctx, &usecase.NearbyPostsInput{
		UserID:    "requester",
		Latitude:  "not-a-number",
		Longitude: "121.5654",
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchService_SearchNearbyPosts_AnonymousWithoutCoordinateYieldsEmpty(t *testing.T) {
	service, _, _, _ := newSearchServiceForTest(t)

	results, err := service.SearchNearbyPosts(context.Background(), &usecase.NearbyPostsInput{
		Latitude:  "",
		Longitude: "",
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchService_SearchNearbyPosts_RepositoryFailureDegradesToEmpty(t *testing.T) {
	service, postRepo, _, _ := newSearchServiceForTest(t)
	ctx := context.Background()

	postRepo.EXPECT().
		FindAllPosts(ctx).
		Return(nil, errors.New("connection refused"))

	results, err := service.SearchNearbyPosts(ctx, &usecase.NearbyPostsInput{
		UserID:    "requester",
		Latitude:  testOriginLat,
		Longitude: testOriginLng,
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchService_SearchNearbyLostFound_RepositoryFailureDegradesToEmpty(t *testing.T) {
	service, _, lostFoundRepo, _ := newSearchServiceForTest(t)
	ctx := context.Background()

	lostFoundRepo.EXPECT().
		FindActiveItems(ctx, repository.LostFoundFilter{}).
		Return(nil, errors.New("connection refused"))

	results, err := service.SearchNearbyLostFound(ctx, &usecase.NearbyLostFoundInput{
		UserID:    "requester",
		Latitude:  testOriginLat,
		Longitude: testOriginLng,
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}
