package impl

import (
	"context"
	"testing"
	"time"

	"localhelp/internal/domain/entity"
	"localhelp/internal/domain/repository"
	mockRepo "localhelp/internal/mocks/repository"
	"localhelp/internal/usecase"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Origin used across the search tests: Taipei 101.
const (
	testOriginLat = "25.0330"
	testOriginLng = "121.5654"
)

// postAt builds a post offset from the test origin by roughly the given
// number of kilometers northward. 1 degree of latitude is ~111.19 km.
func postAt(userID, skill string, northKm float64, createdAt time.Time) *entity.Post {
	return &entity.Post{
		ID:        uuid.New(),
		Skill:     skill,
		Latitude:  25.0330 + northKm/111.19,
		Longitude: 121.5654,
		UserID:    userID,
		CreatedAt: createdAt,
	}
}

func newSearchServiceForTest(t *testing.T) (usecase.SearchUsecase, *mockRepo.MockPostRepository, *mockRepo.MockLostFoundRepository, *mockRepo.MockAddressRepository) {
	t.Helper()

	postRepo := mockRepo.NewMockPostRepository(t)
	lostFoundRepo := mockRepo.NewMockLostFoundRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	service := NewSearchService(postRepo, lostFoundRepo, addressRepo, newTestConfig(), newTestLogger())

	return service, postRepo, lostFoundRepo, addressRepo
}

func TestSearchService_SearchNearbyPosts_OrdersByDistance(t *testing.T) {
	service, postRepo, _, _ := newSearchServiceForTest(t)
	ctx := context.Background()

	now := time.Now()
	far := postAt("u-far", "Gardening", 3.2, now)
	near := postAt("u-near", "Dog walking", 0.5, now)
	mid := postAt("u-mid", "Tutoring", 1.1, now)

	postRepo.EXPECT().
		FindAllPosts(ctx).
		Return([]*entity.Post{far, near, mid}, nil)

	results, err := service.SearchNearbyPosts(ctx, &usecase.NearbyPostsInput{
		UserID:    "requester",
		Latitude:  testOriginLat,
		Longitude: testOriginLng,
		RadiusKm:  lo.ToPtr(5.0),
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, near.ID, results[0].ID)
	assert.Equal(t, mid.ID, results[1].ID)
	assert.Equal(t, far.ID, results[2].ID)
	assert.Less(t, results[0].DistanceKm, results[1].DistanceKm)
	assert.Less(t, results[1].DistanceKm, results[2].DistanceKm)
}

func TestSearchService_SearchNearbyPosts_NewerWinsDistanceTie(t *testing.T) {
	service, postRepo, _, _ := newSearchServiceForTest(t)
	ctx := context.Background()

	now := time.Now()
	older := postAt("u-a", "Gardening", 1.0, now.Add(-time.Hour))
	newer := postAt("u-b", "Tutoring", 1.0, now)

	postRepo.EXPECT().
		FindAllPosts(ctx).
		Return([]*entity.Post{older, newer}, nil)

	results, err := service.SearchNearbyPosts(ctx, &usecase.NearbyPostsInput{
		UserID:    "requester",
		Latitude:  testOriginLat,
		Longitude: testOriginLng,
		RadiusKm:  lo.ToPtr(5.0),
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, newer.ID, results[0].ID)
	assert.Equal(t, older.ID, results[1].ID)
}

func TestSearchService_SearchNearbyPosts_RadiusIsExclusive(t *testing.T) {
	service, postRepo, _, _ := newSearchServiceForTest(t)
	ctx := context.Background()

	now := time.Now()
	inside := postAt("u-in", "Gardening", 1.9, now)
	// Slightly past the radius once rounding is accounted for.
	outside := postAt("u-out", "Gardening", 2.001, now)

	postRepo.EXPECT().
		FindAllPosts(ctx).
		Return([]*entity.Post{inside, outside}, nil)

	results, err := service.SearchNearbyPosts(ctx, &usecase.NearbyPostsInput{
		UserID:    "requester",
		Latitude:  testOriginLat,
		Longitude: testOriginLng,
		RadiusKm:  lo.ToPtr(2.0),
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, inside.ID, results[0].ID)
	assert.Less(t, results[0].DistanceKm, 2.0)
}

func TestSearchService_SearchNearbyPosts_ExcludesOwnPosts(t *testing.T) {
	service, postRepo, _, _ := newSearchServiceForTest(t)
	ctx := context.Background()

	now := time.Now()
	own := postAt("requester", "Gardening", 0.3, now)
	other := postAt("someone-else", "Gardening", 0.5, now)

	postRepo.EXPECT().
		FindAllPosts(ctx).
		Return([]*entity.Post{own, other}, nil)

	results, err := service.SearchNearbyPosts(ctx, &usecase.NearbyPostsInput{
		UserID:    "requester",
		Latitude:  testOriginLat,
		Longitude: testOriginLng,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, other.ID, results[0].ID)
}

func TestSearchService_SearchNearbyPosts_SkillFilterIsCaseInsensitive(t *testing.T) {
	service, postRepo, _, _ := newSearchServiceForTest(t)
	ctx := context.Background()

	now := time.Now()
	match := postAt("u-a", "Dog Walking", 0.5, now)
	other := postAt("u-b", "Tutoring", 0.5, now)

	postRepo.EXPECT().
		FindAllPosts(ctx).
		Return([]*entity.Post{match, other}, nil)

	results, err := service.SearchNearbyPosts(ctx, &usecase.NearbyPostsInput{
		UserID:    "requester",
		Latitude:  testOriginLat,
		Longitude: testOriginLng,
		Skill:     "dog walking",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, match.ID, results[0].ID)
}

func TestSearchService_SearchNearbyPosts_UnspecifiedRadiusUsesDefault(t *testing.T) {
	service, postRepo, _, _ := newSearchServiceForTest(t)
	ctx := context.Background()

	now := time.Now()
	withinDefault := postAt("u-a", "Gardening", 0.8, now)
	beyondDefault := postAt("u-b", "Gardening", 1.5, now)

	postRepo.EXPECT().
		FindAllPosts(ctx).
		Return([]*entity.Post{withinDefault, beyondDefault}, nil)

	results, err := service.SearchNearbyPosts(ctx, &usecase.NearbyPostsInput{
		UserID:    "requester",
		Latitude:  testOriginLat,
		Longitude: testOriginLng,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, withinDefault.ID, results[0].ID)
}

func TestSearchService_SearchNearbyPosts_OversizedRadiusIsClamped(t *testing.T) {
	service, postRepo, _, _ := newSearchServiceForTest(t)
	ctx := context.Background()

	now := time.Now()
	withinMax := postAt("u-a", "Gardening", 45, now)
	beyondMax := postAt("u-b", "Gardening", 60, now)

	postRepo.EXPECT().
		FindAllPosts(ctx).
		Return([]*entity.Post{withinMax, beyondMax}, nil)

	results, err := service.SearchNearbyPosts(ctx, &usecase.NearbyPostsInput{
		UserID:    "requester",
		Latitude:  testOriginLat,
		Longitude: testOriginLng,
		RadiusKm:  lo.ToPtr(1000.0),
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, withinMax.ID, results[0].ID)
}

func TestSearchService_SearchNearbyPosts_FallsBackToRegisteredAddress(t *testing.T) {
	service, postRepo, _, addressRepo := newSearchServiceForTest(t)
	ctx := context.Background()

	now := time.Now()
	near := postAt("u-a", "Gardening", 0.5, now)

	addressRepo.EXPECT().
		FindAddressByUser(ctx, "requester").
		Return(&entity.RegisteredAddress{
			UserID:    "requester",
			Latitude:  25.0330,
			Longitude: 121.5654,
		}, nil)

	postRepo.EXPECT().
		FindAllPosts(ctx).
		Return([]*entity.Post{near}, nil)

	results, err := service.SearchNearbyPosts(ctx, &usecase.NearbyPostsInput{
		UserID: "requester",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, near.ID, results[0].ID)
}

func TestSearchService_SearchNearbyLostFound_FiltersAndOrders(t *testing.T) {
	service, _, lostFoundRepo, _ := newSearchServiceForTest(t)
	ctx := context.Background()

	now := time.Now()
	near := &entity.LostFoundItem{
		ID:        uuid.New(),
		Type:      entity.LostFoundTypeLost,
		Title:     "Lost cat",
		Latitude:  25.0330 + 0.5/111.19,
		Longitude: 121.5654,
		UserID:    "u-a",
		CreatedAt: now,
	}
	far := &entity.LostFoundItem{
		ID:        uuid.New(),
		Type:      entity.LostFoundTypeLost,
		Title:     "Lost dog",
		Latitude:  25.0330 + 3.0/111.19,
		Longitude: 121.5654,
		UserID:    "u-b",
		CreatedAt: now,
	}

	lostFoundRepo.EXPECT().
		FindActiveItems(ctx, repository.LostFoundFilter{Type: entity.LostFoundTypeLost, Category: "pet"}).
		Return([]*entity.LostFoundItem{far, near}, nil)

	results, err := service.SearchNearbyLostFound(ctx, &usecase.NearbyLostFoundInput{
		UserID:    "requester",
		Latitude:  testOriginLat,
		Longitude: testOriginLng,
		RadiusKm:  lo.ToPtr(5.0),
		Type:      entity.LostFoundTypeLost,
		Category:  "pet",
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, near.ID, results[0].ID)
	assert.Equal(t, far.ID, results[1].ID)
}
