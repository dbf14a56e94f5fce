package impl

import (
	"context"
	"testing"

	"localhelp/internal/domain/entity"
	domainerrors "localhelp/internal/domain/errors"
	"localhelp/internal/errors"
	mockRepo "localhelp/internal/mocks/repository"
	"localhelp/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRatingServiceForTest(t *testing.T) (usecase.RatingUsecase, *mockRepo.MockRatingRepository) {
	t.Helper()

	ratingRepo := mockRepo.NewMockRatingRepository(t)
	svc := NewRatingService(ratingRepo, newTestLogger())

	return svc, ratingRepo
}

func TestRatingService_RateUser_Success(t *testing.T) {
	svc, ratingRepo := newRatingServiceForTest(t)
	ctx := context.Background()

	ratingRepo.EXPECT().
		UpsertRating(ctx, mock.AnythingOfType("*entity.UserRating")).
		Return(nil)

	rating, err := svc.RateUser(ctx, "rater", &usecase.RateUserInput{
		UserID:  "rated",
		Score:   4,
		Comment: "  Friendly and on time  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "rated", rating.UserID)
	assert.Equal(t, "rater", rating.RaterID)
	assert.Equal(t, 4, rating.Score)
	assert.Equal(t, "Friendly and on time", rating.Comment)
}

func TestRatingService_RateUser_SelfRatingRejected(t *testing.T) {
	svc, _ := newRatingServiceForTest(t)

	rating, err := svc.RateUser(context.Background(), "user-1", &usecase.RateUserInput{
		UserID: "user-1",
		Score:  5,
	})
	assert.Nil(t, rating)
	assert.True(t, errors.Is(err, domainerrors.ErrSelfRating))
}

func TestRatingService_RateUser_ScoreOutOfRange(t *testing.T) {
	svc, _ := newRatingServiceForTest(t)
	ctx := context.Background()

	for _, score := range []int{0, -1, 6} {
		rating, err := svc.RateUser(ctx, "rater", &usecase.RateUserInput{
			UserID: "rated",
			Score:  score,
		})
		assert.Nil(t, rating, "score %d", score)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput), "score %d", score)
	}
}

func TestRatingService_GetRatingSummary(t *testing.T) {
	svc, ratingRepo := newRatingServiceForTest(t)
	ctx := context.Background()

	expected := &entity.RatingSummary{UserID: "rated", AverageScore: 4.5, TotalRatings: 2}

	ratingRepo.EXPECT().
		Summary(ctx, "rated").
		Return(expected, nil)

	summary, err := svc.GetRatingSummary(ctx, "rated")
	require.NoError(t, err)
	assert.Equal(t, expected, summary)
}

func TestRatingService_GetUserRatings_DefaultsAndCaps(t *testing.T) {
	svc, ratingRepo := newRatingServiceForTest(t)
	ctx := context.Background()

	ratingRepo.EXPECT().
		ListByUser(ctx, "rated", 20, 0).
		Return([]*entity.UserRating{}, nil)

	_, err := svc.GetUserRatings(ctx, "rated", 0, -5)
	require.NoError(t, err)

	ratingRepo.EXPECT().
		ListByUser(ctx, "rated", 100, 0).
		Return([]*entity.UserRating{}, nil)

	_, err = svc.GetUserRatings(ctx, "rated", 1000, 0)
	require.NoError(t, err)
}
