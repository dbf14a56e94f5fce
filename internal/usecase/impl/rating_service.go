package impl

import (
	"context"
	"log/slog"
	"strings"

	"localhelp/internal/domain/entity"
	domainerrors "localhelp/internal/domain/errors"
	"localhelp/internal/domain/repository"
	"localhelp/internal/usecase"
)

const (
	minRatingScore = 1
	maxRatingScore = 5

	defaultRatingLimit = 20
	maxRatingLimit     = 100
)

type ratingService struct {
	ratingRepo repository.RatingRepository
	logger     *slog.Logger
}

// NewRatingService creates a new rating service instance
func NewRatingService(
	ratingRepo repository.RatingRepository,
	logger *slog.Logger,
) usecase.RatingUsecase {
	return &ratingService{
		ratingRepo: ratingRepo,
		logger:     logger,
	}
}

// RateUser records raterID's score for another user. A repeat submission from
// the same rater replaces the previous score instead of adding a second one.
func (s *ratingService) RateUser(ctx context.Context, raterID string, input *usecase.RateUserInput) (*entity.UserRating, error) {
	if input.UserID == raterID {
		return nil, domainerrors.ErrSelfRating
	}
	if input.UserID == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("user ID is required")
	}
	if input.Score < minRatingScore || input.Score > maxRatingScore {
		return nil, domainerrors.ErrInvalidInput.WithDetails("score must be between 1 and 5")
	}

	rating := &entity.UserRating{
		UserID:  input.UserID,
		RaterID: raterID,
		Score:   input.Score,
		Comment: strings.TrimSpace(input.Comment),
	}

	if err := s.ratingRepo.UpsertRating(ctx, rating); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "user rated",
		slog.String("user_id", input.UserID),
		slog.String("rater_id", raterID),
		slog.Int("score", input.Score))

	return rating, nil
}

// GetRatingSummary returns the average score and count for a user.
func (s *ratingService) GetRatingSummary(ctx context.Context, userID string) (*entity.RatingSummary, error) {
	return s.ratingRepo.Summary(ctx, userID)
}

// GetUserRatings retrieves ratings received by a user, newest first.
func (s *ratingService) GetUserRatings(ctx context.Context, userID string, limit, offset int) ([]*entity.UserRating, error) {
	if limit <= 0 {
		limit = defaultRatingLimit
	}
	if limit > maxRatingLimit {
		limit = maxRatingLimit
	}
	if offset < 0 {
		offset = 0
	}

	return s.ratingRepo.ListByUser(ctx, userID, limit, offset)
}
