package usecase

import (
	"context"

	"localhelp/internal/domain/entity"
)

// RateUserInput carries a rating submission.
type RateUserInput struct {
	UserID  string // The rated user.
	Score   int    // 1 to 5.
	Comment string
}

// RatingUsecase defines the interface for user-rating use cases.
type RatingUsecase interface {
	// RateUser records raterID's score for another user, replacing any
	// previous score from the same rater. Rating yourself is rejected.
	RateUser(ctx context.Context, raterID string, input *RateUserInput) (*entity.UserRating, error)

	// GetRatingSummary returns the average score and count for a user.
	GetRatingSummary(ctx context.Context, userID string) (*entity.RatingSummary, error)

	// GetUserRatings retrieves ratings received by a user, newest first.
	GetUserRatings(ctx context.Context, userID string, limit, offset int) ([]*entity.UserRating, error)
}
