package repository

import (
	"context"

	"localhelp/internal/domain/entity"
)

// RatingRepository defines the interface for user-rating persistence.
// A rater has at most one rating per rated user (unique constraint on the
// (user_id, rater_id) pair); submitting again replaces the previous score.
type RatingRepository interface {
	// UpsertRating inserts the rating or, on conflict with an existing
	// (user, rater) pair, overwrites score, comment and timestamp.
	UpsertRating(ctx context.Context, rating *entity.UserRating) error

	// Summary returns the average score and rating count for a user.
	// A user with no ratings yields a zero-value summary, not an error.
	Summary(ctx context.Context, userID string) (*entity.RatingSummary, error)

	// ListByUser retrieves ratings received by a user, newest first.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.UserRating, error)
}
