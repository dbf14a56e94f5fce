package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRating is a 1-5 score one user gave another. A rater has at most one
// rating per rated user; submitting again replaces the previous score.
type UserRating struct {
	ID        uuid.UUID
	UserID    string // The rated user.
	RaterID   string // The user who submitted the score.
	Score     int    // 1 to 5.
	Comment   string
	CreatedAt time.Time
}

// RatingSummary is the aggregate rating of a user.
type RatingSummary struct {
	UserID       string
	AverageScore float64
	TotalRatings int64
}
