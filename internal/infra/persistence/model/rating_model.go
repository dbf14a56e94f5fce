package model

import (
	"time"

	"github.com/google/uuid"
)

// UserRatingModel mirrors the 'user_ratings' table. The unique index on
// (user_id, rater_id) caps each rater at one rating per rated user.
type UserRatingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    string    `gorm:"type:varchar(255);not null;uniqueIndex:uniq_user_ratings_pair"`
	RaterID   string    `gorm:"type:varchar(255);not null;uniqueIndex:uniq_user_ratings_pair"`
	Score     int       `gorm:"not null;check:score >= 1 AND score <= 5"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserRatingModel) TableName() string {
	return "user_ratings"
}
