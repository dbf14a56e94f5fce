package postgres

import (
	"context"

	"localhelp/internal/domain/entity"
	domainerrors "localhelp/internal/domain/errors"
	"localhelp/internal/domain/repository"
	"localhelp/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ratingRepository implements the domain's RatingRepository interface.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

// UpsertRating inserts the rating or overwrites the rater's previous score
// for the same user. A single statement against the (user_id, rater_id)
// unique index.
func (repo *ratingRepository) UpsertRating(ctx context.Context, rating *entity.UserRating) error {
	ratingM := fromUserRatingDomain(rating)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "rater_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"score", "comment", "created_at",
			}),
		}).
		Create(ratingM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("score must be between 1 and 5")
		}

		return domainerrors.NewDatabaseExecuteError("failed to save rating")
	}

	rating.ID = ratingM.ID
	rating.CreatedAt = ratingM.CreatedAt

	return nil
}

// Summary returns the average score and rating count for a user.
func (repo *ratingRepository) Summary(ctx context.Context, userID string) (*entity.RatingSummary, error) {
	var row struct {
		AverageScore float64
		TotalRatings int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.UserRatingModel{}).
		Select("COALESCE(AVG(score), 0) AS average_score, COUNT(*) AS total_ratings").
		Where("user_id = ?", userID).
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to summarize ratings")
	}

	return &entity.RatingSummary{
		UserID:       userID,
		AverageScore: row.AverageScore,
		TotalRatings: row.TotalRatings,
	}, nil
}

// ListByUser retrieves ratings received by a user, newest first.
func (repo *ratingRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.UserRating, error) {
	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var ratingModels []*model.UserRatingModel
	if err := query.Find(&ratingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ratings by user")
	}

	ratings := make([]*entity.UserRating, 0, len(ratingModels))
	for _, ratingM := range ratingModels {
		ratings = append(ratings, toUserRatingDomain(ratingM))
	}

	return ratings, nil
}

// toUserRatingDomain converts a GORM model to a domain entity.
func toUserRatingDomain(data *model.UserRatingModel) *entity.UserRating {
	return &entity.UserRating{
		ID:        data.ID,
		UserID:    data.UserID,
		RaterID:   data.RaterID,
		Score:     data.Score,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
	}
}

// fromUserRatingDomain converts a domain entity to a GORM model.
func fromUserRatingDomain(data *entity.UserRating) *model.UserRatingModel {
	return &model.UserRatingModel{
		ID:        data.ID,
		UserID:    data.UserID,
		RaterID:   data.RaterID,
		Score:     data.Score,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
	}
}
