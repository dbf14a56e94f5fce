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

// profileRepository implements the domain's ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// UpsertProfile inserts or refreshes the cached profile for a user.
func (repo *profileRepository) UpsertProfile(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"email", "name", "avatar_url", "updated_at",
			}),
		}).
		Create(profileM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError("failed to save profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindProfileByUser retrieves the cached profile of a user.
func (repo *profileRepository) FindProfileByUser(ctx context.Context, userID string) (*entity.Profile, error) {
	var profileM model.ProfileModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user")
	}

	return toProfileDomain(&profileM), nil
}

// FindProfilesByUsers retrieves cached profiles for a set of user IDs.
func (repo *profileRepository) FindProfilesByUsers(ctx context.Context, userIDs []string) (map[string]*entity.Profile, error) {
	if len(userIDs) == 0 {
		return map[string]*entity.Profile{}, nil
	}

	var profileModels []*model.ProfileModel
	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profiles by users")
	}

	profiles := make(map[string]*entity.Profile, len(profileModels))
	for _, profileM := range profileModels {
		profiles[profileM.UserID] = toProfileDomain(profileM)
	}

	return profiles, nil
}

// toProfileDomain converts a GORM model to a domain entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	return &entity.Profile{
		UserID:    data.UserID,
		Email:     data.Email,
		Name:      data.Name,
		AvatarURL: data.AvatarURL,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain entity to a GORM model.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		UserID:    data.UserID,
		Email:     data.Email,
		Name:      data.Name,
		AvatarURL: data.AvatarURL,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
