// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"localhelp/internal/domain/entity"
	domainerrors "localhelp/internal/domain/errors"
	"localhelp/internal/domain/repository"
	"localhelp/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postRepository implements the domain's PostRepository interface.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// CreatePost persists a new post.
func (repo *postRepository) CreatePost(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("missing required post information")
		}

		return domainerrors.NewDatabaseExecuteError("failed to create post")
	}

	// Update the entity with generated values
	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// FindPostByID retrieves a post by its unique ID.
func (repo *postRepository) FindPostByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by ID")
	}

	return toPostDomain(&postM), nil
}

// FindAllPosts retrieves every post, newest first.
func (repo *postRepository) FindAllPosts(ctx context.Context) ([]*entity.Post, error) {
	var postModels []*model.PostModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find posts")
	}

	posts := make([]*entity.Post, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, nil
}

// FindPostsByUser retrieves all posts owned by a user, newest first.
func (repo *postRepository) FindPostsByUser(ctx context.Context, userID string) ([]*entity.Post, error) {
	var postModels []*model.PostModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find posts by user")
	}

	posts := make([]*entity.Post, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, nil
}

// DeletePost removes a post by its ID.
func (repo *postRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PostModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError("failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// toPostDomain converts a GORM model to a domain entity.
func toPostDomain(data *model.PostModel) *entity.Post {
	return &entity.Post{
		ID:          data.ID,
		Skill:       data.Skill,
		Description: data.Description,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromPostDomain converts a domain entity to a GORM model.
func fromPostDomain(data *entity.Post) *model.PostModel {
	return &model.PostModel{
		ID:          data.ID,
		Skill:       data.Skill,
		Description: data.Description,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
