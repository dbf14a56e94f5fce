package usecase

import (
	"context"

	"localhelp/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePostInput carries the fields needed to publish a post.
type CreatePostInput struct {
	Skill       string
	Description string
	Latitude    float64
	Longitude   float64
}

// PostUsecase defines the interface for post management use cases
type PostUsecase interface {
	// CreatePost publishes a new post owned by userID.
	CreatePost(ctx context.Context, userID string, input *CreatePostInput) (*entity.Post, error)

	// GetPost retrieves a single post by ID.
	GetPost(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// GetUserPosts retrieves all posts owned by a user, newest first.
	GetUserPosts(ctx context.Context, userID string) ([]*entity.Post, error)

	// DeletePost removes a post. Only the owner may delete it.
	DeletePost(ctx context.Context, userID string, id uuid.UUID) error

	// GeneratePostQR renders a shareable QR code for an existing post.
	GeneratePostQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
