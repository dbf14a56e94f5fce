// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"localhelp/internal/domain/entity"
	"localhelp/internal/errors"

	"github.com/google/uuid"
)

// ErrPostNotFound is returned when a post is not found.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the interface for post-related database operations.
type PostRepository interface {
	// CreatePost persists a new post.
	CreatePost(ctx context.Context, post *entity.Post) error

	// FindPostByID retrieves a post by its unique ID.
	// Returns ErrPostNotFound if no such post exists.
	FindPostByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// FindAllPosts retrieves every post, newest first. Proximity filtering and
	// ranking happen in the search service on top of this candidate set.
	FindAllPosts(ctx context.Context) ([]*entity.Post, error)

	// FindPostsByUser retrieves all posts owned by a user, newest first.
	FindPostsByUser(ctx context.Context, userID string) ([]*entity.Post, error)

	// DeletePost removes a post by its ID.
	// Returns ErrPostNotFound if no rows were affected.
	DeletePost(ctx context.Context, id uuid.UUID) error
}
