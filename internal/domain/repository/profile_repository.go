package repository

import (
	"context"

	"localhelp/internal/domain/entity"
	"localhelp/internal/errors"
)

// ErrProfileNotFound is returned when no profile is cached for a user ID.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the interface for the identity projection cache.
type ProfileRepository interface {
	// UpsertProfile inserts or refreshes the cached profile for a user.
	UpsertProfile(ctx context.Context, profile *entity.Profile) error

	// FindProfileByUser retrieves the cached profile of a user.
	// Returns ErrProfileNotFound when absent.
	FindProfileByUser(ctx context.Context, userID string) (*entity.Profile, error)

	// FindProfilesByUsers retrieves cached profiles for a set of user IDs.
	// Missing users are simply omitted from the result map.
	FindProfilesByUsers(ctx context.Context, userIDs []string) (map[string]*entity.Profile, error)
}
