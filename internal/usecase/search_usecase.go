// Package usecase defines the application service interfaces and their
// input/output types.
package usecase

import (
	"context"

	"localhelp/internal/domain/entity"
)

// NearbyPostsInput carries the parameters of a nearby post search.
// Latitude and Longitude arrive as raw strings from the transport layer;
// when they do not parse into a usable coordinate the search falls back to
// the requester's registered address.
type NearbyPostsInput struct {
	UserID    string // Requester; their own posts are excluded from results.
	Latitude  string
	Longitude string
	RadiusKm  *float64 // nil means "use the configured default"; <= 0 is rejected.
	Skill     string   // Optional case-insensitive skill filter.
}

// NearbyLostFoundInput carries the parameters of a nearby lost & found search.
type NearbyLostFoundInput struct {
	UserID    string
	Latitude  string
	Longitude string
	RadiusKm  *float64
	Type      entity.LostFoundType // Optional.
	Category  string               // Optional.
}

// SearchUsecase is the proximity search service. Results are strictly inside
// the radius, ordered nearest first with newer entries winning ties.
// An origin that cannot be resolved yields empty results, not an error.
type SearchUsecase interface {
	// SearchNearbyPosts returns posts within the radius of the origin.
	SearchNearbyPosts(ctx context.Context, input *NearbyPostsInput) ([]*entity.NearbyPost, error)

	// SearchNearbyLostFound returns active lost & found items within the
	// radius of the origin.
	SearchNearbyLostFound(ctx context.Context, input *NearbyLostFoundInput) ([]*entity.NearbyLostFoundItem, error)
}
