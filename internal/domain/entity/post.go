// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"localhelp/internal/domain/geo"

	"github.com/google/uuid"
)

// Post is a skill-offer published by a user at a location.
type Post struct {
	ID          uuid.UUID // The unique identifier for the post.
	Skill       string    // The offered skill or help, e.g., "Dog walking".
	Description string    // Free-text description of the offer.
	Latitude    float64   // The geographic latitude.
	Longitude   float64   // The geographic longitude.
	UserID      string    // Identity-provider ID of the owner.
	CreatedAt   time.Time // Timestamp of when the post was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}

// Coordinate returns the post location as a geo.Coordinate.
func (p *Post) Coordinate() geo.Coordinate {
	return geo.Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
}

// NearbyPost is a read-only projection of Post annotated with the
// great-circle distance (in kilometers) from a query origin.
// It is computed per query and never persisted.
type NearbyPost struct {
	Post
	DistanceKm float64
}
