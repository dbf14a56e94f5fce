package entity

import (
	"time"

	"localhelp/internal/domain/geo"

	"github.com/google/uuid"
)

// RegisteredAddress is a user's single stored home location. It serves as a
// stable search origin when live device geolocation is unavailable.
// Verified is derived: it is set true only after the user's live coordinate
// has matched the stored coordinate within the verification tolerance, and it
// resets to false whenever the address changes.
type RegisteredAddress struct {
	ID          uuid.UUID
	UserID      string // Identity-provider ID; at most one address per user.
	FullAddress string // The full, human-readable street address.
	Latitude    float64
	Longitude   float64
	Verified    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Coordinate returns the stored location as a geo.Coordinate.
func (a *RegisteredAddress) Coordinate() geo.Coordinate {
	return geo.Coordinate{Latitude: a.Latitude, Longitude: a.Longitude}
}
