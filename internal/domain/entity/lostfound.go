package entity

import (
	"time"

	"localhelp/internal/domain/geo"

	"github.com/google/uuid"
)

// LostFoundType distinguishes lost reports from found reports.
type LostFoundType string

const (
	LostFoundTypeLost  LostFoundType = "lost"
	LostFoundTypeFound LostFoundType = "found"
)

// LostFoundStatus is the lifecycle state of a lost & found item.
type LostFoundStatus string

const (
	LostFoundStatusActive   LostFoundStatus = "active"
	LostFoundStatusResolved LostFoundStatus = "resolved"
	LostFoundStatusExpired  LostFoundStatus = "expired"
)

// ContactMethod selects how the item owner wants to be reached.
type ContactMethod string

const (
	// ContactMethodPlatform routes contact through in-app conversations.
	ContactMethodPlatform ContactMethod = "platform"
	// ContactMethodCustom exposes the free-text ContactInfo instead.
	ContactMethodCustom ContactMethod = "custom"
)

// LostFoundItem is a lost or found report published at a location.
type LostFoundItem struct {
	ID            uuid.UUID
	Type          LostFoundType
	Title         string
	Description   string
	Category      string // Optional, e.g., "pet", "document".
	Location      string // Human-readable named location.
	Latitude      float64
	Longitude     float64
	ImageURL      string
	ContactMethod ContactMethod
	ContactInfo   string // Only used when ContactMethod is "custom".
	Status        LostFoundStatus
	UserID        string
	Date          time.Time // When the item was lost/found.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Coordinate returns the item location as a geo.Coordinate.
func (i *LostFoundItem) Coordinate() geo.Coordinate {
	return geo.Coordinate{Latitude: i.Latitude, Longitude: i.Longitude}
}

// NearbyLostFoundItem is a read-only projection of LostFoundItem annotated
// with the distance (in kilometers) from a query origin.
type NearbyLostFoundItem struct {
	LostFoundItem
	DistanceKm float64
}
