package entity

import "time"

// Profile is the locally cached projection of a user from the external
// identity provider: a display name and avatar, keyed by the provider's
// user ID. It is refreshed on sign-in and treated as a pure lookup elsewhere.
type Profile struct {
	UserID    string
	Email     string
	Name      string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}
