package model

import "time"

// ProfileModel mirrors the 'profiles' table, the local cache of identity
// provider users keyed by the provider's user ID.
type ProfileModel struct {
	UserID    string `gorm:"type:varchar(255);primaryKey"`
	Email     string `gorm:"type:varchar(255);not null"`
	Name      string `gorm:"type:varchar(100)"`
	AvatarURL string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
