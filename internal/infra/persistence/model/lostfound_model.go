package model

import (
	"time"

	"github.com/google/uuid"
)

// LostFoundItemModel mirrors the 'lost_found_items' table.
type LostFoundItemModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Type          string    `gorm:"type:varchar(10);not null;index:idx_lost_found_items_on_state"`
	Title         string    `gorm:"type:varchar(200);not null"`
	Description   string    `gorm:"type:text"`
	Category      string    `gorm:"type:varchar(50);index"`
	Location      string    `gorm:"type:varchar(255)"`
	Latitude      float64   `gorm:"type:decimal(10,8);not null"`
	Longitude     float64   `gorm:"type:decimal(11,8);not null"`
	ImageURL      string    `gorm:"type:text"`
	ContactMethod string    `gorm:"type:varchar(20);not null;default:'platform'"`
	ContactInfo   string    `gorm:"type:varchar(255)"`
	Status        string    `gorm:"type:varchar(20);not null;default:'active';index:idx_lost_found_items_on_state"`
	UserID        string    `gorm:"type:varchar(255);not null;index"`
	Date          time.Time `gorm:"not null"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (LostFoundItemModel) TableName() string {
	return "lost_found_items"
}
