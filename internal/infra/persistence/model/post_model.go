// Package model holds the GORM table mappings. The structs are exported so
// the GORM Gen tool can reference them from cmd/gen.
package model

import (
	"time"

	"github.com/google/uuid"
)

// PostModel mirrors the 'posts' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type PostModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Skill       string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	Latitude    float64   `gorm:"type:decimal(10,8);not null"`
	Longitude   float64   `gorm:"type:decimal(11,8);not null"`
	UserID      string    `gorm:"type:varchar(255);not null;index"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
