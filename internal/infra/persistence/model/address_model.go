package model

import (
	"time"

	"github.com/google/uuid"
)

// RegisteredAddressModel mirrors the 'registered_addresses' table.
// The unique index on UserID enforces the one-address-per-user rule.
type RegisteredAddressModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      string    `gorm:"type:varchar(255);not null;uniqueIndex:uniq_registered_addresses_user"`
	FullAddress string    `gorm:"type:text;not null"`
	Latitude    float64   `gorm:"type:decimal(10,8);not null"`
	Longitude   float64   `gorm:"type:decimal(11,8);not null"`
	Verified    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RegisteredAddressModel) TableName() string {
	return "registered_addresses"
}
