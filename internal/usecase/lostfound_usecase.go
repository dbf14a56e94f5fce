package usecase

import (
	"context"
	"time"

	"localhelp/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateLostFoundInput carries the fields needed to publish a lost & found report.
type CreateLostFoundInput struct {
	Type          entity.LostFoundType
	Title         string
	Description   string
	Category      string
	Location      string
	Latitude      float64
	Longitude     float64
	ImageURL      string
	ContactMethod entity.ContactMethod
	ContactInfo   string
	Date          time.Time
}

// LostFoundUsecase defines the interface for lost & found management use cases
type LostFoundUsecase interface {
	// CreateItem publishes a new lost & found report owned by userID.
	CreateItem(ctx context.Context, userID string, input *CreateLostFoundInput) (*entity.LostFoundItem, error)

	// GetItem retrieves a single item by ID.
	GetItem(ctx context.Context, id uuid.UUID) (*entity.LostFoundItem, error)

	// GetUserItems retrieves a user's own items, newest first. Type and
	// status narrow the listing; zero values mean "no filter".
	GetUserItems(ctx context.Context, userID string, itemType entity.LostFoundType, status entity.LostFoundStatus) ([]*entity.LostFoundItem, error)

	// UpdateItemStatus moves an item through its lifecycle. Only the owner
	// may change it.
	UpdateItemStatus(ctx context.Context, userID string, id uuid.UUID, status entity.LostFoundStatus) (*entity.LostFoundItem, error)

	// ListCategories returns the distinct categories currently in use.
	ListCategories(ctx context.Context) ([]string, error)
}
