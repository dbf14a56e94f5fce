package repository

import (
	"context"

	"localhelp/internal/domain/entity"
	"localhelp/internal/errors"

	"github.com/google/uuid"
)

// ErrLostFoundItemNotFound is returned when a lost & found item is not found.
var ErrLostFoundItemNotFound = errors.New("lost & found item not found")

// LostFoundFilter narrows candidate queries. Zero values mean "no filter".
// Filters are applied as parameterized predicates in SQL, never interpolated
// into query text.
type LostFoundFilter struct {
	Type     entity.LostFoundType
	Category string
	Status   entity.LostFoundStatus
}

// LostFoundRepository defines the interface for lost & found persistence.
type LostFoundRepository interface {
	// CreateItem persists a new lost & found item.
	CreateItem(ctx context.Context, item *entity.LostFoundItem) error

	// FindItemByID retrieves an item by its unique ID.
	// Returns ErrLostFoundItemNotFound if no such item exists.
	FindItemByID(ctx context.Context, id uuid.UUID) (*entity.LostFoundItem, error)

	// FindActiveItems retrieves active items matching the type/category
	// filter, newest first. Distance filtering happens in the search service.
	FindActiveItems(ctx context.Context, filter LostFoundFilter) ([]*entity.LostFoundItem, error)

	// FindItemsByUser retrieves a user's own items matching the filter, newest first.
	FindItemsByUser(ctx context.Context, userID string, filter LostFoundFilter) ([]*entity.LostFoundItem, error)

	// UpdateItemStatus sets the lifecycle status of an item.
	// Returns ErrLostFoundItemNotFound if no rows were affected.
	UpdateItemStatus(ctx context.Context, id uuid.UUID, status entity.LostFoundStatus) error

	// ListCategories returns the distinct non-empty categories in use, ascending.
	ListCategories(ctx context.Context) ([]string, error)
}
