package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"localhelp/internal/domain/entity"
	domainerrors "localhelp/internal/domain/errors"
	"localhelp/internal/domain/geo"
	"localhelp/internal/domain/repository"
	"localhelp/internal/errors"
	"localhelp/internal/usecase"

	"github.com/google/uuid"
)

type lostFoundService struct {
	lostFoundRepo repository.LostFoundRepository
	logger        *slog.Logger
}

// NewLostFoundService creates a new lost & found service instance
func NewLostFoundService(
	lostFoundRepo repository.LostFoundRepository,
	logger *slog.Logger,
) usecase.LostFoundUsecase {
	return &lostFoundService{
		lostFoundRepo: lostFoundRepo,
		logger:        logger,
	}
}

// CreateItem publishes a new lost & found report owned by userID.
func (s *lostFoundService) CreateItem(ctx context.Context, userID string, input *usecase.CreateLostFoundInput) (*entity.LostFoundItem, error) {
	if input.Type != entity.LostFoundTypeLost && input.Type != entity.LostFoundTypeFound {
		return nil, domainerrors.ErrInvalidInput.WithDetails("type must be lost or found")
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("title is required")
	}

	coord := geo.Coordinate{Latitude: input.Latitude, Longitude: input.Longitude}
	if !coord.Valid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("latitude or longitude is out of range")
	}

	contactMethod := input.ContactMethod
	if contactMethod == "" {
		contactMethod = entity.ContactMethodPlatform
	}
	switch contactMethod {
	case entity.ContactMethodPlatform:
	case entity.ContactMethodCustom:
		if strings.TrimSpace(input.ContactInfo) == "" {
			return nil, domainerrors.ErrInvalidInput.WithDetails("contact info is required for custom contact method")
		}
	default:
		return nil, domainerrors.ErrInvalidInput.WithDetails("contact method must be platform or custom")
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	item := &entity.LostFoundItem{
		Type:          input.Type,
		Title:         title,
		Description:   strings.TrimSpace(input.Description),
		Category:      strings.TrimSpace(input.Category),
		Location:      strings.TrimSpace(input.Location),
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		ImageURL:      input.ImageURL,
		ContactMethod: contactMethod,
		ContactInfo:   strings.TrimSpace(input.ContactInfo),
		Status:        entity.LostFoundStatusActive,
		UserID:        userID,
		Date:          date,
	}

	if err := s.lostFoundRepo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "lost & found item created",
		slog.String("item_id", item.ID.String()),
		slog.String("type", string(item.Type)),
		slog.String("user_id", userID))

	return item, nil
}

// GetItem retrieves a single item by ID.
func (s *lostFoundService) GetItem(ctx context.Context, id uuid.UUID) (*entity.LostFoundItem, error) {
	item, err := s.lostFoundRepo.FindItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLostFoundItemNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, err
	}

	return item, nil
}

// GetUserItems retrieves a user's own items, newest first, optionally
// narrowed by type and status.
func (s *lostFoundService) GetUserItems(ctx context.Context, userID string, itemType entity.LostFoundType, status entity.LostFoundStatus) ([]*entity.LostFoundItem, error) {
	if itemType != "" && itemType != entity.LostFoundTypeLost && itemType != entity.LostFoundTypeFound {
		return nil, domainerrors.ErrInvalidInput.WithDetails("type must be lost or found")
	}
	if status != "" && !validLostFoundStatus(status) {
		return nil, domainerrors.ErrInvalidInput.WithDetails("status must be active, resolved or expired")
	}

	return s.lostFoundRepo.FindItemsByUser(ctx, userID, repository.LostFoundFilter{Type: itemType, Status: status})
}

// UpdateItemStatus moves an item through its lifecycle. Only the owner may change it.
func (s *lostFoundService) UpdateItemStatus(ctx context.Context, userID string, id uuid.UUID, status entity.LostFoundStatus) (*entity.LostFoundItem, error) {
	if !validLostFoundStatus(status) {
		return nil, domainerrors.ErrInvalidInput.WithDetails("status must be active, resolved or expired")
	}

	item, err := s.lostFoundRepo.FindItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLostFoundItemNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, err
	}

	if item.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	if err := s.lostFoundRepo.UpdateItemStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrLostFoundItemNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, err
	}

	item.Status = status

	return item, nil
}

// ListCategories returns the distinct categories currently in use.
func (s *lostFoundService) ListCategories(ctx context.Context) ([]string, error) {
	return s.lostFoundRepo.ListCategories(ctx)
}

func validLostFoundStatus(status entity.LostFoundStatus) bool {
	switch status {
	case entity.LostFoundStatusActive, entity.LostFoundStatusResolved, entity.LostFoundStatusExpired:
		return true
	default:
		return false
	}
}
