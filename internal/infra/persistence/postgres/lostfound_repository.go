package postgres

import (
	"context"

	"localhelp/internal/domain/entity"
	domainerrors "localhelp/internal/domain/errors"
	"localhelp/internal/domain/repository"
	"localhelp/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// lostFoundRepository implements the domain's LostFoundRepository interface.
type lostFoundRepository struct {
	db *gorm.DB
}

// NewLostFoundRepository is the constructor for lostFoundRepository.
func NewLostFoundRepository(db *gorm.DB) repository.LostFoundRepository {
	return &lostFoundRepository{db: db}
}

// CreateItem persists a new lost & found item.
func (repo *lostFoundRepository) CreateItem(ctx context.Context, item *entity.LostFoundItem) error {
	itemM := fromLostFoundDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("missing required item information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("invalid item values")
		}

		return domainerrors.NewDatabaseExecuteError("failed to create lost & found item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// FindItemByID retrieves an item by its unique ID.
func (repo *lostFoundRepository) FindItemByID(ctx context.Context, id uuid.UUID) (*entity.LostFoundItem, error) {
	var itemM model.LostFoundItemModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLostFoundItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find lost & found item by ID")
	}

	return toLostFoundDomain(&itemM), nil
}

// FindActiveItems retrieves active items matching the filter, newest first.
func (repo *lostFoundRepository) FindActiveItems(ctx context.Context, filter repository.LostFoundFilter) ([]*entity.LostFoundItem, error) {
	query := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.LostFoundStatusActive))
	query = applyLostFoundFilter(query, filter)

	var itemModels []*model.LostFoundItemModel
	if err := query.Order("created_at DESC").Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active lost & found items")
	}

	return toLostFoundDomainSlice(itemModels), nil
}

// FindItemsByUser retrieves a user's own items matching the filter, newest first.
func (repo *lostFoundRepository) FindItemsByUser(ctx context.Context, userID string, filter repository.LostFoundFilter) ([]*entity.LostFoundItem, error) {
	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID)
	query = applyLostFoundFilter(query, filter)
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var itemModels []*model.LostFoundItemModel
	if err := query.Order("created_at DESC").Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find lost & found items by user")
	}

	return toLostFoundDomainSlice(itemModels), nil
}

// UpdateItemStatus sets the lifecycle status of an item.
func (repo *lostFoundRepository) UpdateItemStatus(ctx context.Context, id uuid.UUID, status entity.LostFoundStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LostFoundItemModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError("failed to update lost & found item status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLostFoundItemNotFound
	}

	return nil
}

// ListCategories returns the distinct non-empty categories in use, ascending.
func (repo *lostFoundRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := repo.db.WithContext(ctx).
		Model(&model.LostFoundItemModel{}).
		Distinct("category").
		Where("category <> ''").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list lost & found categories")
	}

	return categories, nil
}

// applyLostFoundFilter adds the optional type/category predicates. Values are
// always bound as parameters.
func applyLostFoundFilter(query *gorm.DB, filter repository.LostFoundFilter) *gorm.DB {
	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	return query
}

func toLostFoundDomainSlice(itemModels []*model.LostFoundItemModel) []*entity.LostFoundItem {
	items := make([]*entity.LostFoundItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toLostFoundDomain(itemM))
	}

	return items
}

// toLostFoundDomain converts a GORM model to a domain entity.
func toLostFoundDomain(data *model.LostFoundItemModel) *entity.LostFoundItem {
	return &entity.LostFoundItem{
		ID:            data.ID,
		Type:          entity.LostFoundType(data.Type),
		Title:         data.Title,
		Description:   data.Description,
		Category:      data.Category,
		Location:      data.Location,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		ImageURL:      data.ImageURL,
		ContactMethod: entity.ContactMethod(data.ContactMethod),
		ContactInfo:   data.ContactInfo,
		Status:        entity.LostFoundStatus(data.Status),
		UserID:        data.UserID,
		Date:          data.Date,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromLostFoundDomain converts a domain entity to a GORM model.
func fromLostFoundDomain(data *entity.LostFoundItem) *model.LostFoundItemModel {
	return &model.LostFoundItemModel{
		ID:            data.ID,
		Type:          string(data.Type),
		Title:         data.Title,
		Description:   data.Description,
		Category:      data.Category,
		Location:      data.Location,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		ImageURL:      data.ImageURL,
		ContactMethod: string(data.ContactMethod),
		ContactInfo:   data.ContactInfo,
		Status:        string(data.Status),
		UserID:        data.UserID,
		Date:          data.Date,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
