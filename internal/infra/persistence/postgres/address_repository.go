package postgres

import (
	"context"

	"localhelp/internal/domain/entity"
	domainerrors "localhelp/internal/domain/errors"
	"localhelp/internal/domain/repository"
	"localhelp/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// addressRepository implements the domain's AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// FindAddressByUser retrieves the registered address of a user.
func (repo *addressRepository) FindAddressByUser(ctx context.Context, userID string) (*entity.RegisteredAddress, error) {
	var addressM model.RegisteredAddressModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find registered address by user")
	}

	return toRegisteredAddressDomain(&addressM), nil
}

// SaveAddress creates the user's address or replaces the existing one.
// The write is a single upsert against the user_id unique index, so two
// concurrent saves for the same user cannot produce two rows.
func (repo *addressRepository) SaveAddress(ctx context.Context, address *entity.RegisteredAddress) error {
	addressM := fromRegisteredAddressDomain(address)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"full_address", "latitude", "longitude", "verified", "updated_at",
			}),
		}).
		Create(addressM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError("failed to save registered address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// MarkVerified flags the user's address as verified.
func (repo *addressRepository) MarkVerified(ctx context.Context, userID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RegisteredAddressModel{}).
		Where("user_id = ?", userID).
		Update("verified", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError("failed to mark registered address verified")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// toRegisteredAddressDomain converts a GORM model to a domain entity.
func toRegisteredAddressDomain(data *model.RegisteredAddressModel) *entity.RegisteredAddress {
	return &entity.RegisteredAddress{
		ID:          data.ID,
		UserID:      data.UserID,
		FullAddress: data.FullAddress,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Verified:    data.Verified,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromRegisteredAddressDomain converts a domain entity to a GORM model.
func fromRegisteredAddressDomain(data *entity.RegisteredAddress) *model.RegisteredAddressModel {
	return &model.RegisteredAddressModel{
		ID:          data.ID,
		UserID:      data.UserID,
		FullAddress: data.FullAddress,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Verified:    data.Verified,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
