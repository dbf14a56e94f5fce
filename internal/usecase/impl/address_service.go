package impl

import (
	"context"
	"log/slog"
	"strings"

	"localhelp/config"
	"localhelp/internal/domain/entity"
	domainerrors "localhelp/internal/domain/errors"
	"localhelp/internal/domain/geo"
	"localhelp/internal/domain/repository"
	"localhelp/internal/errors"
	"localhelp/internal/usecase"
)

type addressService struct {
	addressRepo repository.AddressRepository
	toleranceKm float64
	logger      *slog.Logger
}

// NewAddressService creates a new address service instance
func NewAddressService(
	addressRepo repository.AddressRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AddressUsecase {
	toleranceKm := 1.5
	if cfg.Search != nil && cfg.Search.VerificationToleranceKm > 0 {
		toleranceKm = cfg.Search.VerificationToleranceKm
	}

	return &addressService{
		addressRepo: addressRepo,
		toleranceKm: toleranceKm,
		logger:      logger,
	}
}

// GetAddress retrieves the user's registered address.
func (s *addressService) GetAddress(ctx context.Context, userID string) (*entity.RegisteredAddress, error) {
	address, err := s.addressRepo.FindAddressByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotSet
		}

		return nil, err
	}

	return address, nil
}

// SetAddress creates or replaces the user's registered address. Replacing
// always clears the verified flag; the new location has not been proven yet.
func (s *addressService) SetAddress(ctx context.Context, userID string, input *usecase.SetAddressInput) (*entity.RegisteredAddress, error) {
	fullAddress := strings.TrimSpace(input.FullAddress)
	if fullAddress == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("full address is required")
	}

	coord := geo.Coordinate{Latitude: input.Latitude, Longitude: input.Longitude}
	if !coord.Valid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("latitude or longitude is out of range")
	}

	address := &entity.RegisteredAddress{
		UserID:      userID,
		FullAddress: fullAddress,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Verified:    false,
	}

	if err := s.addressRepo.SaveAddress(ctx, address); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "registered address saved",
		slog.String("user_id", userID))

	return address, nil
}

// VerifyAddress compares the reported live position with the stored address.
// Both sides of the comparison use the same great-circle routine as nearby
// search. A position inside the tolerance marks the address verified.
func (s *addressService) VerifyAddress(ctx context.Context, userID string, latitude, longitude float64) (*usecase.VerifyAddressResult, error) {
	position := geo.Coordinate{Latitude: latitude, Longitude: longitude}
	if !position.Valid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("latitude or longitude is out of range")
	}

	address, err := s.addressRepo.FindAddressByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotSet
		}

		return nil, err
	}

	distanceKm := geo.DistanceKm(position, address.Coordinate())
	if distanceKm > s.toleranceKm {
		return &usecase.VerifyAddressResult{Verified: false, DistanceKm: distanceKm}, nil
	}

	if err := s.addressRepo.MarkVerified(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotSet
		}

		return nil, err
	}

	s.logger.InfoContext(ctx, "registered address verified",
		slog.String("user_id", userID),
		slog.Float64("distance_km", distanceKm))

	return &usecase.VerifyAddressResult{Verified: true, DistanceKm: distanceKm}, nil
}
