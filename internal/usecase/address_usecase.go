package usecase

import (
	"context"

	"localhelp/internal/domain/entity"
)

// SetAddressInput carries the fields of a registered address.
type SetAddressInput struct {
	FullAddress string
	Latitude    float64
	Longitude   float64
}

// VerifyAddressResult reports the outcome of an address verification attempt.
type VerifyAddressResult struct {
	Verified   bool
	DistanceKm float64 // Distance between the reported position and the stored address.
}

// AddressUsecase defines the interface for registered-address use cases.
// Each user keeps at most one address; saving again replaces it and clears
// any previous verification.
type AddressUsecase interface {
	// GetAddress retrieves the user's registered address.
	GetAddress(ctx context.Context, userID string) (*entity.RegisteredAddress, error)

	// SetAddress creates or replaces the user's registered address.
	SetAddress(ctx context.Context, userID string, input *SetAddressInput) (*entity.RegisteredAddress, error)

	// VerifyAddress compares the user's reported live position against the
	// stored address and, when they are within the configured tolerance,
	// marks the address verified.
	VerifyAddress(ctx context.Context, userID string, latitude, longitude float64) (*VerifyAddressResult, error)
}
