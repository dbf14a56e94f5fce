package repository

import (
	"context"

	"localhelp/internal/domain/entity"
	"localhelp/internal/errors"
)

// ErrAddressNotFound is returned when a user has no registered address.
var ErrAddressNotFound = errors.New("registered address not found")

// AddressRepository defines the interface for registered-address persistence.
// Each user has at most one registered address; the storage layer enforces
// this with a unique constraint on the user ID.
type AddressRepository interface {
	// FindAddressByUser retrieves the registered address of a user.
	// Returns ErrAddressNotFound if the user has not set one.
	FindAddressByUser(ctx context.Context, userID string) (*entity.RegisteredAddress, error)

	// SaveAddress creates the user's address or replaces the existing one in a
	// single upsert. The caller is responsible for resetting Verified when the
	// location changes.
	SaveAddress(ctx context.Context, address *entity.RegisteredAddress) error

	// MarkVerified flags the user's address as verified.
	// Returns ErrAddressNotFound if the user has no address.
	MarkVerified(ctx context.Context, userID string) error
}
