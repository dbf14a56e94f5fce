package impl

import (
	"context"
	"testing"

	domainerrors "localhelp/internal/domain/errors"
	"localhelp/internal/domain/repository"
	"localhelp/internal/errors"
	"localhelp/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestAddressService_GetAddress_NotSet(t *testing.T) {
	svc, addressRepo := newAddressServiceForTest(t)
	ctx := context.Background()

	addressRepo.EXPECT().
		FindAddressByUser(ctx, "user-1").
		Return(nil, repository.ErrAddressNotFound)

	address, err := svc.GetAddress(ctx, "user-1")
	assert.Nil(t, address)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotSet))
}

func TestAddressService_SetAddress_MissingFullAddress(t *testing.T) {
	svc, _ := newAddressServiceForTest(t)

	address, err := svc.SetAddress(context.Background(), "user-1", &usecase.SetAddressInput{
		FullAddress: "   ",
		Latitude:    25.0330,
		Longitude:   121.5654,
	})
	assert.Nil(t, address)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestAddressService_SetAddress_CoordinateOutOfRange(t *testing.T) {
	svc, _ := newAddressServiceForTest(t)

	address, err := svc.SetAddress(context.Background(), "user-1", &usecase.SetAddressInput{
		FullAddress: "Somewhere",
		Latitude:    91,
		Longitude:   0,
	})
	assert.Nil(t, address)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestAddressService_VerifyAddress_NoAddressSet(t *testing.T) {
	svc, addressRepo := newAddressServiceForTest(t)
	ctx := context.Background()

	addressRepo.EXPECT().
		FindAddressByUser(ctx, "user-1").
		Return(nil, repository.ErrAddressNotFound)

	result, err := svc.VerifyAddress(ctx, "user-1", 25.0330, 121.5654)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotSet))
}

func TestAddressService_VerifyAddress_InvalidPosition(t *testing.T) {
	svc, _ := newAddressServiceForTest(t)

	result, err := svc.VerifyAddress(context.Background(), "user-1", 200, 200)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}
