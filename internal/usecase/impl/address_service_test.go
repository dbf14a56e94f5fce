package impl

import (
	"context"
	"testing"

	"localhelp/config"
	"localhelp/internal/domain/entity"
	"localhelp/internal/domain/geo"
	mockRepo "localhelp/internal/mocks/repository"
	"localhelp/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAddressServiceForTest(t *testing.T) (usecase.AddressUsecase, *mockRepo.MockAddressRepository) {
	t.Helper()

	addressRepo := mockRepo.NewMockAddressRepository(t)
	svc := NewAddressService(addressRepo, newTestConfig(), newTestLogger())

	return svc, addressRepo
}

func TestAddressService_SetAddress_ClearsVerification(t *testing.T) {
	svc, addressRepo := newAddressServiceForTest(t)
	ctx := context.Background()

	addressRepo.EXPECT().
		SaveAddress(ctx, mock.AnythingOfType("*entity.RegisteredAddress")).
		Run(func(_ context.Context, address *entity.RegisteredAddress) {
			assert.False(t, address.Verified)
		}).
		Return(nil)

	address, err := svc.SetAddress(ctx, "user-1", &usecase.SetAddressInput{
		FullAddress: "No. 7, Section 5, Xinyi Road, Taipei",
		Latitude:    25.0330,
		Longitude:   121.5654,
	})
	require.NoError(t, err)
	assert.False(t, address.Verified)
	assert.Equal(t, "user-1", address.UserID)
}

func TestAddressService_VerifyAddress_WithinTolerance(t *testing.T) {
	svc, addressRepo := newAddressServiceForTest(t)
	ctx := context.Background()

	addressRepo.EXPECT().
		FindAddressByUser(ctx, "user-1").
		Return(&entity.RegisteredAddress{
			UserID:    "user-1",
			Latitude:  25.0330,
			Longitude: 121.5654,
		}, nil)

	addressRepo.EXPECT().
		MarkVerified(ctx, "user-1").
		Return(nil)

	// Roughly 1 km north of the stored address.
	result, err := svc.VerifyAddress(ctx, "user-1", 25.0330+1.0/111.19, 121.5654)
	require.NoError(t, err)
	assert.True(t, result.Verified)
	assert.InDelta(t, 1.0, result.DistanceKm, 0.05)
}

func TestAddressService_VerifyAddress_ExactlyAtToleranceVerifies(t *testing.T) {
	addressRepo := mockRepo.NewMockAddressRepository(t)
	ctx := context.Background()

	stored := geo.Coordinate{Latitude: 25.0330, Longitude: 121.5654}
	position := geo.Coordinate{Latitude: 25.0330 + 1.5/111.19, Longitude: 121.5654}

	// Pin the tolerance to the exact distance between the two points; the
	// service computes the same value through the shared routine, so this
	// lands precisely on the boundary. The boundary counts as present.
	cfg := &config.Config{
		Search: &config.SearchConfig{
			VerificationToleranceKm: geo.DistanceKm(position, stored),
		},
	}
	svc := NewAddressService(addressRepo, cfg, newTestLogger())

	addressRepo.EXPECT().
		FindAddressByUser(ctx, "user-1").
		Return(&entity.RegisteredAddress{
			UserID:    "user-1",
			Latitude:  stored.Latitude,
			Longitude: stored.Longitude,
		}, nil)

	addressRepo.EXPECT().
		MarkVerified(ctx, "user-1").
		Return(nil)

	result, err := svc.VerifyAddress(ctx, "user-1", position.Latitude, position.Longitude)
	require.NoError(t, err)
	assert.True(t, result.Verified)
	assert.Equal(t, cfg.Search.VerificationToleranceKm, result.DistanceKm)
}

func TestAddressService_VerifyAddress_BeyondTolerance(t *testing.T) {
	svc, addressRepo := newAddressServiceForTest(t)
	ctx := context.Background()

	addressRepo.EXPECT().
		FindAddressByUser(ctx, "user-1").
		Return(&entity.RegisteredAddress{
			UserID:    "user-1",
			Latitude:  25.0330,
			Longitude: 121.5654,
		}, nil)

	// No MarkVerified call: the address stays unverified.
	result, err := svc.VerifyAddress(ctx, "user-1", 25.0330+2.0/111.19, 121.5654)
	require.NoError(t, err)
	assert.False(t, result.Verified)
	assert.InDelta(t, 2.0, result.DistanceKm, 0.05)
}

func TestAddressService_GetAddress(t *testing.T) {
	svc, addressRepo := newAddressServiceForTest(t)
	ctx := context.Background()

	stored := &entity.RegisteredAddress{
		UserID:      "user-1",
		FullAddress: "No. 7, Section 5, Xinyi Road, Taipei",
		Latitude:    25.0330,
		Longitude:   121.5654,
		Verified:    true,
	}

	addressRepo.EXPECT().
		FindAddressByUser(ctx, "user-1").
		Return(stored, nil)

	address, err := svc.GetAddress(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, stored, address)
}
