package impl

import (
	"context"
	"testing"
	"time"

	"localhelp/internal/domain/entity"
	domainerrors "localhelp/internal/domain/errors"
	"localhelp/internal/domain/repository"
	"localhelp/internal/errors"
	mockRepo "localhelp/internal/mocks/repository"
	"localhelp/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLostFoundServiceForTest(t *testing.T) (usecase.LostFoundUsecase, *mockRepo.MockLostFoundRepository) {
	t.Helper()

	lostFoundRepo := mockRepo.NewMockLostFoundRepository(t)
	svc := NewLostFoundService(lostFoundRepo, newTestLogger())

	return svc, lostFoundRepo
}

func TestLostFoundService_CreateItem_Success(t *testing.T) {
	svc, lostFoundRepo := newLostFoundServiceForTest(t)
	ctx := context.Background()

	lostFoundRepo.EXPECT().
		CreateItem(ctx, mock.AnythingOfType("*entity.LostFoundItem")).
		Run(func(_ context.Context, item *entity.LostFoundItem) {
			item.ID = uuid.New()
		}).
		Return(nil)

	item, err := svc.CreateItem(ctx, "user-1", &usecase.CreateLostFoundInput{
		Type:      entity.LostFoundTypeLost,
		Title:     "Lost tabby cat",
		Category:  "pet",
		Latitude:  25.0330,
		Longitude: 121.5654,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.LostFoundStatusActive, item.Status)
	assert.Equal(t, entity.ContactMethodPlatform, item.ContactMethod)
	assert.False(t, item.Date.IsZero())
}

func TestLostFoundService_CreateItem_KeepsProvidedDate(t *testing.T) {
	svc, lostFoundRepo := newLostFoundServiceForTest(t)
	ctx := context.Background()

	date := time.Date(2026, 8, 20, 18, 0, 0, 0, time.UTC)

	lostFoundRepo.EXPECT().
		CreateItem(ctx, mock.AnythingOfType("*entity.LostFoundItem")).
		Return(nil)

	item, err := svc.CreateItem(ctx, "user-1", &usecase.CreateLostFoundInput{
		Type:          entity.LostFoundTypeFound,
		Title:         "Found keys",
		Latitude:      25.0330,
		Longitude:     121.5654,
		ContactMethod: entity.ContactMethodCustom,
		ContactInfo:   "line: @keys",
		Date:          date,
	})
	require.NoError(t, err)
	assert.Equal(t, date, item.Date)
	assert.Equal(t, entity.ContactMethodCustom, item.ContactMethod)
}

func TestLostFoundService_CreateItem_Validation(t *testing.T) {
	svc, _ := newLostFoundServiceForTest(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.CreateLostFoundInput
	}{
		{"invalid type", &usecase.CreateLostFoundInput{Type: "misplaced", Title: "x", Latitude: 25, Longitude: 121}},
		{"empty title", &usecase.CreateLostFoundInput{Type: entity.LostFoundTypeLost, Title: " ", Latitude: 25, Longitude: 121}},
		{"coordinate out of range", &usecase.CreateLostFoundInput{Type: entity.LostFoundTypeLost, Title: "x", Latitude: 95, Longitude: 121}},
		{"custom contact without info", &usecase.CreateLostFoundInput{
			Type: entity.LostFoundTypeLost, Title: "x", Latitude: 25, Longitude: 121,
			ContactMethod: entity.ContactMethodCustom,
		}},
		{"unknown contact method", &usecase.CreateLostFoundInput{
			Type: entity.LostFoundTypeLost, Title: "x", Latitude: 25, Longitude: 121,
			ContactMethod: "phone",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := svc.CreateItem(ctx, "user-1", tt.input)
			assert.Nil(t, item)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
		})
	}
}

func TestLostFoundService_UpdateItemStatus_OwnerResolves(t *testing.T) {
	svc, lostFoundRepo := newLostFoundServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	lostFoundRepo.EXPECT().
		FindItemByID(ctx, id).
		Return(&entity.LostFoundItem{ID: id, UserID: "user-1", Status: entity.LostFoundStatusActive}, nil)

	lostFoundRepo.EXPECT().
		UpdateItemStatus(ctx, id, entity.LostFoundStatusResolved).
		Return(nil)

	item, err := svc.UpdateItemStatus(ctx, "user-1", id, entity.LostFoundStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, entity.LostFoundStatusResolved, item.Status)
}

func TestLostFoundService_UpdateItemStatus_NotOwnerForbidden(t *testing.T) {
	svc, lostFoundRepo := newLostFoundServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	lostFoundRepo.EXPECT().
		FindItemByID(ctx, id).
		Return(&entity.LostFoundItem{ID: id, UserID: "someone-else"}, nil)

	item, err := svc.UpdateItemStatus(ctx, "user-1", id, entity.LostFoundStatusResolved)
	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestLostFoundService_UpdateItemStatus_InvalidStatus(t *testing.T) {
	svc, _ := newLostFoundServiceForTest(t)

	item, err := svc.UpdateItemStatus(context.Background(), "user-1", uuid.New(), "archived")
	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestLostFoundService_GetItem_NotFound(t *testing.T) {
	svc, lostFoundRepo := newLostFoundServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	lostFoundRepo.EXPECT().
		FindItemByID(ctx, id).
		Return(nil, repository.ErrLostFoundItemNotFound)

	item, err := svc.GetItem(ctx, id)
	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestLostFoundService_GetUserItems_FiltersByStatus(t *testing.T) {
	svc, lostFoundRepo := newLostFoundServiceForTest(t)
	ctx := context.Background()

	expected := []*entity.LostFoundItem{
		{ID: uuid.New(), UserID: "user-1", Status: entity.LostFoundStatusResolved},
	}

	lostFoundRepo.EXPECT().
		FindItemsByUser(ctx, "user-1", repository.LostFoundFilter{Status: entity.LostFoundStatusResolved}).
		Return(expected, nil)

	items, err := svc.GetUserItems(ctx, "user-1", "", entity.LostFoundStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, expected, items)
}

func TestLostFoundService_GetUserItems_FiltersByType(t *testing.T) {
	svc, lostFoundRepo := newLostFoundServiceForTest(t)
	ctx := context.Background()

	expected := []*entity.LostFoundItem{
		{ID: uuid.New(), UserID: "user-1", Type: entity.LostFoundTypeFound},
	}

	lostFoundRepo.EXPECT().
		FindItemsByUser(ctx, "user-1", repository.LostFoundFilter{
			Type:   entity.LostFoundTypeFound,
			Status: entity.LostFoundStatusActive,
		}).
		Return(expected, nil)

	items, err := svc.GetUserItems(ctx, "user-1", entity.LostFoundTypeFound, entity.LostFoundStatusActive)
	require.NoError(t, err)
	assert.Equal(t, expected, items)
}

func TestLostFoundService_GetUserItems_InvalidTypeRejected(t *testing.T) {
	svc, _ := newLostFoundServiceForTest(t)

	items, err := svc.GetUserItems(context.Background(), "user-1", "misplaced", "")
	assert.Nil(t, items)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestLostFoundService_ListCategories(t *testing.T) {
	svc, lostFoundRepo := newLostFoundServiceForTest(t)
	ctx := context.Background()

	lostFoundRepo.EXPECT().
		ListCategories(ctx).
		Return([]string{"document", "pet"}, nil)

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"document", "pet"}, categories)
}
