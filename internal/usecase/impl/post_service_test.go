package impl

import (
	"context"
	"testing"

	"localhelp/internal/domain/entity"
	mockRepo "localhelp/internal/mocks/repository"
	mockService "localhelp/internal/mocks/service"
	"localhelp/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPostServiceForTest(t *testing.T) (usecase.PostUsecase, *mockRepo.MockPostRepository, *mockService.MockQRCodeService) {
	t.Helper()

	postRepo := mockRepo.NewMockPostRepository(t)
	qrService := mockService.NewMockQRCodeService(t)
	svc := NewPostService(postRepo, qrService, newTestLogger())

	return svc, postRepo, qrService
}

func TestPostService_CreatePost_Success(t *testing.T) {
	svc, postRepo, _ := newPostServiceForTest(t)
	ctx := context.Background()

	postRepo.EXPECT().
		CreatePost(ctx, mock.AnythingOfType("*entity.Post")).
		Run(func(_ context.Context, post *entity.Post) {
			post.ID = uuid.New()
		}).
		Return(nil)

	post, err := svc.CreatePost(ctx, "user-1", &usecase.CreatePostInput{
		Skill:       "  Dog walking  ",
		Description: "Weekday evenings",
		Latitude:    25.0330,
		Longitude:   121.5654,
	})
	require.NoError(t, err)
	assert.Equal(t, "Dog walking", post.Skill)
	assert.Equal(t, "user-1", post.UserID)
	assert.NotEqual(t, uuid.Nil, post.ID)
}

func TestPostService_GetPost(t *testing.T) {
	svc, postRepo, _ := newPostServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	expected := &entity.Post{ID: id, Skill: "Tutoring", UserID: "user-1"}

	postRepo.EXPECT().
		FindPostByID(ctx, id).
		Return(expected, nil)

	post, err := svc.GetPost(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, expected, post)
}

func TestPostService_GetUserPosts(t *testing.T) {
	svc, postRepo, _ := newPostServiceForTest(t)
	ctx := context.Background()

	expected := []*entity.Post{
		{ID: uuid.New(), Skill: "Tutoring", UserID: "user-1"},
		{ID: uuid.New(), Skill: "Gardening", UserID: "user-1"},
	}

	postRepo.EXPECT().
		FindPostsByUser(ctx, "user-1").
		Return(expected, nil)

	posts, err := svc.GetUserPosts(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, expected, posts)
}

func TestPostService_DeletePost_OwnerDeletes(t *testing.T) {
	svc, postRepo, _ := newPostServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	postRepo.EXPECT().
		FindPostByID(ctx, id).
		Return(&entity.Post{ID: id, UserID: "user-1"}, nil)

	postRepo.EXPECT().
		DeletePost(ctx, id).
		Return(nil)

	err := svc.DeletePost(ctx, "user-1", id)
	require.NoError(t, err)
}

func TestPostService_GeneratePostQR(t *testing.T) {
	svc, postRepo, qrService := newPostServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	postRepo.EXPECT().
		FindPostByID(ctx, id).
		Return(&entity.Post{ID: id, UserID: "user-1"}, nil)

	qrService.EXPECT().
		GeneratePostQR(id).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := svc.GeneratePostQR(ctx, id)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
