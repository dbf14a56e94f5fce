package impl

import (
	"context"
	"testing"

	"localhelp/internal/domain/entity"
	domainerrors "localhelp/internal/domain/errors"
	"localhelp/internal/domain/repository"
	"localhelp/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestConversationService_StartConversation_PostNotFound(t *testing.T) {
	svc, _, postRepo, _, _ := newConversationServiceForTest(t)
	ctx := context.Background()

	postID := uuid.New()
	postRepo.EXPECT().
		FindPostByID(ctx, postID).
		Return(nil, repository.ErrPostNotFound)

	conversation, created, err := svc.StartConversation(ctx, "sender", postID, "")
	assert.Nil(t, conversation)
	assert.False(t, created)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestConversationService_StartConversation_OwnPostWithoutCounterpartRejected(t *testing.T) {
	svc, _, postRepo, _, _ := newConversationServiceForTest(t)
	ctx := context.Background()

	postID := uuid.New()
	postRepo.EXPECT().
		FindPostByID(ctx, postID).
		Return(&entity.Post{ID: postID, UserID: "owner"}, nil)

	conversation, created, err := svc.StartConversation(ctx, "owner", postID, "")
	assert.Nil(t, conversation)
	assert.False(t, created)
	assert.True(t, errors.Is(err, domainerrors.ErrSelfContact))
}

func TestConversationService_StartConversation_SelfCounterpartRejected(t *testing.T) {
	svc, _, postRepo, _, _ := newConversationServiceForTest(t)
	ctx := context.Background()

	postID := uuid.New()
	postRepo.EXPECT().
		FindPostByID(ctx, postID).
		Return(&entity.Post{ID: postID, UserID: "owner"}, nil)

	conversation, created, err := svc.StartConversation(ctx, "owner", postID, "owner")
	assert.Nil(t, conversation)
	assert.False(t, created)
	assert.True(t, errors.Is(err, domainerrors.ErrSelfContact))
}

func TestConversationService_StartConversation_PairMustIncludeOwner(t *testing.T) {
	svc, _, postRepo, _, _ := newConversationServiceForTest(t)
	ctx := context.Background()

	postID := uuid.New()
	postRepo.EXPECT().
		FindPostByID(ctx, postID).
		Return(&entity.Post{ID: postID, UserID: "owner"}, nil)

	conversation, created, err := svc.StartConversation(ctx, "sender", postID, "bystander")
	assert.Nil(t, conversation)
	assert.False(t, created)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestConversationService_GetConversation_NonParticipantForbidden(t *testing.T) {
	svc, conversationRepo, _, _, _ := newConversationServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	conversationRepo.EXPECT().
		FindConversationByID(ctx, id).
		Return(&entity.Conversation{ID: id, SenderID: "sender", ReceiverID: "owner"}, nil)

	conversation, err := svc.GetConversation(ctx, "stranger", id)
	assert.Nil(t, conversation)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestConversationService_GetConversation_NotFound(t *testing.T) {
	svc, conversationRepo, _, _, _ := newConversationServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	conversationRepo.EXPECT().
		FindConversationByID(ctx, id).
		Return(nil, repository.ErrConversationNotFound)

	conversation, err := svc.GetConversation(ctx, "sender", id)
	assert.Nil(t, conversation)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestConversationService_AcceptConversation_SenderCannotAccept(t *testing.T) {
	svc, conversationRepo, _, _, _ := newConversationServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	conversationRepo.EXPECT().
		FindConversationByID(ctx, id).
		Return(&entity.Conversation{
			ID:         id,
			SenderID:   "sender",
			ReceiverID: "owner",
			Status:     entity.ConversationStatusPending,
		}, nil)

	conversation, err := svc.AcceptConversation(ctx, "sender", id)
	assert.Nil(t, conversation)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
