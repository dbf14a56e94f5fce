package impl

import (
	"context"
	"testing"
	"time"

	"localhelp/internal/domain/entity"
	"localhelp/internal/domain/repository"
	"localhelp/internal/domain/service"
	mockRepo "localhelp/internal/mocks/repository"
	mockService "localhelp/internal/mocks/service"
	"localhelp/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newConversationServiceForTest(t *testing.T) (usecase.ConversationUsecase, *mockRepo.MockConversationRepository, *mockRepo.MockPostRepository, *mockRepo.MockProfileRepository, *mockService.MockEventPublisher) {
	t.Helper()

	conversationRepo := mockRepo.NewMockConversationRepository(t)
	postRepo := mockRepo.NewMockPostRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	svc := NewConversationService(conversationRepo, postRepo, profileRepo, publisher, newTestLogger())

	return svc, conversationRepo, postRepo, profileRepo, publisher
}

func TestConversationService_StartConversation_CreatesAndPublishes(t *testing.T) {
	svc, conversationRepo, postRepo, profileRepo, publisher := newConversationServiceForTest(t)
	ctx := context.Background()

	postID := uuid.New()
	post := &entity.Post{ID: postID, Skill: "Dog walking", UserID: "owner"}
	created := &entity.Conversation{
		ID:         uuid.New(),
		PostID:     postID,
		SenderID:   "sender",
		ReceiverID: "owner",
		Status:     entity.ConversationStatusPending,
	}

	postRepo.EXPECT().
		FindPostByID(ctx, postID).
		Return(post, nil)

	conversationRepo.EXPECT().
		CreateIfAbsent(ctx, mock.AnythingOfType("*entity.Conversation")).
		Return(created, true, nil)

	profileRepo.EXPECT().
		FindProfileByUser(ctx, "sender").
		Return(&entity.Profile{UserID: "sender", Name: "Alex"}, nil)

	publisher.EXPECT().
		PublishConversationEvent(ctx, mock.AnythingOfType("*service.ConversationEvent")).
		Run(func(_ context.Context, event *service.ConversationEvent) {
			assert.Equal(t, created.ID.String(), event.ConversationID)
			assert.Equal(t, "Dog walking", event.PostSkill)
			assert.Equal(t, "Alex", event.SenderName)
			assert.Equal(t, "owner", event.ReceiverID)
		}).
		Return(nil)

	conversation, wasCreated, err := svc.StartConversation(ctx, "sender", postID, "")
	require.NoError(t, err)
	assert.True(t, wasCreated)
	assert.Equal(t, created, conversation)
}

func TestConversationService_StartConversation_OwnerContactsRequester(t *testing.T) {
	svc, conversationRepo, postRepo, profileRepo, publisher := newConversationServiceForTest(t)
	ctx := context.Background()

	postID := uuid.New()
	post := &entity.Post{ID: postID, Skill: "Dog walking", UserID: "owner"}
	created := &entity.Conversation{
		ID:         uuid.New(),
		PostID:     postID,
		SenderID:   "owner",
		ReceiverID: "requester",
		Status:     entity.ConversationStatusPending,
	}

	postRepo.EXPECT().
		FindPostByID(ctx, postID).
		Return(post, nil)

	conversationRepo.EXPECT().
		CreateIfAbsent(ctx, mock.AnythingOfType("*entity.Conversation")).
		Run(func(_ context.Context, conversation *entity.Conversation) {
			assert.Equal(t, "owner", conversation.SenderID)
			assert.Equal(t, "requester", conversation.ReceiverID)
		}).
		Return(created, true, nil)

	profileRepo.EXPECT().
		FindProfileByUser(ctx, "owner").
		Return(&entity.Profile{UserID: "owner", Name: "Jamie"}, nil)

	publisher.EXPECT().
		PublishConversationEvent(ctx, mock.AnythingOfType("*service.ConversationEvent")).
		Return(nil)

	conversation, wasCreated, err := svc.StartConversation(ctx, "owner", postID, "requester")
	require.NoError(t, err)
	assert.True(t, wasCreated)
	assert.Equal(t, created, conversation)
}

func TestConversationService_StartConversation_ReturnsExistingRow(t *testing.T) {
	svc, conversationRepo, postRepo, _, _ := newConversationServiceForTest(t)
	ctx := context.Background()

	postID := uuid.New()
	post := &entity.Post{ID: postID, Skill: "Tutoring", UserID: "owner"}
	existing := &entity.Conversation{
		ID:         uuid.New(),
		PostID:     postID,
		SenderID:   "sender",
		ReceiverID: "owner",
		Status:     entity.ConversationStatusAccepted,
	}

	postRepo.EXPECT().
		FindPostByID(ctx, postID).
		Return(post, nil)

	// No event is published when the row already existed.
	conversationRepo.EXPECT().
		CreateIfAbsent(ctx, mock.AnythingOfType("*entity.Conversation")).
		Return(existing, false, nil)

	conversation, wasCreated, err := svc.StartConversation(ctx, "sender", postID, "")
	require.NoError(t, err)
	assert.False(t, wasCreated)
	assert.Equal(t, existing.ID, conversation.ID)
}

func TestConversationService_StartConversation_PublishFailureDoesNotFailCall(t *testing.T) {
	svc, conversationRepo, postRepo, profileRepo, publisher := newConversationServiceForTest(t)
	ctx := context.Background()

	postID := uuid.New()
	post := &entity.Post{ID: postID, Skill: "Gardening", UserID: "owner"}
	created := &entity.Conversation{ID: uuid.New(), PostID: postID, SenderID: "sender", ReceiverID: "owner"}

	postRepo.EXPECT().
		FindPostByID(ctx, postID).
		Return(post, nil)

	conversationRepo.EXPECT().
		CreateIfAbsent(ctx, mock.AnythingOfType("*entity.Conversation")).
		Return(created, true, nil)

	profileRepo.EXPECT().
		FindProfileByUser(ctx, "sender").
		Return(nil, assert.AnError)

	publisher.EXPECT().
		PublishConversationEvent(ctx, mock.AnythingOfType("*service.ConversationEvent")).
		Return(assert.AnError)

	conversation, wasCreated, err := svc.StartConversation(ctx, "sender", postID, "")
	require.NoError(t, err)
	assert.True(t, wasCreated)
	assert.Equal(t, created, conversation)
}

func TestConversationService_CheckConversation_SymmetricMatch(t *testing.T) {
	svc, conversationRepo, postRepo, _, _ := newConversationServiceForTest(t)
	ctx := context.Background()

	postID := uuid.New()
	existing := &entity.Conversation{ID: uuid.New(), PostID: postID, SenderID: "sender", ReceiverID: "owner"}

	postRepo.EXPECT().
		FindPostByID(ctx, postID).
		Return(&entity.Post{ID: postID, UserID: "owner"}, nil)

	conversationRepo.EXPECT().
		FindByPostAndPair(ctx, postID, "sender", "owner").
		Return(existing, nil)

	conversation, exists, err := svc.CheckConversation(ctx, "sender", postID)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, existing.ID, conversation.ID)
}

func TestConversationService_CheckConversation_OwnerSeesRequesterConversation(t *testing.T) {
	svc, conversationRepo, postRepo, _, _ := newConversationServiceForTest(t)
	ctx := context.Background()

	postID := uuid.New()
	existing := &entity.Conversation{ID: uuid.New(), PostID: postID, SenderID: "sender", ReceiverID: "owner"}

	postRepo.EXPECT().
		FindPostByID(ctx, postID).
		Return(&entity.Post{ID: postID, UserID: "owner"}, nil)

	// The owner's check matches any conversation they take part in on the
	// post, never the degenerate (owner, owner) pair.
	conversationRepo.EXPECT().
		FindLatestByPostAndParticipant(ctx, postID, "owner").
		Return(existing, nil)

	conversation, exists, err := svc.CheckConversation(ctx, "owner", postID)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, existing.ID, conversation.ID)
}

func TestConversationService_CheckConversation_NoneYet(t *testing.T) {
	svc, conversationRepo, postRepo, _, _ := newConversationServiceForTest(t)
	ctx := context.Background()

	postID := uuid.New()
	postRepo.EXPECT().
		FindPostByID(ctx, postID).
		Return(&entity.Post{ID: postID, UserID: "owner"}, nil)

	conversationRepo.EXPECT().
		FindByPostAndPair(ctx, postID, "sender", "owner").
		Return(nil, repository.ErrConversationNotFound)

	conversation, exists, err := svc.CheckConversation(ctx, "sender", postID)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Nil(t, conversation)
}

func TestConversationService_GetConversation_ParticipantsOnly(t *testing.T) {
	svc, conversationRepo, _, _, _ := newConversationServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	conversation := &entity.Conversation{
		ID:         id,
		SenderID:   "sender",
		ReceiverID: "owner",
	}

	conversationRepo.EXPECT().
		FindConversationByID(ctx, id).
		Return(conversation, nil).
		Twice()

	got, err := svc.GetConversation(ctx, "owner", id)
	require.NoError(t, err)
	assert.Equal(t, conversation, got)

	got, err = svc.GetConversation(ctx, "sender", id)
	require.NoError(t, err)
	assert.Equal(t, conversation, got)
}

func TestConversationService_ListConversations_DecoratesWithProfiles(t *testing.T) {
	svc, conversationRepo, postRepo, profileRepo, _ := newConversationServiceForTest(t)
	ctx := context.Background()

	postID := uuid.New()
	conversations := []*entity.Conversation{
		{ID: uuid.New(), PostID: postID, SenderID: "me", ReceiverID: "owner", CreatedAt: time.Now()},
	}

	conversationRepo.EXPECT().
		ListByParticipant(ctx, "me", 20, (*time.Time)(nil)).
		Return(conversations, nil)

	profileRepo.EXPECT().
		FindProfilesByUsers(ctx, []string{"owner"}).
		Return(map[string]*entity.Profile{
			"owner": {UserID: "owner", Name: "Jamie"},
		}, nil)

	postRepo.EXPECT().
		FindPostByID(ctx, postID).
		Return(&entity.Post{ID: postID, Skill: "Dog walking", UserID: "owner"}, nil)

	views, err := svc.ListConversations(ctx, "me", 0, nil)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Jamie", views[0].Counterpart.Name)
	assert.Equal(t, "Dog walking", views[0].PostSkill)
}

func TestConversationService_ListConversations_MissingProfilesAreNil(t *testing.T) {
	svc, conversationRepo, postRepo, profileRepo, _ := newConversationServiceForTest(t)
	ctx := context.Background()

	postID := uuid.New()
	conversations := []*entity.Conversation{
		{ID: uuid.New(), PostID: postID, SenderID: "me", ReceiverID: "ghost"},
	}

	conversationRepo.EXPECT().
		ListByParticipant(ctx, "me", 20, (*time.Time)(nil)).
		Return(conversations, nil)

	profileRepo.EXPECT().
		FindProfilesByUsers(ctx, []string{"ghost"}).
		Return(nil, assert.AnError)

	postRepo.EXPECT().
		FindPostByID(ctx, postID).
		Return(nil, assert.AnError)

	views, err := svc.ListConversations(ctx, "me", 0, nil)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Nil(t, views[0].Counterpart)
	assert.Empty(t, views[0].PostSkill)
}

func TestConversationService_AcceptConversation_ReceiverAccepts(t *testing.T) {
	svc, conversationRepo, _, _, _ := newConversationServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	conversation := &entity.Conversation{
		ID:         id,
		SenderID:   "sender",
		ReceiverID: "owner",
		Status:     entity.ConversationStatusPending,
	}

	conversationRepo.EXPECT().
		FindConversationByID(ctx, id).
		Return(conversation, nil)

	conversationRepo.EXPECT().
		UpdateStatus(ctx, id, entity.ConversationStatusAccepted).
		Return(nil)

	got, err := svc.AcceptConversation(ctx, "owner", id)
	require.NoError(t, err)
	assert.Equal(t, entity.ConversationStatusAccepted, got.Status)
}

func TestConversationService_AcceptConversation_AlreadyAcceptedIsNoOp(t *testing.T) {
	svc, conversationRepo, _, _, _ := newConversationServiceForTest(t)
	ctx := context.Background()

	id := uuid.New()
	conversation := &entity.Conversation{
		ID:         id,
		SenderID:   "sender",
		ReceiverID: "owner",
		Status:     entity.ConversationStatusAccepted,
	}

	conversationRepo.EXPECT().
		FindConversationByID(ctx, id).
		Return(conversation, nil)

	got, err := svc.AcceptConversation(ctx, "owner", id)
	require.NoError(t, err)
	assert.Equal(t, entity.ConversationStatusAccepted, got.Status)
}
