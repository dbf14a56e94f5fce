package impl

import (
	"context"
	"log/slog"
	"time"

	deliveryctx "localhelp/internal/delivery/context"
	"localhelp/internal/domain/entity"
	domainerrors "localhelp/internal/domain/errors"
	"localhelp/internal/domain/repository"
	"localhelp/internal/domain/service"
	"localhelp/internal/errors"
	"localhelp/internal/usecase"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	defaultConversationLimit = 20
	maxConversationLimit     = 100
)

type conversationService struct {
	conversationRepo repository.ConversationRepository
	postRepo         repository.PostRepository
	profileRepo      repository.ProfileRepository
	publisher        service.EventPublisher
	logger           *slog.Logger
}

// NewConversationService creates a new conversation service instance
func NewConversationService(
	conversationRepo repository.ConversationRepository,
	postRepo repository.PostRepository,
	profileRepo repository.ProfileRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ConversationUsecase {
	return &conversationService{
		conversationRepo: conversationRepo,
		postRepo:         postRepo,
		profileRepo:      profileRepo,
		publisher:        publisher,
		logger:           logger,
	}
}

// StartConversation returns the conversation between userID and the
// counterpart about the post, creating it if absent. An empty counterpart
// defaults to the post's owner. Creation is delegated to the storage layer's
// conflict-free insert, so concurrent requests for the same post and pair all
// land on the same row and exactly one caller observes created == true.
func (s *conversationService) StartConversation(ctx context.Context, userID string, postID uuid.UUID, counterpartID string) (*entity.Conversation, bool, error) {
	post, err := s.postRepo.FindPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, false, domainerrors.ErrNotFound
		}

		return nil, false, err
	}

	if counterpartID == "" {
		counterpartID = post.UserID
	}
	if counterpartID == userID {
		return nil, false, domainerrors.ErrSelfContact
	}
	// Every conversation on a post involves its owner: either a requester
	// contacts the owner, or the owner contacts a requester.
	if userID != post.UserID && counterpartID != post.UserID {
		return nil, false, domainerrors.ErrInvalidInput.WithDetails("counterpart must be the post owner")
	}

	conversation := &entity.Conversation{
		PostID:     postID,
		SenderID:   userID,
		ReceiverID: counterpartID,
		Status:     entity.ConversationStatusPending,
	}

	winner, created, err := s.conversationRepo.CreateIfAbsent(ctx, conversation)
	if err != nil {
		return nil, false, err
	}

	if created {
		s.publishConversationEvent(ctx, winner, post)
	}

	return winner, created, nil
}

// CheckConversation reports whether a conversation already exists between
// userID and anyone on the post, without creating one. For a requester the
// counterpart is always the owner; the owner matches any requester's
// conversation instead of the degenerate (owner, owner) pair.
func (s *conversationService) CheckConversation(ctx context.Context, userID string, postID uuid.UUID) (*entity.Conversation, bool, error) {
	post, err := s.postRepo.FindPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, false, domainerrors.ErrNotFound
		}

		return nil, false, err
	}

	var conversation *entity.Conversation
	if userID == post.UserID {
		conversation, err = s.conversationRepo.FindLatestByPostAndParticipant(ctx, postID, userID)
	} else {
		conversation, err = s.conversationRepo.FindByPostAndPair(ctx, postID, userID, post.UserID)
	}
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, false, nil
		}

		return nil, false, err
	}

	return conversation, true, nil
}

// GetConversation retrieves a conversation. Only participants may read it.
func (s *conversationService) GetConversation(ctx context.Context, userID string, id uuid.UUID) (*entity.Conversation, error) {
	conversation, err := s.conversationRepo.FindConversationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, err
	}

	if !conversation.HasParticipant(userID) {
		return nil, domainerrors.ErrForbidden
	}

	return conversation, nil
}

// ListConversations retrieves the user's conversations, newest first, each
// decorated with the counterpart's cached profile and the post's skill.
func (s *conversationService) ListConversations(ctx context.Context, userID string, limit int, before *time.Time) ([]*usecase.ConversationView, error) {
	if limit <= 0 {
		limit = defaultConversationLimit
	}
	if limit > maxConversationLimit {
		limit = maxConversationLimit
	}

	conversations, err := s.conversationRepo.ListByParticipant(ctx, userID, limit, before)
	if err != nil {
		return nil, err
	}

	counterpartIDs := lo.Uniq(lo.Map(conversations, func(c *entity.Conversation, _ int) string {
		return c.OtherParticipant(userID)
	}))

	profiles, err := s.profileRepo.FindProfilesByUsers(ctx, counterpartIDs)
	if err != nil {
		// Profiles are decoration. The list still renders without them.
		deliveryctx.GetLoggerOrDefault(ctx, s.logger).WarnContext(ctx, "failed to load counterpart profiles",
			slog.String("error", err.Error()))
		profiles = map[string]*entity.Profile{}
	}

	views := make([]*usecase.ConversationView, 0, len(conversations))
	for _, conversation := range conversations {
		views = append(views, &usecase.ConversationView{
			Conversation: conversation,
			Counterpart:  profiles[conversation.OtherParticipant(userID)],
			PostSkill:    s.postSkill(ctx, conversation.PostID),
		})
	}

	return views, nil
}

// AcceptConversation marks a pending conversation accepted. Only the receiver
// may accept; accepting an already accepted conversation is a no-op.
func (s *conversationService) AcceptConversation(ctx context.Context, userID string, id uuid.UUID) (*entity.Conversation, error) {
	conversation, err := s.conversationRepo.FindConversationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, err
	}

	if conversation.ReceiverID != userID {
		return nil, domainerrors.ErrForbidden
	}

	if conversation.Status == entity.ConversationStatusAccepted {
		return conversation, nil
	}

	if err := s.conversationRepo.UpdateStatus(ctx, id, entity.ConversationStatusAccepted); err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, err
	}

	conversation.Status = entity.ConversationStatusAccepted

	return conversation, nil
}

// publishConversationEvent hands the new conversation to the message queue
// for async push delivery. Publishing is best effort: the conversation row is
// already committed, so a queue failure only costs the notification.
func (s *conversationService) publishConversationEvent(ctx context.Context, conversation *entity.Conversation, post *entity.Post) {
	event := &service.ConversationEvent{
		RequestID:      deliveryctx.GetRequestIDFromContext(ctx),
		ConversationID: conversation.ID.String(),
		PostID:         post.ID.String(),
		PostSkill:      post.Skill,
		SenderID:       conversation.SenderID,
		ReceiverID:     conversation.ReceiverID,
	}

	if profile, err := s.profileRepo.FindProfileByUser(ctx, conversation.SenderID); err == nil {
		event.SenderName = profile.Name
	}

	if err := s.publisher.PublishConversationEvent(ctx, event); err != nil {
		deliveryctx.GetLoggerOrDefault(ctx, s.logger).WarnContext(ctx, "failed to publish conversation event",
			slog.String("conversation_id", conversation.ID.String()),
			slog.String("error", err.Error()))
	}
}

// postSkill looks up the skill of the conversation's post for list rendering.
// A missing or unreadable post yields an empty skill, never an error.
func (s *conversationService) postSkill(ctx context.Context, postID uuid.UUID) string {
	post, err := s.postRepo.FindPostByID(ctx, postID)
	if err != nil {
		return ""
	}

	return post.Skill
}
