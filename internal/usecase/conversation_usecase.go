package usecase

import (
	"context"
	"time"

	"localhelp/internal/domain/entity"

	"github.com/google/uuid"
)

// ConversationView is a conversation decorated with the counterpart's cached
// profile for list rendering.
type ConversationView struct {
	Conversation *entity.Conversation
	Counterpart  *entity.Profile // nil when no profile is cached.
	PostSkill    string
}

// ConversationUsecase defines the interface for conversation management use cases.
//
// Starting a conversation is get-or-create: for one post and one unordered
// participant pair there is never more than one conversation, no matter how
// many times or how concurrently it is requested.
type ConversationUsecase interface {
	// StartConversation returns the conversation between userID and
	// counterpartID about the post, creating it if it does not exist yet.
	// The boolean reports whether this call created it. An empty
	// counterpartID defaults to the post's owner, which is the common case
	// of a requester reaching out; the owner replying to a requester names
	// them explicitly. The pair must include the owner, and contacting
	// oneself is rejected.
	StartConversation(ctx context.Context, userID string, postID uuid.UUID, counterpartID string) (*entity.Conversation, bool, error)

	// CheckConversation reports whether a conversation already exists between
	// userID and anyone on the post. It never creates one; the match is
	// symmetric over the participant pair, so the owner sees conversations
	// started by requesters and vice versa.
	CheckConversation(ctx context.Context, userID string, postID uuid.UUID) (*entity.Conversation, bool, error)

	// GetConversation retrieves a conversation. Only participants may read it.
	GetConversation(ctx context.Context, userID string, id uuid.UUID) (*entity.Conversation, error)

	// ListConversations retrieves the user's conversations, newest first,
	// with keyset pagination on the creation time.
	ListConversations(ctx context.Context, userID string, limit int, before *time.Time) ([]*ConversationView, error)

	// AcceptConversation marks a pending conversation accepted. Only the
	// receiver may accept.
	AcceptConversation(ctx context.Context, userID string, id uuid.UUID) (*entity.Conversation, error)
}
