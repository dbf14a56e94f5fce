package repository

import (
	"context"
	"time"

	"localhelp/internal/domain/entity"
	"localhelp/internal/errors"

	"github.com/google/uuid"
)

// ErrConversationNotFound is returned when a conversation is not found.
var ErrConversationNotFound = errors.New("conversation not found")

// ConversationRepository defines the interface for conversation persistence.
//
// The storage layer carries a unique index on the canonical key
// (post_id, least(sender_id, receiver_id), greatest(sender_id, receiver_id)),
// so participant order never produces a second row for the same pair.
type ConversationRepository interface {
	// FindByPostAndPair retrieves the conversation for a post and an
	// unordered participant pair. The match is symmetric: (a, b) and (b, a)
	// locate the same row. Returns ErrConversationNotFound when absent.
	FindByPostAndPair(ctx context.Context, postID uuid.UUID, userA, userB string) (*entity.Conversation, error)

	// FindLatestByPostAndParticipant retrieves the most recent conversation
	// on a post that userID takes part in, on either side of the pair.
	// Returns ErrConversationNotFound when the user has none on the post.
	FindLatestByPostAndParticipant(ctx context.Context, postID uuid.UUID, userID string) (*entity.Conversation, error)

	// CreateIfAbsent atomically inserts the conversation unless one already
	// exists for its canonical key, using insert-on-conflict-do-nothing. It
	// returns the winning row (the inserted one or the pre-existing one) and
	// whether this call created it. Safe under concurrent callers across
	// processes; never a bare read-then-write.
	CreateIfAbsent(ctx context.Context, conversation *entity.Conversation) (*entity.Conversation, bool, error)

	// FindConversationByID retrieves a conversation by its unique ID.
	FindConversationByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)

	// ListByParticipant retrieves conversations the user takes part in,
	// newest first. When before is non-nil only rows created strictly earlier
	// are returned, enabling keyset pagination.
	ListByParticipant(ctx context.Context, userID string, limit int, before *time.Time) ([]*entity.Conversation, error)

	// UpdateStatus sets the conversation status.
	// Returns ErrConversationNotFound if no rows were affected.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ConversationStatus) error
}
