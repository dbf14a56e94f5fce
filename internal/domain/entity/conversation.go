package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConversationStatus is the lifecycle state of a conversation. The status is
// informational only; it never gates message delivery.
type ConversationStatus string

const (
	ConversationStatusPending  ConversationStatus = "pending"
	ConversationStatusAccepted ConversationStatus = "accepted"
)

// Conversation is the canonical messaging thread between two users about one
// post. The participant pair is unordered: the conversation between X and Y
// about post P is the same row regardless of who initiated it. For a given
// (post, unordered pair) at most one row exists; rows are never deleted.
type Conversation struct {
	ID         uuid.UUID
	PostID     uuid.UUID
	SenderID   string // User who started the conversation.
	ReceiverID string // The post owner at creation time.
	Status     ConversationStatus
	CreatedAt  time.Time
}

// OtherParticipant returns the counterpart of userID in the pair.
func (c *Conversation) OtherParticipant(userID string) string {
	if c.SenderID == userID {
		return c.ReceiverID
	}

	return c.SenderID
}

// HasParticipant reports whether userID is one of the two participants.
func (c *Conversation) HasParticipant(userID string) bool {
	return c.SenderID == userID || c.ReceiverID == userID
}
