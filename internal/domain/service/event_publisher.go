package service

import (
	"context"
)

// ConversationEvent is published when a conversation is created. The
// realtime messaging collaborator keys its channels on ConversationID, and
// the chat worker fans the event out as a push notification to the receiver.
type ConversationEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	ConversationID string `json:"conversation_id"`
	PostID         string `json:"post_id"`
	PostSkill      string `json:"post_skill"`
	SenderID       string `json:"sender_id"`
	SenderName     string `json:"sender_name,omitempty"`
	ReceiverID     string `json:"receiver_id"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishConversationEvent publishes a conversation-started event for async processing
	PublishConversationEvent(ctx context.Context, event *ConversationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
