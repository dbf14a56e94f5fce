package service

import "context"

// NotificationService defines the interface for sending push notifications.
type NotificationService interface {
	// SendSingleNotification sends a push notification to a single device token.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error

	// SendBatchNotification sends push notifications to multiple device tokens
	// (max 500 tokens per call) and reports per-token failures.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// SendTopicNotification sends a push notification to every device
	// subscribed to a topic. Clients subscribe to their per-user topic on
	// sign-in, so no server-side token registry is needed.
	SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error
}
