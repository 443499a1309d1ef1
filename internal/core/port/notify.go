package port

import (
	"challenge-clips/internal/core/domain"
	"context"
)

// NotificationSink delivers a notification to the user or to other services
type NotificationSink interface {
	Deliver(ctx context.Context, notification domain.Notification) error
}

// Notifier turns a workflow outcome into a notification
type Notifier interface {
	Success(ctx context.Context, record *domain.VideoRecord) domain.Notification
	Failure(ctx context.Context, err error) domain.Notification
}

// EventPublisher publishes messages to a broker subject
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}
