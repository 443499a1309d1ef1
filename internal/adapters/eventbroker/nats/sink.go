package nats

import (
	"challenge-clips/internal/core/domain"
	"challenge-clips/internal/core/port"
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// EventSink publishes every notification as an UploadEvent
type EventSink struct {
	publisher port.EventPublisher
	subject   string
	now       func() time.Time
}

// NewEventSink creates a notification sink publishing on subject
func NewEventSink(publisher port.EventPublisher, subject string) *EventSink {
	return &EventSink{publisher: publisher, subject: subject, now: time.Now}
}

func (s *EventSink) Deliver(ctx context.Context, notification domain.Notification) error {
	event := domain.NewUploadEvent(notification, s.now().UTC())

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal upload event: %w", err)
	}
	return s.publisher.Publish(ctx, s.subject, data)
}
