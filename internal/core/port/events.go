package port

import "context"

// EventConsumer is an interface to define a bucket event consumer (kafka, nats, ...)
type EventConsumer interface {
	Subscribe(ctx context.Context, handler MessageService) error
	Close() error
}

// MessageService is an interface to define message handling.
// Returning an error asks the broker to redeliver the message later.
type MessageService interface {
	HandleMessage(ctx context.Context, data []byte) error
}
