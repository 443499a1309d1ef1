package nats

import (
	"challenge-clips/internal/config"
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Publisher publishes upload events to a JetStream stream
type Publisher struct {
	logger *slog.Logger
	conn   *nats.Conn
	js     jetstream.JetStream
	once   sync.Once
}

// NewNATSPublisher connects and makes sure the upload stream captures cfg.UploadSubject
func NewNATSPublisher(ctx context.Context, cfg config.NATSConfig, logger *slog.Logger) (*Publisher, error) {
	conn, js, err := connect(cfg.URL, "upload-publisher", logger)
	if err != nil {
		return nil, err
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.UploadStream,
		Subjects: []string{cfg.UploadSubject},
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create stream %s: %w", cfg.UploadStream, err)
	}

	return &Publisher{logger: logger, conn: conn, js: js}, nil
}

// Publish publishes data and waits for the stream acknowledgement
func (p *Publisher) Publish(ctx context.Context, subject string, data []byte) error {
	ack, err := p.js.Publish(ctx, subject, data)
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	p.logger.Debug("event published", "subject", subject, "stream", ack.Stream, "seq", ack.Sequence)
	return nil
}

func (p *Publisher) Close() error {
	p.once.Do(func() {
		if p.conn != nil {
			p.conn.Drain()
		}
	})
	return nil
}
