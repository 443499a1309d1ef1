package upload

import (
	"challenge-clips/internal/core/port"
	"log/slog"
	"time"
)

type uploadService struct {
	store   port.ObjectStore
	uow     port.UnitOfWork
	readers []port.PayloadReader
	logger  *slog.Logger
	now     func() time.Time
}

// Option customizes the upload service
type Option func(*uploadService)

// WithClock overrides the clock used to build storage keys
func WithClock(now func() time.Time) Option {
	return func(s *uploadService) {
		s.now = now
	}
}

// NewUploadService creates the upload orchestrator. Readers are tried in order until one succeeds.
func NewUploadService(store port.ObjectStore, uow port.UnitOfWork, readers []port.PayloadReader, logger *slog.Logger, opts ...Option) port.UploadService {
	s := &uploadService{
		store:   store,
		uow:     uow,
		readers: readers,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
