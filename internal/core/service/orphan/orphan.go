package orphan

import (
	"challenge-clips/internal/config"
	"challenge-clips/internal/core/domain"
	"challenge-clips/internal/core/port"
	"challenge-clips/internal/metrics"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

const (
	ModeReport = "report"
	ModeDelete = "delete"
)

// ErrRecordPending is returned for a fresh object whose video record may still be inserted
var ErrRecordPending = errors.New("video record pending")

// Reconciler finds stored objects that never got a video record
type Reconciler struct {
	store  port.ObjectStore
	uow    port.UnitOfWork
	cfg    config.OrphanConfig
	logger *slog.Logger
	now    func() time.Time
}

// NewReconciler creates the reconciler of objects written without a video record.
// It serves both the periodic sweep and the bucket event handler.
func NewReconciler(store port.ObjectStore, uow port.UnitOfWork, cfg config.OrphanConfig, logger *slog.Logger, opts ...Option) *Reconciler {
	r := &Reconciler{
		store:  store,
		uow:    uow,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Option customizes the reconciler
type Option func(*Reconciler)

// WithClock overrides the clock used to age bucket events
func WithClock(now func() time.Time) Option {
	return func(r *Reconciler) {
		r.now = now
	}
}

// isOrphan reports whether key has no video record
func (o *Reconciler) isOrphan(ctx context.Context, key string) (bool, error) {
	_, err := o.uow.VideoRepo().FindByStorageKey(ctx, key)
	switch {
	case errors.Is(err, domain.ErrVideoRecordNotFound):
		return true, nil
	case err != nil:
		return false, err
	default:
		return false, nil
	}
}

// resolve applies the configured mode to an orphaned object
func (o *Reconciler) resolve(ctx context.Context, source string, key string, age time.Duration) error {
	if o.cfg.Mode != ModeDelete {
		o.logger.Warn("orphaned object found", "source", source, "key", key, "age", age)
		metrics.RecordOrphan(source, "reported")
		return nil
	}

	if err := o.store.DeleteObject(ctx, key); err != nil {
		return fmt.Errorf("could not delete orphaned object %s: %w", key, err)
	}
	o.logger.Warn("orphaned object deleted", "source", source, "key", key, "age", age)
	metrics.RecordOrphan(source, "deleted")
	return nil
}
