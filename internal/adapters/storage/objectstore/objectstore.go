package objectstore

import (
	"challenge-clips/internal/adapters/storage/minio"
	"challenge-clips/internal/adapters/storage/s3"
	"challenge-clips/internal/config"
	"challenge-clips/internal/core/port"
	"context"
	"fmt"
	"log/slog"
)

// New returns the object store selected by STORAGE_BACKEND
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (port.ObjectStore, error) {
	switch cfg.Storage.Backend {
	case "", "minio":
		return minio.NewAdapter(ctx, cfg.Minio, cfg.Storage, logger)
	case "s3":
		return s3.NewAdapter(ctx, cfg.S3, cfg.Storage, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
