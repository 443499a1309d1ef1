package port

import (
	"challenge-clips/internal/core/domain"
	"context"
	"io"
	"time"
)

// ObjectStore is an interface to define object storage interactions
type ObjectStore interface {
	// Put writes body under key and fails with domain.ErrObjectExists instead of overwriting.
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	PublicURL(ctx context.Context, key string) (string, error)
	DeleteObject(ctx context.Context, key string) error
	ListObjects(ctx context.Context, olderThan time.Time) ([]domain.StoredObject, error)
}

// PayloadReader is a strategy that turns a MediaAsset into a binary payload
type PayloadReader interface {
	Name() string
	Read(ctx context.Context, asset domain.MediaAsset) (*domain.Payload, error)
}

// FileSystem is the native filesystem bridge. It hands files back base64 encoded.
type FileSystem interface {
	ReadAsBase64(ctx context.Context, uri string) (string, error)
}
