package minio

import (
	"challenge-clips/internal/adapters/storage"
	"challenge-clips/internal/config"
	"challenge-clips/internal/core/domain"
	"challenge-clips/internal/metrics"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const backend = "minio"

// Adapter is an adapter for minio
type Adapter struct {
	client  *minio.Client
	config  config.MinioConfig
	policy  storage.Policy
	baseURL string
	logger  *slog.Logger
}

// NewAdapter returns Adapter and makes sure the bucket exists
func NewAdapter(ctx context.Context, cfg config.MinioConfig, storageCfg config.StorageConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	baseURL := strings.TrimRight(storageCfg.PublicBaseURL, "/")
	if baseURL == "" {
		baseURL = client.EndpointURL().String() + "/" + cfg.BucketName
	}

	return &Adapter{
		client:  client,
		config:  cfg,
		policy:  storage.NewPolicy(storageCfg),
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

// Put uploads body under key. An existing object is never overwritten.
func (a *Adapter) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (err error) {
	start := time.Now()
	defer func() { observe("put", start, err) }()

	if err := a.policy.Check(size, contentType); err != nil {
		return err
	}

	_, err = a.client.StatObject(ctx, a.config.BucketName, key, minio.StatObjectOptions{})
	if err == nil {
		return fmt.Errorf("%w: %s", domain.ErrObjectExists, key)
	}
	if code := minio.ToErrorResponse(err).Code; code != "NoSuchKey" {
		return fmt.Errorf("failed to check object: %w", storage.ProviderError(code, err))
	}

	info, err := a.client.PutObject(ctx, a.config.BucketName, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to put object: %w", storage.ProviderError(minio.ToErrorResponse(err).Code, err))
	}

	a.logger.Info("object uploaded",
		slog.String("key", key),
		slog.String("bucket", a.config.BucketName),
		slog.Int64("size", info.Size))

	return nil
}

// PublicURL returns the public URL of key. The object is not checked.
func (a *Adapter) PublicURL(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", domain.ErrInvalidStorageKey
	}
	return a.baseURL + "/" + url.PathEscape(key), nil
}

// DeleteObject deletes an object from storage
func (a *Adapter) DeleteObject(ctx context.Context, key string) (err error) {
	start := time.Now()
	defer func() { observe("delete", start, err) }()

	err = a.client.RemoveObject(ctx, a.config.BucketName, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	a.logger.Info("object deleted",
		slog.String("key", key),
		slog.String("bucket", a.config.BucketName))

	return nil
}

// ListObjects lists the objects last modified before olderThan
func (a *Adapter) ListObjects(ctx context.Context, olderThan time.Time) (objects []domain.StoredObject, err error) {
	start := time.Now()
	defer func() { observe("list", start, err) }()

	for obj := range a.client.ListObjects(ctx, a.config.BucketName, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		if !obj.LastModified.Before(olderThan) {
			continue
		}
		objects = append(objects, domain.StoredObject{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}
	return objects, nil
}

func observe(operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.RecordStorageOperation(backend, operation, status, time.Since(start).Seconds())
}
