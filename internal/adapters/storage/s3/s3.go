package s3

import (
	"challenge-clips/internal/adapters/storage"
	"challenge-clips/internal/config"
	"challenge-clips/internal/core/domain"
	"challenge-clips/internal/metrics"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const backend = "s3"

// Adapter stores videos in an S3 compatible bucket
type Adapter struct {
	client  *s3.Client
	bucket  string
	policy  storage.Policy
	baseURL string
	logger  *slog.Logger
}

// NewAdapter builds the S3 client from static credentials
func NewAdapter(ctx context.Context, cfg config.S3Config, storageCfg config.StorageConfig, logger *slog.Logger) (*Adapter, error) {
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, errors.New("S3_BUCKET is required")
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &Adapter{
		client:  client,
		bucket:  bucket,
		policy:  storage.NewPolicy(storageCfg),
		baseURL: publicBase(cfg, storageCfg.PublicBaseURL),
		logger:  logger,
	}, nil
}

func publicBase(cfg config.S3Config, override string) string {
	if override != "" {
		return strings.TrimRight(override, "/")
	}
	if cfg.Endpoint != "" {
		endpoint := strings.TrimRight(cfg.Endpoint, "/")
		if cfg.UsePathStyle {
			return endpoint + "/" + cfg.Bucket
		}
		if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
			u.Host = cfg.Bucket + "." + u.Host
			return u.String()
		}
		return endpoint + "/" + cfg.Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}

// Put uploads body under key with If-None-Match so an existing object is never replaced
func (a *Adapter) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (err error) {
	start := time.Now()
	defer func() { observe("put", start, err) }()

	if err := a.policy.Check(size, contentType); err != nil {
		return err
	}

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		IfNoneMatch:   aws.String("*"),
	})
	if err != nil {
		code := errorCode(err)
		switch code {
		case "PreconditionFailed", "ConditionalRequestConflict":
			return fmt.Errorf("%w: %s", domain.ErrObjectExists, key)
		}
		return fmt.Errorf("failed to put object: %w", storage.ProviderError(code, err))
	}

	a.logger.Info("object uploaded", "key", key, "bucket", a.bucket, "size", size)
	return nil
}

func (a *Adapter) PublicURL(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", domain.ErrInvalidStorageKey
	}
	return a.baseURL + "/" + url.PathEscape(key), nil
}

func (a *Adapter) DeleteObject(ctx context.Context, key string) (err error) {
	start := time.Now()
	defer func() { observe("delete", start, err) }()

	_, err = a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	a.logger.Info("object deleted", "key", key, "bucket", a.bucket)
	return nil
}

// ListObjects lists the objects last modified before olderThan
func (a *Adapter) ListObjects(ctx context.Context, olderThan time.Time) (objects []domain.StoredObject, err error) {
	start := time.Now()
	defer func() { observe("list", start, err) }()

	paginator := s3.NewListObjectsV2Paginator(a.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(a.bucket),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}
		for _, obj := range page.Contents {
			modified := aws.ToTime(obj.LastModified)
			if !modified.Before(olderThan) {
				continue
			}
			objects = append(objects, domain.StoredObject{
				Key:          aws.ToString(obj.Key),
				Size:         aws.ToInt64(obj.Size),
				LastModified: modified,
			})
		}
	}
	return objects, nil
}

// errorCode extracts the S3 error code from a smithy API error
func errorCode(err error) string {
	var apiErr interface{ ErrorCode() string }
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

func observe(operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.RecordStorageOperation(backend, operation, status, time.Since(start).Seconds())
}
