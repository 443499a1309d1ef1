package workflow

import (
	"challenge-clips/internal/core/domain"
	"challenge-clips/internal/core/port"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Flow sequences capture, upload and notification for one attempt
type Flow struct {
	capture     port.CaptureService
	upload      port.UploadService
	notifier    port.Notifier
	maxDuration time.Duration
	logger      *slog.Logger
}

// NewFlow creates a new Flow
func NewFlow(capture port.CaptureService, upload port.UploadService, notifier port.Notifier, maxDuration time.Duration, logger *slog.Logger) *Flow {
	return &Flow{
		capture:     capture,
		upload:      upload,
		notifier:    notifier,
		maxDuration: maxDuration,
		logger:      logger,
	}
}

// Run obtains a video from source and uploads it. A cancelled picker returns a nil notification.
// The returned error is only set when the device itself failed; upload failures are reported
// through the notification.
func (f *Flow) Run(ctx context.Context, source domain.Source, identity *domain.Identity, challenge domain.Challenge) (*domain.Notification, error) {
	asset, err := f.obtain(ctx, source)
	switch {
	case errors.Is(err, domain.ErrCancelled):
		return nil, nil
	case errors.Is(err, domain.ErrCameraPermissionDenied):
		notification := f.notifier.Failure(ctx, err)
		return &notification, nil
	case err != nil:
		return nil, err
	}

	record, err := f.upload.Upload(ctx, *asset, identity, challenge)
	if err != nil {
		f.logger.Error("upload failed", "error", err)
		notification := f.notifier.Failure(ctx, err)
		return &notification, nil
	}

	notification := f.notifier.Success(ctx, record)
	return &notification, nil
}

func (f *Flow) obtain(ctx context.Context, source domain.Source) (*domain.MediaAsset, error) {
	switch source {
	case domain.SourceCamera:
		status, err := f.capture.RequestCameraAccess(ctx)
		if err != nil {
			return nil, err
		}
		if status != domain.PermissionGranted {
			return nil, fmt.Errorf("%w: camera access denied", domain.ErrCameraPermissionDenied)
		}
		return f.capture.CaptureVideo(ctx, f.maxDuration)
	case domain.SourceLibrary:
		return f.capture.SelectFromLibrary(ctx, f.maxDuration)
	default:
		return nil, fmt.Errorf("unknown media source %q", source)
	}
}
