package capture

import (
	"challenge-clips/internal/core/domain"
	"challenge-clips/internal/core/port"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

type captureService struct {
	gate   port.PermissionGate
	picker port.MediaPicker
	logger *slog.Logger
}

// NewCaptureService creates a new capture service
func NewCaptureService(gate port.PermissionGate, picker port.MediaPicker, logger *slog.Logger) port.CaptureService {
	return &captureService{
		gate:   gate,
		picker: picker,
		logger: logger,
	}
}

// RequestCameraAccess asks the device for camera access
func (c *captureService) RequestCameraAccess(ctx context.Context) (domain.PermissionStatus, error) {
	return c.request(ctx, domain.PermissionCamera)
}

// CaptureVideo records a new video. The duration cap is enforced by the picker.
func (c *captureService) CaptureVideo(ctx context.Context, maxDuration time.Duration) (*domain.MediaAsset, error) {
	c.logger.Info("opening camera", "max_duration", maxDuration)
	asset, err := c.picker.Capture(ctx, pickerOptions(maxDuration))
	return c.picked(asset, err)
}

// SelectFromLibrary picks an existing video from the media library
func (c *captureService) SelectFromLibrary(ctx context.Context, maxDuration time.Duration) (*domain.MediaAsset, error) {
	status, err := c.request(ctx, domain.PermissionMediaLibrary)
	if err != nil {
		return nil, err
	}
	if status != domain.PermissionGranted {
		return nil, domain.ErrLibraryPermissionDenied
	}

	c.logger.Info("opening media library", "max_duration", maxDuration)
	asset, err := c.picker.Select(ctx, pickerOptions(maxDuration))
	return c.picked(asset, err)
}

func (c *captureService) request(ctx context.Context, kind domain.PermissionKind) (domain.PermissionStatus, error) {
	status, err := c.gate.Request(ctx, kind)
	if err != nil {
		return domain.PermissionDenied, fmt.Errorf("could not request %s permission: %w", kind, err)
	}
	c.logger.Info("permission answered", "kind", kind, "status", status)
	return status, nil
}

func (c *captureService) picked(asset *domain.MediaAsset, err error) (*domain.MediaAsset, error) {
	switch {
	case errors.Is(err, domain.ErrCancelled):
		c.logger.Info("picker cancelled by user")
		return nil, domain.ErrCancelled
	case err != nil:
		return nil, fmt.Errorf("picker failed: %w", err)
	case asset == nil || asset.URI == "":
		c.logger.Info("picker returned no asset")
		return nil, domain.ErrCancelled
	}
	c.logger.Info("media picked", "uri", asset.URI, "file_name", asset.FileName)
	return asset, nil
}

func pickerOptions(maxDuration time.Duration) domain.PickerOptions {
	if maxDuration <= 0 {
		maxDuration = domain.DefaultMaxCaptureDuration
	}
	return domain.PickerOptions{MaxDuration: maxDuration}
}
