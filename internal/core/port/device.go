package port

import (
	"challenge-clips/internal/core/domain"
	"context"
	"time"
)

// PermissionGate asks the device for a permission
type PermissionGate interface {
	Request(ctx context.Context, kind domain.PermissionKind) (domain.PermissionStatus, error)
}

// MediaPicker opens the device camera or media library. A dismissed picker returns domain.ErrCancelled.
type MediaPicker interface {
	Capture(ctx context.Context, opts domain.PickerOptions) (*domain.MediaAsset, error)
	Select(ctx context.Context, opts domain.PickerOptions) (*domain.MediaAsset, error)
}

// CaptureService obtains a local media file from the device
type CaptureService interface {
	RequestCameraAccess(ctx context.Context) (domain.PermissionStatus, error)
	CaptureVideo(ctx context.Context, maxDuration time.Duration) (*domain.MediaAsset, error)
	SelectFromLibrary(ctx context.Context, maxDuration time.Duration) (*domain.MediaAsset, error)
}
