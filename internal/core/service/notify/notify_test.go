package notify_test

import (
	"challenge-clips/internal/adapters/device"
	"challenge-clips/internal/core/domain"
	"challenge-clips/internal/core/service/notify"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const maxObjectSize = 100 << 20

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNotifier_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	sink := device.NewMockNotificationSink()
	sink.On("Deliver", ctx, mock.Anything).Return(nil).Once()
	record := &domain.VideoRecord{StorageKey: "u1_1_clip.mov"}

	// Act
	n := notify.NewNotifier(maxObjectSize, discard(), sink).Success(ctx, record)

	// Assert
	assert.Equal(t, domain.NotificationSuccess, n.Level)
	assert.Equal(t, "Your video has been uploaded successfully!", n.Message)
	if assert.NotNil(t, n.Action) {
		assert.Equal(t, "View Library", n.Action.Label)
		assert.Equal(t, domain.RouteLibrary, n.Action.Route)
	}
	assert.Same(t, record, n.Record)
	sink.AssertExpectations(t)
}

func TestNotifier_Failure(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		err     error
		title   string
		message string
	}{
		{
			name:    "camera permission",
			err:     fmt.Errorf("%w: camera access denied", domain.ErrCameraPermissionDenied),
			title:   "Permission Required",
			message: "Camera permission is required to record videos.",
		},
		{
			name:    "library permission",
			err:     domain.ErrLibraryPermissionDenied,
			title:   "Permission Required",
			message: "Media library permission is required to select videos.",
		},
		{
			name:    "storage permission",
			err:     fmt.Errorf("%w: %w", domain.ErrPermissionDenied, errors.New("policy")),
			title:   "Upload Failed",
			message: "You don't have permission to upload videos. Please contact support.",
		},
		{
			name:    "too large",
			err:     fmt.Errorf("%w: %w", domain.ErrPayloadTooLarge, errors.New("EntityTooLarge")),
			title:   "Upload Failed",
			message: "The video file is too large. Maximum size is 100MB.",
		},
		{
			name:    "unsupported format",
			err:     fmt.Errorf("%w: %w", domain.ErrUnsupportedFormat, errors.New("mime type")),
			title:   "Upload Failed",
			message: "This video format is not supported. Please use MP4 or MOV format.",
		},
		{
			name:    "unauthenticated",
			err:     fmt.Errorf("%w: user not authenticated", domain.ErrUnauthenticated),
			title:   "Upload Failed",
			message: "You must be signed in to upload videos.",
		},
		{
			name:    "unknown keeps the provider message",
			err:     fmt.Errorf("%w: %w", domain.ErrUnknown, errors.New("connection reset by peer")),
			title:   "Upload Failed",
			message: "Upload failed: connection reset by peer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			n := notify.NewNotifier(maxObjectSize, discard()).Failure(ctx, tt.err)

			// Assert
			assert.Equal(t, domain.NotificationError, n.Level)
			assert.Equal(t, tt.title, n.Title)
			assert.Equal(t, tt.message, n.Message)
			assert.Nil(t, n.Action)
			assert.ErrorIs(t, n.Err, tt.err)
		})
	}
}

func TestNotifier_SinkErrorsDoNotPropagate(t *testing.T) {
	// Arrange
	ctx := context.Background()
	failing := device.NewMockNotificationSink()
	failing.On("Deliver", ctx, mock.Anything).Return(assert.AnError).Once()
	working := device.NewMockNotificationSink()
	working.On("Deliver", ctx, mock.Anything).Return(nil).Once()

	// Act
	n := notify.NewNotifier(maxObjectSize, discard(), failing, working).Failure(ctx, errors.New("boom"))

	// Assert
	assert.Equal(t, "Upload failed: boom", n.Message)
	failing.AssertExpectations(t)
	working.AssertExpectations(t)
}

func TestNotifier_SizeFollowsConfig(t *testing.T) {
	n := notify.NewNotifier(50<<20, discard()).Failure(context.Background(), domain.ErrPayloadTooLarge)

	assert.Equal(t, "The video file is too large. Maximum size is 50MB.", n.Message)
}
