package notify

import (
	"challenge-clips/internal/core/domain"
	"challenge-clips/internal/core/port"
	"context"
	"errors"
	"fmt"
	"log/slog"
)

type notifier struct {
	sinks         []port.NotificationSink
	maxObjectSize int64
	logger        *slog.Logger
}

// NewNotifier creates the result notifier. maxObjectSize is the storage size ceiling quoted to the user.
func NewNotifier(maxObjectSize int64, logger *slog.Logger, sinks ...port.NotificationSink) port.Notifier {
	return &notifier{
		sinks:         sinks,
		maxObjectSize: maxObjectSize,
		logger:        logger,
	}
}

// Success builds the success notification and offers the library shortcut
func (n *notifier) Success(ctx context.Context, record *domain.VideoRecord) domain.Notification {
	notification := domain.Notification{
		Level:   domain.NotificationSuccess,
		Title:   "Success",
		Message: "Your video has been uploaded successfully!",
		Action: &domain.NavigationAction{
			Label: "View Library",
			Route: domain.RouteLibrary,
		},
		Record: record,
	}
	n.deliver(ctx, notification)
	return notification
}

// Failure builds the failure notification for err
func (n *notifier) Failure(ctx context.Context, err error) domain.Notification {
	notification := domain.Notification{
		Level:   domain.NotificationError,
		Title:   "Upload Failed",
		Message: n.message(err),
		Err:     err,
	}
	if errors.Is(err, domain.ErrCameraPermissionDenied) {
		notification.Title = "Permission Required"
	}
	n.deliver(ctx, notification)
	return notification
}

func (n *notifier) message(err error) string {
	switch {
	case errors.Is(err, domain.ErrLibraryPermissionDenied):
		return "Media library permission is required to select videos."
	case errors.Is(err, domain.ErrCameraPermissionDenied):
		return "Camera permission is required to record videos."
	case errors.Is(err, domain.ErrPermissionDenied):
		return "You don't have permission to upload videos. Please contact support."
	case errors.Is(err, domain.ErrPayloadTooLarge):
		return fmt.Sprintf("The video file is too large. Maximum size is %dMB.", n.maxObjectSize>>20)
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return "This video format is not supported. Please use MP4 or MOV format."
	case errors.Is(err, domain.ErrUnauthenticated):
		return "You must be signed in to upload videos."
	default:
		return "Upload failed: " + providerMessage(err)
	}
}

// providerMessage drops the taxonomy prefix so the provider message is shown verbatim
func providerMessage(err error) string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, inner := range joined.Unwrap() {
			if !isKind(inner) {
				return inner.Error()
			}
		}
	}
	return err.Error()
}

func isKind(err error) bool {
	return err == domain.ErrUnknown || err == domain.ErrPermissionDenied || err == domain.ErrPayloadTooLarge ||
		err == domain.ErrUnsupportedFormat || err == domain.ErrUnauthenticated
}

func (n *notifier) deliver(ctx context.Context, notification domain.Notification) {
	for _, sink := range n.sinks {
		if err := sink.Deliver(ctx, notification); err != nil {
			n.logger.Error("failed to deliver notification", "level", notification.Level, "error", err)
		}
	}
}
