package workflow_test

import (
	"challenge-clips/internal/adapters/device"
	"challenge-clips/internal/adapters/media"
	"challenge-clips/internal/adapters/repository"
	"challenge-clips/internal/adapters/storage"
	"challenge-clips/internal/core/domain"
	"challenge-clips/internal/core/port"
	"challenge-clips/internal/core/service/capture"
	"challenge-clips/internal/core/service/notify"
	"challenge-clips/internal/core/service/upload"
	"challenge-clips/internal/core/service/workflow"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	identity  = &domain.Identity{UserID: "u1"}
	challenge = domain.Challenge{Task: "Today's Challenge"}
	asset     = &domain.MediaAsset{URI: "file://a.mov", FileName: "clip.mov"}
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFlow_Run_PermissionDenied(t *testing.T) {
	// Arrange
	ctx := context.Background()
	gate := device.NewMockPermissionGate()
	gate.On("Request", ctx, domain.PermissionCamera).Return(domain.PermissionDenied, nil).Once()
	picker := device.NewMockMediaPicker()
	uploader := upload.NewMockUploadService()
	flow := workflow.NewFlow(capture.NewCaptureService(gate, picker, discard()), uploader,
		notify.NewNotifier(100<<20, discard()), time.Minute, discard())

	// Act
	n, err := flow.Run(ctx, domain.SourceCamera, identity, challenge)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, domain.NotificationError, n.Level)
	assert.Equal(t, "Camera permission is required to record videos.", n.Message)
	picker.AssertNotCalled(t, "Capture", mock.Anything, mock.Anything)
	uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFlow_Run_LibraryPermissionDenied(t *testing.T) {
	// Arrange
	ctx := context.Background()
	gate := device.NewMockPermissionGate()
	gate.On("Request", ctx, domain.PermissionMediaLibrary).Return(domain.PermissionDenied, nil).Once()
	picker := device.NewMockMediaPicker()
	uploader := upload.NewMockUploadService()
	flow := workflow.NewFlow(capture.NewCaptureService(gate, picker, discard()), uploader,
		notify.NewNotifier(100<<20, discard()), time.Minute, discard())

	// Act
	n, err := flow.Run(ctx, domain.SourceLibrary, identity, challenge)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, "Media library permission is required to select videos.", n.Message)
	picker.AssertNotCalled(t, "Select", mock.Anything, mock.Anything)
	uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFlow_Run_Cancelled(t *testing.T) {
	// Arrange
	ctx := context.Background()
	captureSvc := capture.NewMockCaptureService()
	captureSvc.On("RequestCameraAccess", ctx).Return(domain.PermissionGranted, nil).Once()
	captureSvc.On("CaptureVideo", ctx, time.Minute).Return((*domain.MediaAsset)(nil), domain.ErrCancelled).Once()
	uploader := upload.NewMockUploadService()
	notifier := notify.NewMockNotifier()
	flow := workflow.NewFlow(captureSvc, uploader, notifier, time.Minute, discard())

	// Act
	n, err := flow.Run(ctx, domain.SourceCamera, identity, challenge)

	// Assert
	require.NoError(t, err)
	assert.Nil(t, n)
	uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Failure", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Success", mock.Anything, mock.Anything)
}

func TestFlow_Run_UploadFailure(t *testing.T) {
	// Arrange
	ctx := context.Background()
	captureSvc := capture.NewMockCaptureService()
	captureSvc.On("SelectFromLibrary", ctx, time.Minute).Return(asset, nil).Once()
	uploader := upload.NewMockUploadService()
	uploadErr := errors.Join(domain.ErrPayloadTooLarge, errors.New("EntityTooLarge"))
	uploader.On("Upload", ctx, *asset, identity, challenge).Return((*domain.VideoRecord)(nil), uploadErr).Once()
	flow := workflow.NewFlow(captureSvc, uploader, notify.NewNotifier(100<<20, discard()), time.Minute, discard())

	// Act
	n, err := flow.Run(ctx, domain.SourceLibrary, identity, challenge)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, "The video file is too large. Maximum size is 100MB.", n.Message)
}

func TestFlow_Run_UnknownSource(t *testing.T) {
	flow := workflow.NewFlow(capture.NewMockCaptureService(), upload.NewMockUploadService(), notify.NewMockNotifier(), time.Minute, discard())

	_, err := flow.Run(context.Background(), "screen", identity, challenge)

	require.Error(t, err)
}

func TestFlow_Run_EndToEnd(t *testing.T) {
	// Arrange
	ctx := context.Background()
	gate := device.NewMockPermissionGate()
	gate.On("Request", ctx, domain.PermissionCamera).Return(domain.PermissionGranted, nil).Once()
	picker := device.NewMockMediaPicker()
	picker.On("Capture", ctx, domain.PickerOptions{MaxDuration: time.Minute}).Return(asset, nil).Once()

	reader := media.NewMockPayloadReader("filesystem")
	reader.On("Read", ctx, *asset).Return(&domain.Payload{Data: []byte("mov"), ContentType: "video/mp4"}, nil).Once()
	store := storage.NewMockObjectStore()
	store.On("Put", ctx, mock.MatchedBy(func(key string) bool { return len(key) > 0 }), mock.Anything, int64(3), "video/mp4").Return(nil).Once()
	store.On("PublicURL", ctx, mock.Anything).Return("https://cdn.example.com/videos/key", nil).Once()
	uow := repository.NewMockUnitOfWork()
	var inserted domain.VideoRecord
	uow.GetVideoRepoMock().On("Create", ctx, mock.Anything).
		Run(func(args mock.Arguments) { inserted = args.Get(1).(domain.VideoRecord) }).
		Return(&domain.VideoRecord{Title: "Today's Challenge Challenge"}, nil).Once()

	sink := device.NewMockNotificationSink()
	sink.On("Deliver", ctx, mock.MatchedBy(func(n domain.Notification) bool { return n.Level == domain.NotificationSuccess })).Return(nil).Once()

	uploader := upload.NewUploadService(store, uow, []port.PayloadReader{reader}, discard())
	flow := workflow.NewFlow(capture.NewCaptureService(gate, picker, discard()), uploader,
		notify.NewNotifier(100<<20, discard(), sink), time.Minute, discard())

	// Act
	n, err := flow.Run(ctx, domain.SourceCamera, identity, challenge)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, domain.NotificationSuccess, n.Level)
	assert.Equal(t, domain.RouteLibrary, n.Action.Route)
	assert.Regexp(t, `^u1_\d+_clip\.mov$`, inserted.StorageKey)
	assert.Equal(t, "Today's Challenge Challenge", inserted.Title)
	assert.Equal(t, "https://cdn.example.com/videos/key", inserted.VideoURL)
	store.AssertNumberOfCalls(t, "Put", 1)
	uow.GetVideoRepoMock().AssertNumberOfCalls(t, "Create", 1)
	sink.AssertExpectations(t)
}
