package capture

import (
	"challenge-clips/internal/core/domain"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockCaptureService is a mock implementation of CaptureService
type MockCaptureService struct {
	mock.Mock
}

func NewMockCaptureService() *MockCaptureService {
	return &MockCaptureService{}
}

func (m *MockCaptureService) RequestCameraAccess(ctx context.Context) (domain.PermissionStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.PermissionStatus), args.Error(1)
}

func (m *MockCaptureService) CaptureVideo(ctx context.Context, maxDuration time.Duration) (*domain.MediaAsset, error) {
	args := m.Called(ctx, maxDuration)
	return args.Get(0).(*domain.MediaAsset), args.Error(1)
}

func (m *MockCaptureService) SelectFromLibrary(ctx context.Context, maxDuration time.Duration) (*domain.MediaAsset, error) {
	args := m.Called(ctx, maxDuration)
	return args.Get(0).(*domain.MediaAsset), args.Error(1)
}
