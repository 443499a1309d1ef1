package device

import (
	"challenge-clips/internal/core/domain"
	"context"

	"github.com/stretchr/testify/mock"
)

type MockPermissionGate struct {
	mock.Mock
}

func NewMockPermissionGate() *MockPermissionGate {
	return &MockPermissionGate{}
}

func (m *MockPermissionGate) Request(ctx context.Context, kind domain.PermissionKind) (domain.PermissionStatus, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).(domain.PermissionStatus), args.Error(1)
}

type MockMediaPicker struct {
	mock.Mock
}

func NewMockMediaPicker() *MockMediaPicker {
	return &MockMediaPicker{}
}

func (m *MockMediaPicker) Capture(ctx context.Context, opts domain.PickerOptions) (*domain.MediaAsset, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(*domain.MediaAsset), args.Error(1)
}

func (m *MockMediaPicker) Select(ctx context.Context, opts domain.PickerOptions) (*domain.MediaAsset, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(*domain.MediaAsset), args.Error(1)
}

type MockNotificationSink struct {
	mock.Mock
}

func NewMockNotificationSink() *MockNotificationSink {
	return &MockNotificationSink{}
}

func (m *MockNotificationSink) Deliver(ctx context.Context, notification domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}
