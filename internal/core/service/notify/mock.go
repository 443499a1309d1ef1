package notify

import (
	"challenge-clips/internal/core/domain"
	"context"

	"github.com/stretchr/testify/mock"
)

// MockNotifier is a mock implementation of Notifier
type MockNotifier struct {
	mock.Mock
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) Success(ctx context.Context, record *domain.VideoRecord) domain.Notification {
	args := m.Called(ctx, record)
	return args.Get(0).(domain.Notification)
}

func (m *MockNotifier) Failure(ctx context.Context, err error) domain.Notification {
	args := m.Called(ctx, err)
	return args.Get(0).(domain.Notification)
}
