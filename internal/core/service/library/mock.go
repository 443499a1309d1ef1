package library

import (
	"challenge-clips/internal/core/domain"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockLibraryService is a mock implementation of LibraryService
type MockLibraryService struct {
	mock.Mock
}

func NewMockLibraryService() *MockLibraryService {
	return &MockLibraryService{}
}

func (m *MockLibraryService) ListVideos(ctx context.Context, identity *domain.Identity, limit int, before *time.Time) ([]domain.VideoRecord, error) {
	args := m.Called(ctx, identity, limit, before)
	return args.Get(0).([]domain.VideoRecord), args.Error(1)
}
