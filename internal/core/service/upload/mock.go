package upload

import (
	"challenge-clips/internal/core/domain"
	"context"

	"github.com/stretchr/testify/mock"
)

// MockUploadService is a mock implementation of UploadService
type MockUploadService struct {
	mock.Mock
}

func NewMockUploadService() *MockUploadService {
	return &MockUploadService{}
}

func (m *MockUploadService) Upload(ctx context.Context, asset domain.MediaAsset, identity *domain.Identity, challenge domain.Challenge) (*domain.VideoRecord, error) {
	args := m.Called(ctx, asset, identity, challenge)
	return args.Get(0).(*domain.VideoRecord), args.Error(1)
}
