package challenge

import (
	"challenge-clips/internal/core/domain"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockChallengeService is a mock implementation of ChallengeService
type MockChallengeService struct {
	mock.Mock
}

func NewMockChallengeService() *MockChallengeService {
	return &MockChallengeService{}
}

func (m *MockChallengeService) CreateChallenge(ctx context.Context, task string, activeOn time.Time) (*uuid.UUID, error) {
	args := m.Called(ctx, task, activeOn)
	return args.Get(0).(*uuid.UUID), args.Error(1)
}

func (m *MockChallengeService) GetChallenge(ctx context.Context, id uuid.UUID) (*domain.Challenge, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Challenge), args.Error(1)
}

func (m *MockChallengeService) GetActiveChallenge(ctx context.Context, day time.Time) (*domain.Challenge, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(*domain.Challenge), args.Error(1)
}

func (m *MockChallengeService) ListChallenges(ctx context.Context, limit int, marker *string) ([]domain.Challenge, *string, error) {
	args := m.Called(ctx, limit, marker)
	return args.Get(0).([]domain.Challenge), args.Get(1).(*string), args.Error(2)
}
