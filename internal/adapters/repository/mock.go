package repository

import (
	"challenge-clips/internal/core/domain"
	"challenge-clips/internal/core/port"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockVideoRepository struct {
	mock.Mock
}

func NewMockVideoRepository() *MockVideoRepository {
	return &MockVideoRepository{}
}

func (m *MockVideoRepository) Create(ctx context.Context, record domain.VideoRecord) (*domain.VideoRecord, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(*domain.VideoRecord), args.Error(1)
}

func (m *MockVideoRepository) FindByStorageKey(ctx context.Context, storageKey string) (*domain.VideoRecord, error) {
	args := m.Called(ctx, storageKey)
	return args.Get(0).(*domain.VideoRecord), args.Error(1)
}

func (m *MockVideoRepository) ListByOwner(ctx context.Context, ownerID string, limit int, before *time.Time) ([]domain.VideoRecord, error) {
	args := m.Called(ctx, ownerID, limit, before)
	return args.Get(0).([]domain.VideoRecord), args.Error(1)
}

type MockChallengeRepository struct {
	mock.Mock
}

func NewMockChallengeRepository() *MockChallengeRepository {
	return &MockChallengeRepository{}
}

func (m *MockChallengeRepository) Create(ctx context.Context, id uuid.UUID, task string, activeOn time.Time) error {
	args := m.Called(ctx, id, task, activeOn)
	return args.Error(0)
}

func (m *MockChallengeRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Challenge, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Challenge), args.Error(1)
}

func (m *MockChallengeRepository) FindActive(ctx context.Context, day time.Time) (*domain.Challenge, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(*domain.Challenge), args.Error(1)
}

func (m *MockChallengeRepository) List(ctx context.Context, limit int, marker *string) ([]domain.Challenge, *string, error) {
	args := m.Called(ctx, limit, marker)
	return args.Get(0).([]domain.Challenge), args.Get(1).(*string), args.Error(2)
}

type MockUnitOfWork struct {
	mock.Mock
	videoRepo     *MockVideoRepository
	challengeRepo *MockChallengeRepository
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		videoRepo:     &MockVideoRepository{},
		challengeRepo: &MockChallengeRepository{},
	}
}

func (m *MockUnitOfWork) VideoRepo() port.VideoRepository {
	return m.videoRepo
}

func (m *MockUnitOfWork) ChallengeRepo() port.ChallengeRepository {
	return m.challengeRepo
}

func (m *MockUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	args := m.Called(ctx, fn)

	if err := fn(m); err != nil {
		return err
	}

	return args.Error(0)
}

func (m *MockUnitOfWork) GetVideoRepoMock() *MockVideoRepository {
	return m.videoRepo
}

func (m *MockUnitOfWork) GetChallengeRepoMock() *MockChallengeRepository {
	return m.challengeRepo
}
