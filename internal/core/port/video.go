package port

import (
	"challenge-clips/internal/core/domain"
	"context"
	"time"

	"github.com/google/uuid"
)

// VideoRepository is an interface to define video record interactions
type VideoRepository interface {
	Create(ctx context.Context, record domain.VideoRecord) (*domain.VideoRecord, error)
	FindByStorageKey(ctx context.Context, storageKey string) (*domain.VideoRecord, error)
	ListByOwner(ctx context.Context, ownerID string, limit int, before *time.Time) ([]domain.VideoRecord, error)
}

// ChallengeRepository is an interface to define challenge interactions
type ChallengeRepository interface {
	Create(ctx context.Context, id uuid.UUID, task string, activeOn time.Time) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Challenge, error)
	FindActive(ctx context.Context, day time.Time) (*domain.Challenge, error)
	List(ctx context.Context, limit int, marker *string) ([]domain.Challenge, *string, error)
}

// UploadService is the upload orchestrator
type UploadService interface {
	Upload(ctx context.Context, asset domain.MediaAsset, identity *domain.Identity, challenge domain.Challenge) (*domain.VideoRecord, error)
}

// LibraryService lists uploaded videos
type LibraryService interface {
	ListVideos(ctx context.Context, identity *domain.Identity, limit int, before *time.Time) ([]domain.VideoRecord, error)
}

// ChallengeService manages challenges
type ChallengeService interface {
	CreateChallenge(ctx context.Context, task string, activeOn time.Time) (*uuid.UUID, error)
	GetChallenge(ctx context.Context, id uuid.UUID) (*domain.Challenge, error)
	GetActiveChallenge(ctx context.Context, day time.Time) (*domain.Challenge, error)
	ListChallenges(ctx context.Context, limit int, marker *string) ([]domain.Challenge, *string, error)
}
