package library

import (
	"challenge-clips/internal/core/domain"
	"challenge-clips/internal/core/port"
	"context"
	"time"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type libraryService struct {
	uow port.UnitOfWork
}

// NewLibraryService creates a new library service
func NewLibraryService(uow port.UnitOfWork) port.LibraryService {
	return &libraryService{uow: uow}
}

// ListVideos lists the identity's videos, newest first
func (l *libraryService) ListVideos(ctx context.Context, identity *domain.Identity, limit int, before *time.Time) ([]domain.VideoRecord, error) {
	if identity == nil || identity.UserID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return l.uow.VideoRepo().ListByOwner(ctx, identity.UserID, limit, before)
}
