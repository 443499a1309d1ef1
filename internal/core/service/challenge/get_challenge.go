package challenge

import (
	"challenge-clips/internal/core/domain"
	"context"
	"time"

	"github.com/google/uuid"
)

func (c *challengeService) GetChallenge(ctx context.Context, id uuid.UUID) (*domain.Challenge, error) {
	return c.uow.ChallengeRepo().FindByID(ctx, id)
}

// GetActiveChallenge returns the latest challenge active on day
func (c *challengeService) GetActiveChallenge(ctx context.Context, day time.Time) (*domain.Challenge, error) {
	return c.uow.ChallengeRepo().FindActive(ctx, day)
}
