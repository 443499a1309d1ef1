package challenge

import (
	"challenge-clips/internal/core/domain"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CreateChallenge creates a challenge active from activeOn
func (c *challengeService) CreateChallenge(ctx context.Context, task string, activeOn time.Time) (*uuid.UUID, error) {
	task = strings.TrimSpace(task)
	if task == "" {
		return nil, errors.New("task is required")
	}

	id := uuid.New()
	day := activeOn.UTC().Truncate(24 * time.Hour)
	if err := c.uow.ChallengeRepo().Create(ctx, id, task, day); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("could not create challenge: %w", err)
	}
	return &id, nil
}
