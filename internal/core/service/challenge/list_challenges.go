package challenge

import (
	"challenge-clips/internal/core/domain"
	"context"
)

func (c *challengeService) ListChallenges(ctx context.Context, limit int, marker *string) ([]domain.Challenge, *string, error) {

	list, nextMarker, err := c.uow.ChallengeRepo().List(ctx, limit, marker)
	if err != nil {
		return nil, nil, err
	}

	return list, nextMarker, nil
}
