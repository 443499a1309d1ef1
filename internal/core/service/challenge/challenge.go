package challenge

import "challenge-clips/internal/core/port"

type challengeService struct {
	uow port.UnitOfWork
}

// NewChallengeService creates a new challenge service
func NewChallengeService(uow port.UnitOfWork) port.ChallengeService {
	return &challengeService{uow: uow}
}
