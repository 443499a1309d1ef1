package postgres

import (
	"challenge-clips/internal/core/domain"
	"challenge-clips/internal/core/port"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type sqlChallengeRepository struct {
	db SQLQuerier
}

// NewSqlChallengeRepository creates sqlChallengeRepository that implements port.ChallengeRepository
func NewSqlChallengeRepository(db SQLQuerier) port.ChallengeRepository {
	return &sqlChallengeRepository{
		db: db,
	}
}

// Create creates a new challenge
func (s *sqlChallengeRepository) Create(ctx context.Context, id uuid.UUID, task string, activeOn time.Time) error {
	query := `INSERT INTO challenges (id, task, active_on) VALUES ($1, $2, $3)`

	_, err := s.db.ExecContext(ctx, query, id, task, activeOn)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" {
				return fmt.Errorf("challenge %s : %w", task, domain.ErrAlreadyExists)
			}
		}
		return err
	}
	return nil
}

func (s *sqlChallengeRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Challenge, error) {
	query := `SELECT id, task, active_on, created_at FROM challenges WHERE id = $1`
	return s.findOne(ctx, query, id)
}

// FindActive returns the challenge with the latest active_on not after day
func (s *sqlChallengeRepository) FindActive(ctx context.Context, day time.Time) (*domain.Challenge, error) {
	query := `
		SELECT id, task, active_on, created_at
		FROM challenges
		WHERE active_on <= $1
		ORDER BY active_on DESC, created_at DESC
		LIMIT 1`
	return s.findOne(ctx, query, day)
}

func (s *sqlChallengeRepository) findOne(ctx context.Context, query string, arg any) (*domain.Challenge, error) {
	var challengeDB dbChallenge

	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&challengeDB.ID,
		&challengeDB.Task,
		&challengeDB.ActiveOn,
		&challengeDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrChallengeNotFound
		}
		return nil, err
	}

	return challengeDB.ToDomain(), nil
}

// List lists challenges ordered by task, marker is the last task of the previous page
func (s *sqlChallengeRepository) List(ctx context.Context, limit int, marker *string) ([]domain.Challenge, *string, error) {
	if limit <= 0 {
		limit = 20 // default limit
	}
	if limit > 100 {
		limit = 100 // max limit
	}

	var query string
	var args []any

	if marker != nil && *marker != "" {
		query = `
			SELECT id, task, active_on, created_at
			FROM challenges
			WHERE task > $1
			ORDER BY task ASC
			LIMIT $2`
		args = []any{*marker, limit + 1}
	} else {
		query = `
			SELECT id, task, active_on, created_at
			FROM challenges
			ORDER BY task ASC
			LIMIT $1`
		args = []any{limit + 1}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("error querying challenges: %w", err)
	}
	defer rows.Close()

	challenges := make([]domain.Challenge, 0, limit)
	for rows.Next() {
		var challengeDB dbChallenge
		if err := rows.Scan(&challengeDB.ID, &challengeDB.Task, &challengeDB.ActiveOn, &challengeDB.CreatedAt); err != nil {
			return nil, nil, fmt.Errorf("error scanning challenge: %w", err)
		}
		challenges = append(challenges, *challengeDB.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating challenges: %w", err)
	}

	var nextMarker *string
	if len(challenges) > limit {
		challenges = challenges[:limit]
		lastTask := challenges[len(challenges)-1].Task
		nextMarker = &lastTask
	}

	return challenges, nextMarker, nil
}

type dbChallenge struct {
	ID        uuid.UUID `db:"id"`
	Task      string    `db:"task"`
	ActiveOn  time.Time `db:"active_on"`
	CreatedAt time.Time `db:"created_at"`
}

// ToDomain converts to domain.Challenge
func (c *dbChallenge) ToDomain() *domain.Challenge {
	return &domain.Challenge{
		ID:        c.ID,
		Task:      c.Task,
		ActiveOn:  c.ActiveOn,
		CreatedAt: c.CreatedAt,
	}
}
