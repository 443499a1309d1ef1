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

type sqlVideoRepository struct {
	db SQLQuerier
}

// NewSqlVideoRepository creates sqlVideoRepository that implements port.VideoRepository
func NewSqlVideoRepository(db SQLQuerier) port.VideoRepository {
	return &sqlVideoRepository{
		db: db,
	}
}

// Create inserts a video record, uploaded_at is assigned by the database
func (s *sqlVideoRepository) Create(ctx context.Context, record domain.VideoRecord) (*domain.VideoRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	query := `
		INSERT INTO video_records (id, owner_id, storage_key, video_url, title, task_label, content_type, size_bytes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING uploaded_at`

	err := s.db.QueryRowContext(ctx, query,
		record.ID,
		record.OwnerID,
		record.StorageKey,
		record.VideoURL,
		record.Title,
		record.TaskLabel,
		record.ContentType,
		record.SizeBytes,
	).Scan(&record.UploadedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23505":
				return nil, fmt.Errorf("video record %s : %w", record.StorageKey, domain.ErrAlreadyExists)
			case "42501":
				// insufficient_privilege, e.g. a row level security policy
				return nil, fmt.Errorf("%w: %w", domain.ErrPermissionDenied, err)
			}
		}
		return nil, err
	}

	return &record, nil
}

// FindByStorageKey returns the record pointing at storageKey
func (s *sqlVideoRepository) FindByStorageKey(ctx context.Context, storageKey string) (*domain.VideoRecord, error) {
	query := `
		SELECT id, owner_id, storage_key, video_url, title, task_label, content_type, size_bytes, uploaded_at
		FROM video_records
		WHERE storage_key = $1`

	var recordDB dbVideoRecord
	err := s.db.QueryRowContext(ctx, query, storageKey).Scan(recordDB.fields()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVideoRecordNotFound
		}
		return nil, err
	}

	return recordDB.ToDomain(), nil
}

// ListByOwner lists the owner's records, newest first. before is an exclusive cursor on uploaded_at.
func (s *sqlVideoRepository) ListByOwner(ctx context.Context, ownerID string, limit int, before *time.Time) ([]domain.VideoRecord, error) {
	var query string
	var args []any

	if before != nil {
		query = `
			SELECT id, owner_id, storage_key, video_url, title, task_label, content_type, size_bytes, uploaded_at
			FROM video_records
			WHERE owner_id = $1 AND uploaded_at < $2
			ORDER BY uploaded_at DESC
			LIMIT $3`
		args = []any{ownerID, *before, limit}
	} else {
		query = `
			SELECT id, owner_id, storage_key, video_url, title, task_label, content_type, size_bytes, uploaded_at
			FROM video_records
			WHERE owner_id = $1
			ORDER BY uploaded_at DESC
			LIMIT $2`
		args = []any{ownerID, limit}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying video records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.VideoRecord, 0, limit)
	for rows.Next() {
		var recordDB dbVideoRecord
		if err := rows.Scan(recordDB.fields()...); err != nil {
			return nil, fmt.Errorf("error scanning video record: %w", err)
		}
		records = append(records, *recordDB.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating video records: %w", err)
	}

	return records, nil
}

type dbVideoRecord struct {
	ID          uuid.UUID `db:"id"`
	OwnerID     string    `db:"owner_id"`
	StorageKey  string    `db:"storage_key"`
	VideoURL    string    `db:"video_url"`
	Title       string    `db:"title"`
	TaskLabel   string    `db:"task_label"`
	ContentType string    `db:"content_type"`
	SizeBytes   int64     `db:"size_bytes"`
	UploadedAt  time.Time `db:"uploaded_at"`
}

func (v *dbVideoRecord) fields() []any {
	return []any{
		&v.ID,
		&v.OwnerID,
		&v.StorageKey,
		&v.VideoURL,
		&v.Title,
		&v.TaskLabel,
		&v.ContentType,
		&v.SizeBytes,
		&v.UploadedAt,
	}
}

// ToDomain converts to domain.VideoRecord
func (v *dbVideoRecord) ToDomain() *domain.VideoRecord {
	return &domain.VideoRecord{
		ID:          v.ID,
		OwnerID:     v.OwnerID,
		StorageKey:  v.StorageKey,
		VideoURL:    v.VideoURL,
		Title:       v.Title,
		TaskLabel:   v.TaskLabel,
		ContentType: v.ContentType,
		SizeBytes:   v.SizeBytes,
		UploadedAt:  v.UploadedAt,
	}
}
