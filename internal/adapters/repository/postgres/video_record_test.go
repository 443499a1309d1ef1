package postgres_test

import (
	"challenge-clips/internal/adapters/repository/postgres"
	"challenge-clips/internal/core/domain"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newRecord(owner string, n int) domain.VideoRecord {
	key := fmt.Sprintf("%s_%d_clip.mov", owner, 1700000000000+n)
	return domain.VideoRecord{
		OwnerID:     owner,
		StorageKey:  key,
		VideoURL:    "http://localhost:9000/videos/" + key,
		Title:       "Today's Challenge",
		TaskLabel:   "Today's",
		ContentType: "video/quicktime",
		SizeBytes:   int64(1024 * n),
	}
}

func TestSqlVideoRepository_Create(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()

	repo := postgres.NewSqlVideoRepository(dbConnection)

	t.Run("nominal", func(t *testing.T) {
		truncate()

		created, err := repo.Create(ctx, newRecord("u1", 1))

		require.NoError(t, err)
		require.NotNil(t, created)
		require.NotEqual(t, "00000000-0000-0000-0000-000000000000", created.ID.String())
		require.False(t, created.UploadedAt.IsZero())
	})

	t.Run("same storage key twice", func(t *testing.T) {
		truncate()
		_, err := repo.Create(ctx, newRecord("u1", 1))
		require.NoError(t, err)

		_, err = repo.Create(ctx, newRecord("u1", 1))

		require.ErrorIs(t, err, domain.ErrAlreadyExists)
	})
}

func TestSqlVideoRepository_FindByStorageKey(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()

	repo := postgres.NewSqlVideoRepository(dbConnection)

	t.Run("found", func(t *testing.T) {
		truncate()
		record := newRecord("u1", 1)
		_, err := repo.Create(ctx, record)
		require.NoError(t, err)

		found, err := repo.FindByStorageKey(ctx, record.StorageKey)

		require.NoError(t, err)
		require.Equal(t, record.OwnerID, found.OwnerID)
		require.Equal(t, record.VideoURL, found.VideoURL)
		require.Equal(t, record.Title, found.Title)
		require.Equal(t, record.SizeBytes, found.SizeBytes)
	})

	t.Run("not found", func(t *testing.T) {
		truncate()

		_, err := repo.FindByStorageKey(ctx, "missing")

		require.ErrorIs(t, err, domain.ErrVideoRecordNotFound)
	})
}

func TestSqlVideoRepository_ListByOwner(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()

	repo := postgres.NewSqlVideoRepository(dbConnection)

	truncate()
	for i := 1; i <= 3; i++ {
		_, err := repo.Create(ctx, newRecord("u1", i))
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}
	_, err := repo.Create(ctx, newRecord("u2", 9))
	require.NoError(t, err)

	t.Run("newest first and owner filtered", func(t *testing.T) {
		records, err := repo.ListByOwner(ctx, "u1", 10, nil)

		require.NoError(t, err)
		require.Len(t, records, 3)
		require.Equal(t, newRecord("u1", 3).StorageKey, records[0].StorageKey)
		require.Equal(t, newRecord("u1", 1).StorageKey, records[2].StorageKey)
	})

	t.Run("before cursor", func(t *testing.T) {
		first, err := repo.ListByOwner(ctx, "u1", 1, nil)
		require.NoError(t, err)
		require.Len(t, first, 1)

		rest, err := repo.ListByOwner(ctx, "u1", 10, &first[0].UploadedAt)

		require.NoError(t, err)
		require.Len(t, rest, 2)
		for _, r := range rest {
			require.True(t, r.UploadedAt.Before(first[0].UploadedAt))
		}
	})

	t.Run("unknown owner", func(t *testing.T) {
		records, err := repo.ListByOwner(ctx, "nobody", 10, nil)

		require.NoError(t, err)
		require.Empty(t, records)
	})
}
