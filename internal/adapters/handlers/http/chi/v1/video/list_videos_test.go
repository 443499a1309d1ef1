package video_test

import (
	video2 "challenge-clips/internal/adapters/handlers/http/chi/v1/video"
	"challenge-clips/internal/core/domain"
	"encoding/json"
	"errors"
	http2 "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListVideosV1(t *testing.T) {
	t.Run("success - lists the caller's videos", func(t *testing.T) {
		// Arrange
		m := newMocks()
		now := time.Now().UTC()
		records := []domain.VideoRecord{
			{ID: uuid.New(), OwnerID: "u1", StorageKey: "u1_2_b.mov", UploadedAt: now},
			{ID: uuid.New(), OwnerID: "u1", StorageKey: "u1_1_a.mov", UploadedAt: now.Add(-time.Minute)},
		}
		m.library.On("ListVideos", mock.Anything, &domain.Identity{UserID: "u1"}, 2, (*time.Time)(nil)).Return(records, nil)

		req := httptest.NewRequest(http2.MethodGet, "/api/v1/video/?limit=2", nil)
		req.Header.Set("Authorization", bearer(t, "u1"))
		w := httptest.NewRecorder()

		// Act
		m.router(t).ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)
		var resp video2.V1ListVideosResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Len(t, resp.Videos, 2)
		assert.Equal(t, "u1_2_b.mov", resp.Videos[0].StorageKey)
		require.NotNil(t, resp.Next)
		assert.WithinDuration(t, records[1].UploadedAt, *resp.Next, time.Millisecond)
		m.library.AssertExpectations(t)
	})

	t.Run("success - before cursor is forwarded", func(t *testing.T) {
		// Arrange
		m := newMocks()
		before := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
		m.library.On("ListVideos", mock.Anything, mock.Anything, 20, &before).Return([]domain.VideoRecord{}, nil)

		req := httptest.NewRequest(http2.MethodGet, "/api/v1/video/?before="+before.Format(time.RFC3339), nil)
		req.Header.Set("Authorization", bearer(t, "u1"))
		w := httptest.NewRecorder()

		// Act
		m.router(t).ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)
		var resp video2.V1ListVideosResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Empty(t, resp.Videos)
		assert.Nil(t, resp.Next)
	})

	t.Run("error - anonymous", func(t *testing.T) {
		// Arrange
		m := newMocks()
		m.library.On("ListVideos", mock.Anything, (*domain.Identity)(nil), 20, (*time.Time)(nil)).
			Return([]domain.VideoRecord(nil), domain.ErrUnauthenticated)

		req := httptest.NewRequest(http2.MethodGet, "/api/v1/video/", nil)
		w := httptest.NewRecorder()

		// Act
		m.router(t).ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusUnauthorized, w.Code)
	})

	t.Run("error - invalid limit", func(t *testing.T) {
		// Arrange
		m := newMocks()
		req := httptest.NewRequest(http2.MethodGet, "/api/v1/video/?limit=abc", nil)
		w := httptest.NewRecorder()

		// Act
		m.router(t).ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusBadRequest, w.Code)
		m.library.AssertNotCalled(t, "ListVideos", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error - repository failure", func(t *testing.T) {
		// Arrange
		m := newMocks()
		m.library.On("ListVideos", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]domain.VideoRecord(nil), errors.New("db down"))

		req := httptest.NewRequest(http2.MethodGet, "/api/v1/video/", nil)
		req.Header.Set("Authorization", bearer(t, "u1"))
		w := httptest.NewRecorder()

		// Act
		m.router(t).ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusServiceUnavailable, w.Code)
	})
}
