package chi_test

import (
	"challenge-clips/internal/adapters/handlers/http/chi"
	"encoding/json"
	"io"
	"log/slog"
	http2 "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter(t *testing.T) {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := chi.NewRouter(discardLogger, chi.RouterOptions{JWTSecret: []byte("secret")}, nil, nil)

	t.Run("health", func(t *testing.T) {
		// Arrange
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet, "/health", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)
		var resp chi.HealthResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "ok", resp.Status)
	})

	t.Run("metrics exposes request counters", func(t *testing.T) {
		// Arrange
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http2.MethodGet, "/health", nil))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet, "/metrics", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusOK, w.Code)
		assert.True(t, strings.Contains(w.Body.String(), `route="/health"`))
	})

	t.Run("malformed authorization header is refused", func(t *testing.T) {
		// Arrange
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http2.MethodGet, "/api/v1/video/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, http2.StatusUnauthorized, w.Code)
		assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"))
	})
}
