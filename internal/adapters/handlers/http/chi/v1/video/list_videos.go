package video

import (
	"challenge-clips/internal/adapters/auth"
	"challenge-clips/internal/core/domain"
	"errors"
	"net/http"
	"strconv"
	"time"
)

// V1ListVideosResponse is the response to list videos
type V1ListVideosResponse struct {
	Videos []V1Video  `json:"videos"`
	Next   *time.Time `json:"next,omitempty"`
}

// ListVideosV1 lists the caller's videos, newest first
func (h *HandlerV1) ListVideosV1(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed <= 0 || parsed > 100 {
			http.Error(w, "limit must be between 1 and 100", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	var before *time.Time
	if rawBefore := r.URL.Query().Get("before"); rawBefore != "" {
		parsed, err := time.Parse(time.RFC3339Nano, rawBefore)
		if err != nil {
			http.Error(w, "before must be an RFC3339 timestamp", http.StatusBadRequest)
			return
		}
		before = &parsed
	}

	records, err := h.libraryService.ListVideos(r.Context(), auth.IdentityFrom(r.Context()), limit, before)
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	case err != nil:
		h.logger.Error("error listing videos", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	resp := V1ListVideosResponse{Videos: make([]V1Video, 0, len(records))}
	for _, record := range records {
		resp.Videos = append(resp.Videos, toV1Video(record))
	}
	if len(records) == limit {
		next := records[len(records)-1].UploadedAt
		resp.Next = &next
	}

	writeJSON(w, http.StatusOK, resp, h)
}
