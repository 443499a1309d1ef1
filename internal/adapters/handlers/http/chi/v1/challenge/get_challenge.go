package challenge

import (
	"challenge-clips/internal/core/domain"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetChallengeV1 returns a challenge by id
func (h *HandlerV1) GetChallengeV1(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "challengeID"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.challengeService.GetChallenge(r.Context(), id)
	h.respond(w, c, err)
}

// GetActiveChallengeV1 returns the challenge active on ?day=YYYY-MM-DD, today when absent
func (h *HandlerV1) GetActiveChallengeV1(w http.ResponseWriter, r *http.Request) {
	day := h.now()
	if raw := r.URL.Query().Get("day"); raw != "" {
		parsed, err := time.Parse(dayLayout, raw)
		if err != nil {
			http.Error(w, "day must be a YYYY-MM-DD date", http.StatusBadRequest)
			return
		}
		day = parsed
	}

	c, err := h.challengeService.GetActiveChallenge(r.Context(), day)
	h.respond(w, c, err)
}

func (h *HandlerV1) respond(w http.ResponseWriter, c *domain.Challenge, err error) {
	switch {
	case errors.Is(err, domain.ErrChallengeNotFound):
		http.Error(w, "challenge not found", http.StatusNotFound)
	case err != nil:
		h.logger.Error("error getting challenge", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
	default:
		h.writeJSON(w, http.StatusOK, toV1Challenge(*c))
	}
}
