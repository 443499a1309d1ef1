package challenge

import (
	"challenge-clips/internal/core/domain"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"
)

// V1CreateChallengeRequest is the body request for Create Challenge
type V1CreateChallengeRequest struct {
	Task     string `json:"task"`
	ActiveOn string `json:"active_on"`
}

// V1CreateChallengeResponse is the response to Create Challenge
type V1CreateChallengeResponse struct {
	ID string `json:"id"`
}

// CreateChallengeV1 is the handler for create challenge v1
func (h *HandlerV1) CreateChallengeV1(w http.ResponseWriter, r *http.Request) {

	var req V1CreateChallengeRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		h.logger.Error("error decoding create challenge request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Task) == "" {
		http.Error(w, "task required", http.StatusBadRequest)
		return
	}

	activeOn, err := time.Parse(dayLayout, req.ActiveOn)
	if err != nil {
		http.Error(w, "active_on must be a YYYY-MM-DD date", http.StatusBadRequest)
		return
	}

	id, err := h.challengeService.CreateChallenge(r.Context(), req.Task, activeOn)
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		http.Error(w, "challenge already exists", http.StatusConflict)
	case err != nil:
		h.logger.Error("error creating challenge", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
	default:
		h.writeJSON(w, http.StatusCreated, V1CreateChallengeResponse{ID: id.String()})
	}
}
