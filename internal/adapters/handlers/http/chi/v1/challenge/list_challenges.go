package challenge

import (
	"net/http"
	"strconv"
)

// V1ListChallengesResponse is the response to list challenges
type V1ListChallengesResponse struct {
	Challenges []V1Challenge `json:"challenges"`
	NextMarker *string       `json:"next_marker"`
}

// ListChallengesV1 is the handler for list challenges v1
func (h *HandlerV1) ListChallengesV1(w http.ResponseWriter, r *http.Request) {

	limit := 10
	limitStr := r.URL.Query().Get("limit")
	if limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	var marker *string
	if m := r.URL.Query().Get("marker"); m != "" {
		marker = &m
	}

	list, nextMarker, err := h.challengeService.ListChallenges(r.Context(), limit, marker)
	if err != nil {
		h.logger.Error("error listing challenges", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	resp := V1ListChallengesResponse{
		Challenges: make([]V1Challenge, 0, len(list)),
		NextMarker: nextMarker,
	}
	for _, c := range list {
		resp.Challenges = append(resp.Challenges, toV1Challenge(c))
	}

	h.writeJSON(w, http.StatusOK, resp)
}
