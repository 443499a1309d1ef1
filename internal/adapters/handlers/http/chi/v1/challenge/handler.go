package challenge

import (
	"challenge-clips/internal/core/domain"
	"challenge-clips/internal/core/port"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const dayLayout = "2006-01-02"

// HandlerV1 is the handler for v1 challenge routes
type HandlerV1 struct {
	challengeService port.ChallengeService
	now              func() time.Time
	logger           *slog.Logger
}

// NewChallengeHandlerV1 creates HandlerV1
func NewChallengeHandlerV1(service port.ChallengeService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		challengeService: service,
		now:              time.Now,
		logger:           logger,
	}
}

// Routes exposes routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.CreateChallengeV1)
	router.Get("/", h.ListChallengesV1)
	router.Get("/active", h.GetActiveChallengeV1)
	router.Get("/{challengeID}", h.GetChallengeV1)

	return router
}

// V1Challenge is the representation of a challenge
type V1Challenge struct {
	ID       string `json:"id"`
	Task     string `json:"task"`
	Title    string `json:"title"`
	ActiveOn string `json:"active_on"`
}

func toV1Challenge(c domain.Challenge) V1Challenge {
	return V1Challenge{
		ID:       c.ID.String(),
		Task:     c.Task,
		Title:    c.Title(),
		ActiveOn: c.ActiveOn.Format(dayLayout),
	}
}

func (h *HandlerV1) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
