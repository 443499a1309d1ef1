package chi

import (
	"challenge-clips/internal/adapters/handlers/http/chi/v1/challenge"
	"challenge-clips/internal/adapters/handlers/http/chi/v1/video"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterOptions configures NewRouter
type RouterOptions struct {
	Env           string
	JWTSecret     []byte
	MaxUploadSize int64
}

// NewRouter builds http.Handler with chi
func NewRouter(logger *slog.Logger, opts RouterOptions, challengeHandler *challenge.HandlerV1, videoHandler *video.HandlerV1) http.Handler {
	r := chi.NewRouter()

	//handle requestID to facilitate debug (X-Request-ID)
	//It fetches from request if exists, or creates it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(MetricsMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Minute))

	if opts.Env != "prod" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	maxUpload := opts.MaxUploadSize
	if maxUpload <= 0 {
		maxUpload = 100 << 20
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(AuthMiddleware(opts.JWTSecret, logger))
		r.With(middleware.RequestSize(1 << 20)).Mount("/challenge", challengeHandler.Routes())
		// multipart framing on top of the largest accepted video
		r.With(middleware.RequestSize(maxUpload + 1<<20)).Mount("/video", videoHandler.Routes())
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
