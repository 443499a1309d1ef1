package video

import (
	"challenge-clips/internal/core/port"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 video routes
type HandlerV1 struct {
	uploadService    port.UploadService
	libraryService   port.LibraryService
	challengeService port.ChallengeService
	notifier         port.Notifier
	tempDir          string
	now              func() time.Time
	logger           *slog.Logger
}

// NewVideoHandlerV1 creates HandlerV1. Uploaded files are spooled to tempDir, the OS default when empty.
func NewVideoHandlerV1(
	upload port.UploadService,
	library port.LibraryService,
	challenges port.ChallengeService,
	notifier port.Notifier,
	tempDir string,
	logger *slog.Logger,
) *HandlerV1 {
	return &HandlerV1{
		uploadService:    upload,
		libraryService:   library,
		challengeService: challenges,
		notifier:         notifier,
		tempDir:          tempDir,
		now:              time.Now,
		logger:           logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/upload", h.UploadVideoV1)
	router.Get("/", h.ListVideosV1)

	return router
}

// V1Video is the representation of a video record
type V1Video struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	StorageKey  string    `json:"storage_key"`
	VideoURL    string    `json:"video_url"`
	Title       string    `json:"title"`
	TaskLabel   string    `json:"task_label"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
