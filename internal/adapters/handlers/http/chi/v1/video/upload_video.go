package video

import (
	"challenge-clips/internal/adapters/auth"
	"challenge-clips/internal/core/domain"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const maxMemory = 32 << 20

// V1UploadVideoResponse is the response to a video upload
type V1UploadVideoResponse struct {
	Notification domain.Notification `json:"notification"`
	Video        *V1Video            `json:"video,omitempty"`
}

// UploadVideoV1 uploads the multipart "file" part for the active or the given challenge
func (h *HandlerV1) UploadVideoV1(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetReqID(ctx)

	identity := auth.IdentityFrom(ctx)
	if identity == nil {
		h.fail(w, r, domain.ErrUnauthenticated)
		return
	}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.fail(w, r, fmt.Errorf("%w: %w", domain.ErrPayloadTooLarge, err))
			return
		}
		h.logger.Error("error parsing upload form", "request_id", requestID, "error", err)
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	challenge, err := h.resolveChallenge(ctx, r.FormValue("challenge_id"))
	switch {
	case errors.Is(err, errInvalidChallengeID):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrChallengeNotFound):
		http.Error(w, "challenge not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error resolving challenge", "request_id", requestID, "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	path, err := h.spool(file, header)
	if err != nil {
		h.logger.Error("error spooling upload", "request_id", requestID, "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}
	defer os.Remove(path)

	asset := domain.MediaAsset{
		URI:      "file://" + filepath.ToSlash(path),
		FileName: header.Filename,
		MimeType: header.Header.Get("Content-Type"),
	}

	record, err := h.uploadService.Upload(ctx, asset, identity, *challenge)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	notification := h.notifier.Success(ctx, record)
	video := toV1Video(*record)
	writeJSON(w, http.StatusCreated, V1UploadVideoResponse{Notification: notification, Video: &video}, h)
}

var errInvalidChallengeID = errors.New("invalid challenge id")

func (h *HandlerV1) resolveChallenge(ctx context.Context, rawID string) (*domain.Challenge, error) {
	if rawID == "" {
		return h.challengeService.GetActiveChallenge(ctx, h.now())
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidChallengeID, err)
	}
	return h.challengeService.GetChallenge(ctx, id)
}

// spool copies the uploaded part to a temporary file handed to the upload as a local asset
func (h *HandlerV1) spool(file multipart.File, header *multipart.FileHeader) (string, error) {
	tmp, err := os.CreateTemp(h.tempDir, "upload-*"+strings.ToLower(filepath.Ext(header.Filename)))
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	return tmp.Name(), nil
}

func (h *HandlerV1) fail(w http.ResponseWriter, r *http.Request, err error) {
	notification := h.notifier.Failure(r.Context(), err)
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("video upload failed", "request_id", middleware.GetReqID(r.Context()), "error", err)
	}
	writeJSON(w, status, V1UploadVideoResponse{Notification: notification}, h)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusBadGateway
	}
}

func toV1Video(record domain.VideoRecord) V1Video {
	return V1Video{
		ID:          record.ID.String(),
		OwnerID:     record.OwnerID,
		StorageKey:  record.StorageKey,
		VideoURL:    record.VideoURL,
		Title:       record.Title,
		TaskLabel:   record.TaskLabel,
		ContentType: record.ContentType,
		SizeBytes:   record.SizeBytes,
		UploadedAt:  record.UploadedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any, h *HandlerV1) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
