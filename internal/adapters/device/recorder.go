package device

import (
	"challenge-clips/internal/core/domain"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// CommandRecorder records a video by running an external capture command.
// The command template may reference {duration} (whole seconds) and {output}.
type CommandRecorder struct {
	command string
	dir     string
	logger  *slog.Logger
	now     func() time.Time

	mu       sync.Mutex
	captured []string
}

// NewCommandRecorder creates a recorder writing its captures into dir
func NewCommandRecorder(command, dir string, logger *slog.Logger) *CommandRecorder {
	return &CommandRecorder{command: command, dir: dir, logger: logger, now: time.Now}
}

// Capture runs the capture command. A command that leaves no output counts as a cancelled capture.
func (r *CommandRecorder) Capture(ctx context.Context, opts domain.PickerOptions) (*domain.MediaAsset, error) {
	output, err := filepath.Abs(filepath.Join(r.dir, fmt.Sprintf("capture_%d.mp4", r.now().UnixMilli())))
	if err != nil {
		return nil, err
	}

	args := r.args(opts, output)
	if len(args) == 0 {
		return nil, errors.New("capture command is empty")
	}

	r.logger.Info("recording video", "command", args[0], "output", output, "max_duration", opts.MaxDuration)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	if out, err := cmd.CombinedOutput(); err != nil {
		if ctx.Err() != nil {
			return nil, domain.ErrCancelled
		}
		return nil, fmt.Errorf("capture command failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	info, err := os.Stat(output)
	if err != nil || info.Size() == 0 {
		r.logger.Info("capture produced no video", "output", output)
		return nil, domain.ErrCancelled
	}

	r.mu.Lock()
	r.captured = append(r.captured, output)
	r.mu.Unlock()

	return assetFromPath(output), nil
}

// Discard removes the recordings produced so far. Captures are consumed once by the upload.
func (r *CommandRecorder) Discard() error {
	r.mu.Lock()
	captured := r.captured
	r.captured = nil
	r.mu.Unlock()

	var errs []error
	for _, path := range captured {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
			continue
		}
		r.logger.Info("recording discarded", "path", path)
	}
	return errors.Join(errs...)
}

func (r *CommandRecorder) args(opts domain.PickerOptions, output string) []string {
	duration := opts.MaxDuration
	if duration <= 0 {
		duration = domain.DefaultMaxCaptureDuration
	}
	seconds := strconv.Itoa(int(duration.Round(time.Second) / time.Second))

	fields := strings.Fields(r.command)
	for i, f := range fields {
		f = strings.ReplaceAll(f, "{duration}", seconds)
		fields[i] = strings.ReplaceAll(f, "{output}", output)
	}
	return fields
}

func assetFromPath(path string) *domain.MediaAsset {
	return &domain.MediaAsset{
		URI:      "file://" + filepath.ToSlash(path),
		FileName: filepath.Base(path),
		MimeType: mime.TypeByExtension(strings.ToLower(filepath.Ext(path))),
	}
}
