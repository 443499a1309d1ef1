package media

import (
	"challenge-clips/internal/core/domain"
	"challenge-clips/internal/core/port"
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"os"
	"strings"
)

// FilesystemReader reads a MediaAsset through the native filesystem bridge and decodes
// the base64 content it returns into raw bytes.
type FilesystemReader struct {
	fs port.FileSystem
}

// NewFilesystemReader creates a FilesystemReader
func NewFilesystemReader(fs port.FileSystem) *FilesystemReader {
	return &FilesystemReader{fs: fs}
}

// Name returns the strategy name
func (r *FilesystemReader) Name() string {
	return "filesystem"
}

// Read reads the asset as base64 and decodes it
func (r *FilesystemReader) Read(ctx context.Context, asset domain.MediaAsset) (*domain.Payload, error) {
	encoded, err := r.fs.ReadAsBase64(ctx, asset.URI)
	if err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 content: %w", err)
	}

	return &domain.Payload{Data: data, ContentType: domain.DefaultVideoContentType}, nil
}

// OSFileSystem is the FileSystem bridge backed by the local disk
type OSFileSystem struct{}

// ReadAsBase64 reads a file:// URI or a plain path
func (OSFileSystem) ReadAsBase64(ctx context.Context, uri string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := localPath(uri)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

func localPath(uri string) (string, error) {
	if !strings.Contains(uri, "://") {
		return uri, nil
	}
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("invalid uri %q: %w", uri, err)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("unsupported uri scheme %q for filesystem read", u.Scheme)
	}
	if u.Host != "" && u.Host != "localhost" {
		// file://a.mov style relative references
		return u.Host + u.Path, nil
	}
	return u.Path, nil
}
