package media

import (
	"challenge-clips/internal/core/domain"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// FetchReader materializes a MediaAsset by fetching its URI, the way a browser turns a blob URL into a Blob.
// It understands http(s), file and base64 data URIs.
type FetchReader struct {
	client  *http.Client
	maxSize int64
}

// NewFetchReader creates a FetchReader. Bodies larger than maxSize are rejected, zero disables the limit.
func NewFetchReader(timeout time.Duration, maxSize int64) *FetchReader {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.RegisterProtocol("file", http.NewFileTransport(http.Dir("/")))

	return &FetchReader{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		maxSize: maxSize,
	}
}

// Name returns the strategy name
func (f *FetchReader) Name() string {
	return "fetch"
}

// Read fetches the asset URI
func (f *FetchReader) Read(ctx context.Context, asset domain.MediaAsset) (*domain.Payload, error) {
	uri := asset.URI
	if uri == "" {
		return nil, errors.New("asset uri is empty")
	}
	if strings.HasPrefix(uri, "data:") {
		return decodeDataURI(uri)
	}
	if filepath.IsAbs(uri) || strings.HasPrefix(uri, "file://") {
		normalized, err := fileURI(uri)
		if err != nil {
			return nil, err
		}
		uri = normalized
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build fetch request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", asset.URI, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: status %d", asset.URI, resp.StatusCode)
	}

	var body io.Reader = resp.Body
	if f.maxSize > 0 {
		body = io.LimitReader(resp.Body, f.maxSize+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", asset.URI, err)
	}
	if f.maxSize > 0 && int64(len(data)) > f.maxSize {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", domain.ErrPayloadTooLarge, asset.URI, f.maxSize)
	}

	return &domain.Payload{
		Data:        data,
		ContentType: blobType(resp.Header.Get("Content-Type"), asset, data),
	}, nil
}

// fileURI resolves a file reference to an absolute file:// URI pointing at a regular file
func fileURI(uri string) (string, error) {
	path, err := localPath(uri)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", uri, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", uri, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%s is not a regular file", uri)
	}
	return "file://" + filepath.ToSlash(abs), nil
}

// blobType resolves the MIME type of a fetched blob: the picker hint, then a specific
// response header, then content sniffing.
func blobType(header string, asset domain.MediaAsset, data []byte) string {
	if asset.MimeType != "" {
		return asset.MimeType
	}
	if mediaType, _, err := mime.ParseMediaType(header); err == nil && mediaType != "application/octet-stream" && !strings.HasPrefix(mediaType, "text/") {
		return mediaType
	}
	return mimetype.Detect(data).String()
}

func decodeDataURI(value string) (*domain.Payload, error) {
	parts := strings.SplitN(strings.TrimPrefix(value, "data:"), ",", 2)
	if len(parts) != 2 {
		return nil, errors.New("invalid data uri")
	}
	if !strings.HasSuffix(parts[0], ";base64") {
		return nil, errors.New("data uri must be base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("failed to decode data uri: %w", err)
	}

	contentType := strings.TrimSuffix(parts[0], ";base64")
	if contentType == "" {
		contentType = mimetype.Detect(data).String()
	}
	return &domain.Payload{Data: data, ContentType: contentType}, nil
}
