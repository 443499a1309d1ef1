package media_test

import (
	"challenge-clips/internal/adapters/media"
	"challenge-clips/internal/core/domain"
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystemReader_Read(t *testing.T) {
	ctx := context.Background()
	asset := domain.MediaAsset{URI: "file:///videos/clip.mov", FileName: "clip.mov"}

	t.Run("decodes base64 and defaults to mp4", func(t *testing.T) {
		fs := media.NewMockFileSystem()
		fs.On("ReadAsBase64", ctx, asset.URI).Return(base64.StdEncoding.EncodeToString([]byte("raw")), nil)

		payload, err := media.NewFilesystemReader(fs).Read(ctx, asset)

		require.NoError(t, err)
		assert.Equal(t, []byte("raw"), payload.Data)
		assert.Equal(t, "video/mp4", payload.ContentType)
		fs.AssertExpectations(t)
	})

	t.Run("invalid base64", func(t *testing.T) {
		fs := media.NewMockFileSystem()
		fs.On("ReadAsBase64", ctx, asset.URI).Return("%%%", nil)

		_, err := media.NewFilesystemReader(fs).Read(ctx, asset)

		require.Error(t, err)
	})

	t.Run("bridge error", func(t *testing.T) {
		fs := media.NewMockFileSystem()
		fs.On("ReadAsBase64", ctx, asset.URI).Return("", assert.AnError)

		_, err := media.NewFilesystemReader(fs).Read(ctx, asset)

		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestOSFileSystem_ReadAsBase64(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "clip.mov")
	require.NoError(t, os.WriteFile(path, []byte("raw"), 0o644))
	want := base64.StdEncoding.EncodeToString([]byte("raw"))

	for _, uri := range []string{path, "file://" + filepath.ToSlash(path)} {
		got, err := media.OSFileSystem{}.ReadAsBase64(ctx, uri)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := media.OSFileSystem{}.ReadAsBase64(ctx, "http://example.com/clip.mov")
	require.Error(t, err)
}

func TestReaders(t *testing.T) {
	fetch := media.NewFetchReader(0, 0)

	browser, err := media.Readers(domain.RuntimeBrowser, media.OSFileSystem{}, fetch)
	require.NoError(t, err)
	require.Len(t, browser, 1)
	assert.Equal(t, "fetch", browser[0].Name())

	native, err := media.Readers(domain.RuntimeNative, media.OSFileSystem{}, fetch)
	require.NoError(t, err)
	require.Len(t, native, 2)
	assert.Equal(t, "filesystem", native[0].Name())
	assert.Equal(t, "fetch", native[1].Name())

	_, err = media.Readers("desktop", media.OSFileSystem{}, fetch)
	require.Error(t, err)
}
