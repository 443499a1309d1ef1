package minio_test

import (
	"bytes"
	"challenge-clips/internal/adapters/storage/minio"
	"challenge-clips/internal/config"
	"challenge-clips/internal/core/domain"
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testAccessKey = "minioadmin"
	testSecretKey = "minioadmin"
	testBucket    = "test-videos"
)

func setupContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     testAccessKey,
			"MINIO_ROOT_PASSWORD": testSecretKey,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000"),
	}
	minioContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := minioContainer.Host(ctx)
	require.NoError(t, err)

	port, err := minioContainer.MappedPort(ctx, "9000")
	require.NoError(t, err)

	endpoint := fmt.Sprintf("%s:%s", host, port.Port())

	cleanup := func() {
		if err := minioContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}
	time.Sleep(500 * time.Millisecond) // wait for container to be up
	return endpoint, cleanup
}

func createAdapter(t *testing.T, ctx context.Context, endpoint string) *minio.Adapter {
	t.Helper()
	cfg := config.MinioConfig{
		Endpoint:   endpoint,
		AccessKey:  testAccessKey,
		SecretKey:  testSecretKey,
		BucketName: testBucket,
	}
	storageCfg := config.StorageConfig{
		MaxObjectSize: 1 << 20,
		AllowedTypes:  []string{"video/mp4", "video/quicktime"},
	}
	adapter, err := minio.NewAdapter(ctx, cfg, storageCfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return adapter
}

func TestAdapter_Put(t *testing.T) {
	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()
	adapter := createAdapter(t, ctx, endpoint)

	t.Run("uploads and serves the object publicly", func(t *testing.T) {
		data := []byte("fake mov payload")
		key := "u1_1700000000000_clip.mov"

		err := adapter.Put(ctx, key, bytes.NewReader(data), int64(len(data)), "video/quicktime")
		require.NoError(t, err)

		publicURL, err := adapter.PublicURL(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("http://%s/%s/%s", endpoint, testBucket, key), publicURL)

		objects, err := adapter.ListObjects(ctx, time.Now().Add(time.Minute))
		require.NoError(t, err)
		require.Len(t, objects, 1)
		assert.Equal(t, key, objects[0].Key)
		assert.Equal(t, int64(len(data)), objects[0].Size)
	})

	t.Run("never overwrites", func(t *testing.T) {
		key := "u1_1700000000001_clip.mov"
		require.NoError(t, adapter.Put(ctx, key, bytes.NewReader([]byte("first")), 5, "video/mp4"))

		err := adapter.Put(ctx, key, bytes.NewReader([]byte("second")), 6, "video/mp4")

		require.ErrorIs(t, err, domain.ErrObjectExists)
	})

	t.Run("rejects oversized payloads", func(t *testing.T) {
		data := make([]byte, 1<<20+1)

		err := adapter.Put(ctx, "u1_1700000000002_big.mp4", bytes.NewReader(data), int64(len(data)), "video/mp4")

		require.ErrorIs(t, err, domain.ErrPayloadTooLarge)
	})

	t.Run("rejects types the bucket does not accept", func(t *testing.T) {
		err := adapter.Put(ctx, "u1_1700000000003_pic.png", bytes.NewReader([]byte("png")), 3, "image/png")

		require.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	})
}

func TestAdapter_DeleteObject(t *testing.T) {
	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()
	adapter := createAdapter(t, ctx, endpoint)

	key := "u1_1700000000000_clip.mp4"
	require.NoError(t, adapter.Put(ctx, key, bytes.NewReader([]byte("clip")), 4, "video/mp4"))

	err := adapter.DeleteObject(ctx, key)
	require.NoError(t, err)

	objects, err := adapter.ListObjects(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestAdapter_ListObjects_OlderThan(t *testing.T) {
	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()
	adapter := createAdapter(t, ctx, endpoint)

	require.NoError(t, adapter.Put(ctx, "u1_1700000000000_clip.mp4", bytes.NewReader([]byte("clip")), 4, "video/mp4"))

	objects, err := adapter.ListObjects(ctx, time.Now().Add(-time.Hour))

	require.NoError(t, err)
	assert.Empty(t, objects)
}

func TestAdapter_PublicURL_BaseURL(t *testing.T) {
	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()

	adapter, err := minio.NewAdapter(ctx,
		config.MinioConfig{Endpoint: endpoint, AccessKey: testAccessKey, SecretKey: testSecretKey, BucketName: testBucket},
		config.StorageConfig{PublicBaseURL: "https://cdn.example.com/videos/"},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	publicURL, err := adapter.PublicURL(ctx, "u1_1700000000000_clip.mp4")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/videos/u1_1700000000000_clip.mp4", publicURL)
}
