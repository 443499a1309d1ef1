package media

import (
	"challenge-clips/internal/core/domain"
	"context"

	"github.com/stretchr/testify/mock"
)

type MockPayloadReader struct {
	mock.Mock
	name string
}

func NewMockPayloadReader(name string) *MockPayloadReader {
	return &MockPayloadReader{name: name}
}

func (m *MockPayloadReader) Name() string {
	return m.name
}

func (m *MockPayloadReader) Read(ctx context.Context, asset domain.MediaAsset) (*domain.Payload, error) {
	args := m.Called(ctx, asset)
	return args.Get(0).(*domain.Payload), args.Error(1)
}

type MockFileSystem struct {
	mock.Mock
}

func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{}
}

func (m *MockFileSystem) ReadAsBase64(ctx context.Context, uri string) (string, error) {
	args := m.Called(ctx, uri)
	return args.String(0), args.Error(1)
}
