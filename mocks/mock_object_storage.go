package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mrtrack/internal/port"
)

// MockObjectStorage is a mock implementation of port.ObjectStorage.
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Put(ctx context.Context, input port.PutObjectInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) PresignGet(ctx context.Context, key string, expirySeconds int64) (string, error) {
	args := m.Called(ctx, key, expirySeconds)
	return args.String(0), args.Error(1)
}
