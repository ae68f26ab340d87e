package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockStatsCache is a mock implementation of port.StatsCache.
type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) Generation(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsCache) Get(ctx context.Context, gen int64, key string, dest any) (bool, error) {
	args := m.Called(ctx, gen, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockStatsCache) Set(ctx context.Context, gen int64, key string, value any) error {
	args := m.Called(ctx, gen, key, value)
	return args.Error(0)
}

func (m *MockStatsCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
