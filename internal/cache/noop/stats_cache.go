// Package noop provides a StatsCache that never stores anything.
package noop

import (
	"context"

	"mrtrack/internal/port"
)

type statsCache struct{}

// NewStatsCache returns a StatsCache that always misses.
func NewStatsCache() port.StatsCache {
	return statsCache{}
}

func (statsCache) Generation(context.Context) (int64, error) { return 0, nil }

func (statsCache) Get(context.Context, int64, string, any) (bool, error) { return false, nil }

func (statsCache) Set(context.Context, int64, string, any) error { return nil }

func (statsCache) Invalidate(context.Context) error { return nil }
