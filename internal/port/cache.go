package port

import "context"

// StatsCache stores computed leaderboards between writes.
//
// Entries belong to a generation. Invalidate starts a new one, and Set only
// stores a value if gen is still current, so a leaderboard computed before a
// write can never be served after it. Callers read Generation before loading
// the data they compute from. Get reports a miss with found=false and a nil
// error.
type StatsCache interface {
	Generation(ctx context.Context) (int64, error)
	Get(ctx context.Context, gen int64, key string, dest any) (found bool, err error)
	Set(ctx context.Context, gen int64, key string, value any) error
	Invalidate(ctx context.Context) error
}
