package interfaces

import (
	"context"
	"time"
)

// IDashboardCache is an advisory byte cache for dashboard summaries. Misses
// and errors are equivalent to the caller: it recomputes and moves on.

type IDashboardCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
