// Package throttle limits accepted comment submissions per hashed address.
package throttle

import (
	"context"
	"sync"
	"time"

	"github.com/Laisky/errors/v2"
)

// Limiter is a sliding-window counter keyed by an opaque string,
// injected wherever submissions must be throttled.
type Limiter interface {
	// Allow consumes one slot for key and reports whether the
	// submission is within the window's budget.
	Allow(ctx context.Context, key string) (bool, error)
}

type record struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter keeps the counters in a mutex-guarded process-local map.
// State does not survive restarts and is not shared between instances;
// deployments with several replicas should use RedisLimiter instead.
type MemoryLimiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	records map[string]*record
	now     func() time.Time
}

// NewMemoryLimiter creates a limiter allowing max hits per window for each key.
func NewMemoryLimiter(max int, window time.Duration) (*MemoryLimiter, error) {
	if max <= 0 {
		return nil, errors.Errorf("max must be positive, got %d", max)
	}
	if window <= 0 {
		return nil, errors.Errorf("window must be positive, got %s", window)
	}

	return &MemoryLimiter{
		max:     max,
		window:  window,
		records: map[string]*record{},
		now:     time.Now,
	}, nil
}

// Allow implements Limiter.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	rec, ok := l.records[key]
	if !ok || now.After(rec.resetAt) {
		l.records[key] = &record{count: 1, resetAt: now.Add(l.window)}
		return true, nil
	}

	if rec.count < l.max {
		rec.count++
		return true, nil
	}

	return false, nil
}
