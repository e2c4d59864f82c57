package ratelimit

import (
	"context"
	"sync"

	"github.com/meshpolicy/policy-controller/internal/core"
)

// memoryConcurrencyLimiter is an in-process counting semaphore for one
// ConcurrencyLimitPolicy's MaxInFlight.
type memoryConcurrencyLimiter struct {
	mu      sync.Mutex
	max     int32
	current int32
}

// NewConcurrencyLimiter builds a ConcurrencyLimiter from a materialized
// ConcurrencyLimit.
func NewConcurrencyLimiter(cl core.ConcurrencyLimit) ConcurrencyLimiter {
	return &memoryConcurrencyLimiter{max: cl.MaxInFlight}
}

func (l *memoryConcurrencyLimiter) Enter(_ context.Context) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current >= l.max {
		return false, nil
	}
	l.current++
	return true, nil
}

func (l *memoryConcurrencyLimiter) Exit() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current > 0 {
		l.current--
	}
}
