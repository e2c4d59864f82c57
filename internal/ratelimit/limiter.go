// Package ratelimit turns a materialized core.RateLimit into admission
// decisions: "is this identity currently allowed to proceed". It performs
// bookkeeping arithmetic only — no request ever actually flows through this
// package, matching the no-data-plane-forwarding scope of the rest of the
// project.
package ratelimit

import (
	"context"
	"time"

	"github.com/meshpolicy/policy-controller/internal/core"
)

// Limiter admits or rejects a request for a rate-limited key (the total
// bucket's key is the empty string; per-identity buckets are keyed by the
// identity string).
type Limiter interface {
	Acquire(ctx context.Context, key string) (ok bool, retryAfter time.Duration, err error)
}

// ConcurrencyLimiter tracks in-flight request counts for a
// ConcurrencyLimitPolicy.
type ConcurrencyLimiter interface {
	Enter(ctx context.Context) (ok bool, err error)
	Exit()
}

// bucketLimits is the rate + burst a single token bucket enforces, derived
// from a core.Limit.
type bucketLimits struct {
	ratePerSec float64
	burst      int32
}

func fromLimit(l core.Limit) bucketLimits {
	burst := l.Burst
	if burst <= 0 {
		burst = 1
	}
	return bucketLimits{ratePerSec: l.RPS, burst: burst}
}
