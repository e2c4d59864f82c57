package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/meshpolicy/policy-controller/internal/core"
)

// memBucket is a single token bucket, refilled lazily on Acquire.
type memBucket struct {
	tokens       float64
	lastRefill   time.Time
	blockedUntil time.Time
	lastTouched  time.Time
}

const memoryBucketTTL = 30 * time.Minute

// memoryLimiter is a process-local token-bucket Limiter for one
// core.RateLimit: a total bucket keyed by the empty string, and one
// per-identity bucket whose limits come from an override (matched by
// ClientSelector) or from the policy's Identity limit.
type memoryLimiter struct {
	mu      sync.Mutex
	now     func() time.Time
	total   bucketLimits
	ident   *bucketLimits
	over    map[string]bucketLimits
	buckets map[string]*memBucket
}

// NewMemoryLimiter builds a process-local Limiter from a materialized
// RateLimit, mirroring the refill-on-access token bucket the project's own
// in-memory provider limiter uses.
func NewMemoryLimiter(rl core.RateLimit) Limiter {
	l := &memoryLimiter{
		now:     time.Now,
		total:   fromLimit(rl.Total),
		buckets: make(map[string]*memBucket),
	}
	if rl.Identity != nil {
		b := fromLimit(*rl.Identity)
		l.ident = &b
	}
	if len(rl.Overrides) > 0 {
		l.over = make(map[string]bucketLimits, len(rl.Overrides))
		for _, o := range rl.Overrides {
			l.over[o.ClientSelector] = fromLimit(o.Limit)
		}
	}
	return l
}

func (l *memoryLimiter) Acquire(_ context.Context, key string) (bool, time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	if ok, retry := l.take("", l.total, now); !ok {
		return false, retry, nil
	}

	limits, hasIdentityLimit := l.identityLimits(key)
	if !hasIdentityLimit {
		return true, 0, nil
	}

	ok, retry := l.take(key, limits, now)
	return ok, retry, nil
}

func (l *memoryLimiter) identityLimits(key string) (bucketLimits, bool) {
	if key == "" {
		return bucketLimits{}, false
	}
	if lim, ok := l.over[key]; ok {
		return lim, true
	}
	if l.ident != nil {
		return *l.ident, true
	}
	return bucketLimits{}, false
}

// take refills and debits one token from the named bucket, creating it on
// first use.
func (l *memoryLimiter) take(bucketKey string, limits bucketLimits, now time.Time) (bool, time.Duration) {
	b := l.buckets[bucketKey]
	if b == nil {
		b = &memBucket{tokens: float64(limits.burst), lastRefill: now}
		l.buckets[bucketKey] = b
	}
	b.lastTouched = now

	for k, v := range l.buckets {
		if now.Sub(v.lastTouched) > memoryBucketTTL {
			delete(l.buckets, k)
		}
	}

	if !b.blockedUntil.IsZero() && b.blockedUntil.After(now) {
		return false, b.blockedUntil.Sub(now)
	}

	delta := now.Sub(b.lastRefill)
	if delta < 0 {
		delta = 0
	}
	burst := float64(limits.burst)
	b.tokens = minF(burst, b.tokens+delta.Seconds()*limits.ratePerSec)
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}

	retry := time.Second
	if limits.ratePerSec > 0 {
		retry = time.Duration(float64(time.Second) / limits.ratePerSec)
	}
	b.blockedUntil = now.Add(retry)
	return false, retry
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
