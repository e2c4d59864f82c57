package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	redis "github.com/go-redis/redis/v7"

	"github.com/meshpolicy/policy-controller/internal/core"
)

// redisLimiter is a Redis-backed Limiter for one core.RateLimit, sharing
// buckets across every controller replica via a single atomic Lua script
// per Acquire, mirroring the project's own Redis-backed provider limiter.
type redisLimiter struct {
	client redis.UniversalClient
	prefix string
	total  bucketLimits
	ident  *bucketLimits
	over   map[string]bucketLimits

	script *redis.Script
}

// NewRedisLimiter builds a Limiter backed by client, sharing state across
// every replica of this controller under keys prefixed by prefix.
func NewRedisLimiter(client redis.UniversalClient, prefix string, rl core.RateLimit) Limiter {
	l := &redisLimiter{
		client: client,
		prefix: prefix,
		total:  fromLimit(rl.Total),
		script: acquireScript,
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

// acquireScript atomically refills and debits one token from a bucket
// hash, returning {allowed, retryAfterMillis}.
var acquireScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local rate = tonumber(ARGV[2])
local burst = tonumber(ARGV[3])
local stateTTL = tonumber(ARGV[4])

local tokens = tonumber(redis.call('HGET', key, 'tokens'))
if tokens == nil then tokens = burst end

local lastRefill = tonumber(redis.call('HGET', key, 'last_refill'))
if lastRefill == nil then lastRefill = now end

local blockedUntil = tonumber(redis.call('HGET', key, 'blocked_until'))
if blockedUntil == nil then blockedUntil = 0 end

if blockedUntil > now then
  return {0, blockedUntil - now}
end

local delta = now - lastRefill
if delta < 0 then delta = 0 end

tokens = math.min(burst, tokens + (delta * rate / 1000.0))

if tokens >= 1.0 then
  tokens = tokens - 1.0
  redis.call('HSET', key, 'tokens', tokens, 'last_refill', now)
  redis.call('PEXPIRE', key, stateTTL)
  return {1, 0}
else
  local retry = 1000
  if rate > 0 then retry = math.ceil(1000.0 / rate) end
  local blockUntil = now + retry
  redis.call('HSET', key, 'tokens', tokens, 'last_refill', now, 'blocked_until', blockUntil)
  redis.call('PEXPIRE', key, stateTTL)
  return {0, retry}
end
`)

func (l *redisLimiter) key(bucketKey string) string {
	if bucketKey == "" {
		bucketKey = "total"
	}
	return l.prefix + "rl:" + bucketKey
}

func (l *redisLimiter) Acquire(ctx context.Context, identity string) (bool, time.Duration, error) {
	ok, retry, err := l.acquireBucket(ctx, "", l.total)
	if err != nil || !ok {
		return ok, retry, err
	}

	limits, hasIdentityLimit := l.identityLimits(identity)
	if !hasIdentityLimit {
		return true, 0, nil
	}

	return l.acquireBucket(ctx, identity, limits)
}

func (l *redisLimiter) identityLimits(key string) (bucketLimits, bool) {
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

func (l *redisLimiter) acquireBucket(_ context.Context, bucketKey string, limits bucketLimits) (bool, time.Duration, error) {
	nowMs := time.Now().UnixMilli()
	const stateTTLms = int64((30 * time.Minute) / time.Millisecond)

	res, err := l.script.Run(l.client, []string{l.key(bucketKey)}, nowMs, limits.ratePerSec, limits.burst, stateTTLms).Result()
	if err != nil {
		return false, 0, err
	}
	arr, ok := res.([]interface{})
	if !ok || len(arr) < 2 {
		return false, 0, fmt.Errorf("unexpected limiter response: %T", res)
	}
	allowed, ok := toInt64(arr[0])
	if !ok {
		return false, 0, fmt.Errorf("unexpected limiter ok type: %T", arr[0])
	}
	if allowed == 0 {
		retryMs, ok := toInt64(arr[1])
		if !ok {
			return false, 0, fmt.Errorf("unexpected limiter retry type: %T", arr[1])
		}
		return false, time.Duration(retryMs) * time.Millisecond, nil
	}
	return true, 0, nil
}

func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int:
		return int64(x), true
	case float64:
		return int64(x), true
	case []byte:
		n, err := strconv.ParseInt(string(x), 10, 64)
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(x, 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}
