package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meshpolicy/policy-controller/internal/core"
)

func TestMemoryLimiter_TotalBucketExhausts(t *testing.T) {
	t.Parallel()

	l := NewMemoryLimiter(core.RateLimit{Total: core.Limit{RPS: 0, Burst: 1}})
	ctx := context.Background()

	ok, _, err := l.Acquire(ctx, "")
	require.NoError(t, err)
	require.True(t, ok)

	ok, retry, err := l.Acquire(ctx, "")
	require.NoError(t, err)
	require.False(t, ok)
	require.Greater(t, retry, time.Duration(0))
}

func TestMemoryLimiter_OverrideTakesPrecedenceOverIdentity(t *testing.T) {
	t.Parallel()

	l := NewMemoryLimiter(core.RateLimit{
		Total:    core.Limit{RPS: 100, Burst: 100},
		Identity: &core.Limit{RPS: 100, Burst: 100},
		Overrides: []core.RateLimitOverride{
			{ClientSelector: "ns/sa", Limit: core.Limit{RPS: 0, Burst: 1}},
		},
	})
	ctx := context.Background()

	ok, _, err := l.Acquire(ctx, "ns/sa")
	require.NoError(t, err)
	require.True(t, ok)

	ok, _, err = l.Acquire(ctx, "ns/sa")
	require.NoError(t, err)
	require.False(t, ok, "override bucket should be exhausted after its single burst token")
}

func TestMemoryLimiter_NoIdentityLimitMeansUnrestrictedPerIdentity(t *testing.T) {
	t.Parallel()

	l := NewMemoryLimiter(core.RateLimit{Total: core.Limit{RPS: 100, Burst: 100}})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		ok, _, err := l.Acquire(ctx, "any-identity")
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestRedisLimiter_MatchesMemorySemantics(t *testing.T) {
	t.Parallel()

	_, client := newTestRedis(t)
	l := NewRedisLimiter(client, "test:", core.RateLimit{Total: core.Limit{RPS: 0, Burst: 1}})
	ctx := context.Background()

	ok, _, err := l.Acquire(ctx, "")
	require.NoError(t, err)
	require.True(t, ok)

	ok, retry, err := l.Acquire(ctx, "")
	require.NoError(t, err)
	require.False(t, ok)
	require.Greater(t, retry, time.Duration(0))
}

func TestConcurrencyLimiter_EnterExit(t *testing.T) {
	t.Parallel()

	l := NewConcurrencyLimiter(core.ConcurrencyLimit{MaxInFlight: 1})
	ctx := context.Background()

	ok, err := l.Enter(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = l.Enter(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	l.Exit()

	ok, err = l.Enter(ctx)
	require.NoError(t, err)
	require.True(t, ok)
}
