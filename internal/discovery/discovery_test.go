package discovery

import (
	"context"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshpolicy/policy-controller/internal/clusterinfo"
	"github.com/meshpolicy/policy-controller/internal/index"
	"github.com/meshpolicy/policy-controller/internal/resolver"
	"github.com/meshpolicy/policy-controller/internal/resourcespecs"
)

func mustAddr(t *testing.T, s string) netip.Addr {
	t.Helper()
	addr, err := netip.ParseAddr(s)
	require.NoError(t, err)
	return addr
}

func TestServer_InboundRejectsMalformedWorkloadKey(t *testing.T) {
	t.Parallel()

	idx := index.New(clusterinfo.ClusterInfo{})
	srv := New(resolver.New(idx))

	_, _, _, err := srv.Inbound(context.Background(), "not-a-valid-key", 8080)
	require.Error(t, err)
}

func TestServer_InboundResolvesKnownPodByLegacyKey(t *testing.T) {
	t.Parallel()

	idx := index.New(clusterinfo.ClusterInfo{})
	idx.ApplyWorkload("ns", index.AppliedEvent(resourcespecs.WorkloadState{
		Namespace: "ns",
		Name:      "web-0",
	}))

	srv := New(resolver.New(idx))
	cur, updates, cancel, err := srv.Inbound(context.Background(), "ns:web-0", 8080)
	require.NoError(t, err)
	defer cancel()
	require.NotNil(t, updates)
	_ = cur
}

func TestServer_InboundReturnsNotFoundForUnknownWorkload(t *testing.T) {
	t.Parallel()

	idx := index.New(clusterinfo.ClusterInfo{})
	srv := New(resolver.New(idx))

	_, _, _, err := srv.Inbound(context.Background(), "ns:ghost", 8080)
	require.ErrorIs(t, err, resolver.ErrNotFound)
}

func TestServer_OutboundDelegatesToResolver(t *testing.T) {
	t.Parallel()

	idx := index.New(clusterinfo.ClusterInfo{})
	srv := New(resolver.New(idx))

	_, updates, cancel, err := srv.Outbound(context.Background(), "ns", mustAddr(t, "10.0.0.5"), 80)
	require.NoError(t, err)
	defer cancel()
	require.NotNil(t, updates)
}
