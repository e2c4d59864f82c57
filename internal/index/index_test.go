package index

import (
	"net/netip"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/labels"

	"github.com/meshpolicy/policy-controller/internal/clusterinfo"
	"github.com/meshpolicy/policy-controller/internal/core"
	"github.com/meshpolicy/policy-controller/internal/resourcespecs"
)

func testClusterInfo() clusterinfo.ClusterInfo {
	return clusterinfo.ClusterInfo{
		Networks:             []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")},
		ControlPlaneNamespace: "linkerd",
		DNSDomain:            "cluster.local",
		TrustDomain:          "cluster.local",
		DefaultPolicy:        clusterinfo.AllUnauthenticated,
		DefaultDetectTimeout: 10 * time.Second,
	}
}

func mustSelector(t *testing.T, expr string) labels.Selector {
	t.Helper()
	sel, err := labels.Parse(expr)
	require.NoError(t, err)
	return sel
}

func TestJoinInbound_NoMatchingServerUsesDefaultPolicy(t *testing.T) {
	t.Parallel()

	ns := newNSInbound()
	ns.workloads["web-1"] = resourcespecs.WorkloadState{Namespace: "ns", Name: "web-1", Labels: map[string]string{"app": "web"}}

	out, known, diag := joinInbound(ns, testClusterInfo(), newAuthStore(), newAcceptedRefs(), "ns", "web-1", 8080)
	require.Nil(t, diag)
	require.True(t, known)
	require.Equal(t, core.ServerReferenceDefault, out.Reference.Kind)
	require.Equal(t, string(clusterinfo.AllUnauthenticated), out.Reference.Name)
	require.Len(t, out.Authorizations, 1)
}

func TestJoinInbound_UnknownWorkloadUsesDefaultPolicy(t *testing.T) {
	t.Parallel()

	ns := newNSInbound()
	out, known, diag := joinInbound(ns, testClusterInfo(), newAuthStore(), newAcceptedRefs(), "ns", "ghost", 8080)
	require.Nil(t, diag)
	require.False(t, known)
	require.Equal(t, core.ServerReferenceDefault, out.Reference.Kind)
}

func TestJoinInbound_MatchingServerWins(t *testing.T) {
	t.Parallel()

	ns := newNSInbound()
	ns.workloads["web-1"] = resourcespecs.WorkloadState{Namespace: "ns", Name: "web-1", Labels: map[string]string{"app": "web"}}
	ns.servers["srv"] = resourcespecs.ServerSpec{
		Namespace: "ns",
		Name:      "srv",
		Selector:  resourcespecs.SelectorSpec{Pod: mustSelector(t, "app=web")},
		Port:      resourcespecs.PortRef{Number: 8080},
		CreatedAt: time.Unix(100, 0),
	}

	out, known, diag := joinInbound(ns, testClusterInfo(), newAuthStore(), newAcceptedRefs(), "ns", "web-1", 8080)
	require.Nil(t, diag)
	require.True(t, known)
	require.Equal(t, core.ServerReferenceResource, out.Reference.Kind)
	require.Equal(t, "srv", out.Reference.Name)
}

func TestJoinInbound_ConflictingServersPicksMostRecentlyCreated(t *testing.T) {
	t.Parallel()

	ns := newNSInbound()
	ns.workloads["web-1"] = resourcespecs.WorkloadState{Namespace: "ns", Name: "web-1", Labels: map[string]string{"app": "web"}}
	ns.servers["old"] = resourcespecs.ServerSpec{
		Namespace: "ns", Name: "old",
		Selector:  resourcespecs.SelectorSpec{Pod: mustSelector(t, "app=web")},
		Port:      resourcespecs.PortRef{Number: 8080},
		CreatedAt: time.Unix(100, 0),
	}
	ns.servers["new"] = resourcespecs.ServerSpec{
		Namespace: "ns", Name: "new",
		Selector:  resourcespecs.SelectorSpec{Pod: mustSelector(t, "app=web")},
		Port:      resourcespecs.PortRef{Number: 8080},
		CreatedAt: time.Unix(200, 0),
	}

	out, _, diag := joinInbound(ns, testClusterInfo(), newAuthStore(), newAcceptedRefs(), "ns", "web-1", 8080)
	require.NotNil(t, diag)
	require.Equal(t, "new", out.Reference.Name)
	require.Equal(t, ResourceKey{Namespace: "ns", Name: "new"}, diag.Winner)
	require.Equal(t, []ResourceKey{{Namespace: "ns", Name: "old"}}, diag.Losers)
}

func TestJoinInbound_Idempotent(t *testing.T) {
	t.Parallel()

	ns := newNSInbound()
	ns.workloads["web-1"] = resourcespecs.WorkloadState{Namespace: "ns", Name: "web-1", Labels: map[string]string{"app": "web"}}
	ns.servers["srv"] = resourcespecs.ServerSpec{
		Namespace: "ns", Name: "srv",
		Selector:  resourcespecs.SelectorSpec{Pod: mustSelector(t, "app=web")},
		Port:      resourcespecs.PortRef{Number: 8080},
		CreatedAt: time.Unix(100, 0),
	}

	a, _, _ := joinInbound(ns, testClusterInfo(), newAuthStore(), newAcceptedRefs(), "ns", "web-1", 8080)
	b, _, _ := joinInbound(ns, testClusterInfo(), newAuthStore(), newAcceptedRefs(), "ns", "web-1", 8080)
	require.Empty(t, cmp.Diff(a, b))
}

func TestAuthJoin_DropsUnresolvableTargetButKeepsOthers(t *testing.T) {
	t.Parallel()

	auth := newAuthStore()
	auth.meshtls["ns"] = map[string]resourcespecs.MeshTLSAuthenticationSpec{
		"mtls": {Namespace: "ns", Name: "mtls", Identities: []core.IdentityMatch{core.ExactIdentity("client.ns.serviceaccount.identity.linkerd.cluster.local")}},
	}

	targets := []resourcespecs.AuthenticationTarget{
		{Kind: resourcespecs.AuthTargetMeshTLS, Namespace: "ns", Name: "mtls"},
		{Kind: resourcespecs.AuthTargetNetwork, Namespace: "ns", Name: "missing"},
	}

	out, ok := AuthJoin("ns", targets, auth, testClusterInfo())
	require.True(t, ok)
	require.Equal(t, core.AuthTLSAuthenticated, out.Mode)
	require.Len(t, out.Identities, 1)
	require.Empty(t, out.Networks)
}

func TestAuthJoin_AllUnresolvableReturnsFalse(t *testing.T) {
	t.Parallel()

	targets := []resourcespecs.AuthenticationTarget{
		{Kind: resourcespecs.AuthTargetNetwork, Namespace: "ns", Name: "missing"},
	}
	_, ok := AuthJoin("ns", targets, newAuthStore(), testClusterInfo())
	require.False(t, ok)
}

func TestPickEgressNetwork_OwnNamespaceBeatsMoreSpecificForeign(t *testing.T) {
	t.Parallel()

	own := egressCandidate{
		Spec:  resourcespecs.EgressNetworkSpec{Namespace: "ns", Name: "own", CreatedAt: time.Unix(100, 0)},
		Match: core.NetworkMatch{Net: netip.MustParsePrefix("10.0.0.0/16")},
	}
	foreign := egressCandidate{
		Spec:  resourcespecs.EgressNetworkSpec{Namespace: "global", Name: "foreign", CreatedAt: time.Unix(50, 0)},
		Match: core.NetworkMatch{Net: netip.MustParsePrefix("10.0.0.0/24")},
	}

	winner, diag := PickEgressNetwork("ns", []egressCandidate{foreign, own})
	require.NotNil(t, diag)
	require.Equal(t, "own", winner.Spec.Name)
}

func TestResolveOutbound_ServiceIPWins(t *testing.T) {
	t.Parallel()

	global := newOutboundGlobal()
	ip := netip.MustParseAddr("10.1.2.3")
	global.setService(ResourceKey{Namespace: "ns", Name: "web"}, resourcespecs.ServiceInfo{
		Namespace: "ns", Name: "web", ClusterIPs: []netip.Addr{ip}, Valid: true,
		Ports: []resourcespecs.ServicePort{{Port: 80}},
	})

	out, diag := resolveOutbound(&global, newNSOutbound(), nil, testClusterInfo(), OutboundSlotKey{SrcNamespace: "ns", Addr: ip, Port: 80})
	require.Nil(t, diag)
	require.Equal(t, core.ParentService, out.Parent.Kind)
	require.Equal(t, "web", out.Parent.Name)
}

func TestResolveOutbound_FallsBackToEgressFallback(t *testing.T) {
	t.Parallel()

	global := newOutboundGlobal()
	out, diag := resolveOutbound(&global, newNSOutbound(), nil, testClusterInfo(), OutboundSlotKey{SrcNamespace: "ns", Addr: netip.MustParseAddr("8.8.8.8"), Port: 443})
	require.Nil(t, diag)
	require.Equal(t, core.ParentDefaultFallback, out.Parent.Kind)
	require.Equal(t, core.EgressFallbackName, out.Parent.Name)
}

func TestIndex_SubscribeInboundRecomputesOnServerApply(t *testing.T) {
	t.Parallel()

	x := New(testClusterInfo())
	x.ApplyWorkload("ns", AppliedEvent(resourcespecs.WorkloadState{Namespace: "ns", Name: "web-1", Labels: map[string]string{"app": "web"}}))

	cur, updates, unsub := x.SubscribeInbound(InboundSlotKey{Namespace: "ns", Workload: "web-1", Port: 8080})
	defer unsub()
	require.Equal(t, core.ServerReferenceDefault, cur.Reference.Kind)

	x.ApplyServer(AppliedEvent(resourcespecs.ServerSpec{
		Namespace: "ns", Name: "srv",
		Selector:  resourcespecs.SelectorSpec{Pod: mustSelector(t, "app=web")},
		Port:      resourcespecs.PortRef{Number: 8080},
		CreatedAt: time.Unix(100, 0),
	}))

	select {
	case next := <-updates:
		require.Equal(t, core.ServerReferenceResource, next.Reference.Kind)
		require.Equal(t, "srv", next.Reference.Name)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for inbound update")
	}
}

// A kind change (egress-fallback -> Service) ends the existing
// subscription rather than relaying the new value on it, per §8 S4: the
// caller observes end-of-stream and must resubscribe to see the new
// parent.
func TestIndex_SubscribeOutboundTerminatesOnParentKindChange(t *testing.T) {
	t.Parallel()

	x := New(testClusterInfo())
	ip := netip.MustParseAddr("10.1.2.3")
	key := OutboundSlotKey{SrcNamespace: "ns", Addr: ip, Port: 80}

	cur, updates, unsub := x.SubscribeOutbound(key)
	defer unsub()
	require.Equal(t, core.ParentDefaultFallback, cur.Parent.Kind)

	x.ApplyService(AppliedEvent(resourcespecs.ServiceInfo{
		Namespace: "ns", Name: "web", ClusterIPs: []netip.Addr{ip}, Valid: true,
		Ports: []resourcespecs.ServicePort{{Port: 80}},
	}))

	select {
	case _, ok := <-updates:
		require.False(t, ok, "channel must close (end-of-stream) on a parent kind change, not relay the new value")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for outbound subscription to terminate")
	}

	next, newUpdates, newUnsub := x.SubscribeOutbound(key)
	defer newUnsub()
	require.Equal(t, core.ParentService, next.Parent.Kind)
	require.Equal(t, "web", next.Parent.Name)
	_ = newUpdates
}

// The canonical S4 scenario: an address with no matching Service or
// EgressNetwork resolves to the synthetic egress-fallback parent; once an
// EgressNetwork is applied that newly covers the address, the old
// subscription terminates and a fresh one resolves to the EgressNetwork.
func TestIndex_SubscribeOutboundTerminatesWhenEgressNetworkNewlyCovers(t *testing.T) {
	t.Parallel()

	x := New(testClusterInfo())
	ip := netip.MustParseAddr("203.0.113.9")
	key := OutboundSlotKey{SrcNamespace: "ns", Addr: ip, Port: 443}

	cur, updates, unsub := x.SubscribeOutbound(key)
	defer unsub()
	require.Equal(t, core.ParentDefaultFallback, cur.Parent.Kind)

	x.ApplyEgressNetwork(AppliedEvent(resourcespecs.EgressNetworkSpec{
		Namespace: "ns", Name: "external",
		Networks:  []core.NetworkMatch{{Net: netip.MustParsePrefix("203.0.113.0/24")}},
		CreatedAt: time.Unix(100, 0),
	}))

	select {
	case _, ok := <-updates:
		require.False(t, ok, "previous subscription must end-of-stream, not observe the EgressNetwork in place")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for outbound subscription to terminate")
	}

	next, newUpdates, newUnsub := x.SubscribeOutbound(key)
	defer newUnsub()
	require.Equal(t, core.ParentEgressNetwork, next.Parent.Kind)
	require.Equal(t, "external", next.Parent.Name)
	_ = newUpdates
}
