package clusterinfo

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	ci, err := Build(Config{
		Networks:              []string{"10.0.0.0/8"},
		ControlPlaneNamespace: "linkerd",
	})
	require.NoError(t, err)
	require.Equal(t, "cluster.local", ci.DNSDomain)
	require.Equal(t, "cluster.local", ci.TrustDomain)
	require.Equal(t, AllUnauthenticated, ci.DefaultPolicy)
	require.Equal(t, "linkerd", ci.GlobalEgressNetworkNamespace)
}

func TestBuild_RejectsEmptyNetworks(t *testing.T) {
	t.Parallel()

	_, err := Build(Config{ControlPlaneNamespace: "linkerd"})
	require.Error(t, err)
}

func TestBuild_RejectsUnknownDefaultPolicy(t *testing.T) {
	t.Parallel()

	_, err := Build(Config{
		Networks:              []string{"10.0.0.0/8"},
		ControlPlaneNamespace: "linkerd",
		DefaultPolicy:         "bogus",
	})
	require.Error(t, err)
}

func TestClusterInfo_Identities(t *testing.T) {
	t.Parallel()

	ci, err := Build(Config{
		Networks:              []string{"10.0.0.0/8"},
		ControlPlaneNamespace: "linkerd",
		TrustDomain:           "cluster.local",
	})
	require.NoError(t, err)

	require.Equal(t, "default.emoji.serviceaccount.identity.linkerd.cluster.local", ci.ServiceAccountIdentity("emoji", "default"))
	require.Equal(t, "*.emoji.serviceaccount.identity.linkerd.cluster.local", ci.NamespaceIdentity("emoji"))
	require.Equal(t, "emoji.emoji.svc.cluster.local:8080", ci.ServiceDNSAuthority("emoji", "emoji", 8080))
}

func TestClusterInfo_IsLocalNetwork(t *testing.T) {
	t.Parallel()

	ci, err := Build(Config{
		Networks:              []string{"10.0.0.0/8"},
		ControlPlaneNamespace: "linkerd",
	})
	require.NoError(t, err)

	require.True(t, ci.IsLocalNetwork(mustAddr(t, "10.1.2.3")))
	require.False(t, ci.IsLocalNetwork(mustAddr(t, "192.168.1.1")))
}

func mustAddr(t *testing.T, s string) netip.Addr {
	t.Helper()
	addr, err := netip.ParseAddr(s)
	require.NoError(t, err)
	return addr
}
