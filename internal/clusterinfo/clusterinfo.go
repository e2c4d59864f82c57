// Package clusterinfo holds the process-wide, read-only metadata every
// other package in this module is constructed against: the mesh trust
// domain, DNS domain, cluster pod networks, and the default policy that
// applies when a workload carries no Server at all.
//
// A ClusterInfo is built once at startup from flags/environment (see
// cmd/policy-controller) and passed down by value; every field is either a
// plain value or a slice that is never mutated after construction, so
// sharing a ClusterInfo across goroutines needs no further synchronization.
package clusterinfo

import (
	"fmt"
	"net/netip"
	"time"
)

// DefaultPolicy names one of the six cluster/namespace/pod default-policy
// behaviors a workload falls back to when it is not selected by any Server.
//
// +k8s:deepcopy-gen=false
type DefaultPolicy string

const (
	AllAuthenticated      DefaultPolicy = "all-authenticated"
	AllUnauthenticated    DefaultPolicy = "all-unauthenticated"
	ClusterAuthenticated  DefaultPolicy = "cluster-authenticated"
	ClusterUnauthenticated DefaultPolicy = "cluster-unauthenticated"
	Deny                  DefaultPolicy = "deny"
	Audit                 DefaultPolicy = "audit"
)

// ParseDefaultPolicy validates a policy name taken from a flag, a namespace
// annotation, or a pod annotation.
func ParseDefaultPolicy(s string) (DefaultPolicy, error) {
	switch DefaultPolicy(s) {
	case AllAuthenticated, AllUnauthenticated, ClusterAuthenticated, ClusterUnauthenticated, Deny, Audit:
		return DefaultPolicy(s), nil
	default:
		return "", fmt.Errorf("clusterinfo: unrecognized default policy %q", s)
	}
}

// IsAudit reports whether traffic denied under this default should still be
// admitted, with the denial only recorded for observability.
func (d DefaultPolicy) IsAudit() bool {
	return d == Audit
}

// ClusterInfo is process-wide immutable metadata shared by every watched
// index and resolver in this module.
type ClusterInfo struct {
	// Networks lists the CIDRs that cover every pod IP in the cluster. There
	// is no way to discover this at runtime; it must be supplied at startup.
	Networks []netip.Prefix

	// ControlPlaneNamespace is the namespace the mesh control plane runs in;
	// ServiceAccount identities of control-plane components are minted
	// relative to it.
	ControlPlaneNamespace string

	// DNSDomain is the cluster's DNS suffix, e.g. "cluster.local".
	DNSDomain string

	// TrustDomain is the mesh's identity trust domain, e.g. "cluster.local"
	// or an organization-chosen SPIFFE trust domain.
	TrustDomain string

	// DefaultPolicy is the cluster-wide fallback used when neither a
	// namespace annotation nor a pod annotation overrides it.
	DefaultPolicy DefaultPolicy

	// DefaultDetectTimeout bounds protocol-detection default Servers.
	DefaultDetectTimeout time.Duration

	// DefaultOpaquePorts is unioned with any service-level opaque-ports
	// annotation to decide whether protocol detection is skipped for a
	// given port (see Open Questions in SPEC_FULL.md).
	DefaultOpaquePorts map[int32]struct{}

	// ProbeNetworks lists networks that health-check probes are expected to
	// originate from. The index does not read it: a default-policy server
	// grants these networks nothing beyond what the default policy allows.
	ProbeNetworks []netip.Prefix

	// GlobalEgressNetworkNamespace is the namespace whose EgressNetwork
	// resources apply mesh-wide rather than being scoped to their own
	// namespace.
	GlobalEgressNetworkNamespace string
}

// ServiceAccountIdentity returns the meshTLS identity minted for a
// ServiceAccount, matching the convention the proxy's identity issuer uses.
func (c ClusterInfo) ServiceAccountIdentity(namespace, serviceAccount string) string {
	return fmt.Sprintf("%s.%s.serviceaccount.identity.%s.%s", serviceAccount, namespace, c.ControlPlaneNamespace, c.TrustDomain)
}

// NamespaceIdentity returns the suffix-matching identity covering every
// ServiceAccount in a namespace.
func (c ClusterInfo) NamespaceIdentity(namespace string) string {
	return fmt.Sprintf("*.%s.serviceaccount.identity.%s.%s", namespace, c.ControlPlaneNamespace, c.TrustDomain)
}

// ServiceDNSAuthority returns the DNS:port authority a service resolves to
// within the cluster's DNS domain.
func (c ClusterInfo) ServiceDNSAuthority(namespace, service string, port int32) string {
	return fmt.Sprintf("%s.%s.svc.%s:%d", service, namespace, c.DNSDomain, port)
}

// IsLocalNetwork reports whether addr falls inside one of the cluster's pod
// networks.
func (c ClusterInfo) IsLocalNetwork(addr netip.Addr) bool {
	for _, n := range c.Networks {
		if n.Contains(addr) {
			return true
		}
	}
	return false
}

// IsProbeNetwork reports whether addr is expected to originate health-check
// probes.
func (c ClusterInfo) IsProbeNetwork(addr netip.Addr) bool {
	for _, n := range c.ProbeNetworks {
		if n.Contains(addr) {
			return true
		}
	}
	return false
}

// IsDefaultOpaquePort reports whether port is opaque under the cluster-wide
// default, independent of any per-service annotation.
func (c ClusterInfo) IsDefaultOpaquePort(port int32) bool {
	_, ok := c.DefaultOpaquePorts[port]
	return ok
}
