package clusterinfo

import (
	"fmt"
	"net/netip"
	"time"
)

// Config is the flag/environment-shaped configuration for a ClusterInfo,
// before CIDR/duration strings are parsed and before defaults are applied.
// cmd/policy-controller does not go through Config/Build: it builds its
// ClusterInfo directly from CLI flags (buildClusterInfo).
type Config struct {
	Networks []string `json:"networks,omitempty"`

	ControlPlaneNamespace string `json:"controlPlaneNamespace"`

	// DNSDomain defaults to "cluster.local" if unspecified.
	DNSDomain string `json:"dnsDomain,omitempty"`

	// TrustDomain defaults to DNSDomain if unspecified.
	TrustDomain string `json:"trustDomain,omitempty"`

	// DefaultPolicy defaults to "all-unauthenticated" if unspecified.
	DefaultPolicy string `json:"defaultPolicy,omitempty"`

	// DefaultDetectTimeoutSeconds defaults to 10 if unspecified.
	DefaultDetectTimeoutSeconds int32 `json:"defaultDetectTimeoutSeconds,omitempty"`

	DefaultOpaquePorts []int32 `json:"defaultOpaquePorts,omitempty"`

	ProbeNetworks []string `json:"probeNetworks,omitempty"`

	// GlobalEgressNetworkNamespace defaults to ControlPlaneNamespace if
	// unspecified.
	GlobalEgressNetworkNamespace string `json:"globalEgressNetworkNamespace,omitempty"`
}

// SetDefaults_Config fills in every field Config leaves unspecified.
func SetDefaults_Config(obj *Config) {
	if obj.DNSDomain == "" {
		obj.DNSDomain = "cluster.local"
	}
	if obj.TrustDomain == "" {
		obj.TrustDomain = obj.DNSDomain
	}
	if obj.DefaultPolicy == "" {
		obj.DefaultPolicy = string(AllUnauthenticated)
	}
	if obj.DefaultDetectTimeoutSeconds == 0 {
		obj.DefaultDetectTimeoutSeconds = 10
	}
	if obj.GlobalEgressNetworkNamespace == "" {
		obj.GlobalEgressNetworkNamespace = obj.ControlPlaneNamespace
	}
}

// Build defaults and validates c, returning the immutable ClusterInfo the
// rest of the module is constructed against.
func Build(c Config) (ClusterInfo, error) {
	SetDefaults_Config(&c)

	policy, err := ParseDefaultPolicy(c.DefaultPolicy)
	if err != nil {
		return ClusterInfo{}, err
	}

	networks, err := parsePrefixes(c.Networks)
	if err != nil {
		return ClusterInfo{}, fmt.Errorf("clusterinfo: networks: %w", err)
	}
	if len(networks) == 0 {
		return ClusterInfo{}, fmt.Errorf("clusterinfo: networks must not be empty")
	}

	probeNetworks, err := parsePrefixes(c.ProbeNetworks)
	if err != nil {
		return ClusterInfo{}, fmt.Errorf("clusterinfo: probeNetworks: %w", err)
	}

	opaquePorts := make(map[int32]struct{}, len(c.DefaultOpaquePorts))
	for _, p := range c.DefaultOpaquePorts {
		if p < 1 || p > 65535 {
			return ClusterInfo{}, fmt.Errorf("clusterinfo: defaultOpaquePorts: %d out of range", p)
		}
		opaquePorts[p] = struct{}{}
	}

	return ClusterInfo{
		Networks:                     networks,
		ControlPlaneNamespace:        c.ControlPlaneNamespace,
		DNSDomain:                    c.DNSDomain,
		TrustDomain:                  c.TrustDomain,
		DefaultPolicy:                policy,
		DefaultDetectTimeout:         time.Duration(c.DefaultDetectTimeoutSeconds) * time.Second,
		DefaultOpaquePorts:           opaquePorts,
		ProbeNetworks:                probeNetworks,
		GlobalEgressNetworkNamespace: c.GlobalEgressNetworkNamespace,
	}, nil
}

func parsePrefixes(cidrs []string) ([]netip.Prefix, error) {
	out := make([]netip.Prefix, 0, len(cidrs))
	for _, s := range cidrs {
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		out = append(out, p)
	}
	return out, nil
}
