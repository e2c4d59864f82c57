package index

import (
	"github.com/meshpolicy/policy-controller/internal/clusterinfo"
	"github.com/meshpolicy/policy-controller/internal/core"
	"github.com/meshpolicy/policy-controller/internal/resourcespecs"
)

// nsInbound is the per-namespace state InboundIndex joins over, matching
// §4.2's state layout one map per resource kind.
type nsInbound struct {
	workloads             map[string]resourcespecs.WorkloadState
	servers               map[string]resourcespecs.ServerSpec
	serverAuthorizations  map[string]resourcespecs.ServerAuthorizationSpec
	authorizationPolicies map[string]resourcespecs.AuthorizationPolicySpec
	httpRoutes            map[string]core.RouteBinding
	grpcRoutes            map[string]core.RouteBinding
	concurrencyLimits     map[string]resourcespecs.ConcurrencyLimitPolicySpec
	rateLimits            map[string]resourcespecs.RateLimitPolicySpec

	// defaultPolicy is the namespace-level default-policy annotation
	// override, step 1 of §4.2's join: "annotation on pod -> annotation on
	// namespace -> cluster default".
	defaultPolicy *clusterinfo.DefaultPolicy
}

func newNSInbound() *nsInbound {
	return &nsInbound{
		workloads:             make(map[string]resourcespecs.WorkloadState),
		servers:               make(map[string]resourcespecs.ServerSpec),
		serverAuthorizations:  make(map[string]resourcespecs.ServerAuthorizationSpec),
		authorizationPolicies: make(map[string]resourcespecs.AuthorizationPolicySpec),
		httpRoutes:            make(map[string]core.RouteBinding),
		grpcRoutes:            make(map[string]core.RouteBinding),
		concurrencyLimits:     make(map[string]resourcespecs.ConcurrencyLimitPolicySpec),
		rateLimits:            make(map[string]resourcespecs.RateLimitPolicySpec),
	}
}

// authStore is the cross-namespace authentication state described in
// §4.2: MeshTLSAuthentication and NetworkAuthentication are kept outside
// the per-namespace store because an AuthorizationPolicy's authentication
// refs may name a resource in a different namespace.
type authStore struct {
	meshtls map[string]map[string]resourcespecs.MeshTLSAuthenticationSpec
	network map[string]map[string]resourcespecs.NetworkAuthenticationSpec
}

func newAuthStore() authStore {
	return authStore{
		meshtls: make(map[string]map[string]resourcespecs.MeshTLSAuthenticationSpec),
		network: make(map[string]map[string]resourcespecs.NetworkAuthenticationSpec),
	}
}

func (a authStore) lookupMeshTLS(ns, name string) (resourcespecs.MeshTLSAuthenticationSpec, bool) {
	byName, ok := a.meshtls[ns]
	if !ok {
		return resourcespecs.MeshTLSAuthenticationSpec{}, false
	}
	spec, ok := byName[name]
	return spec, ok
}

func (a authStore) lookupNetwork(ns, name string) (resourcespecs.NetworkAuthenticationSpec, bool) {
	byName, ok := a.network[ns]
	if !ok {
		return resourcespecs.NetworkAuthenticationSpec{}, false
	}
	spec, ok := byName[name]
	return spec, ok
}

// acceptedRefs tracks the RateLimitPolicy/ConcurrencyLimitPolicy
// target-refs that the ingest limit-policy reconcilers have recorded
// Accepted=True for through SetAccepted. A limit
// policy is inert — never attached to an InboundServer — until it appears
// here, breaking the bootstrapping cycle noted in SPEC_FULL.md §4.2.
type acceptedRefs struct {
	rateLimit     map[ResourceKey]bool
	concurrency   map[ResourceKey]bool
}

func newAcceptedRefs() acceptedRefs {
	return acceptedRefs{
		rateLimit:   make(map[ResourceKey]bool),
		concurrency: make(map[ResourceKey]bool),
	}
}
