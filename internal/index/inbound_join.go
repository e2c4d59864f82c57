package index

import (
	"net/netip"

	"k8s.io/apimachinery/pkg/labels"

	"github.com/meshpolicy/policy-controller/internal/clusterinfo"
	"github.com/meshpolicy/policy-controller/internal/core"
	"github.com/meshpolicy/policy-controller/internal/resourcespecs"
)

// joinInbound runs §4.2's per-(pod,port) join algorithm against the
// current state of one namespace, producing the InboundServer the
// resolver publishes to that slot. known reports whether the workload has
// ever been ingested at all; the resolver surfaces NotFound when it
// hasn't, distinct from a known workload matching no Server, which
// resolves to the default policy per (I1).
func joinInbound(ns *nsInbound, ci clusterinfo.ClusterInfo, auth authStore, accepted acceptedRefs, namespace, workload string, port int32) (core.InboundServer, bool, *ConflictDiagnostic) {
	w, known := ns.workloads[workload]

	defaultPolicy := ci.DefaultPolicy
	if ns.defaultPolicy != nil {
		defaultPolicy = *ns.defaultPolicy
	}
	if known && w.DefaultPolicyOverride != nil {
		defaultPolicy = *w.DefaultPolicyOverride
	}

	if !known {
		return defaultInboundServer(defaultPolicy, ci), false, nil
	}

	var candidates []resourcespecs.ServerSpec
	for _, srv := range ns.servers {
		if !serverSelectorMatches(srv, w) {
			continue
		}
		containerPort, ok := srv.Port.Resolve(w.ContainerPorts)
		if !ok || containerPort != port {
			continue
		}
		candidates = append(candidates, srv)
	}

	if len(candidates) == 0 {
		return defaultInboundServer(defaultPolicy, ci), true, nil
	}

	server, conflict := PickServer(candidates)

	out := core.InboundServer{
		Reference:      core.ServerReference{Kind: core.ServerReferenceResource, Namespace: server.Namespace, Name: server.Name},
		Protocol:       effectiveProtocol(server.ProxyProtocol, ci),
		Authorizations: make(map[core.AuthorizationRef]core.ClientAuthorization),
	}

	for _, sa := range ns.serverAuthorizations {
		if !sa.MatchesServer(server.Name, server.Labels) {
			continue
		}
		out.Authorizations[core.AuthorizationRef{Kind: core.RefServerAuthorization, Namespace: sa.Namespace, Name: sa.Name}] = sa.Authorization
	}

	boundHTTPRoutes := routesBoundToServer(ns.httpRoutes, server.Name)
	boundGRPCRoutes := routesBoundToServer(ns.grpcRoutes, server.Name)

	for _, ap := range ns.authorizationPolicies {
		if !authPolicyTargetsServer(ap, namespace, server.Name, boundHTTPRoutes, boundGRPCRoutes) {
			continue
		}
		clientAuth, ok := AuthJoin(ap.Namespace, ap.Authentications, auth, ci)
		if !ok {
			continue
		}
		out.Authorizations[core.AuthorizationRef{Kind: core.RefAuthorizationPolicy, Namespace: ap.Namespace, Name: ap.Name}] = clientAuth
	}

	out.HTTPRoutes = routeBindingValues(boundHTTPRoutes)
	out.GRPCRoutes = routeBindingValues(boundGRPCRoutes)

	for _, cl := range ns.concurrencyLimits {
		if cl.TargetKind != "Server" || cl.TargetName != server.Name {
			continue
		}
		if !accepted.concurrency[ResourceKey{Namespace: cl.Namespace, Name: cl.Name}] {
			continue
		}
		limit := cl.Limit
		out.ConcurrencyLimit = &limit
		break
	}

	for _, rl := range ns.rateLimits {
		if rl.TargetKind != "Server" || rl.TargetName != server.Name {
			continue
		}
		if !accepted.rateLimit[ResourceKey{Namespace: rl.Namespace, Name: rl.Name}] {
			continue
		}
		limit := rl.RateLimit
		out.RateLimit = &limit
		break
	}

	return out, true, conflict
}

func serverSelectorMatches(srv resourcespecs.ServerSpec, w resourcespecs.WorkloadState) bool {
	set := labels.Set(w.Labels)
	if w.External {
		return srv.Selector.ExternalWorkload != nil && srv.Selector.ExternalWorkload.Matches(set)
	}
	return srv.Selector.Pod != nil && srv.Selector.Pod.Matches(set)
}

func routesBoundToServer(routes map[string]core.RouteBinding, serverName string) map[string]core.RouteBinding {
	out := make(map[string]core.RouteBinding)
	for name, rb := range routes {
		for _, pr := range rb.ParentRefs {
			if pr.ParentRef.Kind == "Server" && pr.ParentRef.Name == serverName {
				out[name] = rb
				break
			}
		}
	}
	return out
}

func routeBindingValues(m map[string]core.RouteBinding) []core.RouteBinding {
	out := make([]core.RouteBinding, 0, len(m))
	for _, rb := range m {
		out = append(out, rb)
	}
	sortRouteBindings(out)
	return out
}

func authPolicyTargetsServer(ap resourcespecs.AuthorizationPolicySpec, namespace, serverName string, httpRoutes, grpcRoutes map[string]core.RouteBinding) bool {
	switch ap.TargetKind {
	case "Server":
		return ap.TargetName == serverName
	case "Namespace":
		return ap.TargetName == namespace
	case "HTTPRoute":
		_, ok := httpRoutes[ap.TargetName]
		return ok
	case "GRPCRoute":
		_, ok := grpcRoutes[ap.TargetName]
		return ok
	default:
		return false
	}
}

func effectiveProtocol(p core.ProxyProtocol, ci clusterinfo.ClusterInfo) core.ProxyProtocol {
	if p.Kind == core.ProtoDetect && p.Timeout == 0 {
		return core.ProxyProtocol{Kind: core.ProtoDetect, Timeout: ci.DefaultDetectTimeout}
	}
	return p
}

// defaultInboundServer synthesizes the fallback InboundServer for a pod
// that matches no Server, per (I1)'s "fallback default policy".
func defaultInboundServer(policy clusterinfo.DefaultPolicy, ci clusterinfo.ClusterInfo) core.InboundServer {
	ref := core.ServerReference{Kind: core.ServerReferenceDefault, Name: string(policy)}
	proto := core.ProxyProtocol{Kind: core.ProtoDetect, Timeout: ci.DefaultDetectTimeout}
	auths := make(map[core.AuthorizationRef]core.ClientAuthorization)
	authRef := core.AuthorizationRef{Kind: core.RefDefault, Name: string(policy)}

	clusterNets := networkMatchesFromPrefixes(ci.Networks)

	switch policy {
	case clusterinfo.AllAuthenticated:
		auths[authRef] = core.ClientAuthorization{Mode: core.AuthTLSAuthenticated, Identities: []core.IdentityMatch{core.SuffixIdentity()}}
	case clusterinfo.AllUnauthenticated, clusterinfo.Audit:
		auths[authRef] = core.ClientAuthorization{Mode: core.AuthUnauthenticated}
	case clusterinfo.ClusterAuthenticated:
		auths[authRef] = core.ClientAuthorization{Mode: core.AuthTLSAuthenticated, Identities: []core.IdentityMatch{core.SuffixIdentity()}, Networks: clusterNets}
	case clusterinfo.ClusterUnauthenticated:
		auths[authRef] = core.ClientAuthorization{Mode: core.AuthUnauthenticated, Networks: clusterNets}
	case clusterinfo.Deny:
		// no entries: nothing is authorized.
	}

	return core.InboundServer{Reference: ref, Protocol: proto, Authorizations: auths}
}

func networkMatchesFromPrefixes(prefixes []netip.Prefix) []core.NetworkMatch {
	out := make([]core.NetworkMatch, 0, len(prefixes))
	for _, p := range prefixes {
		out = append(out, core.NetworkMatch{Net: p})
	}
	return out
}
