package index

import (
	"net/netip"

	"github.com/meshpolicy/policy-controller/internal/clusterinfo"
	"github.com/meshpolicy/policy-controller/internal/core"
	"github.com/meshpolicy/policy-controller/internal/resourcespecs"
)

// resolveOutbound runs §4.3's per-(srcNamespace, addr, port) resolution: a
// matching Service wins outright; otherwise the most specific visible
// EgressNetwork (own namespace, plus the cluster's global egress-network
// namespace when it differs); otherwise an UnmeshedNetwork's
// allow/deny-unknown fallback; otherwise the synthetic egress-fallback
// default.
func resolveOutbound(global *outboundGlobal, srcNS, globalNS *nsOutbound, ci clusterinfo.ClusterInfo, key OutboundSlotKey) (core.OutboundPolicy, *ConflictDiagnostic) {
	if svcKey, ok := global.servicesByIP[key.Addr]; ok {
		return resolveServiceOutbound(global, ci, svcKey, key.Port), nil
	}

	candidates := collectEgressCandidates(srcNS, key.Addr)
	if globalNS != nil {
		candidates = append(candidates, collectEgressCandidates(globalNS, key.Addr)...)
	}
	if len(candidates) > 0 {
		winner, diag := PickEgressNetwork(key.SrcNamespace, candidates)
		return resolveEgressOutbound(global, winner, key), diag
	}

	if policy, ok := matchUnmeshed(srcNS, key.Addr); ok {
		return resolveUnmeshedOutbound(ci, policy, key), nil
	}

	return resolveFallbackOutbound(ci, key), nil
}

func resolveServiceOutbound(global *outboundGlobal, ci clusterinfo.ClusterInfo, svcKey ResourceKey, port int32) core.OutboundPolicy {
	svc := global.services[svcKey]

	var sp resourcespecs.ServicePort
	found := false
	for _, p := range svc.Ports {
		if p.Port == port {
			sp = p
			found = true
			break
		}
	}
	opaque := found && sp.Opaque(ci)

	out := core.OutboundPolicy{
		Parent: core.ParentInfo{
			Kind:      core.ParentService,
			Namespace: svc.Namespace,
			Name:      svc.Name,
			Authority: ci.ServiceDNSAuthority(svc.Namespace, svc.Name, port),
		},
		Port:   port,
		Opaque: opaque,
	}

	if opaque {
		out.TLSRoutes = global.tlsRoutes.ForParent(svcKey)
		out.TCPRoutes = global.tcpRoutes.ForParent(svcKey)
	} else {
		out.HTTPRoutes = global.httpRoutes.ForParent(svcKey)
		out.GRPCRoutes = global.grpcRoutes.ForParent(svcKey)
	}
	return out
}

func collectEgressCandidates(ns *nsOutbound, addr netip.Addr) []egressCandidate {
	if ns == nil {
		return nil
	}
	var out []egressCandidate
	for _, spec := range ns.egressNetworks {
		for _, m := range spec.Networks {
			if m.Contains(addr) {
				out = append(out, egressCandidate{Spec: spec, Match: m})
			}
		}
	}
	return out
}

func resolveEgressOutbound(global *outboundGlobal, egress egressCandidate, key OutboundSlotKey) core.OutboundPolicy {
	pk := ResourceKey{Namespace: egress.Spec.Namespace, Name: egress.Spec.Name}
	return core.OutboundPolicy{
		Parent: core.ParentInfo{
			Kind:          core.ParentEgressNetwork,
			Namespace:     egress.Spec.Namespace,
			Name:          egress.Spec.Name,
			TrafficPolicy: egress.Spec.TrafficPolicy,
		},
		Port:        key.Port,
		OriginalDst: netip.AddrPortFrom(key.Addr, uint16(key.Port)),
		HTTPRoutes:  global.httpRoutes.ForParent(pk),
		GRPCRoutes:  global.grpcRoutes.ForParent(pk),
		TLSRoutes:   global.tlsRoutes.ForParent(pk),
		TCPRoutes:   global.tcpRoutes.ForParent(pk),
	}
}

func matchUnmeshed(ns *nsOutbound, addr netip.Addr) (resourcespecs.UnmeshedNetworkSpec, bool) {
	if ns == nil {
		return resourcespecs.UnmeshedNetworkSpec{}, false
	}
	for _, spec := range ns.unmeshedNetworks {
		for _, m := range spec.Networks {
			if m.Contains(addr) {
				return spec, true
			}
		}
	}
	return resourcespecs.UnmeshedNetworkSpec{}, false
}

func resolveUnmeshedOutbound(ci clusterinfo.ClusterInfo, spec resourcespecs.UnmeshedNetworkSpec, key OutboundSlotKey) core.OutboundPolicy {
	return core.OutboundPolicy{
		Parent: core.ParentInfo{
			Kind:      core.ParentUnmeshed,
			Namespace: spec.Namespace,
			Name:      spec.Name,
			Allow:     spec.Policy == core.UnmeshedAllowUnknown,
		},
		Port:        key.Port,
		OriginalDst: netip.AddrPortFrom(key.Addr, uint16(key.Port)),
		Opaque:      ci.IsDefaultOpaquePort(key.Port),
	}
}

func resolveFallbackOutbound(ci clusterinfo.ClusterInfo, key OutboundSlotKey) core.OutboundPolicy {
	return core.OutboundPolicy{
		Parent: core.ParentInfo{
			Kind:          core.ParentDefaultFallback,
			Name:          core.EgressFallbackName,
			TrafficPolicy: core.TrafficAllowAll,
		},
		Port:        key.Port,
		OriginalDst: netip.AddrPortFrom(key.Addr, uint16(key.Port)),
		Opaque:      ci.IsDefaultOpaquePort(key.Port),
	}
}
