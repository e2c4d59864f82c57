package index

import (
	"net/netip"

	"github.com/meshpolicy/policy-controller/internal/resourcespecs"
)

// nsOutbound is the per-namespace state OutboundIndex resolves over: its
// own EgressNetworks and UnmeshedNetworks, per §4.3.
type nsOutbound struct {
	egressNetworks   map[string]resourcespecs.EgressNetworkSpec
	unmeshedNetworks map[string]resourcespecs.UnmeshedNetworkSpec
}

func newNSOutbound() *nsOutbound {
	return &nsOutbound{
		egressNetworks:   make(map[string]resourcespecs.EgressNetworkSpec),
		unmeshedNetworks: make(map[string]resourcespecs.UnmeshedNetworkSpec),
	}
}

// outboundGlobal is the cluster-wide state OutboundIndex resolves over:
// the services_by_ip map from §4.3 plus the per-kind route registries.
type outboundGlobal struct {
	services     map[ResourceKey]resourcespecs.ServiceInfo
	servicesByIP map[netip.Addr]ResourceKey

	httpRoutes *RouteRegistry
	grpcRoutes *RouteRegistry
	tlsRoutes  *RouteRegistry
	tcpRoutes  *RouteRegistry
}

func newOutboundGlobal() outboundGlobal {
	return outboundGlobal{
		services:     make(map[ResourceKey]resourcespecs.ServiceInfo),
		servicesByIP: make(map[netip.Addr]ResourceKey),
		httpRoutes:   NewRouteRegistry(),
		grpcRoutes:   NewRouteRegistry(),
		tlsRoutes:    NewRouteRegistry(),
		tcpRoutes:    NewRouteRegistry(),
	}
}

func (g *outboundGlobal) setService(key ResourceKey, info resourcespecs.ServiceInfo) {
	if old, ok := g.services[key]; ok {
		for _, ip := range old.ClusterIPs {
			delete(g.servicesByIP, ip)
		}
	}
	g.services[key] = info
	for _, ip := range info.ClusterIPs {
		g.servicesByIP[ip] = key
	}
}

func (g *outboundGlobal) deleteService(key ResourceKey) {
	if old, ok := g.services[key]; ok {
		for _, ip := range old.ClusterIPs {
			delete(g.servicesByIP, ip)
		}
	}
	delete(g.services, key)
}
