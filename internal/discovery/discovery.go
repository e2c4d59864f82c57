// Package discovery is the semantic shape of §6's discovery RPC: a
// Go-native streaming interface over internal/resolver. Wire format
// (gRPC codegen, protobuf messages) is explicitly out of scope — a real
// front end marshals InboundServer/OutboundPolicy struct trees from the
// channels this package returns.
package discovery

import (
	"context"
	"fmt"
	"net/netip"

	"github.com/meshpolicy/policy-controller/internal/core"
	"github.com/meshpolicy/policy-controller/internal/resolver"
)

// Server exposes Inbound/Outbound lookups over a Resolver, translating
// the legacy/JSON workload-key text form into the (namespace, workload)
// pair the resolver addresses.
type Server struct {
	resolver *resolver.Resolver
}

func New(r *resolver.Resolver) *Server {
	return &Server{resolver: r}
}

// Inbound subscribes to a workload's inbound policy. workloadKey is
// either the legacy "ns:pod" text form or the JSON form accepted by
// core.ParseWorkloadKey. The returned channel is closed when ctx is
// done; resolver.ErrNotFound is returned immediately if the workload has
// never been observed.
func (s *Server) Inbound(ctx context.Context, workloadKey string, port int32) (core.InboundServer, <-chan core.InboundServer, func(), error) {
	w, err := core.ParseWorkloadKey(workloadKey)
	if err != nil {
		return core.InboundServer{}, nil, func() {}, fmt.Errorf("discovery: %w", err)
	}
	name := w.Pod
	if w.IsExternal() {
		name = w.ExternalWorkload
	}
	return s.resolver.Inbound(ctx, w.Namespace, name, port)
}

// Outbound subscribes to the outbound policy governing traffic from
// srcNamespace to (addr, port). Resolution never fails: an address
// matching nothing resolves to the egress-fallback parent.
func (s *Server) Outbound(ctx context.Context, srcNamespace string, addr netip.Addr, port int32) (core.OutboundPolicy, <-chan core.OutboundPolicy, func(), error) {
	return s.resolver.Outbound(ctx, srcNamespace, addr, port)
}
