package core

import (
	"net/netip"
	"time"
)

// TrafficPolicy is an EgressNetwork's unmatched-traffic policy.
type TrafficPolicy int

const (
	TrafficAllowAll TrafficPolicy = iota
	TrafficDenyAll
)

// UnmeshedPolicy is an UnmeshedNetwork's policy for destinations it cannot
// identify as mesh members.
type UnmeshedPolicy int

const (
	UnmeshedAllowUnknown UnmeshedPolicy = iota
	UnmeshedDenyUnknown
)

// ParentKind enumerates the resource kinds an OutboundPolicy can be parented
// by, plus the two synthetic fallbacks.
type ParentKind int

const (
	ParentService ParentKind = iota
	ParentEgressNetwork
	ParentUnmeshed
	ParentDefaultFallback
)

// ParentInfo carries resource-specific metadata about an OutboundPolicy's
// parent.
type ParentInfo struct {
	Kind          ParentKind
	Namespace     string
	Name          string
	Authority     string        // ParentService: "{svc}.{ns}.svc.{dns_domain}:{port}"
	TrafficPolicy TrafficPolicy // ParentEgressNetwork
	Allow         bool          // ParentUnmeshed: true iff AllowUnknown
}

// FailureAccrual configures consecutive-failure ejection for a port.
type FailureAccrual struct {
	MaxFailures    int32
	MinRequests    int32
	EjectionPeriod time.Duration
}

// RouteTimeouts are the per-port request/response/idle timeouts that apply
// when a route rule does not specify its own.
type RouteTimeouts struct {
	Request  time.Duration
	Response time.Duration
	Idle     time.Duration
}

// OutboundPolicy is the fully joined, per-(parent,port) snapshot the
// resolver serves to outbound discovery subscribers.
type OutboundPolicy struct {
	Parent       ParentInfo
	Port         int32
	OriginalDst  netip.AddrPort // set for ParentEgressNetwork/ParentUnmeshed/ParentDefaultFallback
	Opaque       bool
	Accrual      *FailureAccrual
	HTTPRetry    *RetryPolicy
	GRPCRetry    *RetryPolicy
	Timeouts     RouteTimeouts
	HTTPRoutes   []RouteBinding
	GRPCRoutes   []RouteBinding
	TLSRoutes    []RouteBinding
	TCPRoutes    []RouteBinding
}

// EgressFallbackName is the synthetic parent name used when no service IP,
// EgressNetwork, or UnmeshedNetwork matches an outbound lookup (S4).
const EgressFallbackName = "egress-fallback"

// Clone returns a copy safe to publish independently of the index's own
// slices.
func (p OutboundPolicy) Clone() OutboundPolicy {
	out := p
	out.HTTPRoutes = append([]RouteBinding(nil), p.HTTPRoutes...)
	out.GRPCRoutes = append([]RouteBinding(nil), p.GRPCRoutes...)
	out.TLSRoutes = append([]RouteBinding(nil), p.TLSRoutes...)
	out.TCPRoutes = append([]RouteBinding(nil), p.TCPRoutes...)
	return out
}
