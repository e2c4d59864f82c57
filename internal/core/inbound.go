package core

import "time"

// ProxyProtocolKind enumerates the protocols a Server can declare.
type ProxyProtocolKind int

const (
	ProtoDetect ProxyProtocolKind = iota
	ProtoHTTP1
	ProtoHTTP2
	ProtoGRPC
	ProtoOpaque
	ProtoTLS
)

// ProxyProtocol is the effective proxy protocol of a Server; Timeout is only
// meaningful when Kind is ProtoDetect.
type ProxyProtocol struct {
	Kind    ProxyProtocolKind
	Timeout time.Duration
}

// AuthenticationMode enumerates how a ClientAuthorization authenticates its
// peer.
type AuthenticationMode int

const (
	AuthUnauthenticated AuthenticationMode = iota
	AuthTLSUnauthenticated
	AuthTLSAuthenticated
)

// ClientAuthorization is one authorized client class: a set of permitted
// source networks (empty means unrestricted) and an authentication mode.
// Identities is only meaningful when Mode is AuthTLSAuthenticated.
type ClientAuthorization struct {
	Networks   []NetworkMatch
	Mode       AuthenticationMode
	Identities []IdentityMatch
}

// AuthorizationRefKind distinguishes the two resources that can produce a
// ClientAuthorization.
type AuthorizationRefKind int

const (
	RefServerAuthorization AuthorizationRefKind = iota
	RefAuthorizationPolicy
	RefDefault
)

// AuthorizationRef names the resource (or synthetic default) that produced
// a ClientAuthorization; it is the key of InboundServer.Authorizations.
type AuthorizationRef struct {
	Kind      AuthorizationRefKind
	Namespace string
	Name      string
}

// ServerReference identifies either a concrete Server or one of the
// synthetic default policies (I1).
type ServerReferenceKind int

const (
	ServerReferenceResource ServerReferenceKind = iota
	ServerReferenceDefault
)

type ServerReference struct {
	Kind      ServerReferenceKind
	Namespace string
	Name      string // default policy name (e.g. "all-unauthenticated") when Kind == Default
}

// RateLimit is the materialized form of a RateLimitPolicy attached to a
// Server.
type RateLimit struct {
	Namespace string
	Name      string
	Total     Limit
	Identity  *Limit
	Overrides []RateLimitOverride
}

type Limit struct {
	RPS   float64
	Burst int32
}

type RateLimitOverride struct {
	ClientSelector string // namespaced name of the ServiceAccount/identity this override applies to
	Limit          Limit
}

// ConcurrencyLimit is the materialized form of a ConcurrencyLimitPolicy
// attached to a Server.
type ConcurrencyLimit struct {
	Namespace string
	Name      string
	MaxInFlight int32
}

// InboundServer is the fully joined, per-(pod,port) snapshot the resolver
// serves to inbound discovery subscribers.
type InboundServer struct {
	Reference        ServerReference
	Protocol         ProxyProtocol
	Authorizations   map[AuthorizationRef]ClientAuthorization
	RateLimit        *RateLimit
	ConcurrencyLimit *ConcurrencyLimit
	HTTPRoutes       []RouteBinding
	GRPCRoutes       []RouteBinding
}

// Clone returns a deep-enough copy of s for publication to subscribers:
// callers must not mutate a snapshot they did not produce, but Clone exists
// so index code can safely hand out the same authorizations map by value
// semantics at the API boundary.
func (s InboundServer) Clone() InboundServer {
	out := s
	if s.Authorizations != nil {
		out.Authorizations = make(map[AuthorizationRef]ClientAuthorization, len(s.Authorizations))
		for k, v := range s.Authorizations {
			out.Authorizations[k] = v
		}
	}
	out.HTTPRoutes = append([]RouteBinding(nil), s.HTTPRoutes...)
	out.GRPCRoutes = append([]RouteBinding(nil), s.GRPCRoutes...)
	return out
}
