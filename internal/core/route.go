package core

import (
	"strings"
	"time"
)

// GroupKindName identifies a route by its owning group/kind and name; it is
// the key used across HTTP and gRPC route maps so both kinds can be merged
// into a single ordered set without collision.
type GroupKindName struct {
	Group string
	Kind  string
	Name  string
}

// HostnameMatch is a compiled, case-insensitive hostname matcher. A leading
// "*." in the source hostname compiles to a suffix match; anything else is
// an exact match.
type HostnameMatch struct {
	Exact  string
	Suffix string // set iff this is a suffix match ("*.example.com" -> "example.com")
}

// Matches reports whether host satisfies this hostname matcher.
func (h HostnameMatch) Matches(host string) bool {
	host = strings.ToLower(host)
	if h.Suffix != "" {
		suffix := strings.ToLower(h.Suffix)
		return host == suffix || strings.HasSuffix(host, "."+suffix)
	}
	return host == strings.ToLower(h.Exact)
}

// HeaderMatchType distinguishes exact from regex header matches.
type HeaderMatchType int

const (
	HeaderMatchExact HeaderMatchType = iota
	HeaderMatchRegex
)

type HeaderMatch struct {
	Name  string
	Value string
	Type  HeaderMatchType
}

type PathMatchType int

const (
	PathMatchExact PathMatchType = iota
	PathMatchPrefix
	PathMatchRegex
)

type PathMatch struct {
	Type  PathMatchType
	Value string
}

type QueryParamMatch struct {
	Name  string
	Value string
	Type  HeaderMatchType
}

// HTTPRouteMatch is one HTTPRoute rule match clause.
type HTTPRouteMatch struct {
	Headers     []HeaderMatch
	Path        *PathMatch
	QueryParams []QueryParamMatch
	Method      string // empty means any method
}

// GRPCMethodMatch matches a gRPC {service, method} tuple; either field may
// be empty to mean "any".
type GRPCMethodMatch struct {
	Service string
	Method  string
}

type GRPCRouteMatch struct {
	Headers []HeaderMatch
	Method  *GRPCMethodMatch
}

// FilterKind enumerates the filter types the route binder understands.
type FilterKind int

const (
	FilterRequestHeaderModifier FilterKind = iota
	FilterResponseHeaderModifier
	FilterFailureInjector
)

type HeaderModifier struct {
	Set    map[string]string
	Add    map[string]string
	Remove []string
}

type Ratio struct {
	Numerator, Denominator int32
}

type FailureInjector struct {
	Status  int32
	Message string
	Ratio   Ratio
}

// Filter is one rule filter. Exactly one of the payload fields is set,
// matching Kind. The route binder rejects RequestMirror, RequestRedirect,
// URLRewrite and any ExtensionRef other than a same-namespace
// HTTPRetryFilter or HTTPFailureInjectorFilter, so those never appear here;
// an HTTPRetryFilter reference becomes the rule's RetryPolicy, not a Filter.
type Filter struct {
	Kind                  FilterKind
	RequestHeaderModifier  *HeaderModifier
	ResponseHeaderModifier *HeaderModifier
	FailureInjector        *FailureInjector
}

// BackendKind distinguishes the parent kinds a route rule may target.
type BackendKind int

const (
	BackendService BackendKind = iota
	BackendEgressNetwork
)

// Backend is one weighted destination of a route rule. A backend that could
// not be resolved (missing required port, unknown group/kind, nonexistent
// parent) is still retained as Invalid=true so the rule stays servable, per
// S5.
type Backend struct {
	Kind      BackendKind
	Namespace string
	Name      string
	Port      int32 // 0 if inherited from the parent (EgressNetwork only)
	Weight    int32
	Exists    bool
	Invalid   bool
	Message   string
	Filters   []Filter
}

// RetryPolicy describes a bounded retry budget for a rule.
type RetryPolicy struct {
	MaxPerRequest *int32
	StatusRanges  []StatusRange // default is a single 500..=599 range
}

type StatusRange struct {
	Start, End int32
}

func DefaultRetryStatusRanges() []StatusRange {
	return []StatusRange{{Start: 500, End: 599}}
}

// HTTPRouteRule is one compiled rule of an HTTPRoute or GRPCRoute binding.
type HTTPRouteRule struct {
	Matches []HTTPRouteMatch
	Filters []Filter
	Backends []Backend
	Retry   *RetryPolicy
	Timeout time.Duration
}

type GRPCRouteRule struct {
	Matches  []GRPCRouteMatch
	Filters  []Filter
	Backends []Backend
	Retry    *RetryPolicy
	Timeout  time.Duration
}

// TLSRouteRule and TCPRouteRule carry exactly one rule's worth of backends
// per (I-invariant in §4.1: TcpRoute/TlsRoute must have exactly one rule).
type TLSRouteRule struct {
	SNIs     []string
	Backends []Backend
}

type TCPRouteRule struct {
	Backends []Backend
}

// ParentRefStatus is the per-parent-ref status a route binding carries
// forward for the status deriver; it is populated by the route binder while
// producing the binding so StatusDeriver need not re-derive it.
type ParentRefStatus struct {
	ParentRef GroupKindNamespaceName
	Accepted  bool
	Reason    string // one of the closed set in §4.7 when Accepted is false
	Message   string
}

// GroupKindNamespaceName is a GroupKindName scoped to a namespace, used to
// name parent references across namespaces.
type GroupKindNamespaceName struct {
	GroupKindName
	Namespace string
}

// RouteBinding is the materialized, validated projection of a route
// resource, ready for inclusion in a server or outbound policy snapshot.
type RouteBinding struct {
	Ref         GroupKindNamespaceName
	CreatedAt   time.Time
	Hostnames   []HostnameMatch
	HTTPRules   []HTTPRouteRule
	GRPCRules   []GRPCRouteRule
	TLSRule     *TLSRouteRule
	TCPRule     *TCPRouteRule
	ParentRefs  []ParentRefStatus
}

// Less orders two bindings deterministically: oldest creation time first,
// then namespaced name, matching §4.4's "oldest first, tie-broken by
// namespaced name".
func (b RouteBinding) Less(other RouteBinding) bool {
	if !b.CreatedAt.Equal(other.CreatedAt) {
		return b.CreatedAt.Before(other.CreatedAt)
	}
	if b.Ref.Namespace != other.Ref.Namespace {
		return b.Ref.Namespace < other.Ref.Namespace
	}
	return b.Ref.Name < other.Ref.Name
}
