package routebinder

import (
	"testing"

	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/validation/field"
	gatewayv1 "sigs.k8s.io/gateway-api/apis/v1"
	gatewayv1alpha2 "sigs.k8s.io/gateway-api/apis/v1alpha2"

	"github.com/meshpolicy/policy-controller/internal/core"
	"github.com/meshpolicy/policy-controller/internal/resourcespecs"
)

func ptrKind(k gatewayv1.Kind) *gatewayv1.Kind { return &k }
func ptrGroup(g gatewayv1.Group) *gatewayv1.Group { return &g }
func ptrNS(n gatewayv1.Namespace) *gatewayv1.Namespace { return &n }
func ptrPort(p gatewayv1.PortNumber) *gatewayv1.PortNumber { return &p }

func alwaysExists(kind, namespace, name string) bool { return true }
func neverExists(kind, namespace, name string) bool { return false }

func noRetryFilters(namespace, name string) (resourcespecs.HTTPRetryFilterSpec, bool) {
	return resourcespecs.HTTPRetryFilterSpec{}, false
}

func noFailureInjectorFilters(namespace, name string) (resourcespecs.HTTPFailureInjectorFilterSpec, bool) {
	return resourcespecs.HTTPFailureInjectorFilterSpec{}, false
}

func TestBindHTTPRoute_RejectsUnsupportedParentGroup(t *testing.T) {
	t.Parallel()

	route := &gatewayv1.HTTPRoute{
		ObjectMeta: metav1.ObjectMeta{Namespace: "ns", Name: "route"},
		Spec: gatewayv1.HTTPRouteSpec{
			CommonRouteSpec: gatewayv1.CommonRouteSpec{
				ParentRefs: []gatewayv1.ParentReference{
					{Group: ptrGroup("bogus.example.com"), Kind: ptrKind("Server"), Name: "srv"},
				},
			},
		},
	}

	_, errs := BindHTTPRoute(route, noRetryFilters, noFailureInjectorFilters, alwaysExists)
	require.NotEmpty(t, errs)
}

func TestBindHTTPRoute_RequiresPortForEgressNetworkParent(t *testing.T) {
	t.Parallel()

	route := &gatewayv1.HTTPRoute{
		ObjectMeta: metav1.ObjectMeta{Namespace: "ns", Name: "route"},
		Spec: gatewayv1.HTTPRouteSpec{
			CommonRouteSpec: gatewayv1.CommonRouteSpec{
				ParentRefs: []gatewayv1.ParentReference{
					{Group: ptrGroup("policy.meshpolicy.io"), Kind: ptrKind("EgressNetwork"), Name: "egress"},
				},
			},
		},
	}

	_, errs := BindHTTPRoute(route, noRetryFilters, noFailureInjectorFilters, alwaysExists)
	require.NotEmpty(t, errs)
}

func TestBindHTTPRoute_HostnameCompilation(t *testing.T) {
	t.Parallel()

	route := &gatewayv1.HTTPRoute{
		ObjectMeta: metav1.ObjectMeta{Namespace: "ns", Name: "route"},
		Spec: gatewayv1.HTTPRouteSpec{
			Hostnames: []gatewayv1.Hostname{"*.example.com", "exact.example.com"},
		},
	}

	binding, errs := BindHTTPRoute(route, noRetryFilters, noFailureInjectorFilters, alwaysExists)
	require.Empty(t, errs)
	require.Len(t, binding.Hostnames, 2)
	require.True(t, binding.Hostnames[0].Matches("foo.example.com"))
	require.True(t, binding.Hostnames[1].Matches("exact.example.com"))
	require.False(t, binding.Hostnames[1].Matches("other.example.com"))
}

func TestBindHTTPRoute_UnsupportedFilterRetainsRule(t *testing.T) {
	t.Parallel()

	route := &gatewayv1.HTTPRoute{
		ObjectMeta: metav1.ObjectMeta{Namespace: "ns", Name: "route"},
		Spec: gatewayv1.HTTPRouteSpec{
			Rules: []gatewayv1.HTTPRouteRule{
				{
					Filters: []gatewayv1.HTTPRouteFilter{
						{Type: gatewayv1.HTTPRouteFilterRequestMirror},
					},
					BackendRefs: []gatewayv1.HTTPBackendRef{
						{BackendRef: gatewayv1.BackendRef{BackendObjectReference: gatewayv1.BackendObjectReference{
							Name: "svc", Port: ptrPort(80),
						}}},
					},
				},
			},
		},
	}

	binding, errs := BindHTTPRoute(route, noRetryFilters, noFailureInjectorFilters, alwaysExists)
	require.NotEmpty(t, errs)
	require.Len(t, binding.HTTPRules, 1)
	require.Len(t, binding.HTTPRules[0].Backends, 1)
	require.False(t, binding.HTTPRules[0].Backends[0].Invalid)
}

func TestBindHTTPRoute_RetryExtensionRefResolves(t *testing.T) {
	t.Parallel()

	lookup := func(namespace, name string) (resourcespecs.HTTPRetryFilterSpec, bool) {
		require.Equal(t, "ns", namespace)
		require.Equal(t, "retry-budget", name)
		return resourcespecs.HTTPRetryFilterSpec{MinRetriesPerSecond: 5}, true
	}

	route := &gatewayv1.HTTPRoute{
		ObjectMeta: metav1.ObjectMeta{Namespace: "ns", Name: "route"},
		Spec: gatewayv1.HTTPRouteSpec{
			Rules: []gatewayv1.HTTPRouteRule{
				{
					Filters: []gatewayv1.HTTPRouteFilter{
						{
							Type: gatewayv1.HTTPRouteFilterExtensionRef,
							ExtensionRef: &gatewayv1.LocalObjectReference{
								Group: "policy.meshpolicy.io",
								Kind:  "HTTPRetryFilter",
								Name:  "retry-budget",
							},
						},
					},
				},
			},
		},
	}

	binding, errs := BindHTTPRoute(route, lookup, noFailureInjectorFilters, alwaysExists)
	require.Empty(t, errs)
	require.NotNil(t, binding.HTTPRules[0].Retry)
	require.EqualValues(t, 5, *binding.HTTPRules[0].Retry.MaxPerRequest)
}

func TestConvertBackendRef_ServiceRequiresPort(t *testing.T) {
	t.Parallel()

	b, _ := convertBackendRef("ns", gatewayv1.BackendObjectReference{Name: "svc"}, nil, alwaysExists, field.NewPath("spec"))
	require.True(t, b.Invalid)
	require.Equal(t, core.BackendService, b.Kind)
}

func TestConvertBackendRef_RetainedWhenNotFound(t *testing.T) {
	t.Parallel()

	b, _ := convertBackendRef("ns", gatewayv1.BackendObjectReference{Name: "svc", Port: ptrPort(80)}, nil, neverExists, field.NewPath("spec"))
	require.True(t, b.Invalid)
	require.False(t, b.Exists)
	require.Equal(t, "svc", b.Name)
}

func TestBindTLSRoute_RejectsMultipleRules(t *testing.T) {
	t.Parallel()

	route := &gatewayv1alpha2.TLSRoute{
		ObjectMeta: metav1.ObjectMeta{Namespace: "ns", Name: "tls"},
		Spec: gatewayv1alpha2.TLSRouteSpec{
			Rules: []gatewayv1alpha2.TLSRouteRule{{}, {}},
		},
	}

	_, errs := BindTLSRoute(route, alwaysExists)
	require.NotEmpty(t, errs)
}

func TestBindTLSRoute_ExactlyOneRuleAccepted(t *testing.T) {
	t.Parallel()

	route := &gatewayv1alpha2.TLSRoute{
		ObjectMeta: metav1.ObjectMeta{Namespace: "ns", Name: "tls"},
		Spec: gatewayv1alpha2.TLSRouteSpec{
			Rules: []gatewayv1alpha2.TLSRouteRule{
				{
					BackendRefs: []gatewayv1.BackendRef{
						{BackendObjectReference: gatewayv1.BackendObjectReference{Name: "svc", Port: ptrPort(443)}},
					},
				},
			},
		},
	}

	binding, errs := BindTLSRoute(route, alwaysExists)
	require.Empty(t, errs)
	require.NotNil(t, binding.TLSRule)
	require.Len(t, binding.TLSRule.Backends, 1)
}

func TestBindTCPRoute_RejectsZeroRules(t *testing.T) {
	t.Parallel()

	route := &gatewayv1alpha2.TCPRoute{
		ObjectMeta: metav1.ObjectMeta{Namespace: "ns", Name: "tcp"},
		Spec:       gatewayv1alpha2.TCPRouteSpec{},
	}

	_, errs := BindTCPRoute(route, alwaysExists)
	require.NotEmpty(t, errs)
}

func TestBindGRPCRoute_MethodMatch(t *testing.T) {
	t.Parallel()

	svc := "pkg.Service"
	method := "Method"

	route := &gatewayv1.GRPCRoute{
		ObjectMeta: metav1.ObjectMeta{Namespace: "ns", Name: "grpc"},
		Spec: gatewayv1.GRPCRouteSpec{
			Rules: []gatewayv1.GRPCRouteRule{
				{
					Matches: []gatewayv1.GRPCRouteMatch{
						{Method: &gatewayv1.GRPCMethodMatch{Service: &svc, Method: &method}},
					},
				},
			},
		},
	}

	binding, errs := BindGRPCRoute(route, noRetryFilters, noFailureInjectorFilters, alwaysExists)
	require.Empty(t, errs)
	require.Len(t, binding.GRPCRules, 1)
	require.NotNil(t, binding.GRPCRules[0].Matches[0].Method)
	require.Equal(t, "pkg.Service", binding.GRPCRules[0].Matches[0].Method.Service)
}

var _ = ptrNS
