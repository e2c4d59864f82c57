package routebinder

import (
	"k8s.io/apimachinery/pkg/util/validation/field"
	gatewayv1 "sigs.k8s.io/gateway-api/apis/v1"

	"github.com/meshpolicy/policy-controller/internal/core"
)

// BindHTTPRoute projects an HTTPRoute into a RouteBinding. Errors are
// returned alongside a best-effort binding: every rule is kept, an
// unsupported filter is dropped from its rule and an invalid backend stays
// in its rule marked Invalid, rather than failing the whole route (S5).
func BindHTTPRoute(route *gatewayv1.HTTPRoute, lookupRetry RetryFilterLookup, lookupFailureInjector FailureInjectorFilterLookup, exists BackendExists) (core.RouteBinding, field.ErrorList) {
	fld := field.NewPath("spec")
	var errs field.ErrorList

	parents, perrs := parseParentRefs(route.Namespace, route.Spec.ParentRefs, fld.Child("parentRefs"))
	errs = append(errs, perrs...)

	binding := core.RouteBinding{
		Ref: core.GroupKindNamespaceName{
			GroupKindName: core.GroupKindName{Group: gatewayv1.GroupName, Kind: "HTTPRoute", Name: route.Name},
			Namespace:     route.Namespace,
		},
		CreatedAt: route.CreationTimestamp.Time,
		Hostnames: parseHostnames(route.Spec.Hostnames),
	}

	for _, p := range parents {
		binding.ParentRefs = append(binding.ParentRefs, core.ParentRefStatus{
			ParentRef: core.GroupKindNamespaceName{
				GroupKindName: core.GroupKindName{Group: p.Group, Kind: p.Kind, Name: p.Name},
				Namespace:     p.Namespace,
			},
			Accepted: true,
		})
	}

	for i, rule := range route.Spec.Rules {
		rfld := fld.Child("rules").Index(i)

		matches := make([]core.HTTPRouteMatch, 0, len(rule.Matches))
		for _, m := range rule.Matches {
			matches = append(matches, convertHTTPMatch(m))
		}

		filters, retry, ferrs := convertHTTPFilters(route.Namespace, rule.Filters, lookupRetry, lookupFailureInjector, rfld.Child("filters"))
		errs = append(errs, ferrs...)

		backends := make([]core.Backend, 0, len(rule.BackendRefs))
		for j, b := range rule.BackendRefs {
			backend, berr := convertBackendRef(route.Namespace, b.BackendObjectReference, b.Weight, exists, rfld.Child("backendRefs").Index(j))
			if berr != nil {
				errs = append(errs, berr)
			}
			backends = append(backends, backend)
		}

		binding.HTTPRules = append(binding.HTTPRules, core.HTTPRouteRule{
			Matches:  matches,
			Filters:  filters,
			Backends: backends,
			Retry:    retry,
		})
	}

	return binding, errs
}

func convertHTTPMatch(m gatewayv1.HTTPRouteMatch) core.HTTPRouteMatch {
	out := core.HTTPRouteMatch{}

	if m.Path != nil {
		pm := &core.PathMatch{Value: derefStr(m.Path.Value)}
		switch derefPathType(m.Path.Type) {
		case gatewayv1.PathMatchExact:
			pm.Type = core.PathMatchExact
		case gatewayv1.PathMatchRegularExpression:
			pm.Type = core.PathMatchRegex
		default:
			pm.Type = core.PathMatchPrefix
		}
		out.Path = pm
	}

	for _, h := range m.Headers {
		hm := core.HeaderMatch{Name: string(h.Name), Value: h.Value}
		if h.Type != nil && *h.Type == gatewayv1.HeaderMatchRegularExpression {
			hm.Type = core.HeaderMatchRegex
		}
		out.Headers = append(out.Headers, hm)
	}

	for _, q := range m.QueryParams {
		qm := core.QueryParamMatch{Name: string(q.Name), Value: q.Value}
		if q.Type != nil && *q.Type == gatewayv1.QueryParamMatchRegularExpression {
			qm.Type = core.HeaderMatchRegex
		}
		out.QueryParams = append(out.QueryParams, qm)
	}

	if m.Method != nil {
		out.Method = string(*m.Method)
	}

	return out
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefPathType(t *gatewayv1.PathMatchType) gatewayv1.PathMatchType {
	if t == nil {
		return gatewayv1.PathMatchPathPrefix
	}
	return *t
}
