package routebinder

import (
	"k8s.io/apimachinery/pkg/util/validation/field"
	gatewayv1 "sigs.k8s.io/gateway-api/apis/v1"

	"github.com/meshpolicy/policy-controller/internal/core"
)

// BindGRPCRoute projects a GRPCRoute into a RouteBinding, using the same
// parent/filter/backend conversion as HTTPRoute.
func BindGRPCRoute(route *gatewayv1.GRPCRoute, lookupRetry RetryFilterLookup, lookupFailureInjector FailureInjectorFilterLookup, exists BackendExists) (core.RouteBinding, field.ErrorList) {
	fld := field.NewPath("spec")
	var errs field.ErrorList

	parents, perrs := parseParentRefs(route.Namespace, route.Spec.ParentRefs, fld.Child("parentRefs"))
	errs = append(errs, perrs...)

	binding := core.RouteBinding{
		Ref: core.GroupKindNamespaceName{
			GroupKindName: core.GroupKindName{Group: gatewayv1.GroupName, Kind: "GRPCRoute", Name: route.Name},
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

		matches := make([]core.GRPCRouteMatch, 0, len(rule.Matches))
		for _, m := range rule.Matches {
			matches = append(matches, convertGRPCMatch(m))
		}

		filters, retry, ferrs := convertGRPCFilters(route.Namespace, rule.Filters, lookupRetry, lookupFailureInjector, rfld.Child("filters"))
		errs = append(errs, ferrs...)

		backends := make([]core.Backend, 0, len(rule.BackendRefs))
		for j, b := range rule.BackendRefs {
			backend, berr := convertBackendRef(route.Namespace, b.BackendObjectReference, b.Weight, exists, rfld.Child("backendRefs").Index(j))
			if berr != nil {
				errs = append(errs, berr)
			}
			backends = append(backends, backend)
		}

		binding.GRPCRules = append(binding.GRPCRules, core.GRPCRouteRule{
			Matches:  matches,
			Filters:  filters,
			Backends: backends,
			Retry:    retry,
		})
	}

	return binding, errs
}

func convertGRPCMatch(m gatewayv1.GRPCRouteMatch) core.GRPCRouteMatch {
	out := core.GRPCRouteMatch{}

	for _, h := range m.Headers {
		hm := core.HeaderMatch{Name: string(h.Name), Value: h.Value}
		if h.Type != nil && *h.Type == gatewayv1.HeaderMatchRegularExpression {
			hm.Type = core.HeaderMatchRegex
		}
		out.Headers = append(out.Headers, hm)
	}

	if m.Method != nil {
		mm := &core.GRPCMethodMatch{}
		if m.Method.Service != nil {
			mm.Service = *m.Method.Service
		}
		if m.Method.Method != nil {
			mm.Method = *m.Method.Method
		}
		out.Method = mm
	}

	return out
}

// convertGRPCFilters mirrors convertHTTPFilters for the GRPCRouteFilter
// type, which supports only RequestHeaderModifier, ResponseHeaderModifier
// and ExtensionRef (no redirect/rewrite filters exist for gRPC).
func convertGRPCFilters(namespace string, filters []gatewayv1.GRPCRouteFilter, lookupRetry RetryFilterLookup, lookupFailureInjector FailureInjectorFilterLookup, fld *field.Path) ([]core.Filter, *core.RetryPolicy, field.ErrorList) {
	var errs field.ErrorList
	var out []core.Filter
	var retry *core.RetryPolicy

	for i, f := range filters {
		switch f.Type {
		case gatewayv1.GRPCRouteFilterRequestHeaderModifier:
			out = append(out, core.Filter{Kind: core.FilterRequestHeaderModifier, HeaderModifier: convertHeaderModifier(f.RequestHeaderModifier)})
		case gatewayv1.GRPCRouteFilterResponseHeaderModifier:
			out = append(out, core.Filter{Kind: core.FilterResponseHeaderModifier, HeaderModifier: convertHeaderModifier(f.ResponseHeaderModifier)})
		case gatewayv1.GRPCRouteFilterExtensionRef:
			filter, err := resolveExtensionRefFilter(namespace, f.ExtensionRef, lookupRetry, lookupFailureInjector, fld.Index(i).Child("extensionRef"))
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if filter.retry != nil {
				retry = filter.retry
			} else {
				out = append(out, filter.filter)
			}
		default:
			errs = append(errs, field.NotSupported(fld.Index(i).Child("type"), f.Type, []string{
				string(gatewayv1.GRPCRouteFilterRequestHeaderModifier),
				string(gatewayv1.GRPCRouteFilterResponseHeaderModifier),
				string(gatewayv1.GRPCRouteFilterExtensionRef),
			}))
		}
	}

	return out, retry, errs
}
