package routebinder

import (
	"k8s.io/apimachinery/pkg/util/validation/field"
	gatewayv1 "sigs.k8s.io/gateway-api/apis/v1"

	"github.com/meshpolicy/policy-controller/internal/core"
	"github.com/meshpolicy/policy-controller/internal/resourcespecs"
)

// RetryFilterLookup resolves an HTTPRetryFilter extensionRef within a
// route's namespace.
type RetryFilterLookup func(namespace, name string) (resourcespecs.HTTPRetryFilterSpec, bool)

// FailureInjectorFilterLookup resolves an HTTPFailureInjectorFilter
// extensionRef within a route's namespace, the same ExtensionRef-CRD
// pattern RetryFilterLookup uses for HTTPRetryFilter.
type FailureInjectorFilterLookup func(namespace, name string) (resourcespecs.HTTPFailureInjectorFilterSpec, bool)

const retryFilterKind = "HTTPRetryFilter"
const failureInjectorFilterKind = "HTTPFailureInjectorFilter"
const retryFilterGroup = "policy.meshpolicy.io"

// convertHTTPFilters converts a rule's filters into core.Filter values.
// Unsupported filters (RequestMirror, RequestRedirect, URLRewrite, CORS,
// and any ExtensionRef other than an in-namespace HTTPRetryFilter or
// HTTPFailureInjectorFilter) produce a field error; the rule that carries
// them is retained but the offending filter is dropped, matching the
// "invalid rule, retained route" posture describled in the component
// design.
func convertHTTPFilters(namespace string, filters []gatewayv1.HTTPRouteFilter, lookupRetry RetryFilterLookup, lookupFailureInjector FailureInjectorFilterLookup, fld *field.Path) ([]core.Filter, *core.RetryPolicy, field.ErrorList) {
	var errs field.ErrorList
	var out []core.Filter
	var retry *core.RetryPolicy

	for i, f := range filters {
		switch f.Type {
		case gatewayv1.HTTPRouteFilterRequestHeaderModifier:
			out = append(out, core.Filter{Kind: core.FilterRequestHeaderModifier, HeaderModifier: convertHeaderModifier(f.RequestHeaderModifier)})
		case gatewayv1.HTTPRouteFilterResponseHeaderModifier:
			out = append(out, core.Filter{Kind: core.FilterResponseHeaderModifier, HeaderModifier: convertHeaderModifier(f.ResponseHeaderModifier)})
		case gatewayv1.HTTPRouteFilterExtensionRef:
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
				string(gatewayv1.HTTPRouteFilterRequestHeaderModifier),
				string(gatewayv1.HTTPRouteFilterResponseHeaderModifier),
				string(gatewayv1.HTTPRouteFilterExtensionRef),
			}))
		}
	}

	return out, retry, errs
}

// extensionRefFilter is the result of resolving an ExtensionRef filter:
// exactly one of retry or filter is set.
type extensionRefFilter struct {
	retry  *core.RetryPolicy
	filter core.Filter
}

// resolveExtensionRefFilter dispatches an ExtensionRef filter to whichever
// custom CRD it names, shared by the HTTP and gRPC filter converters.
func resolveExtensionRefFilter(namespace string, ref *gatewayv1.LocalObjectReference, lookupRetry RetryFilterLookup, lookupFailureInjector FailureInjectorFilterLookup, fld *field.Path) (extensionRefFilter, *field.Error) {
	if ref == nil || string(ref.Group) != retryFilterGroup {
		return extensionRefFilter{}, field.NotSupported(fld, ref, []string{
			retryFilterGroup + "/" + retryFilterKind,
			retryFilterGroup + "/" + failureInjectorFilterKind,
		})
	}

	switch string(ref.Kind) {
	case retryFilterKind:
		spec, ok := lookupRetry(namespace, string(ref.Name))
		if !ok {
			return extensionRefFilter{}, field.Invalid(fld.Child("name"), ref.Name, "HTTPRetryFilter not found")
		}
		minRetries := spec.MinRetriesPerSecond
		return extensionRefFilter{retry: &core.RetryPolicy{
			MaxPerRequest: &minRetries,
			StatusRanges:  core.DefaultRetryStatusRanges(),
		}}, nil
	case failureInjectorFilterKind:
		spec, ok := lookupFailureInjector(namespace, string(ref.Name))
		if !ok {
			return extensionRefFilter{}, field.Invalid(fld.Child("name"), ref.Name, "HTTPFailureInjectorFilter not found")
		}
		return extensionRefFilter{filter: core.Filter{
			Kind: core.FilterFailureInjector,
			FailureInjector: &core.FailureInjector{
				Status:  spec.Status,
				Message: spec.Message,
				Ratio:   spec.Ratio,
			},
		}}, nil
	default:
		return extensionRefFilter{}, field.NotSupported(fld, ref, []string{
			retryFilterGroup + "/" + retryFilterKind,
			retryFilterGroup + "/" + failureInjectorFilterKind,
		})
	}
}

func convertHeaderModifier(m *gatewayv1.HTTPHeaderFilter) *core.HeaderModifier {
	if m == nil {
		return nil
	}
	out := &core.HeaderModifier{
		Set:    map[string]string{},
		Add:    map[string]string{},
		Remove: append([]string(nil), m.Remove...),
	}
	for _, h := range m.Set {
		out.Set[string(h.Name)] = h.Value
	}
	for _, h := range m.Add {
		out.Add[string(h.Name)] = h.Value
	}
	return out
}
