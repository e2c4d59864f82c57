package routebinder

import (
	"k8s.io/apimachinery/pkg/util/validation/field"
	gatewayv1alpha2 "sigs.k8s.io/gateway-api/apis/v1alpha2"

	"github.com/meshpolicy/policy-controller/internal/core"
)

// BindTLSRoute projects a TLSRoute into a RouteBinding. TLSRoute must carry
// exactly one rule (I-TLS, mirrored on TCPRoute): a route with zero or more
// than one rule is rejected outright rather than partially bound, since
// there is no SNI-independent way to choose among several backend sets.
func BindTLSRoute(route *gatewayv1alpha2.TLSRoute, exists BackendExists) (core.RouteBinding, field.ErrorList) {
	fld := field.NewPath("spec")
	var errs field.ErrorList

	parents, perrs := parseParentRefs(route.Namespace, route.Spec.ParentRefs, fld.Child("parentRefs"))
	errs = append(errs, perrs...)

	binding := core.RouteBinding{
		Ref: core.GroupKindNamespaceName{
			GroupKindName: core.GroupKindName{Group: gatewayv1alpha2.GroupName, Kind: "TLSRoute", Name: route.Name},
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

	if len(route.Spec.Rules) != 1 {
		errs = append(errs, field.Invalid(fld.Child("rules"), len(route.Spec.Rules), "a TLSRoute must have exactly one rule"))
		return binding, errs
	}

	rule := route.Spec.Rules[0]
	brfld := fld.Child("rules").Index(0).Child("backendRefs")
	backends := make([]core.Backend, 0, len(rule.BackendRefs))
	for j, b := range rule.BackendRefs {
		backend, berr := convertBackendRef(route.Namespace, b.BackendObjectReference, b.Weight, exists, brfld.Index(j))
		if berr != nil {
			errs = append(errs, berr)
		}
		backends = append(backends, backend)
	}

	sniStrs := make([]string, 0, len(route.Spec.Hostnames))
	for _, h := range route.Spec.Hostnames {
		sniStrs = append(sniStrs, string(h))
	}

	binding.TLSRule = &core.TLSRouteRule{SNIs: sniStrs, Backends: backends}

	return binding, errs
}
