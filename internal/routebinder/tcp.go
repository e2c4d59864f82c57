package routebinder

import (
	"k8s.io/apimachinery/pkg/util/validation/field"
	gatewayv1alpha2 "sigs.k8s.io/gateway-api/apis/v1alpha2"

	"github.com/meshpolicy/policy-controller/internal/core"
)

// BindTCPRoute projects a TCPRoute into a RouteBinding, enforcing the same
// exactly-one-rule invariant as TLSRoute.
func BindTCPRoute(route *gatewayv1alpha2.TCPRoute, exists BackendExists) (core.RouteBinding, field.ErrorList) {
	fld := field.NewPath("spec")
	var errs field.ErrorList

	parents, perrs := parseParentRefs(route.Namespace, route.Spec.ParentRefs, fld.Child("parentRefs"))
	errs = append(errs, perrs...)

	binding := core.RouteBinding{
		Ref: core.GroupKindNamespaceName{
			GroupKindName: core.GroupKindName{Group: gatewayv1alpha2.GroupName, Kind: "TCPRoute", Name: route.Name},
			Namespace:     route.Namespace,
		},
		CreatedAt: route.CreationTimestamp.Time,
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
		errs = append(errs, field.Invalid(fld.Child("rules"), len(route.Spec.Rules), "a TCPRoute must have exactly one rule"))
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

	binding.TCPRule = &core.TCPRouteRule{Backends: backends}

	return binding, errs
}
