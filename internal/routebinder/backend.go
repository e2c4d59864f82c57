package routebinder

import (
	"k8s.io/apimachinery/pkg/util/validation/field"
	gatewayv1 "sigs.k8s.io/gateway-api/apis/v1"

	"github.com/meshpolicy/policy-controller/internal/core"
)

// BackendExists answers whether a referenced Service/EgressNetwork backend
// is currently known to the index, used to set core.Backend.Exists.
type BackendExists func(kind, namespace, name string) bool

// convertBackendRef converts one backendRef. The returned *field.Error is
// non-nil iff the backend is Invalid, so callers can both retain the
// backend (S5: an invalid backend stays in the rule rather than dropping
// it) and fold the problem into the route's Accepted status.
func convertBackendRef(routeNamespace string, ref gatewayv1.BackendObjectReference, weight *int32, exists BackendExists, fld *field.Path) (core.Backend, *field.Error) {
	kind := "Service"
	if ref.Kind != nil {
		kind = string(*ref.Kind)
	}
	ns := routeNamespace
	if ref.Namespace != nil {
		ns = string(*ref.Namespace)
	}

	w := int32(1)
	if weight != nil {
		w = *weight
	}

	b := core.Backend{
		Namespace: ns,
		Name:      string(ref.Name),
		Weight:    w,
	}

	switch kind {
	case "Service":
		b.Kind = core.BackendService
		if ref.Port == nil {
			b.Invalid = true
			b.Message = "port is required for a Service backend"
			return b, field.Required(fld.Child("port"), b.Message)
		}
		b.Port = int32(*ref.Port)
	case "EgressNetwork":
		b.Kind = core.BackendEgressNetwork
		if ref.Port != nil {
			b.Port = int32(*ref.Port)
		}
	default:
		b.Invalid = true
		b.Message = "unsupported backend kind " + kind
		return b, field.NotSupported(fld.Child("kind"), kind, []string{"Service", "EgressNetwork"})
	}

	b.Exists = exists(kind, ns, b.Name)
	if !b.Exists {
		b.Invalid = true
		b.Message = "backend not found"
		return b, field.Invalid(fld.Child("name"), b.Name, b.Message)
	}

	return b, nil
}
