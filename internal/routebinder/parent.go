// Package routebinder turns Gateway API route resources into the
// project's own RouteBinding value, validating parent references, matches,
// filters and backends with the same field.ErrorList conventions
// internal/resourcespecs uses for the policy resources.
package routebinder

import (
	"k8s.io/apimachinery/pkg/util/validation/field"
	gatewayv1 "sigs.k8s.io/gateway-api/apis/v1"

	"github.com/meshpolicy/policy-controller/internal/core"
)

// acceptedParentKinds is the (group, kind) allow-list a route's parentRefs
// must resolve to.
var acceptedParentKinds = map[string][]string{
	"policy.meshpolicy.io": {"Server", "EgressNetwork", "UnmeshedNetwork"},
	"":                     {"Service"},
}

// ParentRef is a validated, resolved parent reference.
type ParentRef struct {
	Group     string
	Kind      string
	Namespace string
	Name      string
	Port      *int32
}

func parseParentRefs(routeNamespace string, refs []gatewayv1.ParentReference, fld *field.Path) ([]ParentRef, field.ErrorList) {
	var errs field.ErrorList
	out := make([]ParentRef, 0, len(refs))

	for i, ref := range refs {
		group := ""
		if ref.Group != nil {
			group = string(*ref.Group)
		}
		kind := "Service"
		if ref.Kind != nil {
			kind = string(*ref.Kind)
		}

		allowed, groupKnown := acceptedParentKinds[group]
		if !groupKnown {
			errs = append(errs, field.Invalid(fld.Index(i).Child("group"), group, "unsupported parentRef group"))
			continue
		}
		found := false
		for _, k := range allowed {
			if k == kind {
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, field.Invalid(fld.Index(i).Child("kind"), kind, "unsupported parentRef kind"))
			continue
		}

		ns := routeNamespace
		if ref.Namespace != nil {
			ns = string(*ref.Namespace)
		}

		pr := ParentRef{Group: group, Kind: kind, Namespace: ns, Name: string(ref.Name)}
		if ref.Port != nil {
			p := int32(*ref.Port)
			pr.Port = &p
		} else if kind == "EgressNetwork" || kind == "UnmeshedNetwork" {
			errs = append(errs, field.Required(fld.Index(i).Child("port"), "port is required when targeting an EgressNetwork or UnmeshedNetwork"))
			continue
		}

		out = append(out, pr)
	}

	return out, errs
}

func parseHostnames(hostnames []gatewayv1.Hostname) []core.HostnameMatch {
	out := make([]core.HostnameMatch, 0, len(hostnames))
	for _, h := range hostnames {
		s := string(h)
		if len(s) > 2 && s[0] == '*' && s[1] == '.' {
			out = append(out, core.HostnameMatch{Suffix: s[2:]})
		} else {
			out = append(out, core.HostnameMatch{Exact: s})
		}
	}
	return out
}
