package resourcespecs

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/util/validation/field"

	policyv1alpha1 "github.com/meshpolicy/policy-controller/api/v1alpha1"
	"github.com/meshpolicy/policy-controller/internal/core"
)

// ServerAuthorizationSpec is the canonical projection of a
// ServerAuthorization resource: a legacy mechanism for authorizing clients
// to a Server by exact name or by selector over the Server's labels.
type ServerAuthorizationSpec struct {
	Namespace      string
	Name           string
	ServerName     string
	ServerSelector labels.Selector
	Authorization  core.ClientAuthorization
}

// MatchesServer reports whether this authorization applies to a server.
func (s ServerAuthorizationSpec) MatchesServer(name string, serverLabels map[string]string) bool {
	if s.ServerName != "" {
		return s.ServerName == name
	}
	if s.ServerSelector != nil {
		return s.ServerSelector.Matches(labels.Set(serverLabels))
	}
	return false
}

// ParseServerAuthorization validates and projects a ServerAuthorization.
func ParseServerAuthorization(obj *policyv1alpha1.ServerAuthorization) (ServerAuthorizationSpec, error) {
	fld := field.NewPath("spec")
	var errs field.ErrorList

	var serverSelector labels.Selector
	if obj.Spec.Server.Name == "" && obj.Spec.Server.Selector == nil {
		errs = append(errs, field.Required(fld.Child("server"), "exactly one of name or selector must be set"))
	}
	if obj.Spec.Server.Selector != nil {
		sel, err := metav1.LabelSelectorAsSelector(obj.Spec.Server.Selector)
		if err != nil {
			errs = append(errs, field.Invalid(fld.Child("server", "selector"), obj.Spec.Server.Selector, err.Error()))
		} else {
			serverSelector = sel
		}
	}

	networks, netErrs := parseNetworks(obj.Spec.Client.Networks, fld.Child("client", "networks"))
	errs = append(errs, netErrs...)

	mode := core.AuthUnauthenticated
	var identities []core.IdentityMatch
	switch {
	case obj.Spec.Client.Unauthenticated && obj.Spec.Client.MeshTLS != nil:
		errs = append(errs, field.Forbidden(fld.Child("client"), "unauthenticated and meshTLS are mutually exclusive"))
	case obj.Spec.Client.Unauthenticated:
		mode = core.AuthUnauthenticated
	case obj.Spec.Client.MeshTLS != nil:
		if len(obj.Spec.Client.MeshTLS.Identities) == 0 && len(obj.Spec.Client.MeshTLS.ServiceAccounts) == 0 {
			mode = core.AuthTLSUnauthenticated
		} else {
			mode = core.AuthTLSAuthenticated
			for _, id := range obj.Spec.Client.MeshTLS.Identities {
				identities = append(identities, core.ParseIdentity(id))
			}
		}
	default:
		errs = append(errs, field.Required(fld.Child("client"), "exactly one of unauthenticated or meshTLS must be set"))
	}

	if err := newParseError(obj.Namespace, obj.Name, "policy.meshpolicy.io/v1alpha1, Kind=ServerAuthorization", errs); err != nil {
		return ServerAuthorizationSpec{}, err
	}

	return ServerAuthorizationSpec{
		Namespace:      obj.Namespace,
		Name:           obj.Name,
		ServerName:     obj.Spec.Server.Name,
		ServerSelector: serverSelector,
		Authorization: core.ClientAuthorization{
			Networks:   networks,
			Mode:       mode,
			Identities: identities,
		},
	}, nil
}

func parseNetworks(in []policyv1alpha1.Network, fld *field.Path) ([]core.NetworkMatch, field.ErrorList) {
	var errs field.ErrorList
	out := make([]core.NetworkMatch, 0, len(in))
	for i, n := range in {
		m, es := parseNetwork(n, fld.Index(i))
		errs = append(errs, es...)
		out = append(out, m)
	}
	return out, errs
}
