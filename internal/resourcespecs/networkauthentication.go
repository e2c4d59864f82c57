package resourcespecs

import (
	"k8s.io/apimachinery/pkg/util/validation/field"

	policyv1alpha1 "github.com/meshpolicy/policy-controller/api/v1alpha1"
	"github.com/meshpolicy/policy-controller/internal/core"
)

// NetworkAuthenticationSpec is the non-empty list of NetworkMatch a
// NetworkAuthentication resource resolves to.
type NetworkAuthenticationSpec struct {
	Namespace string
	Name      string
	Networks  []core.NetworkMatch
}

// ParseNetworkAuthentication validates and projects a NetworkAuthentication.
func ParseNetworkAuthentication(obj *policyv1alpha1.NetworkAuthentication) (NetworkAuthenticationSpec, error) {
	fld := field.NewPath("spec")
	var errs field.ErrorList

	if len(obj.Spec.Networks) == 0 {
		errs = append(errs, field.Required(fld.Child("networks"), "at least one network is required"))
	}

	networks, netErrs := parseNetworks(obj.Spec.Networks, fld.Child("networks"))
	errs = append(errs, netErrs...)

	if err := newParseError(obj.Namespace, obj.Name, "policy.meshpolicy.io/v1alpha1, Kind=NetworkAuthentication", errs); err != nil {
		return NetworkAuthenticationSpec{}, err
	}

	return NetworkAuthenticationSpec{
		Namespace: obj.Namespace,
		Name:      obj.Name,
		Networks:  networks,
	}, nil
}
