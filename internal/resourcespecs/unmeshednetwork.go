package resourcespecs

import (
	"k8s.io/apimachinery/pkg/util/validation/field"

	policyv1alpha1 "github.com/meshpolicy/policy-controller/api/v1alpha1"
	"github.com/meshpolicy/policy-controller/internal/core"
)

// UnmeshedNetworkSpec is the canonical projection of an UnmeshedNetwork.
type UnmeshedNetworkSpec struct {
	Namespace string
	Name      string
	Networks  []core.NetworkMatch
	Policy    core.UnmeshedPolicy
}

// ParseUnmeshedNetwork validates and projects an UnmeshedNetwork.
func ParseUnmeshedNetwork(obj *policyv1alpha1.UnmeshedNetwork) (UnmeshedNetworkSpec, error) {
	fld := field.NewPath("spec")
	var errs field.ErrorList

	if len(obj.Spec.Networks) == 0 {
		errs = append(errs, field.Required(fld.Child("networks"), "at least one network is required"))
	}
	networks, netErrs := parseNetworks(obj.Spec.Networks, fld.Child("networks"))
	errs = append(errs, netErrs...)

	var policy core.UnmeshedPolicy
	switch obj.Spec.Policy {
	case policyv1alpha1.UnknownPolicyAllow, "":
		policy = core.UnmeshedAllowUnknown
	case policyv1alpha1.UnknownPolicyDeny:
		policy = core.UnmeshedDenyUnknown
	default:
		errs = append(errs, field.NotSupported(fld.Child("policy"), obj.Spec.Policy, []string{"AllowUnknown", "DenyUnknown"}))
	}

	if err := newParseError(obj.Namespace, obj.Name, "policy.meshpolicy.io/v1alpha1, Kind=UnmeshedNetwork", errs); err != nil {
		return UnmeshedNetworkSpec{}, err
	}

	return UnmeshedNetworkSpec{
		Namespace: obj.Namespace,
		Name:      obj.Name,
		Networks:  networks,
		Policy:    policy,
	}, nil
}
