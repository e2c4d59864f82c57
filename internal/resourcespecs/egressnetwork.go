package resourcespecs

import (
	"time"

	"k8s.io/apimachinery/pkg/util/validation/field"

	policyv1alpha1 "github.com/meshpolicy/policy-controller/api/v1alpha1"
	"github.com/meshpolicy/policy-controller/internal/core"
)

// EgressNetworkSpec is the canonical projection of an EgressNetwork.
type EgressNetworkSpec struct {
	Namespace     string
	Name          string
	Networks      []core.NetworkMatch
	TrafficPolicy core.TrafficPolicy
	CreatedAt     time.Time
}

// ParseEgressNetwork validates and projects an EgressNetwork.
func ParseEgressNetwork(obj *policyv1alpha1.EgressNetwork) (EgressNetworkSpec, error) {
	fld := field.NewPath("spec")
	var errs field.ErrorList

	if len(obj.Spec.Networks) == 0 {
		errs = append(errs, field.Required(fld.Child("networks"), "at least one network is required"))
	}
	networks, netErrs := parseNetworks(obj.Spec.Networks, fld.Child("networks"))
	errs = append(errs, netErrs...)

	var policy core.TrafficPolicy
	switch obj.Spec.TrafficPolicy {
	case policyv1alpha1.TrafficPolicyAllow, "":
		policy = core.TrafficAllowAll
	case policyv1alpha1.TrafficPolicyDeny:
		policy = core.TrafficDenyAll
	default:
		errs = append(errs, field.NotSupported(fld.Child("trafficPolicy"), obj.Spec.TrafficPolicy, []string{"Allow", "Deny"}))
	}

	if err := newParseError(obj.Namespace, obj.Name, "policy.meshpolicy.io/v1alpha1, Kind=EgressNetwork", errs); err != nil {
		return EgressNetworkSpec{}, err
	}

	return EgressNetworkSpec{
		Namespace:     obj.Namespace,
		Name:          obj.Name,
		Networks:      networks,
		TrafficPolicy: policy,
		CreatedAt:     obj.CreationTimestamp.Time,
	}, nil
}
