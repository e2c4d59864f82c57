package resourcespecs

import (
	"k8s.io/apimachinery/pkg/util/validation/field"

	policyv1alpha1 "github.com/meshpolicy/policy-controller/api/v1alpha1"
	"github.com/meshpolicy/policy-controller/internal/core"
)

// ConcurrencyLimitPolicySpec is the canonical projection of a
// ConcurrencyLimitPolicy.
type ConcurrencyLimitPolicySpec struct {
	Namespace  string
	Name       string
	TargetKind string
	TargetName string
	Limit      core.ConcurrencyLimit
}

// ParseConcurrencyLimitPolicy validates and projects a ConcurrencyLimitPolicy.
func ParseConcurrencyLimitPolicy(obj *policyv1alpha1.ConcurrencyLimitPolicy) (ConcurrencyLimitPolicySpec, error) {
	fld := field.NewPath("spec")
	var errs field.ErrorList

	if obj.Spec.MaxInFlight <= 0 {
		errs = append(errs, field.Invalid(fld.Child("maxInFlight"), obj.Spec.MaxInFlight, "must be greater than zero"))
	}

	if err := newParseError(obj.Namespace, obj.Name, "policy.meshpolicy.io/v1alpha1, Kind=ConcurrencyLimitPolicy", errs); err != nil {
		return ConcurrencyLimitPolicySpec{}, err
	}

	return ConcurrencyLimitPolicySpec{
		Namespace:  obj.Namespace,
		Name:       obj.Name,
		TargetKind: obj.Spec.TargetRef.Kind,
		TargetName: obj.Spec.TargetRef.Name,
		Limit: core.ConcurrencyLimit{
			Namespace:   obj.Namespace,
			Name:        obj.Name,
			MaxInFlight: obj.Spec.MaxInFlight,
		},
	}, nil
}
