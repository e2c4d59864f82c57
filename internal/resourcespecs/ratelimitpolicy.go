package resourcespecs

import (
	"k8s.io/apimachinery/pkg/util/validation/field"

	policyv1alpha1 "github.com/meshpolicy/policy-controller/api/v1alpha1"
	"github.com/meshpolicy/policy-controller/internal/core"
)

// RateLimitPolicySpec is the canonical projection of a RateLimitPolicy.
type RateLimitPolicySpec struct {
	Namespace   string
	Name        string
	TargetKind  string
	TargetName  string
	RateLimit   core.RateLimit
}

// ParseRateLimitPolicy validates and projects a RateLimitPolicy, rejecting
// any identity or override rps that exceeds the total rps.
func ParseRateLimitPolicy(obj *policyv1alpha1.RateLimitPolicy) (RateLimitPolicySpec, error) {
	fld := field.NewPath("spec")
	var errs field.ErrorList

	var total, identity core.Limit
	if obj.Spec.Total != nil {
		total = core.Limit{RPS: float64(obj.Spec.Total.RPS), Burst: obj.Spec.Total.Burst}
	}
	if obj.Spec.Identity != nil {
		identity = core.Limit{RPS: float64(obj.Spec.Identity.RPS), Burst: obj.Spec.Identity.Burst}
		if obj.Spec.Total != nil && identity.RPS > total.RPS {
			errs = append(errs, field.Invalid(fld.Child("identity", "requestsPerSecond"), obj.Spec.Identity.RPS, "must not exceed total.requestsPerSecond"))
		}
	}

	overrides := make([]core.RateLimitOverride, 0, len(obj.Spec.Overrides))
	for i, ov := range obj.Spec.Overrides {
		lim := core.Limit{RPS: float64(ov.RPS), Burst: ov.Burst}
		if obj.Spec.Total != nil && lim.RPS > total.RPS {
			errs = append(errs, field.Invalid(fld.Child("overrides").Index(i).Child("requestsPerSecond"), ov.RPS, "must not exceed total.requestsPerSecond"))
		}
		for _, ref := range ov.ClientRefs {
			overrides = append(overrides, core.RateLimitOverride{ClientSelector: ref.Name, Limit: lim})
		}
	}

	if err := newParseError(obj.Namespace, obj.Name, "policy.meshpolicy.io/v1alpha1, Kind=RateLimitPolicy", errs); err != nil {
		return RateLimitPolicySpec{}, err
	}

	var identityPtr *core.Limit
	if obj.Spec.Identity != nil {
		identityPtr = &identity
	}

	return RateLimitPolicySpec{
		Namespace:  obj.Namespace,
		Name:       obj.Name,
		TargetKind: obj.Spec.TargetRef.Kind,
		TargetName: obj.Spec.TargetRef.Name,
		RateLimit: core.RateLimit{
			Namespace: obj.Namespace,
			Name:      obj.Name,
			Total:     total,
			Identity:  identityPtr,
			Overrides: overrides,
		},
	}, nil
}
