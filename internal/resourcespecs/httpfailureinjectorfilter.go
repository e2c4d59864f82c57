package resourcespecs

import (
	"k8s.io/apimachinery/pkg/util/validation/field"

	policyv1alpha1 "github.com/meshpolicy/policy-controller/api/v1alpha1"
	"github.com/meshpolicy/policy-controller/internal/core"
)

// HTTPFailureInjectorFilterSpec is the canonical projection of a named,
// reusable fault injected for a ratio of requests, referenced from a route
// rule's extensionRef filter.
type HTTPFailureInjectorFilterSpec struct {
	Namespace string
	Name      string
	Status    int32
	Message   string
	Ratio     core.Ratio
}

// ParseHTTPFailureInjectorFilter validates and projects an
// HTTPFailureInjectorFilter.
func ParseHTTPFailureInjectorFilter(obj *policyv1alpha1.HTTPFailureInjectorFilter) (HTTPFailureInjectorFilterSpec, error) {
	fld := field.NewPath("spec")
	var errs field.ErrorList

	status := obj.Spec.Status
	if status == 0 {
		status = 503
	} else if status < 100 || status > 599 {
		errs = append(errs, field.Invalid(fld.Child("status"), obj.Spec.Status, "must be a valid HTTP status code"))
	}

	denominator := obj.Spec.Denominator
	if denominator == 0 {
		denominator = 100
	}
	numerator := obj.Spec.Numerator
	if numerator < 0 || numerator > denominator {
		errs = append(errs, field.Invalid(fld.Child("numerator"), obj.Spec.Numerator, "must be between 0 and denominator"))
	}

	if err := newParseError(obj.Namespace, obj.Name, "policy.meshpolicy.io/v1alpha1, Kind=HTTPFailureInjectorFilter", errs); err != nil {
		return HTTPFailureInjectorFilterSpec{}, err
	}

	return HTTPFailureInjectorFilterSpec{
		Namespace: obj.Namespace,
		Name:      obj.Name,
		Status:    status,
		Message:   obj.Spec.Message,
		Ratio:     core.Ratio{Numerator: numerator, Denominator: denominator},
	}, nil
}
