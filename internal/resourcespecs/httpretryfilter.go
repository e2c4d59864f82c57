package resourcespecs

import (
	"strconv"
	"time"

	"k8s.io/apimachinery/pkg/util/validation/field"

	policyv1alpha1 "github.com/meshpolicy/policy-controller/api/v1alpha1"
)

// HTTPRetryFilterSpec is the canonical projection of a named, reusable
// retry budget referenced from a route rule's extensionRef filter.
type HTTPRetryFilterSpec struct {
	Namespace           string
	Name                string
	RetryRatio          float64
	MinRetriesPerSecond int32
	TTL                 time.Duration
}

// ParseHTTPRetryFilter validates and projects an HTTPRetryFilter.
func ParseHTTPRetryFilter(obj *policyv1alpha1.HTTPRetryFilter) (HTTPRetryFilterSpec, error) {
	fld := field.NewPath("spec")
	var errs field.ErrorList

	ratio := 0.2
	if obj.Spec.RetryRatio != "" {
		var err error
		ratio, err = strconv.ParseFloat(obj.Spec.RetryRatio, 64)
		if err != nil {
			errs = append(errs, field.Invalid(fld.Child("retryRatio"), obj.Spec.RetryRatio, err.Error()))
		}
	}

	var ttl time.Duration
	if obj.Spec.TTL != "" {
		d, err := time.ParseDuration(obj.Spec.TTL)
		if err != nil {
			errs = append(errs, field.Invalid(fld.Child("ttl"), obj.Spec.TTL, err.Error()))
		} else {
			ttl = d
		}
	} else {
		ttl = 10 * time.Second
	}

	if err := newParseError(obj.Namespace, obj.Name, "policy.meshpolicy.io/v1alpha1, Kind=HTTPRetryFilter", errs); err != nil {
		return HTTPRetryFilterSpec{}, err
	}

	return HTTPRetryFilterSpec{
		Namespace:           obj.Namespace,
		Name:                obj.Name,
		RetryRatio:          ratio,
		MinRetriesPerSecond: obj.Spec.MinRetriesPerSecond,
		TTL:                 ttl,
	}, nil
}
