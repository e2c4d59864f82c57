package resourcespecs

import (
	"net/netip"

	"k8s.io/apimachinery/pkg/util/validation/field"

	policyv1alpha1 "github.com/meshpolicy/policy-controller/api/v1alpha1"
	"github.com/meshpolicy/policy-controller/internal/core"
)

// parseNetwork parses one CIDR-with-exceptions entry, enforcing (P6): every
// except entry must be strictly contained in the parent CIDR.
func parseNetwork(n policyv1alpha1.Network, fld *field.Path) (core.NetworkMatch, field.ErrorList) {
	var errs field.ErrorList

	net, err := netip.ParsePrefix(n.CIDR)
	if err != nil {
		errs = append(errs, field.Invalid(fld.Child("cidr"), n.CIDR, err.Error()))
		return core.NetworkMatch{}, errs
	}

	except := make([]netip.Prefix, 0, len(n.Except))
	for i, e := range n.Except {
		ep, err := netip.ParsePrefix(e)
		if err != nil {
			errs = append(errs, field.Invalid(fld.Child("except").Index(i), e, err.Error()))
			continue
		}
		if !core.StrictlyContains(net, ep) {
			errs = append(errs, field.Invalid(fld.Child("except").Index(i), e, "must be strictly contained in the parent cidr"))
			continue
		}
		except = append(except, ep)
	}

	return core.NetworkMatch{Net: net, Except: except}, errs
}
