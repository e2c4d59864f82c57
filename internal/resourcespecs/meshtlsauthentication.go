package resourcespecs

import (
	"k8s.io/apimachinery/pkg/util/validation/field"

	policyv1alpha1 "github.com/meshpolicy/policy-controller/api/v1alpha1"
	"github.com/meshpolicy/policy-controller/internal/clusterinfo"
	"github.com/meshpolicy/policy-controller/internal/core"
)

// MeshTLSAuthenticationSpec is the flat list of IdentityMatch a
// MeshTLSAuthentication resource resolves to, after resolving any
// ServiceAccount identityRefs against the cluster's trust domain.
type MeshTLSAuthenticationSpec struct {
	Namespace  string
	Name       string
	Identities []core.IdentityMatch
}

// ParseMeshTLSAuthentication validates and projects a MeshTLSAuthentication,
// enforcing the XOR between string identities and identityRefs.
func ParseMeshTLSAuthentication(obj *policyv1alpha1.MeshTLSAuthentication, ci clusterinfo.ClusterInfo) (MeshTLSAuthenticationSpec, error) {
	fld := field.NewPath("spec")
	var errs field.ErrorList

	hasIdentities := len(obj.Spec.Identities) > 0
	hasRefs := len(obj.Spec.IdentityRefs) > 0

	switch {
	case hasIdentities && hasRefs:
		errs = append(errs, field.Forbidden(fld, "identities and identityRefs are mutually exclusive"))
	case !hasIdentities && !hasRefs:
		errs = append(errs, field.Required(fld, "exactly one of identities or identityRefs must be set"))
	}

	var identities []core.IdentityMatch
	for _, s := range obj.Spec.Identities {
		identities = append(identities, core.ParseIdentity(s))
	}
	for i, ref := range obj.Spec.IdentityRefs {
		if ref.Kind != "ServiceAccount" {
			errs = append(errs, field.NotSupported(fld.Child("identityRefs").Index(i).Child("kind"), ref.Kind, []string{"ServiceAccount"}))
			continue
		}
		ns := obj.Namespace
		if ref.Namespace != nil {
			ns = *ref.Namespace
		}
		identities = append(identities, core.ExactIdentity(ci.ServiceAccountIdentity(ns, ref.Name)))
	}

	if err := newParseError(obj.Namespace, obj.Name, "policy.meshpolicy.io/v1alpha1, Kind=MeshTLSAuthentication", errs); err != nil {
		return MeshTLSAuthenticationSpec{}, err
	}

	return MeshTLSAuthenticationSpec{
		Namespace:  obj.Namespace,
		Name:       obj.Name,
		Identities: identities,
	}, nil
}
