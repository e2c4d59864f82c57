package resourcespecs

import (
	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/apimachinery/pkg/util/validation/field"

	policyv1alpha1 "github.com/meshpolicy/policy-controller/api/v1alpha1"
)

var supportedAuthorizationPolicyTargetKinds = sets.New("Server", "HTTPRoute", "GRPCRoute", "Namespace")

// AuthenticationTargetKind names which of the three authentication
// resources (or ServiceAccount shortcut) an AuthorizationPolicy references.
type AuthenticationTargetKind int

const (
	AuthTargetMeshTLS AuthenticationTargetKind = iota
	AuthTargetNetwork
	AuthTargetServiceAccount
)

type AuthenticationTarget struct {
	Kind      AuthenticationTargetKind
	Namespace string
	Name      string
}

// AuthorizationPolicySpec is the canonical projection of an
// AuthorizationPolicy resource.
type AuthorizationPolicySpec struct {
	Namespace      string
	Name           string
	TargetGroup    string
	TargetKind     string
	TargetName     string
	Authentications []AuthenticationTarget
}

// ParseAuthorizationPolicy validates and projects an AuthorizationPolicy.
func ParseAuthorizationPolicy(obj *policyv1alpha1.AuthorizationPolicy) (AuthorizationPolicySpec, error) {
	fld := field.NewPath("spec")
	var errs field.ErrorList

	if !supportedAuthorizationPolicyTargetKinds.Has(obj.Spec.TargetRef.Kind) {
		errs = append(errs, field.NotSupported(fld.Child("targetRef", "kind"), obj.Spec.TargetRef.Kind, sets.List(supportedAuthorizationPolicyTargetKinds)))
	}

	if len(obj.Spec.RequiredAuthenticationRefs) == 0 {
		errs = append(errs, field.Required(fld.Child("requiredAuthenticationRefs"), "at least one authentication ref is required"))
	}

	targets := make([]AuthenticationTarget, 0, len(obj.Spec.RequiredAuthenticationRefs))
	for i, ref := range obj.Spec.RequiredAuthenticationRefs {
		ns := obj.Namespace
		if ref.Namespace != nil {
			ns = *ref.Namespace
		}
		var kind AuthenticationTargetKind
		switch ref.Kind {
		case "MeshTLSAuthentication":
			kind = AuthTargetMeshTLS
		case "NetworkAuthentication":
			kind = AuthTargetNetwork
		case "ServiceAccount":
			kind = AuthTargetServiceAccount
		default:
			errs = append(errs, field.NotSupported(fld.Child("requiredAuthenticationRefs").Index(i).Child("kind"), ref.Kind, []string{"MeshTLSAuthentication", "NetworkAuthentication", "ServiceAccount"}))
			continue
		}
		targets = append(targets, AuthenticationTarget{Kind: kind, Namespace: ns, Name: ref.Name})
	}

	if err := newParseError(obj.Namespace, obj.Name, "policy.meshpolicy.io/v1alpha1, Kind=AuthorizationPolicy", errs); err != nil {
		return AuthorizationPolicySpec{}, err
	}

	return AuthorizationPolicySpec{
		Namespace:       obj.Namespace,
		Name:            obj.Name,
		TargetGroup:     obj.Spec.TargetRef.Group,
		TargetKind:      obj.Spec.TargetRef.Kind,
		TargetName:      obj.Spec.TargetRef.Name,
		Authentications: targets,
	}, nil
}
