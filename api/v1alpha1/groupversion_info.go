// Package v1alpha1 contains the custom resource definitions consumed by the
// policy index: Server, ServerAuthorization, AuthorizationPolicy,
// MeshTLSAuthentication, NetworkAuthentication, EgressNetwork,
// UnmeshedNetwork, RateLimitPolicy, ConcurrencyLimitPolicy,
// HTTPRetryFilter and HTTPFailureInjectorFilter. HTTPRoute/GRPCRoute/
// TLSRoute/TCPRoute are consumed directly from sigs.k8s.io/gateway-api
// rather than redefined here.
//
// +kubebuilder:object:generate=true
// +groupName=policy.meshpolicy.io
package v1alpha1

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/scheme"
)

var (
	// GroupVersion is group version used to register these objects.
	GroupVersion = schema.GroupVersion{Group: "policy.meshpolicy.io", Version: "v1alpha1"}

	// SchemeBuilder is used to add go types to the GroupVersionKind scheme.
	SchemeBuilder = &scheme.Builder{GroupVersion: GroupVersion}

	// AddToScheme adds the types in this group-version to the given scheme.
	AddToScheme = SchemeBuilder.AddToScheme
)
