package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// MeshTLSAuthenticationSpec lists identities by exact/suffix string, or by
// ServiceAccount reference. Exactly one of Identities or IdentityRefs must
// be set (XOR, enforced by resourcespecs.ParseMeshTLSAuthentication).
type MeshTLSAuthenticationSpec struct {
	Identities   []string              `json:"identities,omitempty"`
	IdentityRefs []NamespacedTargetRef `json:"identityRefs,omitempty"`
}

// +kubebuilder:object:root=true
type MeshTLSAuthentication struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec MeshTLSAuthenticationSpec `json:"spec,omitempty"`
}

// +kubebuilder:object:root=true
type MeshTLSAuthenticationList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []MeshTLSAuthentication `json:"items"`
}
