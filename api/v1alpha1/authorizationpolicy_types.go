package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// AuthorizationPolicySpec targets a Server, HTTPRoute, GRPCRoute or
// Namespace and requires that clients satisfy every listed authentication.
type AuthorizationPolicySpec struct {
	TargetRef                  LocalTargetRef        `json:"targetRef"`
	RequiredAuthenticationRefs []NamespacedTargetRef `json:"requiredAuthenticationRefs"`
}

// +kubebuilder:object:root=true
type AuthorizationPolicy struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec AuthorizationPolicySpec `json:"spec,omitempty"`
}

// +kubebuilder:object:root=true
type AuthorizationPolicyList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []AuthorizationPolicy `json:"items"`
}
