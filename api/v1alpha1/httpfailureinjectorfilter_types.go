package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// HTTPFailureInjectorFilterSpec describes a named, reusable fault to inject
// for a fraction of requests, referenced from an HTTPRoute/GRPCRoute rule's
// filters via an extensionRef.
type HTTPFailureInjectorFilterSpec struct {
	Status      int32  `json:"status,omitempty"`
	Message     string `json:"message,omitempty"`
	Numerator   int32  `json:"numerator,omitempty"`
	Denominator int32  `json:"denominator,omitempty"`
}

// +kubebuilder:object:root=true
type HTTPFailureInjectorFilter struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec HTTPFailureInjectorFilterSpec `json:"spec,omitempty"`
}

// +kubebuilder:object:root=true
type HTTPFailureInjectorFilterList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []HTTPFailureInjectorFilter `json:"items"`
}
