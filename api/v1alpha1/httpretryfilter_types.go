package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// HTTPRetryFilterSpec describes a named, reusable retry budget referenced
// from an HTTPRoute rule's filters via an extensionRef.
type HTTPRetryFilterSpec struct {
	RetryRatio          string `json:"retryRatio,omitempty"`
	MinRetriesPerSecond int32  `json:"minRetriesPerSecond,omitempty"`
	TTL                 string `json:"ttl,omitempty"`
}

// +kubebuilder:object:root=true
type HTTPRetryFilter struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec HTTPRetryFilterSpec `json:"spec,omitempty"`
}

// +kubebuilder:object:root=true
type HTTPRetryFilterList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []HTTPRetryFilter `json:"items"`
}
