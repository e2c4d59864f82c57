package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// RateLimit expresses a requests-per-second ceiling.
type RateLimit struct {
	RPS   int32 `json:"requestsPerSecond"`
	Burst int32 `json:"burst,omitempty"`
}

// RateLimitOverride applies a different limit to a specific set of clients.
type RateLimitOverride struct {
	RateLimit `json:",inline"`
	ClientRefs []NamespacedTargetRef `json:"clientRefs"`
}

type RateLimitPolicySpec struct {
	TargetRef LocalTargetRef       `json:"targetRef"`
	Total     *RateLimit           `json:"total,omitempty"`
	Identity  *RateLimit           `json:"identity,omitempty"`
	Overrides []RateLimitOverride  `json:"overrides,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
type RateLimitPolicy struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   RateLimitPolicySpec `json:"spec,omitempty"`
	Status ConditionedStatus   `json:"status,omitempty"`
}

// +kubebuilder:object:root=true
type RateLimitPolicyList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []RateLimitPolicy `json:"items"`
}
