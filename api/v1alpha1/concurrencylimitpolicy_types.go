package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

type ConcurrencyLimitPolicySpec struct {
	TargetRef   LocalTargetRef `json:"targetRef"`
	MaxInFlight int32          `json:"maxInFlight"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
type ConcurrencyLimitPolicy struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ConcurrencyLimitPolicySpec `json:"spec,omitempty"`
	Status ConditionedStatus          `json:"status,omitempty"`
}

// +kubebuilder:object:root=true
type ConcurrencyLimitPolicyList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ConcurrencyLimitPolicy `json:"items"`
}
