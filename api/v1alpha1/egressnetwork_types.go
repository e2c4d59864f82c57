package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// TrafficPolicy governs destinations not covered by any route rule.
// +kubebuilder:validation:Enum=Allow;Deny
type TrafficPolicy string

const (
	TrafficPolicyAllow TrafficPolicy = "Allow"
	TrafficPolicyDeny  TrafficPolicy = "Deny"
)

type EgressNetworkSpec struct {
	Networks      []Network     `json:"networks"`
	TrafficPolicy TrafficPolicy `json:"trafficPolicy"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
type EgressNetwork struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   EgressNetworkSpec `json:"spec,omitempty"`
	Status ConditionedStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true
type EgressNetworkList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []EgressNetwork `json:"items"`
}
