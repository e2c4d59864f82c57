package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// UnknownPolicy governs destinations not otherwise identifiable as mesh
// members.
// +kubebuilder:validation:Enum=AllowUnknown;DenyUnknown
type UnknownPolicy string

const (
	UnknownPolicyAllow UnknownPolicy = "AllowUnknown"
	UnknownPolicyDeny  UnknownPolicy = "DenyUnknown"
)

type UnmeshedNetworkSpec struct {
	Networks []Network     `json:"networks"`
	Policy   UnknownPolicy `json:"policy"`
}

// +kubebuilder:object:root=true
type UnmeshedNetwork struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec UnmeshedNetworkSpec `json:"spec,omitempty"`
}

// +kubebuilder:object:root=true
type UnmeshedNetworkList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []UnmeshedNetwork `json:"items"`
}
