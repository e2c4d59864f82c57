package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// WorkloadPort is a named or plain container port declared by a VM-backed
// workload.
type WorkloadPort struct {
	Port     int32  `json:"port"`
	Name     string `json:"name,omitempty"`
	Protocol string `json:"protocol,omitempty"`
}

// ExternalWorkloadSpec describes an interface exposed by a workload that
// runs outside the cluster (a VM, typically) but is meshed like a pod.
type ExternalWorkloadSpec struct {
	Address  string         `json:"address"`
	Ports    []WorkloadPort `json:"ports,omitempty"`
	Identity string         `json:"identity"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
type ExternalWorkload struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ExternalWorkloadSpec `json:"spec,omitempty"`
	Status ConditionedStatus    `json:"status,omitempty"`
}

// +kubebuilder:object:root=true
type ExternalWorkloadList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ExternalWorkload `json:"items"`
}
