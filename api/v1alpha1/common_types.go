package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// LocalTargetRef references an object in the same namespace as the
// referencing resource.
type LocalTargetRef struct {
	Group string `json:"group,omitempty"`
	Kind  string `json:"kind"`
	Name  string `json:"name"`
}

// NamespacedTargetRef references an object, optionally in another
// namespace.
type NamespacedTargetRef struct {
	Group     string  `json:"group,omitempty"`
	Kind      string  `json:"kind"`
	Namespace *string `json:"namespace,omitempty"`
	Name      string  `json:"name"`
}

// Port references a container port by name or by number; exactly one of the
// two fields is meaningful, selected by NamedPort being non-empty.
type Port struct {
	Number   int32  `json:"number,omitempty"`
	NamedPort string `json:"name,omitempty"`
}

// Selector selects either pods or external workloads; exactly one of Pod or
// ExternalWorkload is set.
type Selector struct {
	Pod              *metav1.LabelSelector `json:"podSelector,omitempty"`
	ExternalWorkload *metav1.LabelSelector `json:"externalWorkloadSelector,omitempty"`
}

// Network is one CIDR-with-exceptions entry, shared by EgressNetwork,
// UnmeshedNetwork and NetworkAuthentication.
type Network struct {
	CIDR   string   `json:"cidr"`
	Except []string `json:"except,omitempty"`
}

// ConditionedStatus is embedded by every status subresource this module
// writes conditions onto.
type ConditionedStatus struct {
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}
