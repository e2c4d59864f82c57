package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ProxyProtocol is the declared application protocol of a Server.
// +kubebuilder:validation:Enum=unknown;HTTP/1;HTTP/2;gRPC;opaque;TLS
type ProxyProtocol string

const (
	ProxyProtocolUnknown ProxyProtocol = "unknown"
	ProxyProtocolHTTP1   ProxyProtocol = "HTTP/1"
	ProxyProtocolHTTP2   ProxyProtocol = "HTTP/2"
	ProxyProtocolGRPC    ProxyProtocol = "gRPC"
	ProxyProtocolOpaque  ProxyProtocol = "opaque"
	ProxyProtocolTLS     ProxyProtocol = "TLS"
)

// ServerSpec describes a server interface exposed by a set of pods or
// external workloads.
type ServerSpec struct {
	Selector      `json:",inline"`
	Port          Port           `json:"port"`
	ProxyProtocol *ProxyProtocol `json:"proxyProtocol,omitempty"`
	AccessPolicy  *string        `json:"accessPolicy,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
type Server struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ServerSpec        `json:"spec,omitempty"`
	Status ConditionedStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true
type ServerList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Server `json:"items"`
}
