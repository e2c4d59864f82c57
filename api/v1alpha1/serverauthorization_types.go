package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ServerRef names the Server(s) a ServerAuthorization applies to, either by
// exact name or by selector over Server labels.
type ServerRef struct {
	Name     string                `json:"name,omitempty"`
	Selector *metav1.LabelSelector `json:"selector,omitempty"`
}

// MeshTLSClient describes the meshTLS identities a client-side TLS
// authorization accepts.
type MeshTLSClient struct {
	Identities      []string `json:"identities,omitempty"`
	ServiceAccounts []NamespacedTargetRef `json:"serviceAccounts,omitempty"`
}

// ClientAuthorizationSpec is the `client` block of a ServerAuthorization.
type ClientAuthorizationSpec struct {
	Networks        []Network      `json:"networks,omitempty"`
	Unauthenticated bool           `json:"unauthenticated,omitempty"`
	MeshTLS         *MeshTLSClient `json:"meshTLS,omitempty"`
}

type ServerAuthorizationSpec struct {
	Server ServerRef               `json:"server"`
	Client ClientAuthorizationSpec `json:"client"`
}

// +kubebuilder:object:root=true
type ServerAuthorization struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec ServerAuthorizationSpec `json:"spec,omitempty"`
}

// +kubebuilder:object:root=true
type ServerAuthorizationList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ServerAuthorization `json:"items"`
}
