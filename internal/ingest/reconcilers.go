package ingest

import (
	"sigs.k8s.io/controller-runtime/pkg/client"

	policyv1alpha1 "github.com/meshpolicy/policy-controller/api/v1alpha1"
	"github.com/meshpolicy/policy-controller/internal/clusterinfo"
	"github.com/meshpolicy/policy-controller/internal/index"
	"github.com/meshpolicy/policy-controller/internal/resourcespecs"
)

// NewServerReconciler, and the rest of the constructors below, each build
// a SimpleReconciler bound to one kind's object type, Parse function and
// Index.Apply method. Registered from cmd/policy-controller/main.go.

func NewServerReconciler(c client.Client, idx *index.Index) *SimpleReconciler[resourcespecs.ServerSpec] {
	return &SimpleReconciler[resourcespecs.ServerSpec]{
		Client:    c,
		Name:      "server",
		NewObject: func() client.Object { return &policyv1alpha1.Server{} },
		Parse: func(obj client.Object) (resourcespecs.ServerSpec, error) {
			return resourcespecs.ParseServer(obj.(*policyv1alpha1.Server))
		},
		Key:   func(ns, name string) resourcespecs.ServerSpec { return resourcespecs.ServerSpec{Namespace: ns, Name: name} },
		Apply: idx.ApplyServer,
	}
}

func NewServerAuthorizationReconciler(c client.Client, idx *index.Index) *SimpleReconciler[resourcespecs.ServerAuthorizationSpec] {
	return &SimpleReconciler[resourcespecs.ServerAuthorizationSpec]{
		Client:    c,
		Name:      "serverauthorization",
		NewObject: func() client.Object { return &policyv1alpha1.ServerAuthorization{} },
		Parse: func(obj client.Object) (resourcespecs.ServerAuthorizationSpec, error) {
			return resourcespecs.ParseServerAuthorization(obj.(*policyv1alpha1.ServerAuthorization))
		},
		Key: func(ns, name string) resourcespecs.ServerAuthorizationSpec {
			return resourcespecs.ServerAuthorizationSpec{Namespace: ns, Name: name}
		},
		Apply: idx.ApplyServerAuthorization,
	}
}

func NewAuthorizationPolicyReconciler(c client.Client, idx *index.Index) *SimpleReconciler[resourcespecs.AuthorizationPolicySpec] {
	return &SimpleReconciler[resourcespecs.AuthorizationPolicySpec]{
		Client:    c,
		Name:      "authorizationpolicy",
		NewObject: func() client.Object { return &policyv1alpha1.AuthorizationPolicy{} },
		Parse: func(obj client.Object) (resourcespecs.AuthorizationPolicySpec, error) {
			return resourcespecs.ParseAuthorizationPolicy(obj.(*policyv1alpha1.AuthorizationPolicy))
		},
		Key: func(ns, name string) resourcespecs.AuthorizationPolicySpec {
			return resourcespecs.AuthorizationPolicySpec{Namespace: ns, Name: name}
		},
		Apply: idx.ApplyAuthorizationPolicy,
	}
}

func NewMeshTLSAuthenticationReconciler(c client.Client, idx *index.Index, ci clusterinfo.ClusterInfo) *SimpleReconciler[resourcespecs.MeshTLSAuthenticationSpec] {
	return &SimpleReconciler[resourcespecs.MeshTLSAuthenticationSpec]{
		Client:    c,
		Name:      "meshtlsauthentication",
		NewObject: func() client.Object { return &policyv1alpha1.MeshTLSAuthentication{} },
		Parse: func(obj client.Object) (resourcespecs.MeshTLSAuthenticationSpec, error) {
			return resourcespecs.ParseMeshTLSAuthentication(obj.(*policyv1alpha1.MeshTLSAuthentication), ci)
		},
		Key: func(ns, name string) resourcespecs.MeshTLSAuthenticationSpec {
			return resourcespecs.MeshTLSAuthenticationSpec{Namespace: ns, Name: name}
		},
		Apply: idx.ApplyMeshTLSAuthentication,
	}
}

func NewNetworkAuthenticationReconciler(c client.Client, idx *index.Index) *SimpleReconciler[resourcespecs.NetworkAuthenticationSpec] {
	return &SimpleReconciler[resourcespecs.NetworkAuthenticationSpec]{
		Client:    c,
		Name:      "networkauthentication",
		NewObject: func() client.Object { return &policyv1alpha1.NetworkAuthentication{} },
		Parse: func(obj client.Object) (resourcespecs.NetworkAuthenticationSpec, error) {
			return resourcespecs.ParseNetworkAuthentication(obj.(*policyv1alpha1.NetworkAuthentication))
		},
		Key: func(ns, name string) resourcespecs.NetworkAuthenticationSpec {
			return resourcespecs.NetworkAuthenticationSpec{Namespace: ns, Name: name}
		},
		Apply: idx.ApplyNetworkAuthentication,
	}
}

func NewEgressNetworkReconciler(c client.Client, idx *index.Index) *SimpleReconciler[resourcespecs.EgressNetworkSpec] {
	return &SimpleReconciler[resourcespecs.EgressNetworkSpec]{
		Client:    c,
		Name:      "egressnetwork",
		NewObject: func() client.Object { return &policyv1alpha1.EgressNetwork{} },
		Parse: func(obj client.Object) (resourcespecs.EgressNetworkSpec, error) {
			return resourcespecs.ParseEgressNetwork(obj.(*policyv1alpha1.EgressNetwork))
		},
		Key: func(ns, name string) resourcespecs.EgressNetworkSpec {
			return resourcespecs.EgressNetworkSpec{Namespace: ns, Name: name}
		},
		Apply: idx.ApplyEgressNetwork,
	}
}

func NewUnmeshedNetworkReconciler(c client.Client, idx *index.Index) *SimpleReconciler[resourcespecs.UnmeshedNetworkSpec] {
	return &SimpleReconciler[resourcespecs.UnmeshedNetworkSpec]{
		Client:    c,
		Name:      "unmeshednetwork",
		NewObject: func() client.Object { return &policyv1alpha1.UnmeshedNetwork{} },
		Parse: func(obj client.Object) (resourcespecs.UnmeshedNetworkSpec, error) {
			return resourcespecs.ParseUnmeshedNetwork(obj.(*policyv1alpha1.UnmeshedNetwork))
		},
		Key: func(ns, name string) resourcespecs.UnmeshedNetworkSpec {
			return resourcespecs.UnmeshedNetworkSpec{Namespace: ns, Name: name}
		},
		Apply: idx.ApplyUnmeshedNetwork,
	}
}
