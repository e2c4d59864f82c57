package ingest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	policyv1alpha1 "github.com/meshpolicy/policy-controller/api/v1alpha1"
	"github.com/meshpolicy/policy-controller/internal/clusterinfo"
	"github.com/meshpolicy/policy-controller/internal/index"
)

func newTestScheme(t *testing.T) *runtime.Scheme {
	t.Helper()
	s := runtime.NewScheme()
	require.NoError(t, scheme.AddToScheme(s))
	require.NoError(t, policyv1alpha1.AddToScheme(s))
	return s
}

func TestSimpleReconciler_AppliesOnFound(t *testing.T) {
	t.Parallel()

	srv := &policyv1alpha1.Server{
		ObjectMeta: metav1.ObjectMeta{Namespace: "ns", Name: "web"},
		Spec: policyv1alpha1.ServerSpec{
			Selector: policyv1alpha1.Selector{Pod: &metav1.LabelSelector{}},
			Port:     policyv1alpha1.Port{Number: 8080},
		},
	}
	cl := fake.NewClientBuilder().WithScheme(newTestScheme(t)).WithObjects(srv).Build()

	idx := index.New(clusterinfo.ClusterInfo{})
	r := NewServerReconciler(cl, idx)

	_, err := r.Reconcile(context.Background(), ctrl.Request{NamespacedName: types.NamespacedName{Namespace: "ns", Name: "web"}})
	require.NoError(t, err)
}

func TestSimpleReconciler_AppliesDeletedOnNotFound(t *testing.T) {
	t.Parallel()

	cl := fake.NewClientBuilder().WithScheme(newTestScheme(t)).Build()
	idx := index.New(clusterinfo.ClusterInfo{})
	r := NewServerReconciler(cl, idx)

	_, err := r.Reconcile(context.Background(), ctrl.Request{NamespacedName: types.NamespacedName{Namespace: "ns", Name: "missing"}})
	require.NoError(t, err)
}

func TestSimpleReconciler_RejectsInvalidSpecWithoutError(t *testing.T) {
	t.Parallel()

	srv := &policyv1alpha1.Server{
		ObjectMeta: metav1.ObjectMeta{Namespace: "ns", Name: "bad"},
		Spec: policyv1alpha1.ServerSpec{
			// No selector and no valid port: ParseServer rejects this.
			Port: policyv1alpha1.Port{Number: 0},
		},
	}
	cl := fake.NewClientBuilder().WithScheme(newTestScheme(t)).WithObjects(srv).Build()
	idx := index.New(clusterinfo.ClusterInfo{})
	r := NewServerReconciler(cl, idx)

	_, err := r.Reconcile(context.Background(), ctrl.Request{NamespacedName: types.NamespacedName{Namespace: "ns", Name: "bad"}})
	require.NoError(t, err, "parse errors are logged and swallowed, not returned")
}
