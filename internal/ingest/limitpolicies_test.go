package ingest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	apimeta "k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	policyv1alpha1 "github.com/meshpolicy/policy-controller/api/v1alpha1"
	"github.com/meshpolicy/policy-controller/internal/clusterinfo"
	"github.com/meshpolicy/policy-controller/internal/index"
	"github.com/meshpolicy/policy-controller/internal/statusderiver"
)

func TestConcurrencyLimitPolicyReconciler_AcceptsResolvableTarget(t *testing.T) {
	t.Parallel()

	srv := &policyv1alpha1.Server{
		ObjectMeta: metav1.ObjectMeta{Namespace: "ns", Name: "web"},
		Spec: policyv1alpha1.ServerSpec{
			Selector: policyv1alpha1.Selector{Pod: &metav1.LabelSelector{}},
			Port:     policyv1alpha1.Port{Number: 8080},
		},
	}
	policy := &policyv1alpha1.ConcurrencyLimitPolicy{
		ObjectMeta: metav1.ObjectMeta{Namespace: "ns", Name: "cl"},
		Spec: policyv1alpha1.ConcurrencyLimitPolicySpec{
			TargetRef:   policyv1alpha1.LocalTargetRef{Kind: "Server", Name: "web"},
			MaxInFlight: 100,
		},
	}
	cl := fake.NewClientBuilder().
		WithScheme(newTestScheme(t)).
		WithObjects(srv, policy).
		WithStatusSubresource(policy).
		Build()

	idx := index.New(clusterinfo.ClusterInfo{})
	r := &ConcurrencyLimitPolicyReconciler{Client: cl, Index: idx}

	_, err := r.Reconcile(context.Background(), ctrl.Request{NamespacedName: types.NamespacedName{Namespace: "ns", Name: "cl"}})
	require.NoError(t, err)

	var got policyv1alpha1.ConcurrencyLimitPolicy
	require.NoError(t, cl.Get(context.Background(), types.NamespacedName{Namespace: "ns", Name: "cl"}, &got))
	cond := apimeta.FindStatusCondition(got.Status.Conditions, statusderiver.ConditionTypeAccepted)
	require.NotNil(t, cond)
	require.Equal(t, metav1.ConditionTrue, cond.Status)
	require.Equal(t, statusderiver.ReasonAccepted, cond.Reason)
}

func TestConcurrencyLimitPolicyReconciler_RejectsMissingTarget(t *testing.T) {
	t.Parallel()

	policy := &policyv1alpha1.ConcurrencyLimitPolicy{
		ObjectMeta: metav1.ObjectMeta{Namespace: "ns", Name: "cl"},
		Spec: policyv1alpha1.ConcurrencyLimitPolicySpec{
			TargetRef:   policyv1alpha1.LocalTargetRef{Kind: "Server", Name: "ghost"},
			MaxInFlight: 100,
		},
	}
	cl := fake.NewClientBuilder().
		WithScheme(newTestScheme(t)).
		WithObjects(policy).
		WithStatusSubresource(policy).
		Build()

	idx := index.New(clusterinfo.ClusterInfo{})
	r := &ConcurrencyLimitPolicyReconciler{Client: cl, Index: idx}

	_, err := r.Reconcile(context.Background(), ctrl.Request{NamespacedName: types.NamespacedName{Namespace: "ns", Name: "cl"}})
	require.NoError(t, err)

	var got policyv1alpha1.ConcurrencyLimitPolicy
	require.NoError(t, cl.Get(context.Background(), types.NamespacedName{Namespace: "ns", Name: "cl"}, &got))
	cond := apimeta.FindStatusCondition(got.Status.Conditions, statusderiver.ConditionTypeAccepted)
	require.NotNil(t, cond)
	require.Equal(t, metav1.ConditionFalse, cond.Status)
	require.Equal(t, statusderiver.ReasonNoMatchingParent, cond.Reason)
}

func TestConcurrencyLimitPolicyReconciler_RejectsUnsupportedTargetKind(t *testing.T) {
	t.Parallel()

	policy := &policyv1alpha1.ConcurrencyLimitPolicy{
		ObjectMeta: metav1.ObjectMeta{Namespace: "ns", Name: "cl"},
		Spec: policyv1alpha1.ConcurrencyLimitPolicySpec{
			TargetRef:   policyv1alpha1.LocalTargetRef{Kind: "Service", Name: "web"},
			MaxInFlight: 100,
		},
	}
	cl := fake.NewClientBuilder().
		WithScheme(newTestScheme(t)).
		WithObjects(policy).
		WithStatusSubresource(policy).
		Build()

	idx := index.New(clusterinfo.ClusterInfo{})
	r := &ConcurrencyLimitPolicyReconciler{Client: cl, Index: idx}

	_, err := r.Reconcile(context.Background(), ctrl.Request{NamespacedName: types.NamespacedName{Namespace: "ns", Name: "cl"}})
	require.NoError(t, err)

	var got policyv1alpha1.ConcurrencyLimitPolicy
	require.NoError(t, cl.Get(context.Background(), types.NamespacedName{Namespace: "ns", Name: "cl"}, &got))
	cond := apimeta.FindStatusCondition(got.Status.Conditions, statusderiver.ConditionTypeAccepted)
	require.NotNil(t, cond)
	require.Equal(t, statusderiver.ReasonInvalidKind, cond.Reason)
}

func TestConcurrencyLimitPolicyReconciler_HandlesDeletion(t *testing.T) {
	t.Parallel()

	cl := fake.NewClientBuilder().WithScheme(newTestScheme(t)).Build()
	idx := index.New(clusterinfo.ClusterInfo{})
	r := &ConcurrencyLimitPolicyReconciler{Client: cl, Index: idx}

	_, err := r.Reconcile(context.Background(), ctrl.Request{NamespacedName: types.NamespacedName{Namespace: "ns", Name: "gone"}})
	require.NoError(t, err)
}
