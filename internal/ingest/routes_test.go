package ingest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
	gatewayv1 "sigs.k8s.io/gateway-api/apis/v1"

	policyv1alpha1 "github.com/meshpolicy/policy-controller/api/v1alpha1"
	"github.com/meshpolicy/policy-controller/internal/clusterinfo"
	"github.com/meshpolicy/policy-controller/internal/index"
	"github.com/meshpolicy/policy-controller/internal/statusderiver"
)

func ptrKind(k gatewayv1.Kind) *gatewayv1.Kind { return &k }

func newHTTPRoute(namespace, name, parent string) *gatewayv1.HTTPRoute {
	return &gatewayv1.HTTPRoute{
		ObjectMeta: metav1.ObjectMeta{Namespace: namespace, Name: name},
		Spec: gatewayv1.HTTPRouteSpec{
			CommonRouteSpec: gatewayv1.CommonRouteSpec{
				ParentRefs: []gatewayv1.ParentReference{
					{Kind: ptrKind("Server"), Name: gatewayv1.ObjectName(parent)},
				},
			},
		},
	}
}

func TestHTTPRouteReconciler_AcceptsExistingParent(t *testing.T) {
	t.Parallel()

	s := newTestScheme(t)
	require.NoError(t, gatewayv1.Install(s))

	srv := &policyv1alpha1.Server{
		ObjectMeta: metav1.ObjectMeta{Namespace: "ns", Name: "web"},
		Spec: policyv1alpha1.ServerSpec{
			Selector: policyv1alpha1.Selector{Pod: &metav1.LabelSelector{}},
			Port:     policyv1alpha1.Port{Number: 8080},
		},
	}
	route := newHTTPRoute("ns", "route1", "web")
	cl := fake.NewClientBuilder().WithScheme(s).WithObjects(srv, route).Build()

	idx := index.New(clusterinfo.ClusterInfo{})
	q := statusderiver.NewQueue(4)
	r := &HTTPRouteReconciler{Client: cl, Index: idx, Retry: NewRetryFilterStore(), FailureInjector: NewFailureInjectorFilterStore(), Queue: q}

	_, err := r.Reconcile(context.Background(), ctrl.Request{NamespacedName: types.NamespacedName{Namespace: "ns", Name: "route1"}})
	require.NoError(t, err)

	patch := <-q.Patches()
	require.Len(t, patch.ParentStatuses, 1)
	for _, conds := range patch.ParentStatuses {
		require.Len(t, conds, 1)
		require.Equal(t, metav1.ConditionTrue, conds[0].Status)
		require.Equal(t, statusderiver.ReasonAccepted, conds[0].Reason)
	}
}

func TestHTTPRouteReconciler_RejectsUnresolvedBackend(t *testing.T) {
	t.Parallel()

	s := newTestScheme(t)
	require.NoError(t, gatewayv1.Install(s))

	srv := &policyv1alpha1.Server{
		ObjectMeta: metav1.ObjectMeta{Namespace: "ns", Name: "web"},
		Spec: policyv1alpha1.ServerSpec{
			Selector: policyv1alpha1.Selector{Pod: &metav1.LabelSelector{}},
			Port:     policyv1alpha1.Port{Number: 8080},
		},
	}
	route := newHTTPRoute("ns", "route1", "web")
	route.Spec.Rules = []gatewayv1.HTTPRouteRule{{
		BackendRefs: []gatewayv1.HTTPBackendRef{{
			BackendRef: gatewayv1.BackendRef{
				BackendObjectReference: gatewayv1.BackendObjectReference{Name: "ghost-svc"},
			},
		}},
	}}
	cl := fake.NewClientBuilder().WithScheme(s).WithObjects(srv, route).Build()

	idx := index.New(clusterinfo.ClusterInfo{})
	q := statusderiver.NewQueue(4)
	r := &HTTPRouteReconciler{Client: cl, Index: idx, Retry: NewRetryFilterStore(), FailureInjector: NewFailureInjectorFilterStore(), Queue: q}

	_, err := r.Reconcile(context.Background(), ctrl.Request{NamespacedName: types.NamespacedName{Namespace: "ns", Name: "route1"}})
	require.NoError(t, err)

	patch := <-q.Patches()
	require.Len(t, patch.ParentStatuses, 1)
	for _, conds := range patch.ParentStatuses {
		require.Len(t, conds, 1)
		require.Equal(t, metav1.ConditionFalse, conds[0].Status)
		require.NotEqual(t, statusderiver.ReasonAccepted, conds[0].Reason)
	}
}

func TestHTTPRouteReconciler_RejectsMissingParent(t *testing.T) {
	t.Parallel()

	s := newTestScheme(t)
	require.NoError(t, gatewayv1.Install(s))

	route := newHTTPRoute("ns", "route1", "ghost")
	cl := fake.NewClientBuilder().WithScheme(s).WithObjects(route).Build()

	idx := index.New(clusterinfo.ClusterInfo{})
	q := statusderiver.NewQueue(4)
	r := &HTTPRouteReconciler{Client: cl, Index: idx, Retry: NewRetryFilterStore(), FailureInjector: NewFailureInjectorFilterStore(), Queue: q}

	_, err := r.Reconcile(context.Background(), ctrl.Request{NamespacedName: types.NamespacedName{Namespace: "ns", Name: "route1"}})
	require.NoError(t, err)

	patch := <-q.Patches()
	for _, conds := range patch.ParentStatuses {
		require.Len(t, conds, 1)
		require.Equal(t, metav1.ConditionFalse, conds[0].Status)
		require.Equal(t, statusderiver.ReasonNoMatchingParent, conds[0].Reason)
	}
}

func TestHTTPRouteReconciler_HandlesDeletion(t *testing.T) {
	t.Parallel()

	s := newTestScheme(t)
	require.NoError(t, gatewayv1.Install(s))

	cl := fake.NewClientBuilder().WithScheme(s).Build()
	idx := index.New(clusterinfo.ClusterInfo{})
	q := statusderiver.NewQueue(4)
	r := &HTTPRouteReconciler{Client: cl, Index: idx, Retry: NewRetryFilterStore(), FailureInjector: NewFailureInjectorFilterStore(), Queue: q}

	_, err := r.Reconcile(context.Background(), ctrl.Request{NamespacedName: types.NamespacedName{Namespace: "ns", Name: "gone"}})
	require.NoError(t, err)

	select {
	case <-q.Patches():
		t.Fatal("deletion must not enqueue a status patch")
	default:
	}
}
