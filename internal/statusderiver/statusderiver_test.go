package statusderiver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/meshpolicy/policy-controller/internal/core"
)

func parentKey(ns, name string) core.GroupKindNamespaceName {
	return core.GroupKindNamespaceName{
		GroupKindName: core.GroupKindName{Group: "gateway.networking.k8s.io", Kind: "Gateway", Name: name},
		Namespace:     ns,
	}
}

func TestDeriveParentCondition_AcceptedTrueIgnoresReason(t *testing.T) {
	t.Parallel()

	cond := DeriveParentCondition(core.ParentRefStatus{
		ParentRef: parentKey("default", "gw"),
		Accepted:  true,
		Reason:    "should be overridden",
	}, 3)

	require.Equal(t, ConditionTypeAccepted, cond.Type)
	require.Equal(t, metav1.ConditionTrue, cond.Status)
	require.Equal(t, ReasonAccepted, cond.Reason)
	require.EqualValues(t, 3, cond.ObservedGeneration)
}

func TestDeriveParentCondition_RejectedDefaultsToNoMatchingParent(t *testing.T) {
	t.Parallel()

	cond := DeriveParentCondition(core.ParentRefStatus{
		ParentRef: parentKey("default", "gw"),
		Accepted:  false,
	}, 1)

	require.Equal(t, metav1.ConditionFalse, cond.Status)
	require.Equal(t, ReasonNoMatchingParent, cond.Reason)
}

func TestDeriveParentCondition_RejectedKeepsExplicitReason(t *testing.T) {
	t.Parallel()

	cond := DeriveParentCondition(core.ParentRefStatus{
		ParentRef: parentKey("default", "gw"),
		Accepted:  false,
		Reason:    ReasonInvalidBackend,
		Message:   "backend svc/foo not found",
	}, 1)

	require.Equal(t, ReasonInvalidBackend, cond.Reason)
	require.Equal(t, "backend svc/foo not found", cond.Message)
}

func TestConditionsEqual_IgnoresLastTransitionTimeAndOrder(t *testing.T) {
	t.Parallel()

	now := time.Unix(1000, 0)
	a := []metav1.Condition{
		{Type: "Accepted", Status: metav1.ConditionTrue, Reason: "Accepted", LastTransitionTime: metav1.NewTime(now)},
		{Type: "ResolvedRefs", Status: metav1.ConditionFalse, Reason: "InvalidBackend", LastTransitionTime: metav1.NewTime(now)},
	}
	b := []metav1.Condition{
		{Type: "ResolvedRefs", Status: metav1.ConditionFalse, Reason: "InvalidBackend", LastTransitionTime: metav1.NewTime(now.Add(time.Hour))},
		{Type: "Accepted", Status: metav1.ConditionTrue, Reason: "Accepted", LastTransitionTime: metav1.NewTime(now.Add(2 * time.Hour))},
	}

	require.True(t, ConditionsEqual(a, b))
}

func TestConditionsEqual_DetectsReasonChange(t *testing.T) {
	t.Parallel()

	a := []metav1.Condition{{Type: "Accepted", Status: metav1.ConditionFalse, Reason: "NoMatchingParent"}}
	b := []metav1.Condition{{Type: "Accepted", Status: metav1.ConditionFalse, Reason: "InvalidKind"}}

	require.False(t, ConditionsEqual(a, b))
}

func TestQueue_SubmitDedupsUnchangedBinding(t *testing.T) {
	t.Parallel()

	q := NewQueue(4)
	binding := core.RouteBinding{
		Ref: parentKey("default", "route-a"),
		ParentRefs: []core.ParentRefStatus{
			{ParentRef: parentKey("default", "gw"), Accepted: true},
		},
	}

	q.Submit(binding.Ref, binding, 1)
	require.Len(t, q.Patches(), 1)
	patch := <-q.Patches()
	require.Equal(t, binding.Ref, patch.Route)

	q.Submit(binding.Ref, binding, 1)
	require.Len(t, q.Patches(), 0, "resubmitting an unchanged binding must not enqueue a second patch")
}

func TestQueue_SubmitEnqueuesOnReasonChange(t *testing.T) {
	t.Parallel()

	q := NewQueue(4)
	ref := parentKey("default", "route-a")
	routeKey := ref

	first := core.RouteBinding{
		Ref:        routeKey,
		ParentRefs: []core.ParentRefStatus{{ParentRef: ref, Accepted: false, Reason: ReasonNoMatchingParent}},
	}
	second := core.RouteBinding{
		Ref:        routeKey,
		ParentRefs: []core.ParentRefStatus{{ParentRef: ref, Accepted: true}},
	}

	q.Submit(routeKey, first, 1)
	<-q.Patches()

	q.Submit(routeKey, second, 1)
	require.Len(t, q.Patches(), 1)
}

func TestQueue_ForgetClearsDedupState(t *testing.T) {
	t.Parallel()

	q := NewQueue(4)
	binding := core.RouteBinding{
		Ref:        parentKey("default", "route-a"),
		ParentRefs: []core.ParentRefStatus{{ParentRef: parentKey("default", "gw"), Accepted: true}},
	}

	q.Submit(binding.Ref, binding, 1)
	<-q.Patches()

	q.Forget(binding.Ref)
	q.Submit(binding.Ref, binding, 1)
	require.Len(t, q.Patches(), 1, "forgetting a route must allow the next identical submission to enqueue again")
}
