// Package statusderiver turns a route binding's per-parent-ref acceptance
// results into the Kubernetes status Condition the orchestrator patches
// back onto the route, per §4.7. It never talks to a client directly: it
// derives conditions and decides whether they changed enough to warrant a
// patch, keeping that derivation separate from the controller loop
// (internal/ingest) that actually sends the status merge patch.
package statusderiver

import (
	"sync"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/meshpolicy/policy-controller/internal/core"
)

// ConditionTypeAccepted is the sole condition type §4.7 derives: whether a
// route's binding to one parent succeeded.
const ConditionTypeAccepted = "Accepted"

// Reasons, the closed set from §4.7.
const (
	ReasonAccepted         = "Accepted"
	ReasonNoMatchingParent = "NoMatchingParent"
	ReasonResolvedRefs     = "ResolvedRefs"
	ReasonInvalidKind      = "InvalidKind"
	ReasonMissingPort      = "MissingPort"
	ReasonInvalidFilter    = "InvalidFilter"
	ReasonInvalidBackend   = "InvalidBackend"
)

// DeriveParentCondition builds the Accepted condition for one parentRef
// result the route binder already computed.
func DeriveParentCondition(pr core.ParentRefStatus, generation int64) metav1.Condition {
	status := metav1.ConditionFalse
	reason := pr.Reason
	if pr.Accepted {
		status = metav1.ConditionTrue
		reason = ReasonAccepted
	} else if reason == "" {
		reason = ReasonNoMatchingParent
	}
	return metav1.Condition{
		Type:               ConditionTypeAccepted,
		Status:             status,
		ObservedGeneration: generation,
		Reason:             reason,
		Message:            pr.Message,
	}
}

// DeriveRouteConditions derives the condition list for every parentRef in
// a binding, keyed by the parent's identity.
func DeriveRouteConditions(binding core.RouteBinding, generation int64) map[core.GroupKindNamespaceName][]metav1.Condition {
	out := make(map[core.GroupKindNamespaceName][]metav1.Condition, len(binding.ParentRefs))
	for _, pr := range binding.ParentRefs {
		out[pr.ParentRef] = []metav1.Condition{DeriveParentCondition(pr, generation)}
	}
	return out
}

// ConditionsEqual reports whether two condition sets are equivalent for
// patch-dedup purposes: the same (type, status, reason) multiset,
// independent of order and of LastTransitionTime — per §4.7's dedup
// policy and the order-insignificance testable property.
func ConditionsEqual(a, b []metav1.Condition) bool {
	if len(a) != len(b) {
		return false
	}
	type key struct{ typ, status, reason string }
	counts := make(map[key]int, len(a))
	for _, c := range a {
		counts[key{c.Type, string(c.Status), c.Reason}]++
	}
	for _, c := range b {
		counts[key{c.Type, string(c.Status), c.Reason}]--
	}
	for _, n := range counts {
		if n != 0 {
			return false
		}
	}
	return true
}

func routeConditionsEqual(a, b map[core.GroupKindNamespaceName][]metav1.Condition) bool {
	if len(a) != len(b) {
		return false
	}
	for parent, conds := range a {
		other, ok := b[parent]
		if !ok || !ConditionsEqual(conds, other) {
			return false
		}
	}
	return true
}

// RoutePatch is one pending status update: the route to patch, and the
// per-parent condition lists a MergePatch should set on its status
// subresource.
type RoutePatch struct {
	Route          core.GroupKindNamespaceName
	ParentStatuses map[core.GroupKindNamespaceName][]metav1.Condition
}

// Queue is the unbounded-effect patch queue from §5: Submit is called by
// the route reconcilers in internal/ingest after each bind; the
// status-writer goroutine drains Patches() outside any lock and performs
// the actual MergePatch I/O.
//
// "Unbounded in effect" is implemented as coalescing the newest patch per
// route: pendingPatch holds at most one not-yet-delivered patch per route,
// replaced in place by every subsequent Submit for that route, and an
// internal goroutine drains it into the bounded out channel. A slow
// status-writer only ever makes a route's delivery late, never drops it —
// pendingPatch keeps growing to hold one entry per distinct dirty route
// rather than discarding work the way a plain bounded channel would.
type Queue struct {
	mu           sync.Mutex
	last         map[core.GroupKindNamespaceName]map[core.GroupKindNamespaceName][]metav1.Condition
	pendingPatch map[core.GroupKindNamespaceName]RoutePatch
	wake         chan struct{}
	out          chan RoutePatch
}

func NewQueue(buffer int) *Queue {
	q := &Queue{
		last:         make(map[core.GroupKindNamespaceName]map[core.GroupKindNamespaceName][]metav1.Condition),
		pendingPatch: make(map[core.GroupKindNamespaceName]RoutePatch),
		wake:         make(chan struct{}, 1),
		out:          make(chan RoutePatch, buffer),
	}
	go q.drain()
	return q
}

// drain forwards pendingPatch into out, one route at a time, blocking on a
// full out channel rather than discarding: nothing is lost, a backed-up
// consumer only delays delivery. Iteration order over pendingPatch is
// unspecified, which is fine — §4.7 conditions are per-route independent.
func (q *Queue) drain() {
	for range q.wake {
		for {
			q.mu.Lock()
			var route core.GroupKindNamespaceName
			var patch RoutePatch
			found := false
			for k, p := range q.pendingPatch {
				route, patch, found = k, p, true
				break
			}
			if found {
				delete(q.pendingPatch, route)
			}
			q.mu.Unlock()
			if !found {
				break
			}
			q.out <- patch
		}
	}
}

// Submit derives conditions for binding and enqueues a patch iff they
// differ from the last submission for this route: any (type, status,
// reason) tuple differs, or the parent set itself changed.
//
// The common case — out has room — delivers synchronously, same as a
// plain channel send. Only when out is full does the patch move into
// pendingPatch for the drain goroutine to deliver once room frees up,
// coalescing with any later Submit for the same route in the meantime
// rather than queuing both.
func (q *Queue) Submit(routeKey core.GroupKindNamespaceName, binding core.RouteBinding, generation int64) {
	next := DeriveRouteConditions(binding, generation)

	q.mu.Lock()
	prev, ok := q.last[routeKey]
	changed := !ok || !routeConditionsEqual(prev, next)
	if !changed {
		q.mu.Unlock()
		return
	}
	q.last[routeKey] = next
	patch := RoutePatch{Route: routeKey, ParentStatuses: next}
	delete(q.pendingPatch, routeKey)
	q.mu.Unlock()

	select {
	case q.out <- patch:
		return
	default:
	}

	q.mu.Lock()
	q.pendingPatch[routeKey] = patch
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Patches returns the channel the status-writer goroutine drains.
func (q *Queue) Patches() <-chan RoutePatch { return q.out }

// Forget drops a route's last-submitted conditions and any not-yet-
// delivered patch, used when the route is deleted so a future route
// reusing the same name doesn't dedup against stale state or receive a
// patch meant for the deleted route.
func (q *Queue) Forget(routeKey core.GroupKindNamespaceName) {
	q.mu.Lock()
	delete(q.last, routeKey)
	delete(q.pendingPatch, routeKey)
	q.mu.Unlock()
}
