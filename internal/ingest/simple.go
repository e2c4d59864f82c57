// Package ingest wires controller-runtime watches for every resource kind
// the index consumes into the index's Event<T> contract (§6): a
// reconciler fetches the current object (or observes its absence) and
// turns that into exactly one Applied or Deleted call. It never computes
// join results itself — that stays in internal/index — and it never
// blocks a reconcile on discovery traffic, since the index's write lock
// is held only for the bounded parse-and-apply critical section described
// in §5.
package ingest

import (
	"context"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/meshpolicy/policy-controller/internal/index"
)

// SimpleReconciler generalizes the teacher's one-struct-per-kind
// Reconciler to every resource kind whose ingestion is exactly "parse the
// object, apply the Spec, or apply a Deleted(Spec{Namespace,Name}) when
// it's gone" — the seven policy kinds bound in reconcilers.go. Routes,
// workloads, Services, namespaces, limit policies and the retry and
// failure-injector filter stores have their own reconcilers.
type SimpleReconciler[T any] struct {
	client.Client

	// Name identifies this reconciler for controller-runtime's Named().
	Name string
	// NewObject returns a fresh zero value of the watched kind.
	NewObject func() client.Object
	// Parse projects the fetched object into T.
	Parse func(obj client.Object) (T, error)
	// Key builds the Spec value used to address a Deleted event when the
	// object no longer exists.
	Key func(namespace, name string) T
	// Apply hands the Event to the index.
	Apply func(index.Event[T])
}

func (r *SimpleReconciler[T]) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	obj := r.NewObject()
	if err := r.Client.Get(ctx, req.NamespacedName, obj); err != nil {
		if apierrors.IsNotFound(err) {
			r.Apply(index.DeletedEvent(r.Key(req.Namespace, req.Name)))
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	spec, err := r.Parse(obj)
	if err != nil {
		log.FromContext(ctx).Error(err, "rejecting resource", "reconciler", r.Name)
		return ctrl.Result{}, nil
	}

	r.Apply(index.AppliedEvent(spec))
	return ctrl.Result{}, nil
}

func (r *SimpleReconciler[T]) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(r.NewObject()).
		Named(r.Name).
		Complete(r)
}
