package ingest

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/meshpolicy/policy-controller/internal/index"
	"github.com/meshpolicy/policy-controller/internal/resourcespecs"
)

// ServiceReconciler feeds Index.ApplyService. ParseService never returns
// an error (an invalid Service still needs tracking so its IP can later
// become valid), so this doesn't fit SimpleReconciler's Parse-can-fail
// shape and stays its own small type.
type ServiceReconciler struct {
	client.Client
	Index *index.Index
}

func (r *ServiceReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	var svc corev1.Service
	if err := r.Client.Get(ctx, req.NamespacedName, &svc); err != nil {
		if apierrors.IsNotFound(err) {
			r.Index.ApplyService(index.DeletedEvent(resourcespecs.ServiceInfo{Namespace: req.Namespace, Name: req.Name}))
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}
	r.Index.ApplyService(index.AppliedEvent(resourcespecs.ParseService(&svc)))
	return ctrl.Result{}, nil
}

func (r *ServiceReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&corev1.Service{}).
		Named("service").
		Complete(r)
}
