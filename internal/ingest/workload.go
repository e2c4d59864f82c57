package ingest

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"

	policyv1alpha1 "github.com/meshpolicy/policy-controller/api/v1alpha1"
	"github.com/meshpolicy/policy-controller/internal/index"
	"github.com/meshpolicy/policy-controller/internal/resourcespecs"
)

// PodReconciler and ExternalWorkloadReconciler both feed
// Index.ApplyWorkload, which takes an explicit namespace alongside the
// Event since a WorkloadState carries no separate discriminator between
// the two source kinds — they share one per-namespace map in the index.
type PodReconciler struct {
	client.Client
	Index *index.Index
}

func (r *PodReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	var pod corev1.Pod
	if err := r.Client.Get(ctx, req.NamespacedName, &pod); err != nil {
		if apierrors.IsNotFound(err) {
			r.Index.ApplyWorkload(req.Namespace, index.DeletedEvent(resourcespecs.WorkloadState{Namespace: req.Namespace, Name: req.Name}))
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}
	r.Index.ApplyWorkload(req.Namespace, index.AppliedEvent(resourcespecs.ParsePodState(&pod)))
	return ctrl.Result{}, nil
}

func (r *PodReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&corev1.Pod{}).
		Named("pod").
		Complete(r)
}

type ExternalWorkloadReconciler struct {
	client.Client
	Index *index.Index
}

func (r *ExternalWorkloadReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	var ew policyv1alpha1.ExternalWorkload
	if err := r.Client.Get(ctx, req.NamespacedName, &ew); err != nil {
		if apierrors.IsNotFound(err) {
			r.Index.ApplyWorkload(req.Namespace, index.DeletedEvent(resourcespecs.WorkloadState{Namespace: req.Namespace, Name: req.Name, External: true}))
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}
	r.Index.ApplyWorkload(req.Namespace, index.AppliedEvent(resourcespecs.ParseExternalWorkloadState(&ew)))
	return ctrl.Result{}, nil
}

func (r *ExternalWorkloadReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&policyv1alpha1.ExternalWorkload{}).
		Named("externalworkload").
		Complete(r)
}
