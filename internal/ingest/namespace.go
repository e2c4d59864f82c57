package ingest

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/meshpolicy/policy-controller/internal/clusterinfo"
	"github.com/meshpolicy/policy-controller/internal/index"
	"github.com/meshpolicy/policy-controller/internal/resourcespecs"
)

// NamespaceReconciler ingests the namespace-level default-policy
// annotation (§4.2 step 1's middle tier, between the cluster-wide
// default and a pod's own annotation).
type NamespaceReconciler struct {
	client.Client
	Index *index.Index
}

func (r *NamespaceReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	var ns corev1.Namespace
	if err := r.Client.Get(ctx, req.NamespacedName, &ns); err != nil {
		if apierrors.IsNotFound(err) {
			r.Index.SetNamespaceDefaultPolicy(req.Name, nil)
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	v, ok := ns.Annotations[resourcespecs.DefaultPolicyAnnotation]
	if !ok || v == "" {
		r.Index.SetNamespaceDefaultPolicy(req.Name, nil)
		return ctrl.Result{}, nil
	}

	policy, err := clusterinfo.ParseDefaultPolicy(v)
	if err != nil {
		log.FromContext(ctx).Error(err, "ignoring invalid namespace default-policy annotation", "namespace", req.Name)
		r.Index.SetNamespaceDefaultPolicy(req.Name, nil)
		return ctrl.Result{}, nil
	}

	r.Index.SetNamespaceDefaultPolicy(req.Name, &policy)
	return ctrl.Result{}, nil
}

func (r *NamespaceReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&corev1.Namespace{}).
		Named("namespace").
		Complete(r)
}
