package ingest

import (
	"context"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	apimeta "k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	policyv1alpha1 "github.com/meshpolicy/policy-controller/api/v1alpha1"
	"github.com/meshpolicy/policy-controller/internal/index"
	"github.com/meshpolicy/policy-controller/internal/resourcespecs"
	"github.com/meshpolicy/policy-controller/internal/statusderiver"
)

// ConcurrencyLimitPolicyReconciler and RateLimitPolicyReconciler don't fit
// SimpleReconciler: past parsing, each must also resolve its own
// targetRef (today only Server is a valid target) to break the
// bootstrapping cycle documented on internal/index's acceptedRefs —
// Index.SetAccepted gates whether a limit a Server's join sees has a
// resolvable target at all — and each writes its own Accepted condition
// directly, since a limit policy's status is a single condition rather
// than the per-parent list a route carries.
type ConcurrencyLimitPolicyReconciler struct {
	client.Client
	Index *index.Index
}

func (r *ConcurrencyLimitPolicyReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	var obj policyv1alpha1.ConcurrencyLimitPolicy
	if err := r.Client.Get(ctx, req.NamespacedName, &obj); err != nil {
		if apierrors.IsNotFound(err) {
			r.Index.ApplyConcurrencyLimitPolicy(index.DeletedEvent(resourcespecs.ConcurrencyLimitPolicySpec{Namespace: req.Namespace, Name: req.Name}))
			r.Index.SetAccepted(true, index.ResourceKey{Namespace: req.Namespace, Name: req.Name}, false)
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	spec, err := resourcespecs.ParseConcurrencyLimitPolicy(&obj)
	if err != nil {
		log.FromContext(ctx).Error(err, "rejecting resource", "reconciler", "concurrencylimitpolicy")
		return ctrl.Result{}, nil
	}
	r.Index.ApplyConcurrencyLimitPolicy(index.AppliedEvent(spec))

	accepted, reason, message := checkLimitTarget(ctx, r.Client, req.Namespace, spec.TargetKind, spec.TargetName)
	r.Index.SetAccepted(true, index.ResourceKey{Namespace: req.Namespace, Name: req.Name}, accepted)
	return ctrl.Result{}, r.writeAccepted(ctx, &obj, accepted, reason, message)
}

func (r *ConcurrencyLimitPolicyReconciler) writeAccepted(ctx context.Context, obj *policyv1alpha1.ConcurrencyLimitPolicy, accepted bool, reason, message string) error {
	setAcceptedCondition(&obj.Status.Conditions, obj.Generation, accepted, reason, message)
	return r.Client.Status().Update(ctx, obj)
}

func (r *ConcurrencyLimitPolicyReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&policyv1alpha1.ConcurrencyLimitPolicy{}).
		Named("concurrencylimitpolicy").
		Complete(r)
}

type RateLimitPolicyReconciler struct {
	client.Client
	Index *index.Index
}

func (r *RateLimitPolicyReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	var obj policyv1alpha1.RateLimitPolicy
	if err := r.Client.Get(ctx, req.NamespacedName, &obj); err != nil {
		if apierrors.IsNotFound(err) {
			r.Index.ApplyRateLimitPolicy(index.DeletedEvent(resourcespecs.RateLimitPolicySpec{Namespace: req.Namespace, Name: req.Name}))
			r.Index.SetAccepted(false, index.ResourceKey{Namespace: req.Namespace, Name: req.Name}, false)
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	spec, err := resourcespecs.ParseRateLimitPolicy(&obj)
	if err != nil {
		log.FromContext(ctx).Error(err, "rejecting resource", "reconciler", "ratelimitpolicy")
		return ctrl.Result{}, nil
	}
	r.Index.ApplyRateLimitPolicy(index.AppliedEvent(spec))

	accepted, reason, message := checkLimitTarget(ctx, r.Client, req.Namespace, spec.TargetKind, spec.TargetName)
	r.Index.SetAccepted(false, index.ResourceKey{Namespace: req.Namespace, Name: req.Name}, accepted)

	setAcceptedCondition(&obj.Status.Conditions, obj.Generation, accepted, reason, message)
	return ctrl.Result{}, r.Client.Status().Update(ctx, &obj)
}

func (r *RateLimitPolicyReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&policyv1alpha1.RateLimitPolicy{}).
		Named("ratelimitpolicy").
		Complete(r)
}

// checkLimitTarget resolves a limit policy's targetRef; Server is the
// only target kind either policy supports today.
func checkLimitTarget(ctx context.Context, c client.Client, namespace, kind, name string) (accepted bool, reason, message string) {
	if kind != "Server" {
		return false, statusderiver.ReasonInvalidKind, "unsupported targetRef kind " + kind
	}
	err := c.Get(ctx, types.NamespacedName{Namespace: namespace, Name: name}, &policyv1alpha1.Server{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return false, statusderiver.ReasonNoMatchingParent, "targeted Server " + name + " not found"
		}
		return false, statusderiver.ReasonNoMatchingParent, err.Error()
	}
	return true, statusderiver.ReasonAccepted, ""
}

func setAcceptedCondition(conditions *[]metav1.Condition, generation int64, accepted bool, reason, message string) {
	status := metav1.ConditionFalse
	if accepted {
		status = metav1.ConditionTrue
	}
	apimeta.SetStatusCondition(conditions, metav1.Condition{
		Type:               statusderiver.ConditionTypeAccepted,
		Status:             status,
		ObservedGeneration: generation,
		Reason:             reason,
		Message:            message,
	})
}
