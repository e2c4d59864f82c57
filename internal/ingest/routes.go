package ingest

import (
	"context"
	"fmt"
	"strings"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/apimachinery/pkg/util/validation/field"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"
	gatewayv1 "sigs.k8s.io/gateway-api/apis/v1"
	gatewayv1alpha2 "sigs.k8s.io/gateway-api/apis/v1alpha2"

	policyv1alpha1 "github.com/meshpolicy/policy-controller/api/v1alpha1"
	"github.com/meshpolicy/policy-controller/internal/core"
	"github.com/meshpolicy/policy-controller/internal/index"
	"github.com/meshpolicy/policy-controller/internal/routebinder"
	"github.com/meshpolicy/policy-controller/internal/statusderiver"
)

// backendExists and resolveParentAcceptance are shared by all four route
// kinds: routebinder only knows how to build a binding from the wire
// shape, it has no client and can't tell a dangling ref from a live one.
// Ingest is the layer that actually has a cache-backed client, so it's
// the layer that resolves "does this backend/parent exist".
func backendExists(ctx context.Context, c client.Client) routebinder.BackendExists {
	return func(kind, namespace, name string) bool {
		key := types.NamespacedName{Namespace: namespace, Name: name}
		var err error
		switch kind {
		case "Service":
			err = c.Get(ctx, key, &corev1.Service{})
		case "EgressNetwork":
			err = c.Get(ctx, key, &policyv1alpha1.EgressNetwork{})
		default:
			return false
		}
		return err == nil
	}
}

// resolveParentAcceptance overwrites each ParentRefStatus the binder
// produced (which is always Accepted:true — routebinder only drops
// refs it can't parse at all) with the real existence check, assigning
// a reason from §4.7's closed set when a parent doesn't resolve.
func resolveParentAcceptance(ctx context.Context, c client.Client, binding *core.RouteBinding) {
	for i, pr := range binding.ParentRefs {
		key := types.NamespacedName{Namespace: pr.ParentRef.Namespace, Name: pr.ParentRef.Name}
		var err error
		switch pr.ParentRef.Kind {
		case "Server":
			err = c.Get(ctx, key, &policyv1alpha1.Server{})
		case "Service":
			err = c.Get(ctx, key, &corev1.Service{})
		case "EgressNetwork":
			err = c.Get(ctx, key, &policyv1alpha1.EgressNetwork{})
		case "UnmeshedNetwork":
			err = c.Get(ctx, key, &policyv1alpha1.UnmeshedNetwork{})
		default:
			binding.ParentRefs[i].Accepted = false
			binding.ParentRefs[i].Reason = statusderiver.ReasonInvalidKind
			binding.ParentRefs[i].Message = fmt.Sprintf("unsupported parent kind %q", pr.ParentRef.Kind)
			continue
		}
		if err != nil {
			binding.ParentRefs[i].Accepted = false
			if apierrors.IsNotFound(err) {
				binding.ParentRefs[i].Reason = statusderiver.ReasonNoMatchingParent
				binding.ParentRefs[i].Message = fmt.Sprintf("%s %s/%s not found", pr.ParentRef.Kind, pr.ParentRef.Namespace, pr.ParentRef.Name)
			} else {
				binding.ParentRefs[i].Reason = statusderiver.ReasonNoMatchingParent
				binding.ParentRefs[i].Message = err.Error()
			}
		}
	}
}

// applyBindErrors folds routebinder's rule-level parse/validation errors
// (invalid filters, missing-port or unresolved backends) into the route's
// Accepted status, per §4.7: "Accepted=True requires the route's rules all
// parse." A parent ref resolveParentAcceptance already rejected for its
// own reason (no matching parent, unsupported kind) is left alone —
// existence failures take priority over rule-parse failures on the same
// ref. Only parents resolveParentAcceptance left Accepted:true are
// downgraded here.
func applyBindErrors(binding *core.RouteBinding, errs field.ErrorList) {
	if len(errs) == 0 {
		return
	}
	reason := classifyBindErrorReason(errs[0])
	message := errs.ToAggregate().Error()
	for i, pr := range binding.ParentRefs {
		if !pr.Accepted {
			continue
		}
		binding.ParentRefs[i].Accepted = false
		binding.ParentRefs[i].Reason = reason
		binding.ParentRefs[i].Message = message
	}
}

// classifyBindErrorReason maps a routebinder field.Error to one of §4.7's
// closed set of reasons, using the error's field path and detail text to
// distinguish a bad filter from a missing port from an unresolved backend.
func classifyBindErrorReason(err *field.Error) string {
	switch {
	case strings.Contains(err.Field, "filters"):
		return statusderiver.ReasonInvalidFilter
	case strings.Contains(err.Detail, "port is required"):
		return statusderiver.ReasonMissingPort
	case strings.Contains(err.Field, "backendRefs"):
		return statusderiver.ReasonResolvedRefs
	default:
		return statusderiver.ReasonInvalidBackend
	}
}

// HTTPRouteReconciler projects HTTPRoutes into the index and the status
// patch queue.
type HTTPRouteReconciler struct {
	client.Client
	Index           *index.Index
	Retry           *RetryFilterStore
	FailureInjector *FailureInjectorFilterStore
	Queue           *statusderiver.Queue
}

func (r *HTTPRouteReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	routeKey := index.ResourceKey{Namespace: req.Namespace, Name: req.Name}
	refKey := core.GroupKindNamespaceName{
		GroupKindName: core.GroupKindName{Group: gatewayv1.GroupName, Kind: "HTTPRoute", Name: req.Name},
		Namespace:     req.Namespace,
	}

	var route gatewayv1.HTTPRoute
	if err := r.Client.Get(ctx, req.NamespacedName, &route); err != nil {
		if apierrors.IsNotFound(err) {
			r.Index.ApplyHTTPRoute(routeKey, core.RouteBinding{}, true)
			r.Queue.Forget(refKey)
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	binding, errs := routebinder.BindHTTPRoute(&route, r.Retry.Lookup, r.FailureInjector.Lookup, backendExists(ctx, r.Client))
	if len(errs) > 0 {
		log.FromContext(ctx).Info("HTTPRoute has invalid rules", "route", req.NamespacedName, "errors", errs.ToAggregate().Error())
	}
	resolveParentAcceptance(ctx, r.Client, &binding)
	applyBindErrors(&binding, errs)

	r.Index.ApplyHTTPRoute(routeKey, binding, false)
	r.Queue.Submit(binding.Ref, binding, route.Generation)
	return ctrl.Result{}, nil
}

func (r *HTTPRouteReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&gatewayv1.HTTPRoute{}).
		Named("httproute").
		Complete(r)
}

// GRPCRouteReconciler mirrors HTTPRouteReconciler for GRPCRoute.
type GRPCRouteReconciler struct {
	client.Client
	Index           *index.Index
	Retry           *RetryFilterStore
	FailureInjector *FailureInjectorFilterStore
	Queue           *statusderiver.Queue
}

func (r *GRPCRouteReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	routeKey := index.ResourceKey{Namespace: req.Namespace, Name: req.Name}
	refKey := core.GroupKindNamespaceName{
		GroupKindName: core.GroupKindName{Group: gatewayv1.GroupName, Kind: "GRPCRoute", Name: req.Name},
		Namespace:     req.Namespace,
	}

	var route gatewayv1.GRPCRoute
	if err := r.Client.Get(ctx, req.NamespacedName, &route); err != nil {
		if apierrors.IsNotFound(err) {
			r.Index.ApplyGRPCRoute(routeKey, core.RouteBinding{}, true)
			r.Queue.Forget(refKey)
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	binding, errs := routebinder.BindGRPCRoute(&route, r.Retry.Lookup, r.FailureInjector.Lookup, backendExists(ctx, r.Client))
	if len(errs) > 0 {
		log.FromContext(ctx).Info("GRPCRoute has invalid rules", "route", req.NamespacedName, "errors", errs.ToAggregate().Error())
	}
	resolveParentAcceptance(ctx, r.Client, &binding)
	applyBindErrors(&binding, errs)

	r.Index.ApplyGRPCRoute(routeKey, binding, false)
	r.Queue.Submit(binding.Ref, binding, route.Generation)
	return ctrl.Result{}, nil
}

func (r *GRPCRouteReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&gatewayv1.GRPCRoute{}).
		Named("grpcroute").
		Complete(r)
}

// TLSRouteReconciler projects TLSRoutes. BindTLSRoute (like BindTCPRoute)
// rejects a route that does not carry exactly one rule; that error, like
// any backend error, is logged and folded into parent status.
type TLSRouteReconciler struct {
	client.Client
	Index *index.Index
	Queue *statusderiver.Queue
}

func (r *TLSRouteReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	routeKey := index.ResourceKey{Namespace: req.Namespace, Name: req.Name}
	refKey := core.GroupKindNamespaceName{
		GroupKindName: core.GroupKindName{Group: gatewayv1alpha2.GroupName, Kind: "TLSRoute", Name: req.Name},
		Namespace:     req.Namespace,
	}

	var route gatewayv1alpha2.TLSRoute
	if err := r.Client.Get(ctx, req.NamespacedName, &route); err != nil {
		if apierrors.IsNotFound(err) {
			r.Index.ApplyTLSRoute(routeKey, core.RouteBinding{}, true)
			r.Queue.Forget(refKey)
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	binding, errs := routebinder.BindTLSRoute(&route, backendExists(ctx, r.Client))
	if len(errs) > 0 {
		log.FromContext(ctx).Info("TLSRoute has invalid rules", "route", req.NamespacedName, "errors", errs.ToAggregate().Error())
	}
	resolveParentAcceptance(ctx, r.Client, &binding)
	applyBindErrors(&binding, errs)

	r.Index.ApplyTLSRoute(routeKey, binding, false)
	r.Queue.Submit(binding.Ref, binding, route.Generation)
	return ctrl.Result{}, nil
}

func (r *TLSRouteReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&gatewayv1alpha2.TLSRoute{}).
		Named("tlsroute").
		Complete(r)
}

// TCPRouteReconciler projects TCPRoutes.
type TCPRouteReconciler struct {
	client.Client
	Index *index.Index
	Queue *statusderiver.Queue
}

func (r *TCPRouteReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	routeKey := index.ResourceKey{Namespace: req.Namespace, Name: req.Name}
	refKey := core.GroupKindNamespaceName{
		GroupKindName: core.GroupKindName{Group: gatewayv1alpha2.GroupName, Kind: "TCPRoute", Name: req.Name},
		Namespace:     req.Namespace,
	}

	var route gatewayv1alpha2.TCPRoute
	if err := r.Client.Get(ctx, req.NamespacedName, &route); err != nil {
		if apierrors.IsNotFound(err) {
			r.Index.ApplyTCPRoute(routeKey, core.RouteBinding{}, true)
			r.Queue.Forget(refKey)
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	binding, errs := routebinder.BindTCPRoute(&route, backendExists(ctx, r.Client))
	if len(errs) > 0 {
		log.FromContext(ctx).Info("TCPRoute has invalid rules", "route", req.NamespacedName, "errors", errs.ToAggregate().Error())
	}
	resolveParentAcceptance(ctx, r.Client, &binding)
	applyBindErrors(&binding, errs)

	r.Index.ApplyTCPRoute(routeKey, binding, false)
	r.Queue.Submit(binding.Ref, binding, route.Generation)
	return ctrl.Result{}, nil
}

func (r *TCPRouteReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&gatewayv1alpha2.TCPRoute{}).
		Named("tcproute").
		Complete(r)
}
