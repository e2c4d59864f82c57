package ingest

import (
	"context"
	"sort"

	apimeta "k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"
	gatewayv1 "sigs.k8s.io/gateway-api/apis/v1"
	gatewayv1alpha2 "sigs.k8s.io/gateway-api/apis/v1alpha2"

	"github.com/meshpolicy/policy-controller/internal/core"
	"github.com/meshpolicy/policy-controller/internal/statusderiver"
)

// controllerName is the value every route's status.parents[].controllerName
// carries, matching Gateway API's convention of namespacing controller
// identity by domain.
const controllerName = gatewayv1.GatewayController("linkerd.io/policy-controller")

// StatusWriter drains a statusderiver.Queue and sends the actual status
// merge patch per §4.7, the one place in this package that
// touches a route's status subresource. It runs as its own goroutine so a
// slow or throttled API server never blocks index recomputation.
type StatusWriter struct {
	Client client.Client
	Queue  *statusderiver.Queue
}

// Run drains patches until ctx is done or the queue is closed.
func (w *StatusWriter) Run(ctx context.Context) error {
	logger := log.FromContext(ctx).WithName("statuswriter")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case patch, ok := <-w.Queue.Patches():
			if !ok {
				return nil
			}
			if err := w.apply(ctx, patch); err != nil {
				logger.Error(err, "failed to patch route status", "route", patch.Route)
			}
		}
	}
}

func (w *StatusWriter) apply(ctx context.Context, patch statusderiver.RoutePatch) error {
	nn := types.NamespacedName{Namespace: patch.Route.Namespace, Name: patch.Route.Name}

	switch patch.Route.Kind {
	case "HTTPRoute":
		var route gatewayv1.HTTPRoute
		if err := w.Client.Get(ctx, nn, &route); err != nil {
			return client.IgnoreNotFound(err)
		}
		base := route.DeepCopy()
		route.Status.Parents = mergeParentStatuses(route.Status.Parents, patch.ParentStatuses)
		return w.Client.Status().Patch(ctx, &route, client.MergeFrom(base))

	case "GRPCRoute":
		var route gatewayv1.GRPCRoute
		if err := w.Client.Get(ctx, nn, &route); err != nil {
			return client.IgnoreNotFound(err)
		}
		base := route.DeepCopy()
		route.Status.Parents = mergeParentStatuses(route.Status.Parents, patch.ParentStatuses)
		return w.Client.Status().Patch(ctx, &route, client.MergeFrom(base))

	case "TLSRoute":
		var route gatewayv1alpha2.TLSRoute
		if err := w.Client.Get(ctx, nn, &route); err != nil {
			return client.IgnoreNotFound(err)
		}
		base := route.DeepCopy()
		route.Status.Parents = mergeParentStatuses(route.Status.Parents, patch.ParentStatuses)
		return w.Client.Status().Patch(ctx, &route, client.MergeFrom(base))

	case "TCPRoute":
		var route gatewayv1alpha2.TCPRoute
		if err := w.Client.Get(ctx, nn, &route); err != nil {
			return client.IgnoreNotFound(err)
		}
		base := route.DeepCopy()
		route.Status.Parents = mergeParentStatuses(route.Status.Parents, patch.ParentStatuses)
		return w.Client.Status().Patch(ctx, &route, client.MergeFrom(base))
	}
	return nil
}

// mergeParentStatuses rebuilds the status.parents list from the freshly
// derived per-parent conditions, carrying forward each surviving parent's
// prior Conditions so apimeta.SetStatusCondition can decide whether
// LastTransitionTime needs to move. A parentRef no longer present in next
// (the route's parentRefs shrank) is dropped rather than carried forward.
func mergeParentStatuses(existing []gatewayv1.RouteParentStatus, next map[core.GroupKindNamespaceName][]metav1.Condition) []gatewayv1.RouteParentStatus {
	prevByParent := make(map[core.GroupKindNamespaceName][]metav1.Condition, len(existing))
	for _, ps := range existing {
		prevByParent[parentStatusKey(ps)] = ps.Conditions
	}

	keys := make([]core.GroupKindNamespaceName, 0, len(next))
	for k := range next {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Namespace != keys[j].Namespace {
			return keys[i].Namespace < keys[j].Namespace
		}
		return keys[i].Name < keys[j].Name
	})

	out := make([]gatewayv1.RouteParentStatus, 0, len(keys))
	for _, parentKey := range keys {
		conditions := append([]metav1.Condition(nil), prevByParent[parentKey]...)
		for _, c := range next[parentKey] {
			apimeta.SetStatusCondition(&conditions, c)
		}
		out = append(out, gatewayv1.RouteParentStatus{
			ParentRef:      parentReferenceOf(parentKey),
			ControllerName: controllerName,
			Conditions:     conditions,
		})
	}
	return out
}

func parentStatusKey(ps gatewayv1.RouteParentStatus) core.GroupKindNamespaceName {
	group := ""
	if ps.ParentRef.Group != nil {
		group = string(*ps.ParentRef.Group)
	}
	kind := "Server"
	if ps.ParentRef.Kind != nil {
		kind = string(*ps.ParentRef.Kind)
	}
	namespace := ""
	if ps.ParentRef.Namespace != nil {
		namespace = string(*ps.ParentRef.Namespace)
	}
	return core.GroupKindNamespaceName{
		GroupKindName: core.GroupKindName{Group: group, Kind: kind, Name: string(ps.ParentRef.Name)},
		Namespace:     namespace,
	}
}

func parentReferenceOf(k core.GroupKindNamespaceName) gatewayv1.ParentReference {
	group := gatewayv1.Group(k.Group)
	kind := gatewayv1.Kind(k.Kind)
	namespace := gatewayv1.Namespace(k.Namespace)
	return gatewayv1.ParentReference{
		Group:     &group,
		Kind:      &kind,
		Namespace: &namespace,
		Name:      gatewayv1.ObjectName(k.Name),
	}
}
