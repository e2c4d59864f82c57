package index

import "github.com/meshpolicy/policy-controller/internal/core"

// RouteRegistry indexes a set of route bindings of one kind (HTTP, gRPC,
// TLS or TCP) by every Service/EgressNetwork parent they are bound to, so
// OutboundIndex can look up "all routes parented by this Service" without
// scanning every route on every resolve. A binding with several parentRefs
// is registered under each of them; Put replaces all of a route's prior
// registrations atomically.
type RouteRegistry struct {
	byParent  map[ResourceKey]map[ResourceKey]core.RouteBinding
	parentsOf map[ResourceKey][]ResourceKey
}

func NewRouteRegistry() *RouteRegistry {
	return &RouteRegistry{
		byParent:  make(map[ResourceKey]map[ResourceKey]core.RouteBinding),
		parentsOf: make(map[ResourceKey][]ResourceKey),
	}
}

func (r *RouteRegistry) Put(routeKey ResourceKey, binding core.RouteBinding) {
	r.Remove(routeKey)

	var parents []ResourceKey
	for _, pr := range binding.ParentRefs {
		if pr.ParentRef.Kind != "Service" && pr.ParentRef.Kind != "EgressNetwork" {
			continue
		}
		pk := ResourceKey{Namespace: pr.ParentRef.Namespace, Name: pr.ParentRef.Name}
		m, ok := r.byParent[pk]
		if !ok {
			m = make(map[ResourceKey]core.RouteBinding)
			r.byParent[pk] = m
		}
		m[routeKey] = binding
		parents = append(parents, pk)
	}
	if len(parents) > 0 {
		r.parentsOf[routeKey] = parents
	}
}

func (r *RouteRegistry) Remove(routeKey ResourceKey) {
	for _, pk := range r.parentsOf[routeKey] {
		if m, ok := r.byParent[pk]; ok {
			delete(m, routeKey)
			if len(m) == 0 {
				delete(r.byParent, pk)
			}
		}
	}
	delete(r.parentsOf, routeKey)
}

// ForParent returns every binding currently registered under pk, in the
// deterministic order §4.4 requires (oldest creation time first, then
// namespaced name).
func (r *RouteRegistry) ForParent(pk ResourceKey) []core.RouteBinding {
	m := r.byParent[pk]
	out := make([]core.RouteBinding, 0, len(m))
	for _, b := range m {
		out = append(out, b)
	}
	sortRouteBindings(out)
	return out
}

// AffectedParents reports which parent keys a route is currently
// registered under, used to know which outbound slots to dirty when the
// route changes.
func (r *RouteRegistry) AffectedParents(routeKey ResourceKey) []ResourceKey {
	return append([]ResourceKey(nil), r.parentsOf[routeKey]...)
}

func sortRouteBindings(bindings []core.RouteBinding) {
	for i := 1; i < len(bindings); i++ {
		for j := i; j > 0 && bindings[j].Less(bindings[j-1]); j-- {
			bindings[j], bindings[j-1] = bindings[j-1], bindings[j]
		}
	}
}
