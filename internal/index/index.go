package index

import (
	"sync"

	"github.com/meshpolicy/policy-controller/internal/clusterinfo"
	"github.com/meshpolicy/policy-controller/internal/core"
	"github.com/meshpolicy/policy-controller/internal/resourcespecs"
)

// Index is the single in-memory join engine: one writer lock guards every
// namespace and global map, and the two Slots registries broadcast the
// joined snapshots to discovery subscribers. Recompute after a mutation
// only touches slot keys already present in the relevant Slots registry —
// a key is only ever created on first Subscribe — so applying a resource
// never has to enumerate an unbounded space of (workload, port) or
// (address, port) pairs that nothing has asked about yet.
type Index struct {
	mu sync.RWMutex

	ci clusterinfo.ClusterInfo

	inboundNS  map[string]*nsInbound
	outboundNS map[string]*nsOutbound
	global     outboundGlobal
	auth       authStore
	accepted   acceptedRefs

	inboundSlots  *Slots[InboundSlotKey, core.InboundServer]
	outboundSlots *Slots[OutboundSlotKey, core.OutboundPolicy]
}

func New(ci clusterinfo.ClusterInfo) *Index {
	return &Index{
		ci:            ci,
		inboundNS:     make(map[string]*nsInbound),
		outboundNS:    make(map[string]*nsOutbound),
		global:        newOutboundGlobal(),
		auth:          newAuthStore(),
		accepted:      newAcceptedRefs(),
		inboundSlots:  NewSlots[InboundSlotKey, core.InboundServer](),
		outboundSlots: NewSlots[OutboundSlotKey, core.OutboundPolicy](),
	}
}

func (x *Index) inbound(ns string) *nsInbound {
	n, ok := x.inboundNS[ns]
	if !ok {
		n = newNSInbound()
		x.inboundNS[ns] = n
	}
	return n
}

func (x *Index) outbound(ns string) *nsOutbound {
	n, ok := x.outboundNS[ns]
	if !ok {
		n = newNSOutbound()
		x.outboundNS[ns] = n
	}
	return n
}

// SubscribeInbound returns the current InboundServer (computing it lazily
// if this is the first observer of this key) and a channel of subsequent
// updates.
func (x *Index) SubscribeInbound(key InboundSlotKey) (core.InboundServer, <-chan core.InboundServer, func()) {
	cur, has, ch, unsub := x.inboundSlots.Subscribe(key)
	if !has {
		x.mu.RLock()
		cur = x.computeInboundLocked(key)
		x.mu.RUnlock()
		x.inboundSlots.Publish(key, cur)
	}
	return cur, ch, unsub
}

// SubscribeOutbound mirrors SubscribeInbound for outbound policy slots.
func (x *Index) SubscribeOutbound(key OutboundSlotKey) (core.OutboundPolicy, <-chan core.OutboundPolicy, func()) {
	cur, has, ch, unsub := x.outboundSlots.Subscribe(key)
	if !has {
		x.mu.RLock()
		cur = x.computeOutboundLocked(key)
		x.mu.RUnlock()
		x.outboundSlots.Publish(key, cur)
	}
	return cur, ch, unsub
}

// reconcileInbound recomputes and republishes every already-subscribed
// inbound slot in a namespace. Called after any mutation that can change
// inbound joins for that namespace (Server, ServerAuthorization,
// AuthorizationPolicy, route, limit policy, workload, or namespace default
// policy annotation), and after any mutation to cross-namespace
// authentication state (every namespace, since an AuthorizationPolicy may
// reference an authentication resource in another namespace).
func (x *Index) reconcileInboundNamespace(ns string) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	for _, key := range x.inboundSlots.Keys() {
		if key.Namespace != ns {
			continue
		}
		x.inboundSlots.Publish(key, x.computeInboundLocked(key))
	}
}

func (x *Index) reconcileAllInbound() {
	x.mu.RLock()
	defer x.mu.RUnlock()
	for _, key := range x.inboundSlots.Keys() {
		x.inboundSlots.Publish(key, x.computeInboundLocked(key))
	}
}

func (x *Index) computeInboundLocked(key InboundSlotKey) core.InboundServer {
	ns := x.inboundNS[key.Namespace]
	if ns == nil {
		ns = newNSInbound()
	}
	out, _, _ := joinInbound(ns, x.ci, x.auth, x.accepted, key.Namespace, key.Workload, key.Port)
	return out.Clone()
}

// WorkloadKnown reports whether namespace/workload has ever been applied
// via ApplyWorkload, used by the resolver to distinguish "no Server
// selects this known workload" (default policy) from "this workload was
// never ingested at all" (NotFound, per §4.5).
func (x *Index) WorkloadKnown(namespace, workload string) bool {
	x.mu.RLock()
	defer x.mu.RUnlock()
	ns := x.inboundNS[namespace]
	if ns == nil {
		return false
	}
	_, ok := ns.workloads[workload]
	return ok
}

// reconcileOutboundGlobal recomputes every already-subscribed outbound
// slot, used when global state (Service, any route kind) changes.
func (x *Index) reconcileOutboundGlobal() {
	x.mu.RLock()
	defer x.mu.RUnlock()
	for _, key := range x.outboundSlots.Keys() {
		x.outboundSlots.PublishOrTerminate(key, x.computeOutboundLocked(key), outboundParentKindChanged)
	}
}

// reconcileOutboundNamespace recomputes the already-subscribed outbound
// slots whose source namespace is ns, used when a namespace's
// EgressNetwork/UnmeshedNetwork set changes.
func (x *Index) reconcileOutboundNamespace(ns string) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	for _, key := range x.outboundSlots.Keys() {
		if key.SrcNamespace != ns {
			continue
		}
		x.outboundSlots.PublishOrTerminate(key, x.computeOutboundLocked(key), outboundParentKindChanged)
	}
}

// outboundParentKindChanged reports whether a recompute moved an address
// from one parent kind to another (egress-fallback to Service, Service to
// EgressNetwork, and so on). Per §8 S4, a kind change ends the existing
// subscription rather than relaying the new value on it: the resolver's
// forwardUntilCanceled sees the slot's channel close and returns, so a
// caller must issue a fresh Outbound call to observe the new parent.
func outboundParentKindChanged(prev, next core.OutboundPolicy) bool {
	return prev.Parent.Kind != next.Parent.Kind
}

func (x *Index) computeOutboundLocked(key OutboundSlotKey) core.OutboundPolicy {
	ns := x.outboundNS[key.SrcNamespace]
	if ns == nil {
		ns = newNSOutbound()
	}
	var globalNS *nsOutbound
	if gns := x.ci.GlobalEgressNetworkNamespace; gns != "" && gns != key.SrcNamespace {
		globalNS = x.outboundNS[gns]
	}
	out, _ := resolveOutbound(&x.global, ns, globalNS, x.ci, key)
	return out.Clone()
}

// --- Inbound resource mutations -------------------------------------------

func applyMap[T any](m map[string]T, ev Event[T], name func(T) string) {
	switch ev.Kind {
	case Applied:
		m[name(ev.Item)] = ev.Item
	case Deleted:
		delete(m, name(ev.Item))
	case Restarted:
		for k := range m {
			delete(m, k)
		}
		for _, item := range ev.Items {
			m[name(item)] = item
		}
	}
}

func (x *Index) ApplyServer(ev Event[resourcespecs.ServerSpec]) {
	ns := eventNamespace(ev, func(s resourcespecs.ServerSpec) string { return s.Namespace })
	x.mu.Lock()
	applyMap(x.inbound(ns).servers, ev, func(s resourcespecs.ServerSpec) string { return s.Name })
	x.mu.Unlock()
	x.reconcileInboundNamespace(ns)
}

func (x *Index) ApplyServerAuthorization(ev Event[resourcespecs.ServerAuthorizationSpec]) {
	ns := eventNamespace(ev, func(s resourcespecs.ServerAuthorizationSpec) string { return s.Namespace })
	x.mu.Lock()
	applyMap(x.inbound(ns).serverAuthorizations, ev, func(s resourcespecs.ServerAuthorizationSpec) string { return s.Name })
	x.mu.Unlock()
	x.reconcileInboundNamespace(ns)
}

func (x *Index) ApplyAuthorizationPolicy(ev Event[resourcespecs.AuthorizationPolicySpec]) {
	ns := eventNamespace(ev, func(s resourcespecs.AuthorizationPolicySpec) string { return s.Namespace })
	x.mu.Lock()
	applyMap(x.inbound(ns).authorizationPolicies, ev, func(s resourcespecs.AuthorizationPolicySpec) string { return s.Name })
	x.mu.Unlock()
	x.reconcileInboundNamespace(ns)
}

func (x *Index) ApplyMeshTLSAuthentication(ev Event[resourcespecs.MeshTLSAuthenticationSpec]) {
	ns := eventNamespace(ev, func(s resourcespecs.MeshTLSAuthenticationSpec) string { return s.Namespace })
	x.mu.Lock()
	byName, ok := x.auth.meshtls[ns]
	if !ok {
		byName = make(map[string]resourcespecs.MeshTLSAuthenticationSpec)
		x.auth.meshtls[ns] = byName
	}
	applyMap(byName, ev, func(s resourcespecs.MeshTLSAuthenticationSpec) string { return s.Name })
	x.mu.Unlock()
	// AuthorizationPolicies anywhere in the cluster may reference this
	// authentication, so every namespace's inbound joins must be
	// reconsidered (§4.6).
	x.reconcileAllInbound()
}

func (x *Index) ApplyNetworkAuthentication(ev Event[resourcespecs.NetworkAuthenticationSpec]) {
	ns := eventNamespace(ev, func(s resourcespecs.NetworkAuthenticationSpec) string { return s.Namespace })
	x.mu.Lock()
	byName, ok := x.auth.network[ns]
	if !ok {
		byName = make(map[string]resourcespecs.NetworkAuthenticationSpec)
		x.auth.network[ns] = byName
	}
	applyMap(byName, ev, func(s resourcespecs.NetworkAuthenticationSpec) string { return s.Name })
	x.mu.Unlock()
	x.reconcileAllInbound()
}

func (x *Index) ApplyConcurrencyLimitPolicy(ev Event[resourcespecs.ConcurrencyLimitPolicySpec]) {
	ns := eventNamespace(ev, func(s resourcespecs.ConcurrencyLimitPolicySpec) string { return s.Namespace })
	x.mu.Lock()
	applyMap(x.inbound(ns).concurrencyLimits, ev, func(s resourcespecs.ConcurrencyLimitPolicySpec) string { return s.Name })
	x.mu.Unlock()
	x.reconcileInboundNamespace(ns)
}

func (x *Index) ApplyRateLimitPolicy(ev Event[resourcespecs.RateLimitPolicySpec]) {
	ns := eventNamespace(ev, func(s resourcespecs.RateLimitPolicySpec) string { return s.Namespace })
	x.mu.Lock()
	applyMap(x.inbound(ns).rateLimits, ev, func(s resourcespecs.RateLimitPolicySpec) string { return s.Name })
	x.mu.Unlock()
	x.reconcileInboundNamespace(ns)
}

func (x *Index) ApplyWorkload(namespace string, ev Event[resourcespecs.WorkloadState]) {
	x.mu.Lock()
	applyMap(x.inbound(namespace).workloads, ev, func(s resourcespecs.WorkloadState) string { return s.Name })
	x.mu.Unlock()
	x.reconcileInboundNamespace(namespace)
}

// SetNamespaceDefaultPolicy records the namespace-level default-policy
// annotation (§4.2 step 1); pass nil to clear it.
func (x *Index) SetNamespaceDefaultPolicy(namespace string, policy *clusterinfo.DefaultPolicy) {
	x.mu.Lock()
	x.inbound(namespace).defaultPolicy = policy
	x.mu.Unlock()
	x.reconcileInboundNamespace(namespace)
}

// SetAccepted records the Accepted=True/False verdict the ingest
// limit-policy reconcilers reach for a RateLimitPolicy/ConcurrencyLimitPolicy
// target-ref, breaking the
// bootstrapping cycle documented on acceptedRefs.
func (x *Index) SetAccepted(concurrency bool, key ResourceKey, accepted bool) {
	x.mu.Lock()
	m := x.accepted.rateLimit
	if concurrency {
		m = x.accepted.concurrency
	}
	if accepted {
		m[key] = true
	} else {
		delete(m, key)
	}
	ns := key.Namespace
	x.mu.Unlock()
	x.reconcileInboundNamespace(ns)
}

// --- Outbound resource mutations -------------------------------------------

func (x *Index) ApplyEgressNetwork(ev Event[resourcespecs.EgressNetworkSpec]) {
	ns := eventNamespace(ev, func(s resourcespecs.EgressNetworkSpec) string { return s.Namespace })
	x.mu.Lock()
	applyMap(x.outbound(ns).egressNetworks, ev, func(s resourcespecs.EgressNetworkSpec) string { return s.Name })
	global := ns == x.ci.GlobalEgressNetworkNamespace
	x.mu.Unlock()
	if global {
		x.reconcileOutboundGlobal()
	} else {
		x.reconcileOutboundNamespace(ns)
	}
}

func (x *Index) ApplyUnmeshedNetwork(ev Event[resourcespecs.UnmeshedNetworkSpec]) {
	ns := eventNamespace(ev, func(s resourcespecs.UnmeshedNetworkSpec) string { return s.Namespace })
	x.mu.Lock()
	applyMap(x.outbound(ns).unmeshedNetworks, ev, func(s resourcespecs.UnmeshedNetworkSpec) string { return s.Name })
	x.mu.Unlock()
	x.reconcileOutboundNamespace(ns)
}

func (x *Index) ApplyService(ev Event[resourcespecs.ServiceInfo]) {
	x.mu.Lock()
	switch ev.Kind {
	case Applied:
		x.global.setService(ResourceKey{Namespace: ev.Item.Namespace, Name: ev.Item.Name}, ev.Item)
	case Deleted:
		x.global.deleteService(ResourceKey{Namespace: ev.Item.Namespace, Name: ev.Item.Name})
	case Restarted:
		for k := range x.global.services {
			x.global.deleteService(k)
		}
		for _, item := range ev.Items {
			x.global.setService(ResourceKey{Namespace: item.Namespace, Name: item.Name}, item)
		}
	}
	x.mu.Unlock()
	x.reconcileOutboundGlobal()
}

func (x *Index) ApplyHTTPRoute(routeKey ResourceKey, binding core.RouteBinding, deleted bool) {
	x.applyRoute(x.global.httpRoutes, routeKey, binding, deleted)
}

func (x *Index) ApplyGRPCRoute(routeKey ResourceKey, binding core.RouteBinding, deleted bool) {
	x.applyRoute(x.global.grpcRoutes, routeKey, binding, deleted)
}

func (x *Index) ApplyTLSRoute(routeKey ResourceKey, binding core.RouteBinding, deleted bool) {
	x.applyRoute(x.global.tlsRoutes, routeKey, binding, deleted)
}

func (x *Index) ApplyTCPRoute(routeKey ResourceKey, binding core.RouteBinding, deleted bool) {
	x.applyRoute(x.global.tcpRoutes, routeKey, binding, deleted)
}

// applyRoute updates a route's registration against the given
// parent-scoped RouteRegistry (outbound) and, when the route also binds an
// inbound Server parent, the owning namespace's per-kind route map. Routes
// bound to both Service/EgressNetwork and Server parents at once register
// in both places; the registry the route binder produced already carries
// every parentRef needed to do so.
func (x *Index) applyRoute(registry *RouteRegistry, routeKey ResourceKey, binding core.RouteBinding, deleted bool) {
	x.mu.Lock()
	if deleted {
		registry.Remove(routeKey)
	} else {
		registry.Put(routeKey, binding)
	}

	ns := x.inbound(routeKey.Namespace)
	var dest map[string]core.RouteBinding
	switch registry {
	case x.global.httpRoutes:
		dest = ns.httpRoutes
	case x.global.grpcRoutes:
		dest = ns.grpcRoutes
	}
	if dest != nil {
		if deleted {
			delete(dest, routeKey.Name)
		} else {
			dest[routeKey.Name] = binding
		}
	}
	x.mu.Unlock()

	x.reconcileOutboundGlobal()
	x.reconcileInboundNamespace(routeKey.Namespace)
}

func eventNamespace[T any](ev Event[T], ns func(T) string) string {
	if ev.Kind == Restarted {
		if len(ev.Items) == 0 {
			return ""
		}
		return ns(ev.Items[0])
	}
	return ns(ev.Item)
}
