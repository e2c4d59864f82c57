package index

import "net/netip"

// ResourceKey is a namespaced resource name, used as a map key across the
// index's cross-namespace stores (authentications, services).
type ResourceKey struct {
	Namespace string
	Name      string
}

// InboundSlotKey identifies one watchable (namespace, pod-or-external-workload,
// port) inbound slot.
type InboundSlotKey struct {
	Namespace string
	Workload  string
	Port      int32
}

// OutboundSlotKey identifies one watchable (source-namespace, address, port)
// outbound slot.
type OutboundSlotKey struct {
	SrcNamespace string
	Addr         netip.Addr
	Port         int32
}
