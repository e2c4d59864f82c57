// Package resolver exposes the index's watchable slots as the two public
// lookups described in §4.5: Inbound and Outbound. It adds nothing to the
// join/resolve logic in internal/index — it only translates a caller's
// context cancellation into an unsubscribe and distinguishes "no such
// workload was ever ingested" (NotFound) from "a known workload matches no
// Server" (default policy, not an error).
package resolver

import (
	"context"
	"errors"
	"net/netip"

	"github.com/meshpolicy/policy-controller/internal/core"
	"github.com/meshpolicy/policy-controller/internal/index"
)

// ErrNotFound is returned by Inbound when the named workload has never
// been observed by ingest.
var ErrNotFound = errors.New("resolver: workload not found")

// ErrCanceled is returned when ctx is done before the first snapshot can
// be delivered; once a subscription is established, cancellation instead
// closes the updates channel.
var ErrCanceled = errors.New("resolver: subscription canceled")

// Resolver is a thin, stateless view over an *index.Index.
type Resolver struct {
	idx *index.Index
}

func New(idx *index.Index) *Resolver {
	return &Resolver{idx: idx}
}

// Inbound subscribes to the (namespace, workload, port) inbound slot.
// updates delivers every subsequent snapshot with "latest wins" semantics
// and is closed once ctx is done; the caller must not read from it
// afterward. cancel releases the subscription immediately and may be
// called even if ctx is still live.
func (r *Resolver) Inbound(ctx context.Context, namespace, workload string, port int32) (core.InboundServer, <-chan core.InboundServer, func(), error) {
	if ctx.Err() != nil {
		return core.InboundServer{}, nil, func() {}, ErrCanceled
	}
	if !r.idx.WorkloadKnown(namespace, workload) {
		return core.InboundServer{}, nil, func() {}, ErrNotFound
	}

	cur, raw, unsub := r.idx.SubscribeInbound(index.InboundSlotKey{Namespace: namespace, Workload: workload, Port: port})
	out := make(chan core.InboundServer, 1)
	go forwardUntilCanceled(ctx, raw, out, unsub)
	return cur, out, unsub, nil
}

// Outbound subscribes to the (srcNamespace, addr, port) outbound slot.
// addr may be a Service cluster IP or any remote address; resolution
// never fails — an unmatched address resolves to the egress-fallback
// parent, per S4.
func (r *Resolver) Outbound(ctx context.Context, srcNamespace string, addr netip.Addr, port int32) (core.OutboundPolicy, <-chan core.OutboundPolicy, func(), error) {
	if ctx.Err() != nil {
		return core.OutboundPolicy{}, nil, func() {}, ErrCanceled
	}

	cur, raw, unsub := r.idx.SubscribeOutbound(index.OutboundSlotKey{SrcNamespace: srcNamespace, Addr: addr, Port: port})
	out := make(chan core.OutboundPolicy, 1)
	go forwardUntilCanceled(ctx, raw, out, unsub)
	return cur, out, unsub, nil
}

// forwardUntilCanceled relays raw onto out until ctx is done, then
// unsubscribes and closes out. It never blocks the publisher: both raw
// and out are depth-1 "latest wins" channels (see internal/index/slots.go).
func forwardUntilCanceled[V any](ctx context.Context, raw <-chan V, out chan<- V, unsub func()) {
	defer close(out)
	defer unsub()
	for {
		select {
		case <-ctx.Done():
			return
		case v, ok := <-raw:
			if !ok {
				return
			}
			select {
			case out <- v:
			default:
				select {
				case <-out:
				default:
				}
				select {
				case out <- v:
				default:
				}
			}
		}
	}
}
