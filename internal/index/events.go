// Package index holds the in-memory InboundIndex/OutboundIndex: the
// per-namespace resource stores, the per-pod-port and per-parent-port join
// algorithms, and the watchable publication slots the resolver subscribes
// to. A single sync.RWMutex protects every store; ingest goroutines take
// the write lock for the bounded parse-and-join critical section described
// in §5, then release it before publishing to any slot.
package index

// EventKind distinguishes the three shapes an ingest stream can deliver.
type EventKind int

const (
	Applied EventKind = iota
	Deleted
	Restarted
)

// Event is the ingestion contract for one watched resource kind:
// Applied(item), Deleted(item), or Restarted(items) — an atomic
// replace-the-whole-set event that must be handled as delete-then-apply
// for everything not in Items.
type Event[T any] struct {
	Kind  EventKind
	Item  T
	Items []T
}

func AppliedEvent[T any](item T) Event[T]   { return Event[T]{Kind: Applied, Item: item} }
func DeletedEvent[T any](item T) Event[T]   { return Event[T]{Kind: Deleted, Item: item} }
func RestartedEvent[T any](items []T) Event[T] { return Event[T]{Kind: Restarted, Items: items} }
