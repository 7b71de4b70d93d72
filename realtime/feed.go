package realtime

import (
	"sync"
)

// Feed is a local mirror fed by change events. Incoming events are
// advisory merges, not authoritative reloads: inserts append-if-absent,
// updates replace-by-id, and both tolerate duplicate or out-of-order
// delivery (last write by id wins).
type Feed[T any] struct {
	mu    sync.Mutex
	id    func(T) string
	byID  map[string]T
	order []string
}

func NewFeed[T any](id func(T) string) *Feed[T] {
	return &Feed[T]{id: id, byID: make(map[string]T)}
}

func (f *Feed[T]) OnInsert(e T) {
	f.merge(e)
}

// OnUpdate also inserts when the entity is unknown, since an update event
// may race ahead of the insert event on a different channel.
func (f *Feed[T]) OnUpdate(e T) {
	f.merge(e)
}

func (f *Feed[T]) merge(e T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := f.id(e)
	if _, ok := f.byID[key]; !ok {
		f.order = append(f.order, key)
	}
	f.byID[key] = e
}

// Snapshot returns the mirrored entities in first-seen order.
func (f *Feed[T]) Snapshot() []T {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]T, 0, len(f.order))
	for _, key := range f.order {
		out = append(out, f.byID[key])
	}
	return out
}

func (f *Feed[T]) Get(id string) (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.byID[id]
	return e, ok
}

func (f *Feed[T]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.order)
}
