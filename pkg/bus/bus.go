// Package bus is a minimal in-process publish/subscribe channel. It exists
// so independent observers (a badge counter, a full list view) re-read
// shared state when it changes without polling and without the mutating
// side knowing who is watching.
package bus

import "sync"

// Handler receives the payload passed to Emit.
type Handler func(payload any)

type subscription struct {
	id int
	fn Handler
}

// Bus fans events out to subscribers. Listeners run synchronously in
// registration order; no cross-listener ordering beyond that is promised.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[string][]subscription
}

func New() *Bus {
	return &Bus{subs: make(map[string][]subscription)}
}

// Subscribe registers fn for event and returns a cancel func that removes
// the registration. Dropping the cancel func leaks the subscription.
func (b *Bus) Subscribe(event string, fn Handler) (cancel func()) {
	b.mu.Lock()
	b.next++
	id := b.next
	b.subs[event] = append(b.subs[event], subscription{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.subs[event]
		for i, s := range subs {
			if s.id == id {
				b.subs[event] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Emit invokes every listener registered for event, in registration order,
// on the caller's goroutine.
func (b *Bus) Emit(event string, payload any) {
	b.mu.Lock()
	subs := make([]subscription, len(b.subs[event]))
	copy(subs, b.subs[event])
	b.mu.Unlock()

	for _, s := range subs {
		s.fn(payload)
	}
}
