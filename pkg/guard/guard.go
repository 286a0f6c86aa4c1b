// Package guard provides the per-entity in-flight guard that keeps
// schedule and cancel operations for one experience from overlapping.
package guard

import "sync"

// Op names the operation holding the guard.
type Op string

const (
	OpScheduling Op = "scheduling"
	OpCancelling Op = "cancelling"
)

// Guard records at most one in-flight operation per entity id. A second
// caller for the same id is skipped, not queued: rapid duplicate toggles
// are deliberately dropped rather than serialized.
type Guard struct {
	mu       sync.Mutex
	inflight map[int64]Op
}

func New() *Guard {
	return &Guard{inflight: make(map[int64]Op)}
}

// TryAcquire records op for id and returns true, or returns false when any
// operation is already in flight for that id.
func (g *Guard) TryAcquire(id int64, op Op) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inflight[id]; busy {
		return false
	}
	g.inflight[id] = op
	return true
}

// Release clears the record for id. Safe to call when nothing is held;
// callers must release on every path, error paths included.
func (g *Guard) Release(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inflight, id)
}

// InFlight reports the operation currently holding id, if any.
func (g *Guard) InFlight(id int64) (Op, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	op, ok := g.inflight[id]
	return op, ok
}
