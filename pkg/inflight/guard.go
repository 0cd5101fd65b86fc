package inflight

import "sync"

// Guard tracks keys that have an operation in progress.
// A key can be held by one caller at a time; other callers are refused, not queued.
type Guard struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func NewGuard() *Guard {
	return &Guard{keys: make(map[string]struct{})}
}

// TryAcquire marks key as busy. Returns false if it already is.
func (g *Guard) TryAcquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.keys[key]; busy {
		return false
	}
	g.keys[key] = struct{}{}
	return true
}

// Release frees key. Releasing a free key is a no-op.
func (g *Guard) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.keys, key)
}

// Len number of keys currently held
func (g *Guard) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.keys)
}
