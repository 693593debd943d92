package app

import "sync"

// inflightGuard tracks entity ids with a mutation in progress so a second
// change to the same id is rejected instead of racing the first.
type inflightGuard struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func newInflightGuard() *inflightGuard {
	return &inflightGuard{ids: make(map[string]struct{})}
}

// acquire marks id busy. It returns false if id is already busy.
func (g *inflightGuard) acquire(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.ids[id]; busy {
		return false
	}
	g.ids[id] = struct{}{}
	return true
}

func (g *inflightGuard) release(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.ids, id)
}
