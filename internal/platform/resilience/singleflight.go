package resilience

import "sync"

// SingleFlight collapses concurrent calls that share a key into one upstream
// execution. Several request handlers can ask for the same league or fixture
// at once; only the first pays for the round trip, the rest wait on its
// result. The zero value is ready to use.
type SingleFlight struct {
	mu       sync.Mutex
	inflight map[string]*flight
}

type flight struct {
	ready chan struct{}
	val   any
	err   error
}

// Do runs fn at most once per key at a time. The bool reports whether the
// result was shared from another caller's execution. Results are not cached
// past the call; a later Do with the same key runs fn again.
func (g *SingleFlight) Do(key string, fn func() (any, error)) (any, error, bool) {
	g.mu.Lock()
	if f, ok := g.inflight[key]; ok {
		g.mu.Unlock()
		<-f.ready
		return f.val, f.err, true
	}

	f := &flight{ready: make(chan struct{})}
	if g.inflight == nil {
		g.inflight = make(map[string]*flight)
	}
	g.inflight[key] = f
	g.mu.Unlock()

	f.val, f.err = fn()

	g.mu.Lock()
	delete(g.inflight, key)
	g.mu.Unlock()
	close(f.ready)

	return f.val, f.err, false
}
