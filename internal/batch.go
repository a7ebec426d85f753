package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

// Batcher is the engine's opt-in answer to spec section 1's "a caller may provide a
// custom scheduler to coalesce" invitation, adapted from the teacher's own depth-counted
// Batcher: each nested Batch call increases depth by one, and effects routed through
// BatchScheduler only actually run once the outermost Batch returns, deduplicated by
// identity.
type Batcher struct {
	mu      sync.Mutex
	depth   int
	pending []*ReactiveEffect
	seen    map[*ReactiveEffect]bool
}

var batcherMu sync.Mutex
var batchers = make(map[int64]*Batcher)

func currentBatcher() *Batcher {
	gid := goid.Get()

	batcherMu.Lock()
	defer batcherMu.Unlock()

	b, ok := batchers[gid]
	if !ok {
		b = &Batcher{seen: make(map[*ReactiveEffect]bool)}
		batchers[gid] = b
	}
	return b
}

// Batch runs fn with batching enabled on this goroutine: writes still fire immediately,
// but any effect whose scheduler is BatchScheduler(e) defers its re-run until fn
// returns, then every deferred effect runs exactly once, in the order it was first
// deferred.
func Batch(fn func()) {
	b := currentBatcher()

	b.mu.Lock()
	b.depth++
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		b.depth--
		flush := b.depth == 0
		var toRun []*ReactiveEffect
		if flush {
			toRun = b.pending
			b.pending = nil
			b.seen = make(map[*ReactiveEffect]bool)
		}
		b.mu.Unlock()

		for _, e := range toRun {
			if e.Active {
				e.Run()
			}
		}
	}()

	fn()
}

// BatchScheduler returns a scheduler function for e that defers to the nearest
// enclosing Batch on this goroutine, or runs e immediately if no Batch is active.
func BatchScheduler(e *ReactiveEffect) func() {
	return func() {
		b := currentBatcher()

		b.mu.Lock()
		if b.depth == 0 {
			b.mu.Unlock()
			e.Run()
			return
		}
		if !b.seen[e] {
			b.seen[e] = true
			b.pending = append(b.pending, e)
		}
		b.mu.Unlock()
	}
}
