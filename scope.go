package reactive

import "github.com/lucidgraph/reactive/internal"

// Scope manages the lifecycle of every Effect and Computed created within it: disposing
// a Scope stops all of them in one call, the same way an owner disposes its reactive
// nodes.
type Scope struct {
	node *internal.ScopeNode
}

// NewScope creates a new, empty lifecycle scope.
func NewScope() *Scope {
	return &Scope{node: internal.NewScopeNode()}
}

// Run executes fn with this scope current: every Effect/Computed created within fn is
// adopted by this scope and stopped when Dispose is called.
func (s *Scope) Run(fn func()) { s.node.Run(fn) }

// Dispose stops every Effect/Computed this scope (and its children) adopted, then runs
// its own cleanup callbacks. Idempotent.
func (s *Scope) Dispose() { s.node.Dispose() }

// OnCleanup registers fn to run when this scope is disposed.
func (s *Scope) OnCleanup(fn func()) { s.node.OnCleanup(fn) }

// OnError registers fn to receive any panic recovered from within Run. If no handler is
// registered, the panic propagates as usual.
func (s *Scope) OnError(fn func(any)) { s.node.OnError(fn) }

// CurrentScope returns the scope currently Run-ing on the calling goroutine, or nil.
func CurrentScope() *Scope {
	n := internal.CurrentScope()
	if n == nil {
		return nil
	}
	return &Scope{node: n}
}
