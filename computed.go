package reactive

import "github.com/lucidgraph/reactive/internal"

// Computed derives a memoized value from other reactive reads — the figurative
// equivalent of Vue's computed(fn). It recomputes lazily: only the first Read after a
// dependency changes re-runs compute.
type Computed[T any] struct {
	cell *internal.ComputedCell
}

// NewComputed builds a computed from compute. compute is not run until the first Read.
func NewComputed[T any](compute func() T) *Computed[T] {
	return &Computed[T]{
		cell: internal.NewComputedCell(func() any { return compute() }),
	}
}

// Read recomputes iff a dependency has changed since the last Read, then returns the
// memoized value, tracking the dependency if called from within an effect.
func (c *Computed[T]) Read() T {
	return as[T](c.cell.Read())
}

// Stop detaches the computed from everything it depends on; later changes to them no
// longer mark it dirty, so Read keeps returning the last computed value (a computed
// stopped before its first Read still computes once, untracked, on that Read).
func (c *Computed[T]) Stop() { c.cell.Stop() }

func (c *Computed[T]) IsDirty() bool { return c.cell.IsDirty() }

// RawValue, RawWrite, RefDep and IsShallowRef satisfy internal.RefHandle, so a
// *Computed[T] stored as an Object field or Mapping value is unwrapped like a Ref on
// read, while one stored as a Slice element is returned as-is (writing through it is a
// no-op: computeds are not writable).
func (c *Computed[T]) RawValue() any         { return c.cell.RawValue() }
func (c *Computed[T]) RawWrite(any)          {}
func (c *Computed[T]) RefDep() *internal.Dep { return c.cell.RefDep() }
func (c *Computed[T]) IsShallowRef() bool    { return false }
