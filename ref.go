package reactive

import "github.com/lucidgraph/reactive/internal"

// Ref is a single-slot observable value — the figurative equivalent of Vue's ref(v).
type Ref[T any] struct {
	cell *internal.RefCell
}

// NewRef wraps initial in a deep ref: if initial is an Object/Slice/Mapping/Set it is
// stored behind a reactive proxy, so nested mutations still trigger dependents.
func NewRef[T any](initial T) *Ref[T] {
	return &Ref[T]{cell: internal.NewRefCell(initial, false)}
}

// NewShallowRef wraps initial without deep-wrapping it: only whole-value reassignment
// (Write) is tracked, nested mutations on the value itself are invisible.
func NewShallowRef[T any](initial T) *Ref[T] {
	return &Ref[T]{cell: internal.NewRefCell(initial, true)}
}

// Read returns the current value, tracking the dependency if called from within an
// effect.
func (r *Ref[T]) Read() T {
	return as[T](r.cell.Read())
}

// Write stores v, triggering dependents iff the value actually changed.
func (r *Ref[T]) Write(v T) {
	r.cell.Write(v)
}

func (r *Ref[T]) IsShallow() bool { return r.cell.IsShallowRef() }

// RawValue, RawWrite, RefDep and IsShallowRef satisfy internal.RefHandle, so a *Ref[T]
// stored directly as an Object field or Slice element is recognized by the ref-unwrap
// and ref-forwarding rules the same way a Computed is.
func (r *Ref[T]) RawValue() any          { return r.cell.RawValue() }
func (r *Ref[T]) RawWrite(v any)         { r.cell.RawWrite(v) }
func (r *Ref[T]) RefDep() *internal.Dep  { return r.cell.RefDep() }
func (r *Ref[T]) IsShallowRef() bool     { return r.cell.IsShallowRef() }

// Unref reads v.Read() if v is a *Ref[T], else returns v unchanged — the generic
// counterpart to Vue's unref().
func Unref[T any](v any) T {
	if r, ok := v.(*Ref[T]); ok {
		return r.Read()
	}
	return as[T](v)
}

// IsRef reports whether v is a ref of any element type — a *Ref[T] or *Computed[T] for
// some T, or anything else implementing internal.RefHandle — without needing to know T
// up front.
func IsRef(v any) bool {
	_, ok := v.(internal.RefHandle)
	return ok
}
