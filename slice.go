package reactive

import "github.com/lucidgraph/reactive/internal"

// Slice is a reactive view over an ordered, integer-indexed list — the figurative
// equivalent of Vue's reactive([...]) over a plain array.
type Slice struct {
	proxy *internal.Proxy
}

func NewSlice(initial []any) *Slice {
	return wrapSlice(internal.NewSlice(initial), internal.ModeReactive)
}

func NewReadonlySlice(initial []any) *Slice {
	return wrapSlice(internal.NewSlice(initial), internal.ModeReadonly)
}

func NewShallowSlice(initial []any) *Slice {
	return wrapSlice(internal.NewSlice(initial), internal.ModeShallowReactive)
}

func NewShallowReadonlySlice(initial []any) *Slice {
	return wrapSlice(internal.NewSlice(initial), internal.ModeShallowReadonly)
}

func wrapSlice(s *internal.Slice, mode internal.ProxyMode) *Slice {
	p, ok := internal.WrapTarget(s, mode)
	if !ok {
		internal.DevWarn("reactive: slice is frozen or marked raw, returning it unwrapped")
		return nil
	}
	return &Slice{proxy: p}
}

func (s *Slice) raw() *internal.Slice {
	return internal.ToRaw(s.proxy).(*internal.Slice)
}

func (s *Slice) rawProxy() *internal.Proxy { return s.proxy }

// Raw returns the underlying target, for nesting inside another Object/Slice/Mapping so
// the engine auto-wraps it in place instead of storing an opaque *Slice pointer.
func (s *Slice) Raw() internal.Target { return s.raw() }

func (s *Slice) AsReadonly() *Slice         { return wrapSlice(s.raw(), internal.ModeReadonly) }
func (s *Slice) AsReactive() *Slice         { return wrapSlice(s.raw(), internal.ModeReactive) }
func (s *Slice) AsShallow() *Slice          { return wrapSlice(s.raw(), internal.ModeShallowReactive) }
func (s *Slice) AsShallowReadonly() *Slice  { return wrapSlice(s.raw(), internal.ModeShallowReadonly) }
func (s *Slice) IsReadonly() bool           { return s.proxy.IsReadonly() }
func (s *Slice) IsShallow() bool            { return s.proxy.IsShallow() }

// Index reads the element at i, tracking the dependency.
func Index[T any](s *Slice, i int) T {
	return as[T](s.proxy.GetIndex(i))
}

func (s *Slice) Has(i int) bool { return s.proxy.HasIndex(i) }
func (s *Slice) Len() int       { return s.proxy.Len() }

func (s *Slice) SetIndex(i int, value any) { s.proxy.SetIndex(i, value) }
func (s *Slice) DeleteIndex(i int)         { s.proxy.DeleteIndex(i) }
func (s *Slice) SetLength(n int)           { s.proxy.SetLength(n) }

func (s *Slice) Push(values ...any) int { return s.proxy.Push(values...) }

// Pop removes and returns the last element; ok is false on an empty slice.
func (s *Slice) Pop() (value any, ok bool) { return s.proxy.Pop() }

// Shift removes and returns the first element; ok is false on an empty slice.
func (s *Slice) Shift() (value any, ok bool) { return s.proxy.Shift() }

func (s *Slice) Unshift(values ...any) int { return s.proxy.Unshift(values...) }

// Splice removes deleteCount elements starting at start, inserts values in their place,
// and returns the removed elements.
func (s *Slice) Splice(start, deleteCount int, values ...any) []any {
	return s.proxy.Splice(start, deleteCount, values...)
}

func (s *Slice) Includes(needle any) bool { return s.proxy.Includes(needle) }
func (s *Slice) IndexOf(needle any) int   { return s.proxy.IndexOf(needle) }
func (s *Slice) LastIndexOf(needle any) int {
	return s.proxy.LastIndexOf(needle)
}
