package reactive

import "github.com/lucidgraph/reactive/internal"

// Set is a reactive view over an unordered keyed collection with no associated
// values — the figurative equivalent of Vue's reactive(new Set()).
type Set struct {
	proxy *internal.Proxy
}

func NewSet() *Set {
	return wrapSet(internal.NewSet(), internal.ModeReactive)
}

func NewReadonlySet() *Set {
	return wrapSet(internal.NewSet(), internal.ModeReadonly)
}

func NewShallowSet() *Set {
	return wrapSet(internal.NewSet(), internal.ModeShallowReactive)
}

func NewShallowReadonlySet() *Set {
	return wrapSet(internal.NewSet(), internal.ModeShallowReadonly)
}

func wrapSet(s *internal.Set, mode internal.ProxyMode) *Set {
	p, ok := internal.WrapTarget(s, mode)
	if !ok {
		internal.DevWarn("reactive: set is frozen or marked raw, returning it unwrapped")
		return nil
	}
	return &Set{proxy: p}
}

func (s *Set) raw() *internal.Set {
	return internal.ToRaw(s.proxy).(*internal.Set)
}

func (s *Set) rawProxy() *internal.Proxy { return s.proxy }

// Raw returns the underlying target, for nesting inside another Object/Slice/Mapping so
// the engine auto-wraps it in place instead of storing an opaque *Set pointer.
func (s *Set) Raw() internal.Target { return s.raw() }

func (s *Set) AsReadonly() *Set        { return wrapSet(s.raw(), internal.ModeReadonly) }
func (s *Set) AsReactive() *Set        { return wrapSet(s.raw(), internal.ModeReactive) }
func (s *Set) AsShallow() *Set         { return wrapSet(s.raw(), internal.ModeShallowReactive) }
func (s *Set) AsShallowReadonly() *Set { return wrapSet(s.raw(), internal.ModeShallowReadonly) }
func (s *Set) IsReadonly() bool        { return s.proxy.IsReadonly() }
func (s *Set) IsShallow() bool         { return s.proxy.IsShallow() }

func (s *Set) Has(value any) bool { return s.proxy.SetHas(value) }
func (s *Set) Size() int          { return s.proxy.SetSize() }
func (s *Set) Add(value any)      { s.proxy.SetAdd(value) }
func (s *Set) Delete(value any) bool {
	return s.proxy.SetDelete(value)
}
func (s *Set) Clear() { s.proxy.SetClear() }

// ForEach visits every member in insertion order, tracking the collection's whole shape.
func (s *Set) ForEach(visit func(value any)) { s.proxy.SetForEach(visit) }
