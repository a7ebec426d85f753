package reactive

import "github.com/lucidgraph/reactive/internal"

// Mapping is a reactive view over an unordered keyed collection accessed by method
// call — the figurative equivalent of Vue's reactive(new Map()).
type Mapping struct {
	proxy *internal.Proxy
}

func NewMapping() *Mapping {
	return wrapMapping(internal.NewMapping(), internal.ModeReactive)
}

func NewReadonlyMapping() *Mapping {
	return wrapMapping(internal.NewMapping(), internal.ModeReadonly)
}

func NewShallowMapping() *Mapping {
	return wrapMapping(internal.NewMapping(), internal.ModeShallowReactive)
}

func NewShallowReadonlyMapping() *Mapping {
	return wrapMapping(internal.NewMapping(), internal.ModeShallowReadonly)
}

func wrapMapping(m *internal.Mapping, mode internal.ProxyMode) *Mapping {
	p, ok := internal.WrapTarget(m, mode)
	if !ok {
		internal.DevWarn("reactive: mapping is frozen or marked raw, returning it unwrapped")
		return nil
	}
	return &Mapping{proxy: p}
}

func (m *Mapping) raw() *internal.Mapping {
	return internal.ToRaw(m.proxy).(*internal.Mapping)
}

func (m *Mapping) rawProxy() *internal.Proxy { return m.proxy }

// Raw returns the underlying target, for nesting inside another Object/Slice/Mapping so
// the engine auto-wraps it in place instead of storing an opaque *Mapping pointer.
func (m *Mapping) Raw() internal.Target { return m.raw() }

func (m *Mapping) AsReadonly() *Mapping { return wrapMapping(m.raw(), internal.ModeReadonly) }
func (m *Mapping) AsReactive() *Mapping { return wrapMapping(m.raw(), internal.ModeReactive) }
func (m *Mapping) AsShallow() *Mapping {
	return wrapMapping(m.raw(), internal.ModeShallowReactive)
}
func (m *Mapping) AsShallowReadonly() *Mapping {
	return wrapMapping(m.raw(), internal.ModeShallowReadonly)
}
func (m *Mapping) IsReadonly() bool { return m.proxy.IsReadonly() }
func (m *Mapping) IsShallow() bool  { return m.proxy.IsShallow() }

// MapGet reads the value stored for key, tracking the dependency.
func MapGet[T any](m *Mapping, key any) T {
	return as[T](m.proxy.MapGet(key))
}

func (m *Mapping) Has(key any) bool { return m.proxy.MapHas(key) }
func (m *Mapping) Size() int        { return m.proxy.MapSize() }
func (m *Mapping) Set(key, value any) { m.proxy.MapSet(key, value) }
func (m *Mapping) Delete(key any) bool { return m.proxy.MapDelete(key) }
func (m *Mapping) Clear()              { m.proxy.MapClear() }

// ForEach visits every (key, value) pair in insertion order, tracking the collection's
// whole shape.
func (m *Mapping) ForEach(visit func(key, value any)) { m.proxy.MapForEach(visit) }

// Keys returns every key in insertion order, tracking only the key set (not values).
func (m *Mapping) Keys() []any { return m.proxy.MapKeys() }
