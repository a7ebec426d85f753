package reactive

import "github.com/lucidgraph/reactive/internal"

// Object is a reactive view over a dynamically-keyed bag of fields — the figurative
// equivalent of Vue's reactive({...}) over a plain object.
type Object struct {
	proxy *internal.Proxy
}

// NewObject wraps a fresh object seeded with initial in a deep-mutable, tracked proxy.
func NewObject(initial map[string]any) *Object {
	return wrapObject(internal.NewObject(initial), internal.ModeReactive)
}

// NewReadonlyObject wraps a fresh object in a deep-readonly proxy: writes are rejected
// and logged rather than applied.
func NewReadonlyObject(initial map[string]any) *Object {
	return wrapObject(internal.NewObject(initial), internal.ModeReadonly)
}

// NewShallowObject wraps a fresh object whose own fields are tracked, but whose nested
// Object/Slice/Mapping/Set values are left unwrapped.
func NewShallowObject(initial map[string]any) *Object {
	return wrapObject(internal.NewObject(initial), internal.ModeShallowReactive)
}

// NewShallowReadonlyObject combines NewShallowObject and NewReadonlyObject.
func NewShallowReadonlyObject(initial map[string]any) *Object {
	return wrapObject(internal.NewObject(initial), internal.ModeShallowReadonly)
}

func wrapObject(o *internal.Object, mode internal.ProxyMode) *Object {
	p, ok := internal.WrapTarget(o, mode)
	if !ok {
		internal.DevWarn("reactive: object is frozen or marked raw, returning it unwrapped")
		return nil
	}
	return &Object{proxy: p}
}

// AsReadonly returns a readonly view of the same underlying object, idempotently shared
// with every other readonly view of it.
func (o *Object) AsReadonly() *Object { return wrapObject(o.raw(), internal.ModeReadonly) }

// AsReactive returns the deep-mutable view of the same underlying object.
func (o *Object) AsReactive() *Object { return wrapObject(o.raw(), internal.ModeReactive) }

func (o *Object) AsShallow() *Object         { return wrapObject(o.raw(), internal.ModeShallowReactive) }
func (o *Object) AsShallowReadonly() *Object { return wrapObject(o.raw(), internal.ModeShallowReadonly) }

func (o *Object) raw() *internal.Object {
	return internal.ToRaw(o.proxy).(*internal.Object)
}

func (o *Object) rawProxy() *internal.Proxy { return o.proxy }

// Raw returns the underlying target, for nesting inside another Object/Slice/Mapping so
// the engine auto-wraps it in place instead of storing an opaque *Object pointer.
func (o *Object) Raw() internal.Target { return o.raw() }

func (o *Object) IsReadonly() bool { return o.proxy.IsReadonly() }
func (o *Object) IsShallow() bool  { return o.proxy.IsShallow() }

// Get reads field key, tracking the dependency if called from within an effect.
func Get[T any](o *Object, key string) T {
	return as[T](o.proxy.Get(key))
}

// Set writes field key. A no-op (with a dev-mode warning) on a readonly Object.
func (o *Object) Set(key string, value any) {
	o.proxy.Set(key, value)
}

// Has reports whether field key is present.
func (o *Object) Has(key string) bool {
	return o.proxy.Has(key)
}

// Delete removes field key. A no-op (with a dev-mode warning) on a readonly Object.
func (o *Object) Delete(key string) {
	o.proxy.Delete(key)
}

// Keys returns the object's field names in insertion order, tracking iteration.
func (o *Object) Keys() []string {
	return o.proxy.Keys()
}
