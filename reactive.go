package reactive

import "github.com/lucidgraph/reactive/internal"

// proxyHolder is implemented by every public container type (Object, Slice, Mapping,
// Set) so the top-level predicates and factory entry points below can recognize one of
// our own wrappers without callers ever having to reach for the unexported proxy field
// themselves.
type proxyHolder interface {
	rawProxy() *internal.Proxy
}

// toProxy extracts the underlying *internal.Proxy from v, whether v is a bare proxy
// (as returned by internal-facing code) or one of the public container wrappers.
func toProxy(v any) (*internal.Proxy, bool) {
	if p, ok := v.(*internal.Proxy); ok {
		return p, true
	}
	if h, ok := v.(proxyHolder); ok {
		return h.rawProxy(), true
	}
	return nil, false
}

// publicize turns a bare *internal.Proxy (the kind that surfaces from a nested field
// read or a deep Ref holding a container) back into the typed wrapper callers can
// actually call methods on. Anything else is returned unchanged.
func publicize(v any) any {
	p, ok := v.(*internal.Proxy)
	if !ok {
		return v
	}
	switch p.Target().(type) {
	case *internal.Object:
		return &Object{proxy: p}
	case *internal.Slice:
		return &Slice{proxy: p}
	case *internal.Mapping:
		return &Mapping{proxy: p}
	case *internal.Set:
		return &Set{proxy: p}
	default:
		return p
	}
}

// as converts a raw internal read into T, yielding the zero value for a nil any rather
// than panicking on the type assertion. A bare proxy is publicized first, so a nested
// Object/Slice/Mapping/Set field (or a deep Ref holding one) comes back as the typed
// wrapper the caller asked for instead of an unusable *internal.Proxy.
func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	if w, ok := publicize(v).(T); ok {
		return w
	}
	return v.(T)
}

// IsReactive reports whether v is a mutable (non-readonly) proxy, deep or shallow — an
// Object, Slice, Mapping or Set returned by one of this package's mutable constructors.
func IsReactive(v any) bool {
	p, ok := toProxy(v)
	return ok && p.IsReactive()
}

// IsReadonly reports whether v is a readonly proxy (deep or shallow).
func IsReadonly(v any) bool {
	p, ok := toProxy(v)
	return ok && p.IsReadonly()
}

// IsShallow reports whether v is one of the two shallow proxy variants.
func IsShallow(v any) bool {
	p, ok := toProxy(v)
	return ok && p.IsShallow()
}

// IsProxy reports whether v is any kind of proxy this package produced.
func IsProxy(v any) bool {
	_, ok := toProxy(v)
	return ok
}

// ToRaw unwraps every proxy layer around v, returning the underlying Object/Slice/
// Mapping/Set it wraps, or v itself if it was never a proxy.
func ToRaw(v any) any {
	p, ok := toProxy(v)
	if !ok {
		return v
	}
	return internal.ToRaw(p)
}

// MarkRaw marks an Object/Slice/Mapping/Set so it is never wrapped in a proxy: passing
// it to Reactive, Readonly, ShallowReactive or ShallowReadonly returns it unchanged.
func MarkRaw(t internal.Target) {
	internal.MarkRaw(t)
}

// Freeze marks an Object/Slice/Mapping/Set as frozen: like MarkRaw, the factories then
// refuse to wrap it. Freeze only affects how this package's factories treat it; it does
// not make the target immutable, and wrappers created before Freeze still write through.
func Freeze(t internal.Target) {
	internal.Freeze(t)
}

func IsFrozen(t internal.Target) bool {
	return internal.IsFrozen(t)
}

// Reactive returns a deep-mutable, tracked view of t (spec section 4.1's proxy factory,
// steps 1-7). Step 1: if t isn't object-like (not a map[string]any, []any, or one of
// this package's own raw/wrapped containers), t is returned unchanged and a dev-mode
// warning is issued. Step 2: if t is already a readonly view, it is returned unchanged
// rather than promoted to mutable. Step 3: any other existing wrapper is unwrapped to its
// target and looked up again under the requested mode. Steps 4-7 are WrapTarget's job
// (markRaw/frozen targets come back unchanged; everything else is classified into one of
// the four idempotent proxy identity maps).
func Reactive(t any) any { return classify(t, internal.ModeReactive) }

// Readonly returns a deep-readonly view of t. See Reactive for the factory's gating
// rules; unlike Reactive, Readonly always promotes (a mutable view can become readonly).
func Readonly(t any) any { return classify(t, internal.ModeReadonly) }

// ShallowReactive returns a view of t whose own keys are tracked but whose nested
// containers are left unwrapped.
func ShallowReactive(t any) any { return classify(t, internal.ModeShallowReactive) }

// ShallowReadonly combines ShallowReactive and Readonly.
func ShallowReadonly(t any) any { return classify(t, internal.ModeShallowReadonly) }

// classify implements Reactive/Readonly/ShallowReactive/ShallowReadonly's shared
// dispatch: recognize an already-wrapped value (ours or a bare internal target) and
// reclassify it under mode, recognize a bare Go map/slice worth wrapping for the first
// time, or hand back anything else unchanged.
func classify(v any, mode internal.ProxyMode) any {
	if holder, ok := v.(proxyHolder); ok {
		p := holder.rawProxy()
		if p.IsReadonly() && !isReadonlyMode(mode) {
			return v
		}
		return wrapAny(p.Target(), mode)
	}

	switch raw := v.(type) {
	case *internal.Object:
		return wrapAny(raw, mode)
	case *internal.Slice:
		return wrapAny(raw, mode)
	case *internal.Mapping:
		return wrapAny(raw, mode)
	case *internal.Set:
		return wrapAny(raw, mode)
	case map[string]any:
		return wrapAny(internal.NewObject(raw), mode)
	case []any:
		return wrapAny(internal.NewSlice(raw), mode)
	default:
		internal.DevWarn("reactive: value of type %T is not object-like, returning it unchanged", v)
		return v
	}
}

// isReadonlyMode reports whether mode is one of the two readonly variants. ProxyMode's
// own readonly() predicate is unexported to the internal package, so this mirrors it
// against the four exported mode constants.
func isReadonlyMode(mode internal.ProxyMode) bool {
	return mode == internal.ModeReadonly || mode == internal.ModeShallowReadonly
}

// wrapAny dispatches to the right typed constructor-side wrap helper for t's concrete
// kind, falling back to the bare raw target (spec's INVALID class: markRaw/frozen) when
// WrapTarget refuses.
func wrapAny(t internal.Target, mode internal.ProxyMode) any {
	switch raw := t.(type) {
	case *internal.Object:
		if w := wrapObject(raw, mode); w != nil {
			return w
		}
	case *internal.Slice:
		if w := wrapSlice(raw, mode); w != nil {
			return w
		}
	case *internal.Mapping:
		if w := wrapMapping(raw, mode); w != nil {
			return w
		}
	case *internal.Set:
		if w := wrapSet(raw, mode); w != nil {
			return w
		}
	}
	return t
}
