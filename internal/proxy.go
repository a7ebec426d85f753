package internal

import (
	"sync"
	"weak"
)

// ProxyMode is one of the four wrap modes spec section 3 requires to stay disjoint:
// deep-mutable, deep-readonly, shallow-mutable, shallow-readonly.
type ProxyMode int

const (
	ModeReactive ProxyMode = iota
	ModeReadonly
	ModeShallowReactive
	ModeShallowReadonly
)

func (m ProxyMode) readonly() bool {
	return m == ModeReadonly || m == ModeShallowReadonly
}

func (m ProxyMode) shallow() bool {
	return m == ModeShallowReactive || m == ModeShallowReadonly
}

// Proxy is the opaque handle spec section 9's design notes call for in a strictly-typed
// host: rather than transparently intercepting field access on an arbitrary object, it
// wraps one of the four concrete target kinds and answers Get/Set/Has/Delete/iterate
// through explicit methods.
type Proxy struct {
	target Target
	mode   ProxyMode
}

func (p *Proxy) Target() Target   { return p.target }
func (p *Proxy) Mode() ProxyMode  { return p.mode }
func (p *Proxy) IsReadonly() bool { return p.mode.readonly() }
func (p *Proxy) IsReactive() bool { return !p.mode.readonly() }
func (p *Proxy) IsShallow() bool  { return p.mode.shallow() }

type identityMaps struct {
	mu    sync.Mutex
	byKey map[ProxyMode]map[weak.Pointer[targetHeader]]*Proxy
}

var proxies = &identityMaps{
	byKey: map[ProxyMode]map[weak.Pointer[targetHeader]]*Proxy{
		ModeReactive:        make(map[weak.Pointer[targetHeader]]*Proxy),
		ModeReadonly:        make(map[weak.Pointer[targetHeader]]*Proxy),
		ModeShallowReactive: make(map[weak.Pointer[targetHeader]]*Proxy),
		ModeShallowReadonly: make(map[weak.Pointer[targetHeader]]*Proxy),
	},
}

func forgetProxies(wp weak.Pointer[targetHeader]) {
	proxies.mu.Lock()
	defer proxies.mu.Unlock()
	for _, m := range proxies.byKey {
		delete(m, wp)
	}
}

// WrapTarget implements the idempotent wrap/classify/store algorithm of spec section
// 4.1, steps 4-7 (steps 1-3, about recognizing an existing Proxy vs. a bare value, are
// the caller's job — see the public package's Reactive/Readonly, which only call this
// once they have a genuine Target, unwrapped from any proxy). ok is false when the target is
// frozen or markRaw-skipped (spec's INVALID class): the caller must then hand back the
// bare target.
func WrapTarget(t Target, mode ProxyMode) (p *Proxy, ok bool) {
	h := t.Header()
	if h.frozen || h.skip {
		return nil, false
	}

	wp := identity(t)

	proxies.mu.Lock()
	defer proxies.mu.Unlock()

	if existing, found := proxies.byKey[mode][wp]; found {
		return existing, true
	}

	p = &Proxy{target: t, mode: mode}
	proxies.byKey[mode][wp] = p
	return p, true
}

// ProxyFor returns the already-built proxy for t in mode, if any.
func ProxyFor(t Target, mode ProxyMode) (*Proxy, bool) {
	wp := identity(t)
	proxies.mu.Lock()
	defer proxies.mu.Unlock()
	p, ok := proxies.byKey[mode][wp]
	return p, ok
}

// RefHandle is the non-generic face of the public package's generic Ref[T], used so the
// interceptor's ref-unwrap rule (spec section 4.2) doesn't need to know T.
type RefHandle interface {
	RawValue() any
	RawWrite(any)
	RefDep() *Dep
	IsShallowRef() bool
}

// wrapRead applies spec section 4.2's "shallow ⇒ return res as-is; else ref-unwrap
// (except array-of-refs); else lazily deep-wrap nested targets" rule to a value just
// read out of an Object/Slice/Mapping field.
func wrapRead(mode ProxyMode, value any, isSliceIndex bool) any {
	if mode.shallow() {
		return value
	}

	if ref, ok := value.(RefHandle); ok {
		if !isSliceIndex {
			return ref.RawValue()
		}
		return value
	}

	if t, ok := value.(Target); ok {
		p, ok := WrapTarget(t, mode)
		if !ok {
			return value
		}
		return p
	}

	return value
}

// unwrapWrite applies spec section 4.2 set()'s "unwrap both old and new via toRaw"
// rule: proxies and refs written into a target are stored/compared by their raw value,
// so state underneath proxies is never another proxy in disguise.
func unwrapWrite(mode ProxyMode, value any) any {
	if mode.shallow() {
		return value
	}
	return ToRaw(value)
}

// ToRaw unwraps every Proxy layer around v, returning the underlying Target (or v
// itself if it was never a Proxy).
func ToRaw(v any) any {
	for {
		p, ok := v.(*Proxy)
		if !ok {
			return v
		}
		v = p.target
	}
}

// IsProxy reports whether v is a *Proxy (any mode).
func IsProxy(v any) bool {
	_, ok := v.(*Proxy)
	return ok
}

// MarkRaw sets the skip flag on t in-place: the factory will subsequently refuse to
// wrap it at all (spec section 4.1 step 5/6, "frozen or marked skip").
func MarkRaw(t Target) {
	t.Header().skip = true
}

// Freeze marks t as frozen; the factory treats frozen targets as INVALID exactly like
// markRaw.
func Freeze(t Target) {
	t.Header().frozen = true
}

func IsFrozen(t Target) bool { return t.Header().frozen }
