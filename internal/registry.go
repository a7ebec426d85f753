package internal

import (
	"runtime"
	"sync"
	"weak"
)

// TargetKind classifies a Target the way spec.md section 4.1 step 5 does: COMMON
// (ordinary record/sequence) gets the plain interceptor, COLLECTION (mapping/set) gets
// the keyed-collection interceptor.
type TargetKind int

const (
	KindObject TargetKind = iota
	KindSlice
	KindMapping
	KindSet
	KindRef
)

// targetHeader is embedded as the first field of every concrete target type. Its address
// is stable for the target's lifetime and is never referenced except through a
// weak.Pointer, so it is used as the identity key for both the DepRegistry and the
// proxy-factory's four identity maps: once the owning target is unreachable, the header
// goes with it and every weak-keyed entry referencing it becomes collectible.
type targetHeader struct {
	kind   TargetKind
	frozen bool
	skip   bool // markRaw
}

// Target is implemented by *Object, *Slice, *Mapping and *Set.
type Target interface {
	Header() *targetHeader
}

func identity(t Target) weak.Pointer[targetHeader] {
	return weak.Make(t.Header())
}

type keyDeps struct {
	mu   sync.Mutex
	deps map[Key]*Dep
}

// DepRegistry is the global (target -> key -> Dep) map, spec.md sections 2 and 3. It is
// weak-keyed: registering a target never keeps it alive, and a cleanup callback purges
// the entry (and the target's proxy-map entries) once the target is garbage collected,
// realizing spec.md section 5's "weak-reference discipline" with the standard library's
// weak package instead of a hand-rolled disposal API.
type DepRegistry struct {
	mu   sync.Mutex
	deps map[weak.Pointer[targetHeader]]*keyDeps
}

var registry = &DepRegistry{deps: make(map[weak.Pointer[targetHeader]]*keyDeps)}

// Register must be called once, right after a target is constructed, so its entry is
// swept when the target becomes unreachable.
func Register(t Target) {
	wp := identity(t)
	runtime.AddCleanup(t, forgetTarget, wp)
}

func forgetTarget(wp weak.Pointer[targetHeader]) {
	registry.mu.Lock()
	delete(registry.deps, wp)
	registry.mu.Unlock()

	forgetProxies(wp)
}

func (r *DepRegistry) depsFor(t Target, create bool) *keyDeps {
	wp := identity(t)

	r.mu.Lock()
	kd, ok := r.deps[wp]
	if !ok {
		if !create {
			r.mu.Unlock()
			return nil
		}
		kd = &keyDeps{deps: make(map[Key]*Dep)}
		r.deps[wp] = kd
	}
	r.mu.Unlock()

	return kd
}

// Dep returns (creating if necessary) the Dep for (target, key).
func (r *DepRegistry) Dep(t Target, key Key) *Dep {
	kd := r.depsFor(t, true)

	kd.mu.Lock()
	defer kd.mu.Unlock()

	d, ok := kd.deps[key]
	if !ok {
		d = newDep()
		kd.deps[key] = d
	}
	return d
}

// DepIfPresent returns the Dep for (target, key) only if reads have ever created one.
func (r *DepRegistry) DepIfPresent(t Target, key Key) *Dep {
	kd := r.depsFor(t, false)
	if kd == nil {
		return nil
	}

	kd.mu.Lock()
	defer kd.mu.Unlock()
	return kd.deps[key]
}

// AllDeps returns every Dep registered against t, used by CLEAR (spec.md section 4.4).
func (r *DepRegistry) AllDeps(t Target) []*Dep {
	kd := r.depsFor(t, false)
	if kd == nil {
		return nil
	}

	kd.mu.Lock()
	defer kd.mu.Unlock()

	out := make([]*Dep, 0, len(kd.deps))
	for _, d := range kd.deps {
		out = append(out, d)
	}
	return out
}

// keysFor returns every key that currently has a registered Dep for t, used by the
// Slice length-shrink trigger clause to find index deps >= the new length.
func (r *DepRegistry) keysFor(t Target) []Key {
	kd := r.depsFor(t, false)
	if kd == nil {
		return nil
	}

	kd.mu.Lock()
	defer kd.mu.Unlock()

	out := make([]Key, 0, len(kd.deps))
	for k := range kd.deps {
		out = append(out, k)
	}
	return out
}

// Registry returns the process-wide DepRegistry singleton.
func Registry() *DepRegistry { return registry }
