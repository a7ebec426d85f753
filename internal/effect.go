package internal

import "fmt"

// ReactiveEffect is a user computation wrapped with run/stop, owning its current
// dependency list — spec section 3 / section 4.5.
type ReactiveEffect struct {
	Fn        func()
	Scheduler func()

	Active       bool
	AllowRecurse bool

	deps []*Dep

	onStop    func()
	onTrack   func(TrackEvent)
	onTrigger func(TriggerEvent)

	// Scope is an opaque back-reference to whatever lifecycle owner this effect was
	// created under: the *ScopeNode that auto-adopted it, or the outer package's *Scope
	// when set explicitly; internal never dereferences it, only carries it for
	// bookkeeping parity with spec section 3's `parentScope?`.
	Scope any
}

// NewReactiveEffect wraps fn as an active effect with no scheduler (runs synchronously
// on trigger) and no dependencies yet. If a ScopeNode is current on this goroutine, the
// effect is adopted by it, so disposing the scope stops the effect.
func NewReactiveEffect(fn func()) *ReactiveEffect {
	e := &ReactiveEffect{Fn: fn, Active: true}
	if s := CurrentScope(); s != nil {
		e.Scope = s
		s.Adopt(e)
	}
	return e
}

// OnStop, OnTrack, OnTrigger install the spec section 6 dev hooks.
func (e *ReactiveEffect) OnStop(fn func())              { e.onStop = fn }
func (e *ReactiveEffect) OnTrack(fn func(TrackEvent))    { e.onTrack = fn }
func (e *ReactiveEffect) OnTrigger(fn func(TriggerEvent)) { e.onTrigger = fn }

// Run executes fn, implementing the 7-step dep-diff algorithm of spec section 4.5.
func (e *ReactiveEffect) Run() {
	if !e.Active {
		e.Fn()
		return
	}

	if isOnActiveStack(e) {
		if !e.AllowRecurse {
			return
		}
	}

	pushActiveEffect(e)
	defer popActiveEffect()

	EnableTracking()
	defer ResetTracking()

	depth := enterDepth()
	defer exitDepth()

	fallback := depth > MaxTrackDepth
	var bit uint32
	if !fallback {
		bit = uint32(1) << uint(depth-1)
		for _, d := range e.deps {
			d.w |= bit
		}
	} else {
		e.detachAll()
	}

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		e.Fn()
	}()

	// Compaction must happen whether fn panicked or not (spec: "On return (even via
	// error)") so a failing run never leaves stale subscriptions behind.
	if !fallback {
		var preCompaction []*Dep
		if Debug {
			preCompaction = append([]*Dep(nil), e.deps...)
		}

		survivors := e.deps[:0]
		for _, d := range e.deps {
			if d.w&bit != 0 && d.n&bit == 0 {
				d.remove(e)
				continue
			}
			d.w &^= bit
			d.n &^= bit
			survivors = append(survivors, d)
		}
		e.deps = survivors

		if Debug {
			for _, d := range preCompaction {
				assertBidirectional(e, d)
			}
		}
	}

	if recovered != nil {
		panic(&EffectError{Effect: e, Cause: recovered})
	}
}

func isOnActiveStack(e *ReactiveEffect) bool {
	t := currentTracking()
	for _, a := range t.activeStack {
		if a == e {
			return true
		}
	}
	return false
}

func (e *ReactiveEffect) detachAll() {
	deps := e.deps
	e.deps = nil
	for _, d := range deps {
		d.remove(e)
		if Debug {
			assertBidirectional(e, d)
		}
	}
}

// Stop disposes the effect: detaches it from every dep it subscribed to, marks it
// inactive, and calls onStop. Idempotent.
func (e *ReactiveEffect) Stop() {
	if !e.Active {
		return
	}
	e.detachAll()
	e.Active = false
	if e.onStop != nil {
		e.onStop()
	}
}

// Deps exposes the effect's current dependency list (test/diagnostic use).
func (e *ReactiveEffect) Deps() []*Dep { return e.deps }

// EffectError wraps a panic recovered from inside a running effect, grounded in the
// Unwrap-carrying error-struct pattern this retrieval pack's dependency-graph libraries
// use for their own resolve errors.
type EffectError struct {
	Effect *ReactiveEffect
	Cause  any
}

func (err *EffectError) Error() string {
	return fmt.Sprintf("reactive: effect panicked: %v", err.Cause)
}

func (err *EffectError) Unwrap() error {
	if cause, ok := err.Cause.(error); ok {
		return cause
	}
	return nil
}
