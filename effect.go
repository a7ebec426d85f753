package reactive

import "github.com/lucidgraph/reactive/internal"

// Runner is the handle an Effect call returns: the running effect plus whatever it
// takes to stop it early.
type Runner struct {
	effect *internal.ReactiveEffect
}

// Stop detaches the effect from everything it reads; it never runs again.
func (r *Runner) Stop() { r.effect.Stop() }

// Run re-runs the effect's fn directly, re-diffing its dependency set. Mostly useful
// after WithLazy, to trigger the deferred first run.
func (r *Runner) Run() { r.effect.Run() }

type effectConfig struct {
	effect *internal.ReactiveEffect
	lazy   bool
}

// EffectOption configures an Effect call.
type EffectOption func(*effectConfig)

// WithLazy skips Effect's default eager first run: the caller must call Runner.Run()
// to trigger the first run (and every dependency it records).
func WithLazy() EffectOption {
	return func(c *effectConfig) { c.lazy = true }
}

// WithScope adopts the effect into scope explicitly, so disposing scope stops it. Effect
// also auto-adopts into reactive.CurrentScope(), whether or not this option is given: an
// effect created while another scope is current stays adopted by that scope too.
func WithScope(scope *Scope) EffectOption {
	return func(c *effectConfig) {
		c.effect.Scope = scope
		scope.node.Adopt(c.effect)
	}
}

// WithScheduler replaces the effect's default synchronous re-run with a custom
// scheduler: instead of running immediately on trigger, sched is called, and it decides
// when (or whether) to call the effect again.
func WithScheduler(sched func()) EffectOption {
	return func(c *effectConfig) { c.effect.Scheduler = sched }
}

// WithAllowRecurse permits the effect to re-trigger itself while it is already running
// (spec's default is to skip a self-trigger to avoid infinite recursion).
func WithAllowRecurse() EffectOption {
	return func(c *effectConfig) { c.effect.AllowRecurse = true }
}

// WithOnStop registers a hook called once when the effect is stopped.
func WithOnStop(fn func()) EffectOption {
	return func(c *effectConfig) { c.effect.OnStop(fn) }
}

// WithOnTrack registers a dev-mode hook called every time the effect records a new
// dependency.
func WithOnTrack(fn func(internal.TrackEvent)) EffectOption {
	return func(c *effectConfig) { c.effect.OnTrack(fn) }
}

// WithOnTrigger registers a dev-mode hook called every time a write triggers the effect,
// just before it re-runs (or, with WithScheduler, before its scheduler is called).
func WithOnTrigger(fn func(internal.TriggerEvent)) EffectOption {
	return func(c *effectConfig) { c.effect.OnTrigger(fn) }
}

// Effect runs fn immediately, tracking every reactive value fn reads, and re-runs fn
// (or, with WithScheduler, the custom scheduler) whenever any of them changes. With
// WithLazy, the first run is deferred until the caller calls Runner.Run().
func Effect(fn func(), opts ...EffectOption) *Runner {
	e := internal.NewReactiveEffect(fn)
	cfg := &effectConfig{effect: e}
	for _, opt := range opts {
		opt(cfg)
	}
	if !cfg.lazy {
		e.Run()
	}
	return &Runner{effect: e}
}

// Stop is shorthand for r.Stop().
func Stop(r *Runner) { r.Stop() }

// PauseTracking disables dependency recording on the calling goroutine until
// EnableTracking or ResetTracking restores it — useful for reading reactive values
// inside an effect without creating a dependency on them.
func PauseTracking() { internal.PauseTracking() }

// EnableTracking re-enables dependency recording on the calling goroutine.
func EnableTracking() { internal.EnableTracking() }

// ResetTracking restores tracking to whatever it was before the most recent
// PauseTracking/EnableTracking call.
func ResetTracking() { internal.ResetTracking() }

// Untrack runs fn with tracking paused on the calling goroutine, then restores the
// prior tracking state, returning fn's result.
func Untrack[T any](fn func() T) T {
	PauseTracking()
	defer ResetTracking()
	return fn()
}
