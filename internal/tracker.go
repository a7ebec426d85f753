package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

// MaxTrackDepth is the nesting-depth cap on the bit-marker dep-diff scheme (spec section
// 4.5 / section 9): 30 usable bits in a uint32, one per nesting level. Beyond this depth
// effects fall back to full unsubscribe-then-resubscribe, which stays correct but gives
// up the O(d_old + d_new) diff. Tunable via SetMaxTrackDepth, mainly so tests can shrink
// it to exercise the fallback path without nesting 30 real effects.
var MaxTrackDepth = 30

// SetMaxTrackDepth overrides MaxTrackDepth. A value below 1 is ignored.
func SetMaxTrackDepth(n int) {
	if n < 1 {
		return
	}
	MaxTrackDepth = n
}

// tracking is the per-goroutine tracking state: the active-effect stack and the
// tracking-enabled stack. The source assumes one cooperative execution context; its own
// design notes anticipate porting to a pre-emptive-thread host by keying this state
// per-task rather than sharing one mutable stack — the same fix the teacher's own
// Tracker applies via goid, generalized here from "current owner/computation" to a full
// stack so nested effects on the same goroutine still compose correctly.
type tracking struct {
	activeStack  []*ReactiveEffect
	enabledStack []bool
	enabled      bool

	depth int
}

var (
	trackersMu sync.Mutex
	trackers   = make(map[int64]*tracking)
)

func currentTracking() *tracking {
	gid := goid.Get()

	trackersMu.Lock()
	defer trackersMu.Unlock()

	t, ok := trackers[gid]
	if !ok {
		t = &tracking{enabled: true}
		trackers[gid] = t
	}
	return t
}

// ActiveEffect returns the effect currently running on this goroutine, or nil.
func ActiveEffect() *ReactiveEffect {
	t := currentTracking()
	if len(t.activeStack) == 0 {
		return nil
	}
	return t.activeStack[len(t.activeStack)-1]
}

func pushActiveEffect(e *ReactiveEffect) {
	t := currentTracking()
	t.activeStack = append(t.activeStack, e)
}

func popActiveEffect() {
	t := currentTracking()
	if len(t.activeStack) == 0 {
		return
	}
	t.activeStack = t.activeStack[:len(t.activeStack)-1]
}

// IsTracking reports whether reads on this goroutine currently record dependencies.
func IsTracking() bool {
	return currentTracking().enabled
}

// PauseTracking disables dependency recording on this goroutine until EnableTracking or
// ResetTracking is called — spec section 4.6.
func PauseTracking() {
	t := currentTracking()
	t.enabledStack = append(t.enabledStack, t.enabled)
	t.enabled = false
}

// EnableTracking re-enables dependency recording on this goroutine.
func EnableTracking() {
	t := currentTracking()
	t.enabledStack = append(t.enabledStack, t.enabled)
	t.enabled = true
}

// ResetTracking restores the tracking-enabled state to what it was before the most
// recent Pause/EnableTracking call.
func ResetTracking() {
	t := currentTracking()
	if len(t.enabledStack) == 0 {
		return
	}
	last := len(t.enabledStack) - 1
	t.enabled = t.enabledStack[last]
	t.enabledStack = t.enabledStack[:last]
}

func enterDepth() int {
	t := currentTracking()
	t.depth++
	return t.depth
}

func exitDepth() {
	t := currentTracking()
	t.depth--
}

func currentDepth() int {
	return currentTracking().depth
}

// Track records that the active effect on this goroutine read (target, key), per spec
// section 4.5's track algorithm.
func Track(t Target, op TrackOp, key Key) {
	active := ActiveEffect()
	if active == nil || !IsTracking() {
		return
	}

	dep := Registry().Dep(t, key)
	if trackDep(active, dep) && active.onTrack != nil {
		active.onTrack(TrackEvent{Effect: active, Target: t, Op: op, Key: key})
	}
}

// trackDep implements spec section 4.5 step 3-4 of `track`: bit-based shouldTrack
// decision while the nesting depth is shallow enough to have a dedicated bit, falling
// back to a direct membership check beyond MaxTrackDepth. It reports whether e was newly
// subscribed to dep.
func trackDep(e *ReactiveEffect, dep *Dep) bool {
	depth := currentDepth()

	var shouldTrack bool
	if depth >= 1 && depth <= MaxTrackDepth {
		bit := uint32(1) << uint(depth-1)
		if dep.n&bit == 0 {
			dep.n |= bit
			shouldTrack = dep.w&bit == 0
		} else {
			shouldTrack = false
		}
	} else {
		shouldTrack = !dep.has(e)
	}

	if shouldTrack {
		dep.add(e)
		e.deps = append(e.deps, dep)
		if Debug {
			assertBidirectional(e, dep)
		}
	}
	return shouldTrack
}

// TrackEvent is the dev-mode record passed to an effect's onTrack hook (spec section 6).
type TrackEvent struct {
	Effect *ReactiveEffect
	Target Target
	Op     TrackOp
	Key    Key
}

// TriggerEvent is the dev-mode record passed to an effect's onTrigger hook.
type TriggerEvent struct {
	Effect   *ReactiveEffect
	Target   Target
	Op       TriggerOp
	Key      Key
	NewValue any
	OldValue any
}
