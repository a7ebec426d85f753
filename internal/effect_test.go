package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReactiveEffectDiffsDepsAcrossRuns(t *testing.T) {
	o := NewObject(map[string]any{"branch": true, "a": 1, "b": 2})

	var readKey string
	e := NewReactiveEffect(func() {
		if o.rawGet("branch").(bool) {
			readKey = "a"
		} else {
			readKey = "b"
		}
		Track(o, OpGet, readKey)
	})
	e.Run()
	assert.Equal(t, "a", readKey)

	aDep := Registry().Dep(o, "a")
	bDep := Registry().Dep(o, "b")
	assert.True(t, aDep.has(e))
	assert.False(t, bDep.has(e))

	o.rawSet("branch", false)
	e.Run()
	assert.Equal(t, "b", readKey)
	assert.False(t, aDep.has(e), "switching branches must drop the stale dependency")
	assert.True(t, bDep.has(e))
}

func TestReactiveEffectRecoversPanicButStillCompacts(t *testing.T) {
	o := NewObject(map[string]any{"x": 1})

	e := NewReactiveEffect(func() {
		Track(o, OpGet, "x")
		panic("boom")
	})

	assert.Panics(t, func() { e.Run() })

	dep := Registry().Dep(o, "x")
	assert.True(t, dep.has(e), "the dependency read before the panic must still be recorded")
}

func TestReactiveEffectKeepsBidirectionalInvariantUnderDebug(t *testing.T) {
	Debug = true
	defer func() { Debug = false }()

	o := NewObject(map[string]any{"branch": true, "a": 1, "b": 2})

	e := NewReactiveEffect(func() {
		if o.rawGet("branch").(bool) {
			Track(o, OpGet, "a")
		} else {
			Track(o, OpGet, "b")
		}
	})

	assert.NotPanics(t, func() { e.Run() })
	o.rawSet("branch", false)
	assert.NotPanics(t, func() { e.Run() })
	assert.NotPanics(t, func() { e.Stop() })
}

func TestReactiveEffectStopDetachesAllDeps(t *testing.T) {
	o := NewObject(map[string]any{"x": 1})
	dep := Registry().Dep(o, "x")

	e := NewReactiveEffect(func() { Track(o, OpGet, "x") })
	e.Run()
	assert.True(t, dep.has(e))

	e.Stop()
	assert.False(t, dep.has(e))
	assert.False(t, e.Active)
}
