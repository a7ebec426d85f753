package reactive_test

import (
	"testing"

	"github.com/lucidgraph/reactive"
	"github.com/stretchr/testify/assert"
)

func TestEffectRunsImmediatelyThenOnChange(t *testing.T) {
	r := reactive.NewRef(1)

	runs := 0
	runner := reactive.Effect(func() {
		runs++
		r.Read()
	})
	assert.Equal(t, 1, runs)

	r.Write(2)
	assert.Equal(t, 2, runs)

	runner.Stop()
	r.Write(3)
	assert.Equal(t, 2, runs, "a stopped effect must not re-run")
}

func TestEffectWithCustomScheduler(t *testing.T) {
	r := reactive.NewRef(1)

	var scheduled int
	reactive.Effect(func() {
		r.Read()
	}, reactive.WithScheduler(func() { scheduled++ }))

	assert.Equal(t, 0, scheduled)
	r.Write(2)
	assert.Equal(t, 1, scheduled)
}

func TestUntrackHidesDependency(t *testing.T) {
	r := reactive.NewRef(1)

	runs := 0
	reactive.Effect(func() {
		runs++
		reactive.Untrack(func() int { return r.Read() })
	})
	assert.Equal(t, 1, runs)

	r.Write(2)
	assert.Equal(t, 1, runs, "a read inside Untrack must not create a dependency")
}

func TestEffectPanicWrappedInEffectError(t *testing.T) {
	defer func() {
		r := recover()
		effErr, ok := r.(*reactive.EffectError)
		assert.True(t, ok)
		assert.Equal(t, "boom", effErr.Cause)
	}()

	reactive.Effect(func() {
		panic("boom")
	})
}
