package reactive_test

import (
	"testing"

	"github.com/lucidgraph/reactive"
	"github.com/stretchr/testify/assert"
)

func TestComputedIsLazyAndMemoized(t *testing.T) {
	r := reactive.NewRef(2)

	computeRuns := 0
	c := reactive.NewComputed(func() int {
		computeRuns++
		return r.Read() * 10
	})
	assert.Equal(t, 0, computeRuns, "compute must not run before the first Read")

	assert.Equal(t, 20, c.Read())
	assert.Equal(t, 1, computeRuns)

	assert.Equal(t, 20, c.Read())
	assert.Equal(t, 1, computeRuns, "a second Read with no dependency change must not recompute")

	r.Write(3)
	assert.True(t, c.IsDirty())
	assert.Equal(t, 30, c.Read())
	assert.Equal(t, 2, computeRuns)
}

func TestComputedTriggersDependentEffect(t *testing.T) {
	r := reactive.NewRef(1)
	c := reactive.NewComputed(func() int { return r.Read() + 1 })

	runs := 0
	var seen int
	reactive.Effect(func() {
		runs++
		seen = c.Read()
	})
	assert.Equal(t, 1, runs)
	assert.Equal(t, 2, seen)

	r.Write(5)
	assert.Equal(t, 2, runs)
	assert.Equal(t, 6, seen)
}

func TestComputedStopDetaches(t *testing.T) {
	r := reactive.NewRef(1)
	c := reactive.NewComputed(func() int { return r.Read() })

	assert.Equal(t, 1, c.Read())
	c.Stop()

	r.Write(2)
	// the computed no longer observes r, so it stays stuck on its last value
	assert.Equal(t, 1, c.Read())
}
