package reactive_test

import (
	"testing"

	"github.com/lucidgraph/reactive"
	"github.com/stretchr/testify/assert"
)

func TestSetBasicOps(t *testing.T) {
	s := reactive.NewSet()

	s.Add("a")
	assert.True(t, s.Has("a"))
	assert.Equal(t, 1, s.Size())

	assert.True(t, s.Delete("a"))
	assert.False(t, s.Has("a"))
}

func TestSetForEachTracksShape(t *testing.T) {
	s := reactive.NewSet()
	s.Add("a")

	runs := 0
	var count int
	reactive.Effect(func() {
		runs++
		count = 0
		s.ForEach(func(any) { count++ })
	})
	assert.Equal(t, 1, runs)
	assert.Equal(t, 1, count)

	s.Add("b")
	assert.Equal(t, 2, runs)
	assert.Equal(t, 2, count)

	// re-adding an existing member is not a change
	s.Add("b")
	assert.Equal(t, 2, runs)
}

func TestSetClear(t *testing.T) {
	s := reactive.NewSet()
	s.Add("a")
	s.Add("b")

	s.Clear()
	assert.Equal(t, 0, s.Size())
}
