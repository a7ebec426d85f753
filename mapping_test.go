package reactive_test

import (
	"testing"

	"github.com/lucidgraph/reactive"
	"github.com/stretchr/testify/assert"
)

func TestMappingBasicOps(t *testing.T) {
	m := reactive.NewMapping()

	m.Set("a", 1)
	assert.True(t, m.Has("a"))
	assert.Equal(t, 1, m.Size())
	assert.Equal(t, 1, reactive.MapGet[int](m, "a"))

	assert.True(t, m.Delete("a"))
	assert.False(t, m.Has("a"))
	assert.False(t, m.Delete("a"))
}

func TestMappingForEachTracksShape(t *testing.T) {
	m := reactive.NewMapping()
	m.Set("a", 1)

	runs := 0
	var seen int
	reactive.Effect(func() {
		runs++
		seen = 0
		m.ForEach(func(_, v any) { seen += v.(int) })
	})
	assert.Equal(t, 1, runs)
	assert.Equal(t, 1, seen)

	m.Set("b", 2)
	assert.Equal(t, 2, runs)
	assert.Equal(t, 3, seen)
}

func TestMappingKeysIgnoresValueOnlySet(t *testing.T) {
	m := reactive.NewMapping()
	m.Set("a", 1)

	runs := 0
	reactive.Effect(func() {
		runs++
		m.Keys()
	})
	assert.Equal(t, 1, runs)

	// overwriting an existing key's value doesn't change the key set
	m.Set("a", 2)
	assert.Equal(t, 1, runs)

	m.Set("b", 3)
	assert.Equal(t, 2, runs)
}

func TestMappingClear(t *testing.T) {
	m := reactive.NewMapping()
	m.Set("a", 1)
	m.Set("b", 2)

	m.Clear()
	assert.Equal(t, 0, m.Size())
	assert.False(t, m.Has("a"))
}
