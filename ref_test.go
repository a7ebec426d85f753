package reactive_test

import (
	"testing"

	"github.com/lucidgraph/reactive"
	"github.com/stretchr/testify/assert"
)

func TestRefReadWrite(t *testing.T) {
	r := reactive.NewRef(10)
	assert.Equal(t, 10, r.Read())

	r.Write(20)
	assert.Equal(t, 20, r.Read())
}

func TestRefEffectReRunsOnWrite(t *testing.T) {
	r := reactive.NewRef(1)

	runs := 0
	var seen int
	reactive.Effect(func() {
		runs++
		seen = r.Read()
	})
	assert.Equal(t, 1, runs)

	r.Write(2)
	assert.Equal(t, 2, runs)
	assert.Equal(t, 2, seen)

	r.Write(2) // unchanged
	assert.Equal(t, 2, runs)
}

func TestUnrefPassesThroughPlainValues(t *testing.T) {
	assert.Equal(t, 5, reactive.Unref[int](5))

	r := reactive.NewRef(7)
	assert.Equal(t, 7, reactive.Unref[int](r))
}

func TestIsRef(t *testing.T) {
	r := reactive.NewRef(1)
	assert.True(t, reactive.IsRef(r))
	assert.False(t, reactive.IsRef(1))
}

func TestRefForwardingThroughObjectField(t *testing.T) {
	inner := reactive.NewRef(1)
	o := reactive.NewObject(map[string]any{"count": inner})

	// reading the field unwraps the ref automatically
	assert.Equal(t, 1, reactive.Get[int](o, "count"))

	// assigning a plain value into a ref-valued field forwards to the ref's Write,
	// it does not replace the ref itself
	o.Set("count", 5)
	assert.Equal(t, 5, inner.Read())
	assert.Equal(t, 5, reactive.Get[int](o, "count"))
}

func TestShallowRefDoesNotDeepWrapNestedObject(t *testing.T) {
	inner := reactive.NewObject(map[string]any{"v": 1})
	r := reactive.NewShallowRef[any](inner.Raw())

	assert.False(t, reactive.IsReactive(r.Read()))
}
