package reactive_test

import (
	"testing"

	"github.com/lucidgraph/reactive"
	"github.com/stretchr/testify/assert"
)

func TestSliceIndexReadWrite(t *testing.T) {
	s := reactive.NewSlice([]any{1, 2, 3})

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 2, reactive.Index[int](s, 1))

	s.SetIndex(1, 20)
	assert.Equal(t, 20, reactive.Index[int](s, 1))
}

func TestSlicePushTriggersLengthEffect(t *testing.T) {
	s := reactive.NewSlice([]any{1})

	var lastLen int
	runs := 0
	reactive.Effect(func() {
		runs++
		lastLen = s.Len()
	})
	assert.Equal(t, 1, runs)
	assert.Equal(t, 1, lastLen)

	// Push fires an Add for index 1, an Add for index 2 and a length change; each of the
	// three reaches the length dep, and the engine does not batch them.
	s.Push(2, 3)
	assert.Equal(t, 4, runs)
	assert.Equal(t, 3, lastLen)
}

func TestSliceSetLengthShrinkInvalidatesIndexDeps(t *testing.T) {
	s := reactive.NewSlice([]any{1, 2, 3, 4})

	runs := 0
	reactive.Effect(func() {
		runs++
		reactive.Index[int](s, 3)
	})
	assert.Equal(t, 1, runs)

	s.SetLength(2)
	assert.Equal(t, 2, runs)

	// growing the length only fires index deps at or beyond the new length (4), so the
	// dep on index 3 is not fired
	s.SetLength(4)
	assert.Equal(t, 2, runs)
}

func TestSliceSpliceDiffsIndividualIndices(t *testing.T) {
	s := reactive.NewSlice([]any{1, 2, 3})

	removed := s.Splice(1, 1, 20, 30)
	assert.Equal(t, []any{2}, removed)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 20, reactive.Index[int](s, 1))
	assert.Equal(t, 30, reactive.Index[int](s, 2))
	assert.Equal(t, 3, reactive.Index[int](s, 3))
}

func TestSlicePopShiftOnEmpty(t *testing.T) {
	s := reactive.NewSlice(nil)

	_, ok := s.Pop()
	assert.False(t, ok)

	_, ok = s.Shift()
	assert.False(t, ok)
}

func TestSliceIncludesIndexOf(t *testing.T) {
	s := reactive.NewSlice([]any{"a", "b", "c"})

	assert.True(t, s.Includes("b"))
	assert.Equal(t, 1, s.IndexOf("b"))
	assert.Equal(t, -1, s.IndexOf("z"))
	assert.Equal(t, 2, s.LastIndexOf("c"))
}

func TestReadonlySliceRejectsMutation(t *testing.T) {
	s := reactive.NewReadonlySlice([]any{1, 2})

	s.SetIndex(0, 99)
	assert.Equal(t, 1, reactive.Index[int](s, 0))
}
