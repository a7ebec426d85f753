package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapTargetIsIdempotentPerMode(t *testing.T) {
	o := NewObject(map[string]any{"x": 1})

	p1, ok := WrapTarget(o, ModeReactive)
	assert.True(t, ok)
	p2, ok := WrapTarget(o, ModeReactive)
	assert.True(t, ok)
	assert.Same(t, p1, p2, "wrapping the same target in the same mode twice must return the same proxy")

	p3, ok := WrapTarget(o, ModeReadonly)
	assert.True(t, ok)
	assert.NotSame(t, p1, p3, "the four modes must be disjoint")
}

func TestMarkRawPreventsWrapping(t *testing.T) {
	o := NewObject(nil)
	MarkRaw(o)

	_, ok := WrapTarget(o, ModeReactive)
	assert.False(t, ok)
}

func TestFreezePreventsWrapping(t *testing.T) {
	o := NewObject(nil)
	Freeze(o)

	assert.True(t, IsFrozen(o))
	_, ok := WrapTarget(o, ModeReactive)
	assert.False(t, ok)
}

func TestToRawUnwrapsProxy(t *testing.T) {
	o := NewObject(nil)
	p, _ := WrapTarget(o, ModeReactive)

	assert.Same(t, o, ToRaw(p))
	assert.Equal(t, 5, ToRaw(5))
}
