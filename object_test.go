package reactive_test

import (
	"testing"

	"github.com/lucidgraph/reactive"
	"github.com/lucidgraph/reactive/internal"
	"github.com/stretchr/testify/assert"
)

func TestObjectGetSet(t *testing.T) {
	o := reactive.NewObject(map[string]any{"name": "ada"})

	assert.Equal(t, "ada", reactive.Get[string](o, "name"))
	assert.True(t, o.Has("name"))
	assert.False(t, o.Has("age"))

	o.Set("age", 30)
	assert.Equal(t, 30, reactive.Get[int](o, "age"))
	assert.ElementsMatch(t, []string{"name", "age"}, o.Keys())
}

func TestObjectEffectReRunsOnFieldChange(t *testing.T) {
	o := reactive.NewObject(map[string]any{"count": 0})

	runs := 0
	var seen int
	reactive.Effect(func() {
		runs++
		seen = reactive.Get[int](o, "count")
	})
	assert.Equal(t, 1, runs)
	assert.Equal(t, 0, seen)

	o.Set("count", 1)
	assert.Equal(t, 2, runs)
	assert.Equal(t, 1, seen)

	// writing the same value again is not a change
	o.Set("count", 1)
	assert.Equal(t, 2, runs)
}

func TestObjectDeleteTriggers(t *testing.T) {
	o := reactive.NewObject(map[string]any{"x": 1})

	runs := 0
	reactive.Effect(func() {
		runs++
		o.Has("x")
	})
	assert.Equal(t, 1, runs)

	o.Delete("x")
	assert.Equal(t, 2, runs)

	o.Delete("x") // already gone, no-op
	assert.Equal(t, 2, runs)
}

func TestReadonlyObjectRejectsWrites(t *testing.T) {
	o := reactive.NewReadonlyObject(map[string]any{"x": 1})

	o.Set("x", 2)
	assert.Equal(t, 1, reactive.Get[int](o, "x"))

	o.Delete("x")
	assert.True(t, o.Has("x"))
}

func TestShallowObjectDoesNotDeepWrapNested(t *testing.T) {
	inner := reactive.NewObject(map[string]any{"v": 1})
	o := reactive.NewShallowObject(map[string]any{"inner": inner.Raw()})

	got := reactive.Get[any](o, "inner")
	assert.False(t, reactive.IsReactive(got))
}

func TestReactiveObjectDeepWrapsNested(t *testing.T) {
	inner := reactive.NewObject(map[string]any{"v": 1})
	o := reactive.NewObject(map[string]any{"inner": inner.Raw()})

	got := reactive.Get[any](o, "inner")
	assert.True(t, reactive.IsReactive(got))
}

func TestNestedFieldReadIsUsableDirectly(t *testing.T) {
	inner := reactive.NewObject(map[string]any{"v": 1})
	o := reactive.NewObject(map[string]any{"inner": inner.Raw()})

	nested := reactive.Get[*reactive.Object](o, "inner")
	assert.Equal(t, 1, reactive.Get[int](nested, "v"))

	nested.Set("v", 2)
	assert.Equal(t, 2, reactive.Get[int](inner, "v"), "writing through the nested handle mutates the same underlying object")
}

func TestReactivePredicatesWorkOnPublicWrappers(t *testing.T) {
	o := reactive.NewObject(map[string]any{"x": 1})
	assert.True(t, reactive.IsReactive(o))
	assert.True(t, reactive.IsProxy(o))
	assert.False(t, reactive.IsReadonly(o))

	ro := o.AsReadonly()
	assert.True(t, reactive.IsReadonly(ro))
	assert.Same(t, o.Raw(), reactive.ToRaw(o).(*internal.Object), "ToRaw must unwrap a public wrapper, not just a bare internal.Proxy")
	assert.Same(t, o.Raw(), reactive.ToRaw(ro).(*internal.Object))
}

func TestReactiveFactoryEntryPoints(t *testing.T) {
	plain := map[string]any{"x": 1}
	v := reactive.Reactive(plain)
	o, ok := v.(*reactive.Object)
	assert.True(t, ok)
	assert.True(t, reactive.IsReactive(o))
	assert.Equal(t, 1, reactive.Get[int](o, "x"))

	ro := reactive.Readonly(o)
	assert.True(t, reactive.IsReadonly(ro))

	// Readonly never promotes back to mutable.
	assert.Same(t, ro, reactive.Reactive(ro))

	// scalars are not object-like: returned unchanged.
	assert.Equal(t, 42, reactive.Reactive(42))
}
