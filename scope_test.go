package reactive_test

import (
	"testing"

	"github.com/lucidgraph/reactive"
	"github.com/stretchr/testify/assert"
)

func TestScopeDisposeStopsEffects(t *testing.T) {
	r := reactive.NewRef(1)
	scope := reactive.NewScope()

	runs := 0
	scope.Run(func() {
		reactive.Effect(func() {
			runs++
			r.Read()
		})
	})
	assert.Equal(t, 1, runs)

	r.Write(2)
	assert.Equal(t, 2, runs)

	scope.Dispose()
	r.Write(3)
	assert.Equal(t, 2, runs, "disposing the scope must stop every effect it adopted")
}

func TestScopeOnCleanupRunsOnDispose(t *testing.T) {
	scope := reactive.NewScope()

	cleaned := false
	scope.OnCleanup(func() { cleaned = true })

	scope.Dispose()
	assert.True(t, cleaned)

	// idempotent: a second Dispose must not re-run cleanups
	cleaned = false
	scope.Dispose()
	assert.False(t, cleaned)
}

func TestScopeOnErrorCatchesPanic(t *testing.T) {
	scope := reactive.NewScope()

	var caught any
	scope.OnError(func(r any) { caught = r })

	scope.Run(func() {
		panic("scoped boom")
	})

	assert.Equal(t, "scoped boom", caught)
}
