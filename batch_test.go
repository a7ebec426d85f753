package reactive_test

import (
	"testing"

	"github.com/lucidgraph/reactive"
	"github.com/stretchr/testify/assert"
)

func TestBatchCoalescesRuns(t *testing.T) {
	a := reactive.NewRef(1)
	b := reactive.NewRef(2)

	runs := 0
	reactive.Effect(func() {
		runs++
		a.Read()
		b.Read()
	}, reactive.BatchScheduler())
	assert.Equal(t, 1, runs)

	reactive.Batch(func() {
		a.Write(10)
		b.Write(20)
	})
	assert.Equal(t, 2, runs, "two writes inside one Batch must coalesce into a single re-run")
}

func TestBatchSchedulerRunsImmediatelyOutsideBatch(t *testing.T) {
	a := reactive.NewRef(1)

	runs := 0
	reactive.Effect(func() {
		runs++
		a.Read()
	}, reactive.BatchScheduler())
	assert.Equal(t, 1, runs)

	a.Write(2)
	assert.Equal(t, 2, runs, "without an enclosing Batch, the scheduler runs the effect right away")
}

func TestNestedBatchFlushesOnlyOnOutermostReturn(t *testing.T) {
	a := reactive.NewRef(1)

	runs := 0
	reactive.Effect(func() {
		runs++
		a.Read()
	}, reactive.BatchScheduler())
	assert.Equal(t, 1, runs)

	reactive.Batch(func() {
		reactive.Batch(func() {
			a.Write(2)
		})
		assert.Equal(t, 1, runs, "the inner Batch returning must not flush yet")
	})
	assert.Equal(t, 2, runs)
}
