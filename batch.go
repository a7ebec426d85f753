package reactive

import "github.com/lucidgraph/reactive/internal"

// Batch runs fn with write-triggered effect re-runs coalesced: any effect created with
// the BatchScheduler() option defers its re-run until fn returns, then runs at most
// once, deduplicated by identity.
func Batch(fn func()) { internal.Batch(fn) }

// BatchScheduler returns an EffectOption installing a scheduler that defers to the
// nearest enclosing Batch on the calling goroutine, or runs the effect immediately if no
// Batch is active.
func BatchScheduler() EffectOption {
	return func(c *effectConfig) {
		c.effect.Scheduler = internal.BatchScheduler(c.effect)
	}
}
