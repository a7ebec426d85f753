package internal

// ComputedCell is the non-generic engine representation of a Computed (spec section
// 3/4.8): a lazily-evaluated Ref whose value is produced by a lazy ReactiveEffect with a
// custom scheduler that marks the computed dirty and triggers its own Dep instead of
// recomputing eagerly.
type ComputedCell struct {
	cell  *RefCell
	dirty bool

	effect  *ReactiveEffect
	compute func() any
}

// NewComputedCell builds a computed with no initial run (lazy, per spec) — compute only
// runs the first time Read is called.
func NewComputedCell(compute func() any) *ComputedCell {
	c := &ComputedCell{
		cell:    &RefCell{header: targetHeader{kind: KindRef}},
		dirty:   true,
		compute: compute,
	}
	Register(c.cell)

	c.effect = NewReactiveEffect(func() {
		c.cell.value = c.cell.wrapForStorage(c.compute())
	})

	c.effect.Scheduler = func() {
		if !c.dirty {
			c.dirty = true
			// Notify downstream without recomputing — spec section 4.8's "invalidation
			// is pull-based and at-most-once per write."
			Trigger(c.cell, OpSet, refValueKey, nil, nil)
		}
	}

	if s := CurrentScope(); s != nil {
		s.Adopt(c)
	}

	return c
}

// Read recomputes iff dirty, then tracks the outer Dep and returns the memoized value.
func (c *ComputedCell) Read() any {
	if c.dirty {
		c.effect.Run()
		c.dirty = false
	}
	Track(c.cell, OpGet, refValueKey)
	return c.cell.value
}

func (c *ComputedCell) RawValue() any      { return c.Read() }
func (c *ComputedCell) RawWrite(v any)     {} // computed refs are not writable
func (c *ComputedCell) RefDep() *Dep       { return Registry().Dep(c.cell, refValueKey) }
func (c *ComputedCell) IsShallowRef() bool { return false }

// Stop disposes the underlying effect, detaching the computed from every upstream it
// observed.
func (c *ComputedCell) Stop() { c.effect.Stop() }

// IsDirty reports whether the computed will recompute on its next Read (test/diagnostic
// use).
func (c *ComputedCell) IsDirty() bool { return c.dirty }
