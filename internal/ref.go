package internal

// RefCell is the non-generic engine representation of a Ref (spec section 3/4.7): a
// single-slot observable cell. The public package's generic Ref[T] wraps one of these
// and performs the type assertions at its API boundary. RefCell satisfies Target itself
// (its header's address is the DepRegistry identity for its one synthetic key,
// refValueKey) so it reuses the same track/trigger machinery as every other target
// instead of keeping a private Dep.
type RefCell struct {
	header targetHeader

	value   any
	shallow bool
}

var refValueKey Key = refKeySentinel(0)

type refKeySentinel int

// NewRefCell constructs a cell holding initial, deep-wrapping it immediately unless
// shallow is set (spec section 4.7's "deep-wrap policy").
func NewRefCell(initial any, shallow bool) *RefCell {
	c := &RefCell{header: targetHeader{kind: KindRef}, shallow: shallow}
	c.value = c.wrapForStorage(initial)
	Register(c)
	return c
}

func (c *RefCell) Header() *targetHeader { return &c.header }

func (c *RefCell) wrapForStorage(v any) any {
	if c.shallow {
		return v
	}
	if t, ok := v.(Target); ok {
		if p, ok := WrapTarget(t, ModeReactive); ok {
			return p
		}
	}
	return v
}

// Read tracks the active effect against this cell's Dep and returns the current value.
func (c *RefCell) Read() any {
	Track(c, OpGet, refValueKey)
	return c.value
}

// Write stores v (NaN-aware changed check, spec section 3/4.7) and triggers this cell's
// Dep iff the value actually changed.
func (c *RefCell) Write(v any) {
	old := c.value
	next := c.wrapForStorage(v)

	if isEqual(ToRaw(old), ToRaw(next)) {
		return
	}

	c.value = next
	Trigger(c, OpSet, refValueKey, next, old)
}

// RawValue, RawWrite, RefDep, IsShallowRef implement the RefHandle interface the
// Object/Slice/Mapping interceptors use for the "assigning into a ref-valued field
// forwards to the ref" special case (spec section 4.2's set trap).
func (c *RefCell) RawValue() any      { return c.value }
func (c *RefCell) RawWrite(v any)     { c.Write(v) }
func (c *RefCell) RefDep() *Dep       { return Registry().Dep(c, refValueKey) }
func (c *RefCell) IsShallowRef() bool { return c.shallow }
