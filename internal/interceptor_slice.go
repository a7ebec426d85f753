package internal

// GetIndex implements spec section 4.2's get trap for a Slice-backed Proxy. isSliceIndex
// tells wrapRead to preserve Ref identity for array-of-refs (spec's one exception to
// ref-unwrapping).
func (p *Proxy) GetIndex(i int) any {
	s := p.target.(*Slice)

	res, _ := s.rawGet(i)

	if !p.IsReadonly() {
		Track(s, OpGet, i)
	}

	return wrapRead(p.mode, res, true)
}

func (p *Proxy) HasIndex(i int) bool {
	s := p.target.(*Slice)
	Track(s, OpHas, i)
	_, ok := s.rawGet(i)
	return ok
}

// Len implements reading .length: tracked against the synthetic "length" key.
func (p *Proxy) Len() int {
	s := p.target.(*Slice)
	Track(s, OpIterate, LengthKey)
	return s.rawLen()
}

// SetIndex implements spec section 4.2's set trap for a single index write.
func (p *Proxy) SetIndex(i int, value any) bool {
	s := p.target.(*Slice)

	if p.IsReadonly() {
		DevWarn("reactive: set on readonly slice index %d failed", i)
		return true
	}

	newValue := unwrapWrite(p.mode, value)

	if !p.mode.shallow() {
		if old, ok := s.rawGet(i); ok {
			if oldRef, isRef := old.(RefHandle); isRef {
				if _, newIsRef := value.(RefHandle); !newIsRef {
					oldRef.RawWrite(newValue)
					return true
				}
			}
		}
	}

	old, hadKey := s.rawGet(i)
	wasNew := !s.rawSet(i, newValue)
	_ = wasNew

	if !hadKey {
		Trigger(s, OpAdd, i, newValue, nil)
	} else if !isEqual(old, newValue) {
		Trigger(s, OpSet, i, newValue, old)
	}

	return true
}

// DeleteIndex implements the generic deleteProperty trap applied to a sequence index:
// it nils the slot without shrinking the slice (mirroring JS `delete arr[i]`).
func (p *Proxy) DeleteIndex(i int) bool {
	s := p.target.(*Slice)

	if p.IsReadonly() {
		DevWarn("reactive: delete on readonly slice index %d failed", i)
		return true
	}

	old, had := s.rawGet(i)
	if had {
		s.rawSet(i, nil)
		Trigger(s, OpDelete, i, nil, old)
	}
	return true
}

// SetLength implements a direct `.length =` assignment: spec section 8 scenario 3
// (shrinking a slice invalidates every index dep at or beyond the new length).
func (p *Proxy) SetLength(n int) bool {
	s := p.target.(*Slice)

	if p.IsReadonly() {
		DevWarn("reactive: set length on readonly slice failed")
		return true
	}

	old := s.rawLen()
	if old == n {
		return true
	}

	s.rawSetLength(n)
	Trigger(s, OpSet, LengthKey, n, old)
	return true
}

// Push implements the length-mutating array method wrapper of spec section 4.2:
// tracking is paused while the method reads the current length internally, so it cannot
// create a self-dependency, then resumed for the caller.
func (p *Proxy) Push(values ...any) int {
	s := p.target.(*Slice)

	PauseTracking()
	defer ResetTracking()

	raw := make([]any, len(values))
	for i, v := range values {
		raw[i] = unwrapWrite(p.mode, v)
	}

	before := s.rawSnapshot()
	s.rawSplice(len(before), 0, raw...)
	p.diffAndTrigger(s, before)

	return s.rawLen()
}

func (p *Proxy) Pop() (any, bool) {
	s := p.target.(*Slice)

	PauseTracking()
	defer ResetTracking()

	before := s.rawSnapshot()
	if len(before) == 0 {
		return nil, false
	}

	removed := s.rawSplice(len(before)-1, 1)
	p.diffAndTrigger(s, before)

	return removed[0], true
}

func (p *Proxy) Shift() (any, bool) {
	s := p.target.(*Slice)

	PauseTracking()
	defer ResetTracking()

	before := s.rawSnapshot()
	if len(before) == 0 {
		return nil, false
	}

	removed := s.rawSplice(0, 1)
	p.diffAndTrigger(s, before)

	return removed[0], true
}

func (p *Proxy) Unshift(values ...any) int {
	s := p.target.(*Slice)

	PauseTracking()
	defer ResetTracking()

	raw := make([]any, len(values))
	for i, v := range values {
		raw[i] = unwrapWrite(p.mode, v)
	}

	before := s.rawSnapshot()
	s.rawSplice(0, 0, raw...)
	p.diffAndTrigger(s, before)

	return s.rawLen()
}

func (p *Proxy) Splice(start, deleteCount int, values ...any) []any {
	s := p.target.(*Slice)

	PauseTracking()
	defer ResetTracking()

	raw := make([]any, len(values))
	for i, v := range values {
		raw[i] = unwrapWrite(p.mode, v)
	}

	before := s.rawSnapshot()
	removed := s.rawSplice(start, deleteCount, raw...)
	p.diffAndTrigger(s, before)

	return removed
}

// diffAndTrigger fires one Add/Set trigger per index whose value changed or was newly
// introduced, then a length trigger if the length itself changed — the length-mutating
// methods' Go stand-in for the per-[[Set]]-call triggers the real engine's native
// splice/push/etc. implementations produce for free by operating through the proxy.
func (p *Proxy) diffAndTrigger(s *Slice, before []any) {
	after := s.rawSnapshot()

	max := len(before)
	if len(after) > max {
		max = len(after)
	}

	for i := 0; i < max && i < len(after); i++ {
		var oldVal any
		hadOld := i < len(before)
		if hadOld {
			oldVal = before[i]
		}

		if !hadOld {
			Trigger(s, OpAdd, i, after[i], nil)
		} else if !isEqual(oldVal, after[i]) {
			Trigger(s, OpSet, i, after[i], oldVal)
		}
	}

	if len(after) != len(before) {
		Trigger(s, OpSet, LengthKey, len(after), len(before))
	}
}

// Includes, IndexOf and LastIndexOf implement spec section 4.2's identity-sensitive
// query wrapper: track every current index (so a write to any of them, or a pop/shrink
// that removes one, invalidates the result; the length itself is not tracked, so a push
// that only appends does not), run
// the raw search, and on a "not found" result retry once with the raw (proxy-unwrapped)
// needle, since the slice may store raw values while the caller searched with a proxy
// (or vice versa).
func (p *Proxy) Includes(needle any) bool {
	idx := p.IndexOf(needle)
	return idx >= 0
}

func (p *Proxy) IndexOf(needle any) int {
	s := p.target.(*Slice)

	n := s.rawLen()
	for i := 0; i < n; i++ {
		Track(s, OpGet, i)
	}

	if idx := rawIndexOf(s, needle); idx >= 0 {
		return idx
	}
	return rawIndexOf(s, ToRaw(needle))
}

func (p *Proxy) LastIndexOf(needle any) int {
	s := p.target.(*Slice)

	n := s.rawLen()
	for i := 0; i < n; i++ {
		Track(s, OpGet, i)
	}

	if idx := rawLastIndexOf(s, needle); idx >= 0 {
		return idx
	}
	return rawLastIndexOf(s, ToRaw(needle))
}

func rawIndexOf(s *Slice, needle any) int {
	items := s.rawSnapshot()
	for i, v := range items {
		if isEqual(v, needle) {
			return i
		}
	}
	return -1
}

func rawLastIndexOf(s *Slice, needle any) int {
	items := s.rawSnapshot()
	for i := len(items) - 1; i >= 0; i-- {
		if isEqual(items[i], needle) {
			return i
		}
	}
	return -1
}
