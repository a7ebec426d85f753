package internal

// Collection interceptor (spec section 4.3): Mapping and Set are accessed via method
// call rather than indexing, so their traps are plain methods on the Proxy instead of
// Get/Set/Has/Delete overloads.

func (p *Proxy) MapGet(key any) any {
	m := p.target.(*Mapping)

	res := m.rawGet(key)
	if !p.IsReadonly() {
		Track(m, OpGet, key)
	}
	return wrapRead(p.mode, res, false)
}

func (p *Proxy) MapHas(key any) bool {
	m := p.target.(*Mapping)
	Track(m, OpHas, key)
	return m.rawHas(key)
}

func (p *Proxy) MapSize() int {
	m := p.target.(*Mapping)
	Track(m, OpIterate, IterateKey)
	return m.rawSize()
}

func (p *Proxy) MapSet(key, value any) bool {
	m := p.target.(*Mapping)

	if p.IsReadonly() {
		DevWarn("reactive: set on readonly mapping key %v failed", key)
		return true
	}

	newValue := unwrapWrite(p.mode, value)
	isNew, old := m.rawSet(key, newValue)

	if isNew {
		Trigger(m, OpAdd, key, newValue, nil)
	} else if !isEqual(old, newValue) {
		Trigger(m, OpSet, key, newValue, old)
	}
	return true
}

func (p *Proxy) MapDelete(key any) bool {
	m := p.target.(*Mapping)

	if p.IsReadonly() {
		DevWarn("reactive: delete on readonly mapping key %v failed", key)
		return true
	}

	had, old := m.rawDelete(key)
	if had {
		Trigger(m, OpDelete, key, nil, old)
	}
	return had
}

func (p *Proxy) MapClear() {
	m := p.target.(*Mapping)

	if p.IsReadonly() {
		DevWarn("reactive: clear on readonly mapping failed")
		return
	}

	m.rawClear()
	Trigger(m, OpClear, nil, nil, nil)
}

// MapForEach tracks ITERATE_KEY (the collection's whole shape) then visits every
// (key, value) pair with values passed through the same lazy-wrap rule as MapGet.
func (p *Proxy) MapForEach(visit func(key, value any)) {
	m := p.target.(*Mapping)

	Track(m, OpIterate, IterateKey)
	keys, values := m.rawEntries()
	for i, k := range keys {
		visit(k, wrapRead(p.mode, values[i], false))
	}
}

// MapKeys tracks MAP_KEY_ITERATE_KEY — the key-set-only iteration spec section 4.3
// distinguishes from a full ForEach, so a SET that only changes a value (not the key
// set) does not re-trigger a key-only iterator.
func (p *Proxy) MapKeys() []any {
	m := p.target.(*Mapping)

	Track(m, OpIterate, MapKeyIterateKey)
	keys, _ := m.rawEntries()
	return keys
}

func (p *Proxy) SetHas(value any) bool {
	s := p.target.(*Set)
	Track(s, OpHas, value)
	return s.rawHas(value)
}

func (p *Proxy) SetSize() int {
	s := p.target.(*Set)
	Track(s, OpIterate, IterateKey)
	return s.rawSize()
}

func (p *Proxy) SetAdd(value any) bool {
	s := p.target.(*Set)

	if p.IsReadonly() {
		DevWarn("reactive: add on readonly set failed")
		return true
	}

	raw := unwrapWrite(p.mode, value)
	if s.rawAdd(raw) {
		Trigger(s, OpAdd, raw, raw, nil)
	}
	return true
}

func (p *Proxy) SetDelete(value any) bool {
	s := p.target.(*Set)

	if p.IsReadonly() {
		DevWarn("reactive: delete on readonly set failed")
		return true
	}

	had := s.rawDelete(value)
	if had {
		Trigger(s, OpDelete, value, nil, value)
	}
	return had
}

func (p *Proxy) SetClear() {
	s := p.target.(*Set)

	if p.IsReadonly() {
		DevWarn("reactive: clear on readonly set failed")
		return
	}

	s.rawClear()
	Trigger(s, OpClear, nil, nil, nil)
}

func (p *Proxy) SetForEach(visit func(value any)) {
	s := p.target.(*Set)

	Track(s, OpIterate, IterateKey)
	for _, v := range s.rawValues() {
		visit(wrapRead(p.mode, v, false))
	}
}
