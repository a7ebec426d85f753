package internal

import "sync"

// Mapping is the Go stand-in for a "mapping" target (spec section 3/4.3): an unordered
// keyed collection accessed via method call rather than indexing, the figurative
// equivalent of a JS Map.
type Mapping struct {
	header targetHeader

	mu     sync.RWMutex
	data   map[any]any
	order  []any
	index  map[any]int
}

// NewMapping constructs a fresh, empty Mapping target.
func NewMapping() *Mapping {
	m := &Mapping{
		header: targetHeader{kind: KindMapping},
		data:   make(map[any]any),
		index:  make(map[any]int),
	}
	Register(m)
	return m
}

func (m *Mapping) Header() *targetHeader { return &m.header }

func (m *Mapping) rawHas(key any) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[key]
	return ok
}

func (m *Mapping) rawGet(key any) any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[key]
}

func (m *Mapping) rawSize() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// rawSet stores key=value, returning (isNew, old value).
func (m *Mapping) rawSet(key, value any) (isNew bool, old any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	old, had := m.data[key]
	if !had {
		m.index[key] = len(m.order)
		m.order = append(m.order, key)
	}
	m.data[key] = value
	return !had, old
}

func (m *Mapping) rawDelete(key any) (had bool, old any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	old, had = m.data[key]
	if !had {
		return false, nil
	}
	delete(m.data, key)

	i := m.index[key]
	delete(m.index, key)
	m.order = append(m.order[:i], m.order[i+1:]...)
	for j := i; j < len(m.order); j++ {
		m.index[m.order[j]] = j
	}
	return true, old
}

func (m *Mapping) rawClear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[any]any)
	m.order = nil
	m.index = make(map[any]int)
}

// rawEntries returns (key, value) pairs in insertion order.
func (m *Mapping) rawEntries() (keys, values []any) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys = append([]any(nil), m.order...)
	values = make([]any, len(keys))
	for i, k := range keys {
		values[i] = m.data[k]
	}
	return keys, values
}

// Set is the Go stand-in for a "set" target (spec section 3/4.3): an unordered keyed
// collection with no associated values, the figurative equivalent of a JS Set.
type Set struct {
	header targetHeader

	mu    sync.RWMutex
	data  map[any]struct{}
	order []any
	index map[any]int
}

// NewSet constructs a fresh, empty Set target.
func NewSet() *Set {
	s := &Set{
		header: targetHeader{kind: KindSet},
		data:   make(map[any]struct{}),
		index:  make(map[any]int),
	}
	Register(s)
	return s
}

func (s *Set) Header() *targetHeader { return &s.header }

func (s *Set) rawHas(v any) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[v]
	return ok
}

func (s *Set) rawSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// rawAdd inserts v, returning whether it was new.
func (s *Set) rawAdd(v any) (isNew bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, had := s.data[v]; had {
		return false
	}
	s.index[v] = len(s.order)
	s.order = append(s.order, v)
	s.data[v] = struct{}{}
	return true
}

func (s *Set) rawDelete(v any) (had bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, had = s.data[v]; !had {
		return false
	}
	delete(s.data, v)

	i := s.index[v]
	delete(s.index, v)
	s.order = append(s.order[:i], s.order[i+1:]...)
	for j := i; j < len(s.order); j++ {
		s.index[s.order[j]] = j
	}
	return true
}

func (s *Set) rawClear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[any]struct{})
	s.order = nil
	s.index = make(map[any]int)
}

func (s *Set) rawValues() []any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]any(nil), s.order...)
}
