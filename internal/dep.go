package internal

// Dep is the set of effects subscribed to one (target, key) location, plus the two
// bitfields effect.Run uses to diff this cycle's reads against last cycle's without
// clearing and re-adding the whole set. Bit i is "tracked at nesting depth i".
type Dep struct {
	// subsOrder preserves insertion order: trigger fires effects in the order they first
	// subscribed, per spec.md section 5 "Ordering".
	subsOrder []*ReactiveEffect
	subsIndex map[*ReactiveEffect]int

	w uint32 // "was tracked" — bit set if the effect at this depth had this dep last run
	n uint32 // "newly tracked" — bit set if tracked again this run
}

func newDep() *Dep {
	return &Dep{subsIndex: make(map[*ReactiveEffect]int)}
}

func (d *Dep) has(e *ReactiveEffect) bool {
	_, ok := d.subsIndex[e]
	return ok
}

func (d *Dep) add(e *ReactiveEffect) {
	if d.has(e) {
		return
	}
	d.subsIndex[e] = len(d.subsOrder)
	d.subsOrder = append(d.subsOrder, e)
}

func (d *Dep) remove(e *ReactiveEffect) {
	i, ok := d.subsIndex[e]
	if !ok {
		return
	}
	delete(d.subsIndex, e)
	d.subsOrder = append(d.subsOrder[:i], d.subsOrder[i+1:]...)
	for j := i; j < len(d.subsOrder); j++ {
		d.subsIndex[d.subsOrder[j]] = j
	}
}

func (d *Dep) isEmpty() bool {
	return len(d.subsOrder) == 0
}

// snapshot returns a stable copy of the current subscribers, so firing one effect that
// mutates d (e.g. by re-subscribing during its own run) cannot perturb the in-progress
// iteration — spec.md section 4.4 step 3, "snapshot into a new set".
func (d *Dep) snapshot() []*ReactiveEffect {
	out := make([]*ReactiveEffect, len(d.subsOrder))
	copy(out, d.subsOrder)
	return out
}
