package internal

// Trigger notifies every effect subscribed to the locations (target, op, key) affects,
// implementing the three-step resolution of spec section 4.4.
func Trigger(t Target, op TriggerOp, key Key, newValue, oldValue any) {
	var deps []*Dep

	if op == OpClear {
		deps = Registry().AllDeps(t)
	} else {
		isSlice := t.Header().kind == KindSlice

		if isSlice && key == LengthKey {
			if d := Registry().DepIfPresent(t, LengthKey); d != nil {
				deps = append(deps, d)
			}
			// every integer-index dep >= the new length was shrunk away
			newLen, _ := newValue.(int)
			deps = append(deps, indexDepsAtOrAbove(t, newLen)...)
		} else {
			if key != nil {
				if d := Registry().DepIfPresent(t, key); d != nil {
					deps = append(deps, d)
				}
			}

			isMapping := t.Header().kind == KindMapping

			switch op {
			case OpAdd:
				if !isSlice {
					if d := Registry().DepIfPresent(t, IterateKey); d != nil {
						deps = append(deps, d)
					}
					if isMapping {
						if d := Registry().DepIfPresent(t, MapKeyIterateKey); d != nil {
							deps = append(deps, d)
						}
					}
				} else if _, ok := key.(int); ok {
					if d := Registry().DepIfPresent(t, LengthKey); d != nil {
						deps = append(deps, d)
					}
				}
			case OpDelete:
				if !isSlice {
					if d := Registry().DepIfPresent(t, IterateKey); d != nil {
						deps = append(deps, d)
					}
					if isMapping {
						if d := Registry().DepIfPresent(t, MapKeyIterateKey); d != nil {
							deps = append(deps, d)
						}
					}
				}
			case OpSet:
				if isMapping {
					if d := Registry().DepIfPresent(t, IterateKey); d != nil {
						deps = append(deps, d)
					}
				}
			}
		}
	}

	fireAll(t, op, key, newValue, oldValue, dedupe(deps))
}

// indexDepsAtOrAbove finds every Dep registered for an integer key >= from (spec
// section 4.4's length-shrink clause). Slices rarely accumulate deep index deps, so a
// scan over the registered keys is fine.
func indexDepsAtOrAbove(t Target, from int) []*Dep {
	var out []*Dep
	for _, k := range Registry().keysFor(t) {
		if idx, ok := k.(int); ok && idx >= from {
			if d := Registry().DepIfPresent(t, k); d != nil {
				out = append(out, d)
			}
		}
	}
	return out
}

func dedupe(deps []*Dep) []*Dep {
	seen := make(map[*Dep]bool, len(deps))
	out := deps[:0]
	for _, d := range deps {
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}

func fireAll(t Target, op TriggerOp, key Key, newValue, oldValue any, deps []*Dep) {
	active := ActiveEffect()

	// flatten into one stable, deduplicated run list before firing anything, so an
	// effect firing from one Dep can't also re-enter from a second Dep mid-iteration.
	var toRun []*ReactiveEffect
	runSeen := make(map[*ReactiveEffect]bool)
	for _, d := range deps {
		for _, e := range d.snapshot() {
			if runSeen[e] {
				continue
			}
			runSeen[e] = true
			toRun = append(toRun, e)
		}
	}

	// a panic in one effect does not stop the others: the first one is re-raised once
	// every effect in the list has had its turn.
	var firstPanic any
	for _, e := range toRun {
		if e == active && !e.AllowRecurse {
			continue
		}
		if !e.Active {
			continue
		}

		if e.onTrigger != nil {
			e.onTrigger(TriggerEvent{Effect: e, Target: t, Op: op, Key: key, NewValue: newValue, OldValue: oldValue})
		}

		func() {
			defer func() {
				if r := recover(); r != nil && firstPanic == nil {
					firstPanic = r
				}
			}()
			if e.Scheduler != nil {
				e.Scheduler()
			} else {
				e.Run()
			}
		}()
	}
	if firstPanic != nil {
		panic(firstPanic)
	}
}
