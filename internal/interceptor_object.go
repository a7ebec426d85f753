package internal

import "fmt"

// Get implements spec section 4.2's get trap for an Object-backed Proxy.
func (p *Proxy) Get(key string) any {
	o := p.target.(*Object)

	res := o.rawGet(key)

	if !p.IsReadonly() {
		Track(o, OpGet, key)
	}

	return wrapRead(p.mode, res, false)
}

// Has implements spec section 4.2's has trap.
func (p *Proxy) Has(key string) bool {
	o := p.target.(*Object)

	Track(o, OpHas, key)
	return o.rawHas(key)
}

// Keys implements spec section 4.2's ownKeys trap: tracking ITERATE_KEY, then
// forwarding to the raw key list.
func (p *Proxy) Keys() []string {
	o := p.target.(*Object)

	Track(o, OpIterate, IterateKey)
	return o.RawKeys()
}

// Set implements spec section 4.2's set trap, including the readonly no-op variant and
// the Ref-forwarding special case.
func (p *Proxy) Set(key string, value any) bool {
	o := p.target.(*Object)

	if p.IsReadonly() {
		DevWarn("reactive: set on readonly object field %q failed", key)
		return true
	}

	newValue := unwrapWrite(p.mode, value)

	if !p.mode.shallow() {
		if oldRef, ok := o.rawGet(key).(RefHandle); ok {
			if _, isRef := value.(RefHandle); !isRef {
				oldRef.RawWrite(newValue)
				return true
			}
		}
	}

	old := o.rawGet(key)
	isNew := o.rawSet(key, newValue)

	if isNew {
		Trigger(o, OpAdd, key, newValue, nil)
	} else if !isEqual(old, newValue) {
		Trigger(o, OpSet, key, newValue, old)
	}

	return true
}

// Delete implements spec section 4.2's deleteProperty trap.
func (p *Proxy) Delete(key string) bool {
	o := p.target.(*Object)

	if p.IsReadonly() {
		DevWarn("reactive: delete of readonly object field %q failed", key)
		return true
	}

	had, old := o.rawDelete(key)
	if had {
		Trigger(o, OpDelete, key, nil, old)
	}
	return true
}

func (p *Proxy) String() string {
	return fmt.Sprintf("Proxy(%v, mode=%d)", p.target.Header().kind, p.mode)
}
