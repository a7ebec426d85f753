package internal

// TrackOp identifies the kind of read that caused a dependency to be recorded.
type TrackOp int

const (
	OpGet TrackOp = iota
	OpHas
	OpIterate
)

func (op TrackOp) String() string {
	switch op {
	case OpGet:
		return "get"
	case OpHas:
		return "has"
	case OpIterate:
		return "iterate"
	default:
		return "unknown"
	}
}

// TriggerOp identifies the kind of write that fired a dependency.
type TriggerOp int

const (
	OpSet TriggerOp = iota
	OpAdd
	OpDelete
	OpClear
)

func (op TriggerOp) String() string {
	switch op {
	case OpSet:
		return "set"
	case OpAdd:
		return "add"
	case OpDelete:
		return "delete"
	case OpClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Key identifies a single observable location within a target: a string field name,
// an int slice index, the synthetic "length" key, or one of the two sentinels below.
// Sentinels use an unexported type so a user-supplied string/int key can never collide
// with them.
type Key = any

type sentinelKey int

const (
	iterateKeySentinel sentinelKey = iota
	mapKeyIterateSentinel
)

// IterateKey stands in for "observed the shape/iteration order of the target" — used to
// trigger effects that ran ownKeys/Range/ForEach over a target whose key set changed.
var IterateKey Key = iterateKeySentinel

// MapKeyIterateKey stands in for "observed the key set only" of a Mapping — used so that
// reading values via keys() doesn't over-trigger on a plain value SET that didn't add or
// remove a key.
var MapKeyIterateKey Key = mapKeyIterateSentinel

// LengthKey is the synthetic key Slices use to track/trigger their own length.
const LengthKey Key = "length"

// isEqual is the NaN-aware, identity-style equality spec.md requires for change
// detection: two NaNs compare equal (so writing NaN over NaN is not a change), but it is
// otherwise plain Go equality over comparable dynamic values.
func isEqual(a, b any) (equal bool) {
	af, aok := a.(float64)
	bf, bok := b.(float64)
	if aok && bok && af != af && bf != bf {
		return true // both NaN
	}

	// a, b may hold dynamic types Go cannot compare with == (slices, maps, funcs);
	// treat those as always-changed rather than panicking the caller's write.
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	return a == b
}
