package reactive

import (
	"errors"

	"github.com/lucidgraph/reactive/internal"
)

// EffectError is the type every panic escaping Effect's fn is wrapped in, so a caller
// who recovers around Effect/Runner.Run (or a write that re-runs the effect) can distinguish "the effect itself panicked"
// from an unrelated panic.
type EffectError = internal.EffectError

// AsEffectError reports whether err (or something it wraps) is an *EffectError,
// returning it if so.
func AsEffectError(err error) (*EffectError, bool) {
	var effErr *EffectError
	ok := errors.As(err, &effErr)
	return effErr, ok
}
