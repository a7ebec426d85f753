package internal

import "fmt"

// Debug gates the bidirectional dep/effect invariant checks below. It defaults to off
// so production builds pay nothing for them; the package's own tests flip it on.
var Debug = false

// assertBidirectional checks invariant 1 of spec section 3: e is a member of dep's subs
// iff dep is a member of e's deps. A violation here means the engine has a bug, never
// that the caller misused the API (spec section 7's closing paragraph) — so this panics
// rather than returning an error.
func assertBidirectional(e *ReactiveEffect, d *Dep) {
	if !Debug {
		return
	}

	inDep := d.has(e)
	inEffect := false
	for _, dd := range e.deps {
		if dd == d {
			inEffect = true
			break
		}
	}

	if inDep != inEffect {
		panic(fmt.Sprintf("reactive: bidirectional dep invariant violated (inDep=%v inEffect=%v)", inDep, inEffect))
	}
}
