// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

// Yield suspends the enclosing frame, handing v to whatever observes it
// (via [Handle.YieldedValue] or, for a delegating ancestor, verbatim
// forwarding — see [AwaitFrame]) without ending the body. Resuming the
// frame continues execution right after this point.
//
// The enclosing frame's own yield type Y must match the type parameter Y
// here; this is the same compile-time contract the host language enforces
// through template instantiation, realized here as a runtime type assertion
// at the point the yield reaches the frame that owns it (see
// frame.advanceBody) rather than as a static constraint threaded through
// every combinator, which would force Body to carry two type parameters
// throughout Bind/Then/Map. Well-typed programs never observe the
// difference.
func Yield[Y any](v Optional[Y]) Body[Unit] {
	return func(k func(Unit) Step) Step {
		m := acquireYieldMarker()
		if val, ok := v.Get(); ok {
			m.hasValue = true
			m.value = val
		}
		m.k = k
		return m
	}
}

// YieldValue is a convenience wrapper around Yield for the common case of
// yielding a present value.
func YieldValue[Y any](v Y) Body[Unit] {
	return Yield(Filled(v))
}
