// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

// Monad operations for Body.
//
// Minimal definition: Return (see body.go) and Bind are necessary and
// sufficient. Map and Then are derived operations kept as optimizations to
// avoid intermediate closure allocations, grounded on the teacher's
// monad.go.

// Bind sequences two bodies (monadic bind). It runs m, then passes the
// result to f to get a new body.
func Bind[A, B any](m Body[A], f func(A) Body[B]) Body[B] {
	return func(k func(B) Step) Step {
		return m(func(a A) Step {
			return f(a)(k)
		})
	}
}

// Map applies a pure function to the result of a body.
//
// Map is equivalent to Bind(m, compose(Return, f)) but avoids the
// intermediate Return closure, making it the preferred choice when the
// transformation is pure (does not itself suspend).
func Map[A, B any](m Body[A], f func(A) B) Body[B] {
	return func(k func(B) Step) Step {
		return m(func(a A) Step {
			return k(f(a))
		})
	}
}

// Then sequences two bodies, discarding the first result. This is more
// efficient than Bind when the second computation does not depend on the
// first result.
func Then[A, B any](m Body[A], n Body[B]) Body[B] {
	return func(k func(B) Step) Step {
		return m(func(_ A) Step {
			return n(k)
		})
	}
}

// Discard converts a Body[A] into a Body[Unit] that runs it for effect only,
// ignoring the produced value. Used to normalize heterogeneous awaitables
// into the uniform shape [AwaitAll] and hook-list invocation expect.
func Discard[A any](m Body[A]) Body[Unit] {
	return Map(m, func(A) Unit { return Unit{} })
}
