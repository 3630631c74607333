// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

// Step is a type-erased intermediate result produced while driving a [Body]:
// either a final value of the body's own result type, or one of the marker
// types (yield, child-delegation, suspension-point) recovered via type
// switch by [frame.advanceBody]/[frame.step]. This is the same "Resumed"
// convention the teacher uses for its own effect-suspension trampoline,
// renamed for this package's domain.
type Step = any

// Body represents a coroutine's computation in continuation-passing style.
// Body[A] computes a value of type A; its answer type is fixed to [Step]
// because a single trampoline must be able to drive frames of differing
// result types through one homogeneous loop.
//
// Grounded directly on the teacher's Cont[R, A] = func(k func(A) R) R, with
// R fixed to Step.
type Body[A any] func(k func(A) Step) Step

// Return lifts a pure value into a Body. The resulting computation
// immediately passes the value to its continuation.
func Return[A any](a A) Body[A] {
	return func(k func(A) Step) Step {
		return k(a)
	}
}

// Suspend creates a Body from a CPS function. This is the primitive
// constructor for bodies that need direct access to the continuation.
func Suspend[A any](f func(func(A) Step) Step) Body[A] {
	return Body[A](f)
}

// sideEffect wraps a side-effecting closure as a Body[Unit] that runs f and
// immediately continues. Used internally to thread plain bookkeeping (e.g.
// AwaitAll's completion counter) through the same CPS chain as suspending
// steps.
func sideEffect(f func()) Body[Unit] {
	return func(k func(Unit) Step) Step {
		f()
		return k(Unit{})
	}
}

// toStep is the identity continuation for the CPS entry point (Start, via
// frame.begin).
// A named generic function produces a static function value per type
// instantiation, avoiding the heap allocation an anonymous closure would
// incur — grounded on the teacher's toResumed.
func toStep[A any](a A) Step { return a }
