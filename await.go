// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

// AwaitFrame suspends the caller to drive child to completion, forwarding
// every value child yields (as a Y, the same yield type as the caller's own
// enclosing frame) until child returns, at which point AwaitFrame resumes
// with child's returned value.
//
// If, while driving child, child turns out to be transitively blocked on a
// [SuspensionPoint] (because child itself awaited another frame that
// awaited the point, arbitrarily deep), the point is re-targeted to the
// caller's own frame before AwaitFrame suspends. This is what lets a single
// external [SuspensionPoint.Resume] call wake the outermost frame directly,
// cascading the handle from the innermost leaf up through every level of
// delegation in one step, rather than requiring each intermediate frame to
// be separately resumed to propagate the wake-up upward.
//
// For the duration of the await, the caller holds its own reference to
// child (via [Handle.Clone]), released (via [Handle.Close]) once child
// finishes — so child's RefCount reflects being awaited as a callee, on
// top of whatever references the caller of AwaitFrame already held.
func AwaitFrame[R, Y any](child Handle[R, Y]) Body[R] {
	return func(k func(R) Step) Step {
		held := child.Clone()
		m := acquireCallMarker()
		m.callee = held.f
		m.release = func() { held.Close() }
		m.k = func(s Step) Step { return k(s.(R)) }
		return m
	}
}
