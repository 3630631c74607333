// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

// AwaitAll starts every item and suspends the caller until all of them have
// completed, in any order. Completion order does not affect the result:
// whichever item finishes last wakes the caller exactly once, regardless of
// which external suspension points the items were waiting on or the order
// those points are resumed in.
//
// Unlike [AwaitFrame], items do not share the caller's yield stream — there
// is no single delegation target for a fan-out of many frames to forward
// yields to, so a value an item yields is simply never observed. Items are
// expected to suspend only on [SuspensionPoint]s or on other non-yielding
// frames.
//
// The implementation needs no atomics despite driving several frames: all
// scheduling in this package happens on the single goroutine that calls
// Start/Resume, so the completion counter and the arming flag below are
// plain, unsynchronized state.
func AwaitAll[Y any](items []Body[Unit]) Body[Unit] {
	return func(k func(Unit) Step) Step {
		if len(items) == 0 {
			return k(Unit{})
		}

		var sentinel SuspensionPoint[Unit]
		remaining := len(items)
		armed := false

		onDone := func() {
			remaining--
			if remaining == 0 && armed {
				sentinel.Resume(Unit{})
			}
		}

		for _, item := range items {
			h := NewHandle[Unit, Y](Then(item, sideEffect(onDone)))
			h.Start()
		}

		if remaining == 0 {
			return k(Unit{})
		}
		armed = true
		return AwaitPoint[Unit](&sentinel)(func(Unit) Step { return k(Unit{}) })
	}
}
