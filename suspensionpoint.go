// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

// pointTarget is the arming surface a pointMarker needs from a
// SuspensionPoint[T], with T erased. It extends retargetable (used by the
// wait-for-callee procedure in frame.go) with the one-time arm operation.
type pointTarget interface {
	retargetable
	arm(self resumer, msg *Step)
}

// SuspensionPoint is an external, single-shot wake-up channel: some caller
// outside the coroutine runtime holds a *SuspensionPoint[T] and calls
// [SuspensionPoint.Resume] once a result (or [Unit], for a value-less
// point) becomes available. The zero value is an empty, unarmed point
// ready to be awaited.
//
// A SuspensionPoint is not safe for concurrent use; like [HookList], this
// mirrors the teacher's single-threaded, cooperative scheduling model (see
// doc.go).
type SuspensionPoint[T any] struct {
	handle resumer
	msg    *Step
}

// Empty reports whether the point is currently unarmed.
func (p *SuspensionPoint[T]) Empty() bool {
	return p.handle == nil
}

// Reset clears the point back to its unarmed zero state. Fields are
// unexported, so this replaces the host language's `p = SuspensionPoint{}`
// idiom.
func (p *SuspensionPoint[T]) Reset() {
	p.handle = nil
	p.msg = nil
}

func (p *SuspensionPoint[T]) arm(self resumer, msg *Step) {
	if p.handle != nil {
		panic("promise: suspension point armed twice")
	}
	p.handle = self
	p.msg = msg
}

func (p *SuspensionPoint[T]) retarget(to resumer) {
	p.handle = to
}

// Resume delivers v to whichever frame is (possibly transitively) waiting
// on this point and wakes it. It panics if the point is not currently
// armed, and may only be called once per arming.
func (p *SuspensionPoint[T]) Resume(v T) {
	if p.handle == nil {
		panic("promise: resume of an unarmed suspension point")
	}
	*p.msg = Step(v)
	h := p.handle
	p.handle = nil
	p.msg = nil
	h.wake()
}

// AwaitPoint suspends the caller until p is resumed, resuming with the
// value passed to [SuspensionPoint.Resume].
func AwaitPoint[T any](p *SuspensionPoint[T]) Body[T] {
	return func(k func(T) Step) Step {
		m := acquirePointMarker()
		m.point = p
		m.k = func(s Step) Step { return k(s.(T)) }
		return m
	}
}
