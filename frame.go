// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

import "sync/atomic"

// erasedFrame is the minimal surface a callMarker needs to drive a callee
// without knowing its concrete result type R. Implemented by *frame[R, Y]
// for every instantiation of R; Y is shared with the driving ancestor by
// construction (see AwaitFrame).
type erasedFrame interface {
	isStarted() bool
	begin()
	step()
	isDone() bool
	isYielded() bool
	takeReturn() (Step, bool)
	currentYield() Step
	currentWait() retargetable
}

// resumer is implemented by *frame[R, Y] for any R, Y: the minimal "wake me"
// surface a SuspensionPoint needs to deliver a resumption.
type resumer interface {
	wake()
}

// retargetable is implemented by *SuspensionPoint[T] for any T: it lets the
// wait-for-callee procedure rewrite which frame a point will wake, without
// knowing T.
type retargetable interface {
	retarget(to resumer)
}

// frame is one activation of a coroutine body. One frame backs every
// [Handle]; spec.md §3's Frame fields map directly onto this struct.
type frame[R, Y any] struct {
	body Body[R]

	started bool
	done    bool
	yielded bool

	yieldValue  Optional[Y]
	returnValue Optional[R]

	// pending holds whichever marker this frame is currently suspended on:
	// *yieldMarker, *callMarker, or *pointMarker. nil before the first call
	// to begin().
	pending Step

	// waitObject is the external suspension point this frame (or its
	// innermost delegate) is blocked on, if any.
	waitObject retargetable

	refCount atomic.Int64
}

// Handle is a reference-counted pointer to a frame. Copying a Handle shares
// the same underlying frame (see [Handle.Clone]); all public interaction
// with a frame goes through a Handle.
type Handle[R, Y any] struct {
	f *frame[R, Y]
}

// NewHandle constructs a coroutine around body in state
// (started=false, done=false, yielded=false). The body does not begin
// executing until [Handle.Start] is called.
func NewHandle[R, Y any](body Body[R]) Handle[R, Y] {
	f := &frame[R, Y]{body: body}
	f.refCount.Store(1)
	return Handle[R, Y]{f: f}
}

// Start marks the frame started and advances the body until its first
// suspension or completion.
func (h Handle[R, Y]) Start() {
	h.f.begin()
}

// Resume performs one scheduling step on this frame.
func (h Handle[R, Y]) Resume() {
	h.f.step()
}

// Started reports whether Start has been called.
func (h Handle[R, Y]) Started() bool { return h.f.started }

// Done reports whether the body has run to completion.
func (h Handle[R, Y]) Done() bool { return h.f.done }

// Yielded reports whether the frame is currently suspended on a yield.
func (h Handle[R, Y]) Yielded() bool { return h.f.yielded }

// YieldedValue returns the last yielded value, or empty if not yielded.
func (h Handle[R, Y]) YieldedValue() Optional[Y] { return h.f.yieldValue }

// ReturnedValue returns the returned value once the frame is done, or empty
// otherwise.
func (h Handle[R, Y]) ReturnedValue() Optional[R] { return h.f.returnValue }

// Clone increments the reference count and returns a Handle sharing the
// same frame.
func (h Handle[R, Y]) Clone() Handle[R, Y] {
	h.f.refCount.Add(1)
	return h
}

// Close decrements the reference count. Go's garbage collector reclaims the
// frame's memory once nothing references it; Close's own bookkeeping exists
// so the reference count in spec.md §3/§4.2.6 is a real, observable quantity
// rather than an implementation detail papered over by relying on GC timing
// (see DESIGN.md).
func (h Handle[R, Y]) Close() {
	h.f.refCount.Add(-1)
}

// RefCount returns the current reference count, for tests and diagnostics.
func (h Handle[R, Y]) RefCount() int64 {
	return h.f.refCount.Load()
}

func (f *frame[R, Y]) isStarted() bool          { return f.started }
func (f *frame[R, Y]) isDone() bool             { return f.done }
func (f *frame[R, Y]) isYielded() bool          { return f.yielded }
func (f *frame[R, Y]) currentYield() Step       { return Step(f.yieldValue) }
func (f *frame[R, Y]) currentWait() retargetable { return f.waitObject }
func (f *frame[R, Y]) wake()                    { f.step() }

func (f *frame[R, Y]) takeReturn() (Step, bool) {
	v, ok := f.returnValue.Get()
	return Step(v), ok
}

// begin runs the body until its first suspension or completion.
func (f *frame[R, Y]) begin() {
	f.started = true
	f.advanceBody(f.body(toStep[R]))
}

// step performs one scheduling step, per spec.md §4.2.1's resume() routine.
func (f *frame[R, Y]) step() {
	if f.done {
		panic("promise: resume of a completed frame")
	}
	switch m := f.pending.(type) {
	case *yieldMarker:
		f.yielded = false
		f.yieldValue = Optional[Y]{}
		next := m.advance()
		releaseYieldMarker(m)
		f.advanceBody(next)
	case *callMarker:
		f.yielded = false
		f.yieldValue = Optional[Y]{}
		cr := m.drive()
		if cr.finished {
			releaseCallMarker(m)
			f.advanceBody(cr.next)
			return
		}
		if cr.yielded {
			f.yielded = true
			f.yieldValue = cr.yieldVal.(Optional[Y])
			f.waitObject = nil
			return
		}
		if cr.waiting != nil {
			cr.waiting.retarget(f)
		}
		f.waitObject = cr.waiting
	case *pointMarker:
		f.waitObject = nil
		next := m.consume()
		releasePointMarker(m)
		f.advanceBody(next)
	default:
		panic("promise: resume before start")
	}
}

// advanceBody drives the CPS chain forward from s (a value just produced by
// calling into the body, or by resuming from a marker) until the next
// suspension point or final value, per the wait-for-callee procedure in
// spec.md §4.2.1.
func (f *frame[R, Y]) advanceBody(s Step) {
	for {
		switch m := s.(type) {
		case *yieldMarker:
			f.yielded = true
			var yv Y
			if m.hasValue {
				yv = m.value.(Y)
			}
			f.yieldValue = Optional[Y]{value: yv, ok: m.hasValue}
			f.pending = m
			return
		case *callMarker:
			cr := m.drive()
			if cr.finished {
				releaseCallMarker(m)
				s = cr.next
				continue
			}
			f.pending = m
			if cr.yielded {
				f.yielded = true
				f.yieldValue = cr.yieldVal.(Optional[Y])
				f.waitObject = nil
				return
			}
			if cr.waiting != nil {
				cr.waiting.retarget(f)
			}
			f.waitObject = cr.waiting
			return
		case *pointMarker:
			m.point.arm(f, &m.slot)
			f.pending = m
			f.waitObject = m.point
			return
		default:
			f.done = true
			f.started = true
			f.pending = nil
			f.waitObject = nil
			if s == nil {
				// The body's CPS chain bottomed out without calling its
				// continuation: it fell off the end without setting a
				// return value, per spec.md §7 item 1. returnValue stays
				// empty rather than being filled with R's zero value, so
				// ReturnedValue()/takeReturn() correctly report "no value"
				// to whatever is awaiting this frame.
				return
			}
			rv, ok := s.(R)
			if !ok {
				panic("promise: body produced a value of unexpected type")
			}
			f.returnValue = Filled(rv)
			return
		}
	}
}
