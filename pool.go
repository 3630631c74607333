// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

import "sync"

// Marker types carry the suspension that a Body produces one step at a
// time, recovered by frame.advanceBody/frame.step via type switch. Each
// marker kind is a single concrete (non-generic) struct with its
// type-specific fields erased to Step/any, the same shape the teacher uses
// in marker_pool.go's genericMarker — this is what lets each kind be served
// by exactly one sync.Pool regardless of how many Body[A] instantiations
// produce it, rather than needing one pool per generic instantiation.

// yieldMarker is produced by Yield.
type yieldMarker struct {
	hasValue bool
	value    any
	k        func(Unit) Step
}

func (m *yieldMarker) advance() Step {
	return m.k(Unit{})
}

var yieldMarkerPool = sync.Pool{New: func() any { return new(yieldMarker) }}

func acquireYieldMarker() *yieldMarker {
	return yieldMarkerPool.Get().(*yieldMarker)
}

func releaseYieldMarker(m *yieldMarker) {
	*m = yieldMarker{}
	yieldMarkerPool.Put(m)
}

// callMarker is produced by AwaitFrame: it delegates driving to another
// frame, erased behind erasedFrame, and forwards that frame's yields,
// completion, and outstanding waits to the caller. release drops the
// reference AwaitFrame took out on the callee (see AwaitFrame) once the
// callee finishes, so the delegation is reflected in the callee's own
// reference count for as long as it is being awaited.
type callMarker struct {
	callee  erasedFrame
	release func()
	k       func(Step) Step
}

// childResult is the outcome of one drive() call against the delegate.
type childResult struct {
	finished bool
	yielded  bool
	waiting  retargetable
	next     Step
	yieldVal Step
}

func (m *callMarker) drive() childResult {
	if !m.callee.isStarted() {
		m.callee.begin()
	} else {
		m.callee.step()
	}
	if m.callee.isDone() {
		rv, ok := m.callee.takeReturn()
		if m.release != nil {
			m.release()
		}
		if !ok {
			panic("promise: function did not return a value")
		}
		return childResult{finished: true, next: m.k(rv)}
	}
	if m.callee.isYielded() {
		return childResult{yielded: true, yieldVal: m.callee.currentYield()}
	}
	return childResult{waiting: m.callee.currentWait()}
}

var callMarkerPool = sync.Pool{New: func() any { return new(callMarker) }}

func acquireCallMarker() *callMarker {
	return callMarkerPool.Get().(*callMarker)
}

func releaseCallMarker(m *callMarker) {
	*m = callMarker{}
	callMarkerPool.Put(m)
}

// pointMarker is produced by AwaitPoint: it arms an external
// SuspensionPoint with this frame's resumption slot and continuation.
type pointMarker struct {
	point pointTarget
	slot  Step
	k     func(Step) Step
}

func (m *pointMarker) consume() Step {
	return m.k(m.slot)
}

var pointMarkerPool = sync.Pool{New: func() any { return new(pointMarker) }}

func acquirePointMarker() *pointMarker {
	return pointMarkerPool.Get().(*pointMarker)
}

func releasePointMarker(m *pointMarker) {
	*m = pointMarker{}
	pointMarkerPool.Put(m)
}
