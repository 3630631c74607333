// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

import "testing"

func childCoroutine() Body[int] {
	return Bind(YieldValue(100), func(Unit) Body[int] {
		return Return(7)
	})
}

func parentCoroutine() Body[string] {
	child := NewHandle[int, int](childCoroutine())
	return Bind(AwaitFrame[int, int](child), func(result int) Body[string] {
		return Bind(YieldValue(200), func(Unit) Body[string] {
			if result != 7 {
				return Return("wrong")
			}
			return Return("ok")
		})
	})
}

func TestAwaitFrameForwardsYieldsAndResult(t *testing.T) {
	h := NewHandle[string, int](parentCoroutine())
	h.Start()
	if !OptionalEqualValue(h.YieldedValue(), 100) {
		t.Fatalf("first forwarded yield = %v, want 100", h.YieldedValue())
	}

	h.Resume()
	if !OptionalEqualValue(h.YieldedValue(), 200) {
		t.Fatalf("second yield = %v, want 200", h.YieldedValue())
	}

	h.Resume()
	if !h.Done() {
		t.Fatal("expected parent to complete")
	}
	if !OptionalEqualValue(h.ReturnedValue(), "ok") {
		t.Fatalf("returned value = %v, want ok", h.ReturnedValue())
	}
}

func TestAwaitFrameTracksRefCountOfDelegate(t *testing.T) {
	child := NewHandle[int, int](childCoroutine())
	if child.RefCount() != 1 {
		t.Fatalf("fresh handle refcount = %d, want 1", child.RefCount())
	}

	h := NewHandle[int, int](AwaitFrame[int, int](child))
	h.Start()
	if !h.Yielded() {
		t.Fatal("expected the parent to suspend on the child's forwarded yield")
	}
	if child.RefCount() != 2 {
		t.Fatalf("refcount while child is being awaited = %d, want 2", child.RefCount())
	}

	h.Resume()
	if !h.Done() {
		t.Fatal("expected completion once the child returns")
	}
	if child.RefCount() != 1 {
		t.Fatalf("refcount after the await completes = %d, want 1", child.RefCount())
	}
}

func TestAwaitFrameOfChildWithoutReturnValuePanics(t *testing.T) {
	noReturn := Body[int](func(k func(int) Step) Step { return nil })
	child := NewHandle[int, int](noReturn)
	h := NewHandle[int, int](AwaitFrame[int, int](child))
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic when the awaited child completes without a return value")
		}
	}()
	h.Start()
}

func TestAwaitFrameOfNonSuspendingChildCompletesImmediately(t *testing.T) {
	child := NewHandle[int, int](Return(9))
	body := AwaitFrame[int, int](child)
	h := NewHandle[int, int](body)
	h.Start()
	if !h.Done() {
		t.Fatal("expected immediate completion when child never suspends")
	}
	if !OptionalEqualValue(h.ReturnedValue(), 9) {
		t.Fatalf("returned value = %v, want 9", h.ReturnedValue())
	}
}
