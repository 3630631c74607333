// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

import "testing"

func TestSuspensionPointArmAndResume(t *testing.T) {
	var point SuspensionPoint[int]
	h := NewHandle[int, int](AwaitPoint(&point))

	if !point.Empty() {
		t.Fatal("fresh point should be empty")
	}
	h.Start()
	if h.Done() {
		t.Fatal("should suspend until the point is resumed")
	}
	if point.Empty() {
		t.Fatal("point should be armed after Start")
	}

	point.Resume(42)
	if !h.Done() {
		t.Fatal("expected completion after Resume")
	}
	if !OptionalEqualValue(h.ReturnedValue(), 42) {
		t.Fatalf("returned value = %v, want 42", h.ReturnedValue())
	}
	if !point.Empty() {
		t.Fatal("point should be empty again after delivering its resumption")
	}
}

func TestSuspensionPointDoubleArmPanics(t *testing.T) {
	var point SuspensionPoint[int]
	h1 := NewHandle[int, int](AwaitPoint(&point))
	h2 := NewHandle[int, int](AwaitPoint(&point))
	h1.Start()
	defer func() {
		if recover() == nil {
			t.Fatal("arming an already-armed point did not panic")
		}
	}()
	h2.Start()
}

func TestSuspensionPointResumeUnarmedPanics(t *testing.T) {
	var point SuspensionPoint[int]
	defer func() {
		if recover() == nil {
			t.Fatal("resuming an unarmed point did not panic")
		}
	}()
	point.Resume(1)
}

func TestSuspensionPointReset(t *testing.T) {
	var point SuspensionPoint[int]
	h := NewHandle[int, int](AwaitPoint(&point))
	h.Start()
	point.Reset()
	if !point.Empty() {
		t.Fatal("Reset should clear an armed point")
	}
}

// TestNestedSuspensionRetargeting verifies that arming a point two levels
// deep in a delegation chain, then resuming it once, wakes the outermost
// frame directly and propagates completion all the way up in one call.
func TestNestedSuspensionRetargeting(t *testing.T) {
	var point SuspensionPoint[int]

	leaf := NewHandle[int, int](AwaitPoint(&point))
	middle := NewHandle[int, int](AwaitFrame[int, int](leaf))
	outer := NewHandle[int, int](AwaitFrame[int, int](middle))

	outer.Start()
	if outer.Done() {
		t.Fatal("outer should still be suspended")
	}
	if point.Empty() {
		t.Fatal("point should be armed (retargeted up to outer) after Start")
	}

	point.Resume(55)

	if !outer.Done() {
		t.Fatal("expected outer to complete after a single Resume")
	}
	if !OptionalEqualValue(outer.ReturnedValue(), 55) {
		t.Fatalf("outer returned value = %v, want 55", outer.ReturnedValue())
	}
}
