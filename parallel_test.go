// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

import "testing"

func TestAwaitAllEmpty(t *testing.T) {
	h := NewHandle[Unit, int](AwaitAll[int](nil))
	h.Start()
	if !h.Done() {
		t.Fatal("AwaitAll of no items should complete immediately")
	}
}

func TestAwaitAllWaitsForEverySuspensionPointOutOfOrder(t *testing.T) {
	var a, b, c SuspensionPoint[Unit]

	items := []Body[Unit]{
		AwaitPoint[Unit](&a),
		AwaitPoint[Unit](&b),
		AwaitPoint[Unit](&c),
	}
	h := NewHandle[Unit, int](AwaitAll[int](items))
	h.Start()
	if h.Done() {
		t.Fatal("should not complete until all three points are resumed")
	}

	c.Resume(Unit{})
	if h.Done() {
		t.Fatal("should not complete after only one of three")
	}

	a.Resume(Unit{})
	if h.Done() {
		t.Fatal("should not complete after only two of three")
	}

	b.Resume(Unit{})
	if !h.Done() {
		t.Fatal("expected completion once the last point resumes, regardless of order")
	}
}

func TestAwaitAllOfAlreadyDoneItemsCompletesImmediately(t *testing.T) {
	items := []Body[Unit]{
		Return(Unit{}),
		Return(Unit{}),
	}
	h := NewHandle[Unit, int](AwaitAll[int](items))
	h.Start()
	if !h.Done() {
		t.Fatal("AwaitAll of items that never suspend should complete immediately")
	}
}
