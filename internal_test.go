// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "testing"

func (h *Max[K, V]) Verify(t *testing.T) {
	t.Helper()
	if got, want := len(h.Keys), len(h.Vals); got != want {
		t.Errorf("keys and vals out of step: %v != %v", got, want)
		return
	}
	h.verify(t, 0)
}

func (h *Max[K, V]) verify(t *testing.T, p int) {
	t.Helper()
	n := len(h.Keys)
	l, r := left(p), right(p)
	if l < n {
		if h.Keys[p] < h.Keys[l] {
			t.Errorf("heap inconsistent: left sub tree for %v (%v < [%v]: %v)", p, h.Keys[p], l, h.Keys[l])
			return
		}
		h.verify(t, l)
	}
	if r < n {
		if h.Keys[p] < h.Keys[r] {
			t.Errorf("heap inconsistent: right sub tree for %v (%v < [%v]: %v)", p, h.Keys[p], r, h.Keys[r])
			return
		}
		h.verify(t, r)
	}
}

func (h Heap[T]) Verify(t *testing.T) {
	t.Helper()
	h.verify(t, 0)
}

func (h Heap[T]) verify(t *testing.T, p int) {
	t.Helper()
	n := len(h)
	l, r := left(p), right(p)
	if l < n {
		if h[p].Less(h[l]) {
			t.Errorf("heap inconsistent: left sub tree for %v (%v < [%v]: %v)", p, h[p], l, h[l])
			return
		}
		h.verify(t, l)
	}
	if r < n {
		if h[p].Less(h[r]) {
			t.Errorf("heap inconsistent: right sub tree for %v (%v < [%v]: %v)", p, h[p], r, h[r])
			return
		}
		h.verify(t, r)
	}
}
