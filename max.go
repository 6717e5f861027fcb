// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "iter"

// Max implements a max-heap of key/value pairs ordered by their keys.
// The Keys and Vals slices hold the pairs in heap order, with the pair
// at index i having its children at 2i+1 and 2i+2 and its parent at
// (i-1)/2; they are exported to allow for inspection but should not be
// modified directly. The zero value is an empty heap ready for use.
type Max[K Ordered, V any] struct {
	Keys []K
	Vals []V
}

// NewMax returns a new instance of Max.
func NewMax[K Ordered, V any](opts ...Option[K, V]) *Max[K, V] {
	var o options[K, V]
	for _, fn := range opts {
		fn(&o)
	}
	if o.keys != nil || o.vals != nil {
		h := &Max[K, V]{Keys: o.keys, Vals: o.vals}
		h.heapify()
		return h
	}
	return &Max[K, V]{
		Keys: make([]K, 0, o.sliceCap),
		Vals: make([]V, 0, o.sliceCap),
	}
}

// Len returns the number of pairs stored in the heap.
func (h *Max[K, V]) Len() int {
	return len(h.Keys)
}

// Push pushes the key/value pair onto the heap.
func (h *Max[K, V]) Push(k K, v V) {
	h.Keys = append(h.Keys, k)
	h.Vals = append(h.Vals, v)
	h.siftUp(len(h.Keys) - 1)
}

// PeekMax returns the largest key/value pair without removing it from
// the heap. It returns false for an empty heap.
func (h *Max[K, V]) PeekMax() (K, V, bool) {
	if len(h.Keys) == 0 {
		var k K
		var v V
		return k, v, false
	}
	return h.Keys[0], h.Vals[0], true
}

// PopMax removes and returns the largest key/value pair from the heap.
// It returns false for an empty heap, in which case the heap is left
// unchanged.
func (h *Max[K, V]) PopMax() (K, V, bool) {
	n := len(h.Keys) - 1
	if n < 0 {
		var k K
		var v V
		return k, v, false
	}
	h.swap(0, n)
	h.siftDown(0, n)
	k, v := h.Keys[n], h.Vals[n]
	h.Keys, h.Vals = h.Keys[:n], h.Vals[:n]
	return k, v, true
}

// Search reports whether k is present in the heap. Subtrees whose root
// is smaller than k cannot contain it and are pruned from the
// traversal, so typical searches visit far fewer than Len() pairs; the
// worst case remains O(n).
func (h *Max[K, V]) Search(k K) bool {
	n := len(h.Keys)
	if n == 0 {
		return false
	}
	stack := append(make([]int, 0, 64), 0)
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if h.Keys[i] < k {
			continue
		}
		if h.Keys[i] == k {
			return true
		}
		if l := left(i); l < n {
			stack = append(stack, l)
		}
		if r := right(i); r < n {
			stack = append(stack, r)
		}
	}
	return false
}

// Drain returns an iterator that repeatedly removes the largest
// remaining key/value pair, yielding the heap's contents in
// non-increasing key order. The sequence is single-pass and consumes
// the heap; stopping early leaves the unvisited remainder in place.
func (h *Max[K, V]) Drain() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for {
			k, v, ok := h.PopMax()
			if !ok {
				return
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

func (h *Max[K, V]) heapify() {
	n := len(h.Keys)
	for i := n/2 - 1; i >= 0; i-- {
		h.siftDown(i, n)
	}
}

func (h *Max[K, V]) siftUp(j int) {
	for {
		i := parent(j)
		if i == j || !(h.Keys[i] < h.Keys[j]) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *Max[K, V]) siftDown(i0, n int) {
	i := i0
	for {
		j := left(i)
		if j >= n || j < 0 { // j < 0 after int overflow
			break
		}
		// Descend into the larger of the two subtrees, preferring the
		// left child when the children are equal.
		if r := right(i); r < n && h.Keys[j] < h.Keys[r] {
			j = r
		}
		if !(h.Keys[i] < h.Keys[j]) {
			break
		}
		h.swap(i, j)
		i = j
	}
}

func (h *Max[K, V]) swap(i, j int) {
	h.Keys[i], h.Keys[j] = h.Keys[j], h.Keys[i]
	h.Vals[i], h.Vals[j] = h.Vals[j], h.Vals[i]
}
