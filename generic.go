// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "iter"

// Value represents the interface that must be implemented by types that
// can be used as values in the generic Heap implementation. Less need
// only be a strict partial order: a pair of values for which Less holds
// in neither direction is treated as equal for ordering purposes.
type Value[T any] interface {
	Less(x T) bool
}

// Heap is a generic max-heap that can be used with any type that
// implements the Value interface. It is implemented as a slice in the
// same manner as the standard library's heap package, with the largest
// element, as determined by Less, at the root.
type Heap[T Value[T]] []T

// Len returns the number of elements stored in the heap.
func (h Heap[T]) Len() int {
	return len(h)
}

// Init reorders the elements of h into heap order. It must be called
// when a Heap is created from an existing, unordered, slice.
func (h Heap[T]) Init() {
	// heapify
	n := len(h)
	for i := n/2 - 1; i >= 0; i-- {
		down(h, i, n)
	}
}

// Push pushes x onto the heap.
func (h *Heap[T]) Push(x T) {
	*h = append(*h, x)
	up(*h, len(*h)-1)
}

// PeekMax returns the largest element without removing it from the
// heap. It returns false for an empty heap.
func (h Heap[T]) PeekMax() (T, bool) {
	if len(h) == 0 {
		var x T
		return x, false
	}
	return h[0], true
}

// PopMax removes and returns the largest element from the heap. It
// returns false for an empty heap, in which case the heap is left
// unchanged.
func (h *Heap[T]) PopMax() (T, bool) {
	n := len(*h) - 1
	if n < 0 {
		var x T
		return x, false
	}
	swap(*h, 0, n)
	down(*h, 0, n)
	x := (*h)[n]
	*h = (*h)[:n]
	return x, true
}

// Search reports whether x is present in the heap. Equality is derived
// from Less: two values are considered equal when neither is Less than
// the other, hence for partially ordered types a search for a value
// that is incomparable to a stored one reports a match, mirroring the
// outcome of the underlying comparison. Subtrees whose root is smaller
// than x are pruned from the traversal.
func (h Heap[T]) Search(x T) bool {
	n := len(h)
	if n == 0 {
		return false
	}
	stack := append(make([]int, 0, 64), 0)
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if h[i].Less(x) {
			continue
		}
		if !x.Less(h[i]) {
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
// remaining element, yielding the heap's contents in non-increasing
// order. The sequence is single-pass and consumes the heap; stopping
// early leaves the unvisited remainder in place.
func (h *Heap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			x, ok := h.PopMax()
			if !ok {
				return
			}
			if !yield(x) {
				return
			}
		}
	}
}

func up[T Value[T]](h []T, j int) {
	for {
		i := parent(j)
		if i == j || !h[i].Less(h[j]) {
			break
		}
		swap(h, i, j)
		j = i
	}
}

func down[T Value[T]](h []T, i0, n int) {
	i := i0
	for {
		j := left(i)
		if j >= n || j < 0 { // j < 0 after int overflow
			break
		}
		// Descend into the larger of the two subtrees, preferring the
		// left child when the children are equal.
		if r := right(i); r < n && h[j].Less(h[r]) {
			j = r
		}
		if !h[i].Less(h[j]) {
			break
		}
		swap(h, i, j)
		i = j
	}
}

func swap[T Value[T]](h []T, i, j int) {
	h[i], h[j] = h[j], h[i]
}
