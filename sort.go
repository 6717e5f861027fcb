// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "slices"

// SortDescending returns the supplied values in non-increasing order as
// determined by their Less method. The input slice is not modified.
// Values that compare as equal may be reordered relative to their input
// order.
func SortDescending[T Value[T]](vals []T) []T {
	h := Heap[T](slices.Clone(vals))
	h.Init()
	out := make([]T, 0, len(vals))
	for v := range h.Drain() {
		out = append(out, v)
	}
	return out
}

// SortKeyedDescending returns the supplied keys, and their associated
// values, in non-increasing key order. The input slices are not
// modified. Pairs whose keys compare as equal may be reordered relative
// to their input order.
func SortKeyedDescending[K Ordered, V any](keys []K, vals []V) ([]K, []V) {
	h := NewMax(WithData(slices.Clone(keys), slices.Clone(vals)))
	sk := make([]K, 0, len(keys))
	sv := make([]V, 0, len(vals))
	for k, v := range h.Drain() {
		sk = append(sk, k)
		sv = append(sv, v)
	}
	return sk, sv
}
