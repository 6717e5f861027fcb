// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heap provides array-backed max-heap containers: a keyed heap
// ordered by any of Go's ordered types and a generic heap ordered by a
// user supplied Less method. Both store their elements in a single
// contiguous slice used as an implicit complete binary tree and support
// insertion, peeking at and removing the maximum, an order-pruned
// membership search and draining to a non-increasing sequence.
package heap

// Ordered represents the set of types that can be used as keys in the
// keyed heap implementation. Note that for floating point keys any pair
// of values for which neither < nor > holds (ie. NaNs) is treated as
// equal for ordering purposes.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return (2 * i) + 1 }
func right(i int) int  { return left(i) + 1 }
