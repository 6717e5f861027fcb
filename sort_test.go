// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap_test

import (
	"reflect"
	"testing"

	"cloudeng.io/heap"
)

func TestSortDescending(t *testing.T) {
	input := []IntType{4, 2, 8, 6}
	if got, want := heap.SortDescending(input), []IntType{8, 6, 4, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := input, []IntType{4, 2, 8, 6}; !reflect.DeepEqual(got, want) {
		t.Errorf("input modified: got %v, want %v", got, want)
	}
	if got, want := heap.SortDescending([]IntType{3, 1, 3}), []IntType{3, 3, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(heap.SortDescending([]IntType{})), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSortKeyedDescending(t *testing.T) {
	keys := []int{4, 2, 8, 6}
	vals := []string{"four", "two", "eight", "six"}
	sk, sv := heap.SortKeyedDescending(keys, vals)
	if got, want := sk, []int{8, 6, 4, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := sv, []string{"eight", "six", "four", "two"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := keys, []int{4, 2, 8, 6}; !reflect.DeepEqual(got, want) {
		t.Errorf("input modified: got %v, want %v", got, want)
	}
	sk, sv = heap.SortKeyedDescending([]int{}, []string{})
	if got, want := len(sk)+len(sv), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSortRandom(t *testing.T) {
	for i := 0; i < 10; i++ {
		rnd := uniformRand(int64(i), 200)
		sk, sv := heap.SortKeyedDescending(rnd, rnd)
		want := sortedDescending(rnd)
		if got := sk; !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
		if got := sv; !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}
