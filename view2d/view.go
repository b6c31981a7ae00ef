// SPDX-License-Identifier: MIT

// Package view2d - View: a read-only, non-owning 2-D window over a slice.
//
// Purpose:
//   - Treat a flat buffer as rows of equal length without copying.
//   - Produce rows and sub-ranges in O(1) as further views of the same storage.
//   - Keep the public surface read-only: no method hands out a writable slice.
//
// Complexity quicksheet:
//   - construction, Row, Slice*: O(1); Equal*, ToSlice, String: O(n).

package view2d

import (
	"fmt"
	"iter"
)

// ---------- error context tags ----------

const (
	ctxAt          = "At"
	ctxRow         = "Row"
	ctxSlice       = "Slice"
	ctxSliceBefore = "SliceBefore"
	ctxSliceFrom   = "SliceFrom"
	ctxSliceCursor = "SliceCursor"
	ctxNew         = "New"
)

// View is a read-only view of n elements of a root storage slice, read as
// rows of n/rows elements each.
//
// The view never allocates, copies or frees the storage. The caller keeps the
// storage alive and unmodified for as long as any view derived from it is in
// use; concurrent writes through the owning slice are a caller-level race.
//
// The zero value is the empty default view: Len()==0, Rows()==0.
type View[T any] struct {
	src    []T    // root storage, cap clipped to len
	lo     int    // offset of element 0 within src
	n      int    // element count
	rows   int    // row count
	policy Policy // inherited by every derived view
}

// newView is the canonical constructor every source kind funnels into.
// MAIN DESCRIPTION:
//   - Validate the row interpretation of src[lo:lo+n] and build the view.
//
// Behavior highlights:
//   - Under PolicyNone the row count is trusted as given.
//   - Under PolicyAssert a bad row count panics with the wrapped ErrRowCount.
//
// Complexity:
//   - Time O(1), Space O(1).
func newView[T any](src []T, lo, n, rows int, o Options) (View[T], error) {
	if o.policy != PolicyNone && !validRowCount(n, rows) {
		return View[T]{}, o.policy.fail(fmt.Errorf("%s(len=%d, rows=%d): %w", ctxNew, n, rows, ErrRowCount))
	}

	return View[T]{
		src:    src[:len(src):len(src)],
		lo:     lo,
		n:      n,
		rows:   rows,
		policy: o.policy,
	}, nil
}

// sub returns the flat view over elements [from, to) of v.
func (v View[T]) sub(from, to int) View[T] {
	return View[T]{src: v.src, lo: v.lo + from, n: to - from, rows: 1, policy: v.policy}
}

// elems returns the viewed elements. Internal only: the result is writable.
func (v View[T]) elems() []T {
	return v.src[v.lo : v.lo+v.n : v.lo+v.n]
}

// Len returns the total element count.
func (v View[T]) Len() int { return v.n }

// Size is an alias for Len.
func (v View[T]) Size() int { return v.n }

// Rows returns the row count (0 for the zero View).
func (v View[T]) Rows() int { return v.rows }

// RowLen returns the number of elements per row, or 0 when Rows()==0.
func (v View[T]) RowLen() int {
	if v.rows <= 0 {
		return 0
	}

	return v.n / v.rows
}

// Empty reports whether Len()==0.
func (v View[T]) Empty() bool { return v.n == 0 }

// Policy returns the validation policy the view was built with.
func (v View[T]) Policy() Policy { return v.policy }

// Index returns element i without a bounds check against Len().
// An index outside [0, Len()) is undefined behavior: it may read a
// neighbouring element of the storage or panic in the runtime.
// Use At for a checked read.
func (v View[T]) Index(i int) T { return v.src[v.lo+i] }

// At returns element i, or ErrOutOfRange when i is outside [0, Len()).
// At is checked under every policy and never panics.
func (v View[T]) At(i int) (T, error) {
	if !validIndex(i, v.n) {
		var zero T
		return zero, fmt.Errorf("View.%s(%d): %w", ctxAt, i, ErrOutOfRange)
	}

	return v.src[v.lo+i], nil
}

// Front returns the first element. Undefined on an empty view.
func (v View[T]) Front() T { return v.src[v.lo] }

// Back returns the last element. Undefined on an empty view.
func (v View[T]) Back() T { return v.src[v.lo+v.n-1] }

// All yields (index, element) pairs in storage order.
func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.elems() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values yields elements in storage order.
func (v View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.elems() {
			if !yield(x) {
				return
			}
		}
	}
}

// Backward yields (index, element) pairs from the last element to the first.
func (v View[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := v.elems()
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}
