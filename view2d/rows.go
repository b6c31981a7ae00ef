// SPDX-License-Identifier: MIT

package view2d

import (
	"fmt"
	"iter"
)

// row builds the single-row view of row n without any check.
func (v View[T]) row(n int) View[T] {
	rl := v.RowLen()

	return View[T]{src: v.src, lo: v.lo + n*rl, n: rl, rows: 1, policy: v.policy}
}

// Row returns row n as a single-row view over [n*RowLen(), (n+1)*RowLen()).
//
// Errors:
//   - ErrOutOfRange when n is outside [0, Rows()), reported per policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func (v View[T]) Row(n int) (View[T], error) {
	if v.policy != PolicyNone && !validIndex(n, v.rows) {
		return View[T]{}, v.policy.fail(fmt.Errorf("View.%s(%d): %w", ctxRow, n, ErrOutOfRange))
	}

	return v.row(n), nil
}

// CheckedRow is Row with the bound check forced on: it returns
// ErrOutOfRange under every policy and never panics.
func (v View[T]) CheckedRow(n int) (View[T], error) {
	if !validIndex(n, v.rows) {
		return View[T]{}, fmt.Errorf("View.%s(%d): %w", ctxRow, n, ErrOutOfRange)
	}

	return v.row(n), nil
}

// AsRows yields the views Row(0) .. Row(Rows()-1) return, in order.
// The sequence is lazy and restartable: each range over it starts again at
// row 0, and ranging never changes v.
func (v View[T]) AsRows() iter.Seq[View[T]] {
	return func(yield func(View[T]) bool) {
		for i := 0; i < v.rows; i++ {
			if !yield(v.row(i)) {
				return
			}
		}
	}
}

// AllRows is AsRows with the row index.
func (v View[T]) AllRows() iter.Seq2[int, View[T]] {
	return func(yield func(int, View[T]) bool) {
		for i := 0; i < v.rows; i++ {
			if !yield(i, v.row(i)) {
				return
			}
		}
	}
}
