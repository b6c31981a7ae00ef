// SPDX-License-Identifier: MIT

// Package view2d - construction facades.
//
// Purpose:
//   - One named constructor per source kind; each derives (storage, length)
//     and forwards to the canonical newView with an explicit row count.
//   - No validation beyond what newView performs, except where a source kind
//     has its own degenerate case (nil pointer, zero-length fixed array,
//     cursors that do not delimit a range).
//
// None of these functions copies the source. The caller keeps it alive and
// unmodified for the lifetime of every view built on it.

package view2d

import (
	"fmt"
	"unsafe"
)

// Constructor tags used in error wrappers.
const (
	ctxFromPtr     = "FromPtr"
	ctxFromArray   = "FromArray"
	ctxFromCursors = "FromCursors"
)

// Contiguous is a fixed-capacity container that carries its own size and
// exposes its contiguous backing storage.
type Contiguous[T any] interface {
	Elements() []T
}

// New returns a view over the whole of src read as rows rows.
// This is the constructor for dynamically-sized sequences (slices).
//
// Errors:
//   - ErrRowCount when rows <= 0 or len(src)%rows != 0, reported per policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func New[T any](src []T, rows int, opts ...Option) (View[T], error) {
	return newView(src, 0, len(src), rows, gatherOptions(opts...))
}

// New1D returns a single-row view over src. It cannot fail.
func New1D[T any](src []T, opts ...Option) View[T] {
	v, _ := newView(src, 0, len(src), 1, gatherOptions(opts...))

	return v
}

// FromPtr returns a view over n elements starting at p, e.g. a buffer owned
// by C code or by another view's Front().
//
// Errors:
//   - ErrNegativeLength when n < 0 and ErrNilPointer when p is nil with n > 0.
//     Both are checked under every policy, since no view can represent them;
//     PolicyAssert still panics.
//   - ErrRowCount, reported per policy.
func FromPtr[T any](p *T, n, rows int, opts ...Option) (View[T], error) {
	o := gatherOptions(opts...)
	if n < 0 {
		return View[T]{}, o.policy.fail(fmt.Errorf("%s(n=%d): %w", ctxFromPtr, n, ErrNegativeLength))
	}
	if p == nil && n > 0 {
		return View[T]{}, o.policy.fail(fmt.Errorf("%s(n=%d): %w", ctxFromPtr, n, ErrNilPointer))
	}
	var src []T
	if p != nil {
		src = unsafe.Slice(p, n)
	}

	return newView(src, 0, n, rows, o)
}

// FromCursors returns a view over [first, last) of the storage both cursors
// refer to. Cursors come from CursorOf or from another view's Begin/End.
//
// Errors:
//   - ErrCursorRange when the cursors refer to different storages or do not
//     satisfy 0 <= first <= last <= len(storage), reported per policy.
//   - ErrRowCount, reported per policy.
func FromCursors[T any](first, last Cursor[T], rows int, opts ...Option) (View[T], error) {
	o := gatherOptions(opts...)
	if o.policy != PolicyNone {
		if !sameStorage(first.src, last.src) || first.pos < 0 || first.pos > last.pos || last.pos > len(first.src) {
			return View[T]{}, o.policy.fail(fmt.Errorf("%s(%d,%d): %w", ctxFromCursors, first.pos, last.pos, ErrCursorRange))
		}
	}

	return newView(first.src, first.pos, last.pos-first.pos, rows, o)
}

// FromArray returns a view over a fixed-size array passed as arr[:].
// A zero-length array is rejected, as it is for arrays in most languages
// that have them as a distinct type.
//
// Errors:
//   - ErrZeroLengthArray and ErrRowCount, reported per policy.
func FromArray[T any](arr []T, rows int, opts ...Option) (View[T], error) {
	o := gatherOptions(opts...)
	if o.policy != PolicyNone && len(arr) == 0 {
		return View[T]{}, o.policy.fail(fmt.Errorf("%s: %w", ctxFromArray, ErrZeroLengthArray))
	}

	return newView(arr, 0, len(arr), rows, o)
}

// Of returns a view over a list literal: Of(2, 0, 1, 2, 3).
// It uses DefaultPolicy; use New with WithPolicy to choose another.
// Called as Of(rows, s...) the view aliases s.
func Of[T any](rows int, elems ...T) (View[T], error) {
	return newView(elems, 0, len(elems), rows, gatherOptions())
}

// FromSource returns a view over the backing storage of a Contiguous
// container.
func FromSource[T any](src Contiguous[T], rows int, opts ...Option) (View[T], error) {
	s := src.Elements()

	return newView(s, 0, len(s), rows, gatherOptions(opts...))
}
