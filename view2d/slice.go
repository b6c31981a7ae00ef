// SPDX-License-Identifier: MIT

// Package view2d - sub-range views.
//
// Every slice result is flat: Rows()==1 over the sliced length. Each
// operation comes in two variants:
//   - Slice*:        check per the view's policy (error, panic, or none);
//   - CheckedSlice*: always checked, always an error value, never a panic.
//
// Domains:
//   - by position: 0 <= pos <= Len(), count >= 0, pos+count <= Len();
//   - by cursor:   both cursors of the view's storage, within
//     [Begin(), End()], first <= last. first == last == End() is an empty slice.

package view2d

import "fmt"

// spanError wraps ErrOutOfRange with the positional call site.
func spanError(method string, pos, count int) error {
	return fmt.Errorf("View.%s(%d,%d): %w", method, pos, count, ErrOutOfRange)
}

// cursorError wraps err with the cursor call site.
func cursorError(method string, first, last int, err error) error {
	return fmt.Errorf("View.%s(%d,%d): %w", method, first, last, err)
}

// checkCursors validates [first, last) against v; nil when valid.
func (v View[T]) checkCursors(method string, first, last Cursor[T]) error {
	if !sameStorage(first.src, v.src) || !sameStorage(last.src, v.src) {
		return cursorError(method, first.pos, last.pos, ErrForeignCursor)
	}
	if !v.within(first) || !v.within(last) || first.pos > last.pos {
		return cursorError(method, first.pos, last.pos, ErrOutOfRange)
	}

	return nil
}

// ---------- by position, policy-following ----------

// Slice returns the flat view over [pos, pos+count).
// Errors: ErrOutOfRange outside the positional domain, reported per policy.
// Complexity: O(1).
func (v View[T]) Slice(pos, count int) (View[T], error) {
	if v.policy != PolicyNone && !validSpan(pos, count, v.n) {
		return View[T]{}, v.policy.fail(spanError(ctxSlice, pos, count))
	}

	return v.sub(pos, pos+count), nil
}

// SliceBefore returns the flat view over [0, pos).
func (v View[T]) SliceBefore(pos int) (View[T], error) {
	if v.policy != PolicyNone && !validSpan(0, pos, v.n) {
		return View[T]{}, v.policy.fail(spanError(ctxSliceBefore, 0, pos))
	}

	return v.sub(0, pos), nil
}

// SliceFrom returns the flat view over [pos, Len()).
func (v View[T]) SliceFrom(pos int) (View[T], error) {
	if v.policy != PolicyNone && !validSpan(pos, 0, v.n) {
		return View[T]{}, v.policy.fail(spanError(ctxSliceFrom, pos, v.n-pos))
	}

	return v.sub(pos, v.n), nil
}

// ---------- by position, always checked ----------

// CheckedSlice is Slice with the bound check forced on.
func (v View[T]) CheckedSlice(pos, count int) (View[T], error) {
	if !validSpan(pos, count, v.n) {
		return View[T]{}, spanError(ctxSlice, pos, count)
	}

	return v.sub(pos, pos+count), nil
}

// CheckedSliceBefore is SliceBefore with the bound check forced on.
func (v View[T]) CheckedSliceBefore(pos int) (View[T], error) {
	if !validSpan(0, pos, v.n) {
		return View[T]{}, spanError(ctxSliceBefore, 0, pos)
	}

	return v.sub(0, pos), nil
}

// CheckedSliceFrom is SliceFrom with the bound check forced on.
func (v View[T]) CheckedSliceFrom(pos int) (View[T], error) {
	if !validSpan(pos, 0, v.n) {
		return View[T]{}, spanError(ctxSliceFrom, pos, v.n-pos)
	}

	return v.sub(pos, v.n), nil
}

// ---------- by cursor, policy-following ----------

// SliceCursor returns the flat view over [first, last).
// Errors: ErrForeignCursor or ErrOutOfRange, reported per policy.
// Complexity: O(1).
func (v View[T]) SliceCursor(first, last Cursor[T]) (View[T], error) {
	if v.policy != PolicyNone {
		if err := v.checkCursors(ctxSliceCursor, first, last); err != nil {
			return View[T]{}, v.policy.fail(err)
		}
	}

	return v.sub(first.pos-v.lo, last.pos-v.lo), nil
}

// SliceBeforeCursor returns the flat view over [Begin(), pos).
func (v View[T]) SliceBeforeCursor(pos Cursor[T]) (View[T], error) {
	return v.SliceCursor(v.Begin(), pos)
}

// SliceFromCursor returns the flat view over [pos, End()).
func (v View[T]) SliceFromCursor(pos Cursor[T]) (View[T], error) {
	return v.SliceCursor(pos, v.End())
}

// ---------- by cursor, always checked ----------

// CheckedSliceCursor is SliceCursor with the bound check forced on.
func (v View[T]) CheckedSliceCursor(first, last Cursor[T]) (View[T], error) {
	if err := v.checkCursors(ctxSliceCursor, first, last); err != nil {
		return View[T]{}, err
	}

	return v.sub(first.pos-v.lo, last.pos-v.lo), nil
}

// CheckedSliceBeforeCursor is SliceBeforeCursor with the bound check forced on.
func (v View[T]) CheckedSliceBeforeCursor(pos Cursor[T]) (View[T], error) {
	return v.CheckedSliceCursor(v.Begin(), pos)
}

// CheckedSliceFromCursor is CheckedSliceCursor(pos, End()).
func (v View[T]) CheckedSliceFromCursor(pos Cursor[T]) (View[T], error) {
	return v.CheckedSliceCursor(pos, v.End())
}
