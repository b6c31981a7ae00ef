// SPDX-License-Identifier: MIT

package view2d

// Cursor is an element-position handle into a root storage, the counterpart
// of a begin()/end() iterator. Cursors are plain values: moving one past the
// storage is allowed, using it to slice is not.
type Cursor[T any] struct {
	src []T // root storage the position refers to
	pos int // absolute position within src
}

// CursorOf returns a cursor at position pos of src. Use it to delimit a
// range of a raw slice for FromCursors.
func CursorOf[T any](src []T, pos int) Cursor[T] {
	return Cursor[T]{src: src[:len(src):len(src)], pos: pos}
}

// Begin returns a cursor at the first element of v.
func (v View[T]) Begin() Cursor[T] { return Cursor[T]{src: v.src, pos: v.lo} }

// End returns a cursor one past the last element of v.
func (v View[T]) End() Cursor[T] { return Cursor[T]{src: v.src, pos: v.lo + v.n} }

// Pos returns the absolute position of c in its storage.
func (c Cursor[T]) Pos() int { return c.pos }

// Add returns c moved by d elements (d may be negative).
func (c Cursor[T]) Add(d int) Cursor[T] { return Cursor[T]{src: c.src, pos: c.pos + d} }

// Sub returns the distance c - o in elements. Only meaningful when both
// cursors refer to the same storage.
func (c Cursor[T]) Sub(o Cursor[T]) int { return c.pos - o.pos }

// Same reports whether c and o refer to the same storage.
func (c Cursor[T]) Same(o Cursor[T]) bool { return sameStorage(c.src, o.src) }

// within reports whether c lies in [Begin(), End()] of v.
func (v View[T]) within(c Cursor[T]) bool {
	return c.pos >= v.lo && c.pos <= v.lo+v.n
}
