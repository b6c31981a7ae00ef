// SPDX-License-Identifier: MIT

// Package view2d - flat comparison.
//
// Equality never looks at row structure: a 1×4 and a 2×2 view over the same
// four values compare equal. Any read-only sequence (another view, a slice,
// an array via a[:], a list literal) takes part through Sequence, so one
// predicate serves every pairing and is symmetric by construction.

package view2d

import (
	"iter"
	"slices"
)

// Sequence is any finite, ordered, read-only sequence of T.
// View implements it; SliceSeq adapts a slice.
type Sequence[T any] interface {
	Len() int
	Values() iter.Seq[T]
}

// sliceSeq adapts []T to Sequence.
type sliceSeq[T any] []T

func (s sliceSeq[T]) Len() int            { return len(s) }
func (s sliceSeq[T]) Values() iter.Seq[T] { return slices.Values(s) }

// SliceSeq returns s as a Sequence without copying.
func SliceSeq[T any](s []T) Sequence[T] { return sliceSeq[T](s) }

// Compile-time assertions.
var (
	_ Sequence[int] = View[int]{}
	_ Sequence[int] = sliceSeq[int](nil)
)

// flatOf returns the contiguous elements behind s when s is a View or a
// SliceSeq, for the index-loop fast path.
func flatOf[T any](s Sequence[T]) ([]T, bool) {
	switch x := s.(type) {
	case View[T]:
		return x.elems(), true
	case sliceSeq[T]:
		return x, true
	default:
		return nil, false
	}
}

// EqualFunc reports whether a and b have the same length and eq holds for
// every pair of elements in iteration order.
// Complexity: O(n); views and slices are compared without iterator overhead.
func EqualFunc[T any](a, b Sequence[T], eq func(T, T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	if fa, ok := flatOf(a); ok {
		if fb, ok := flatOf(b); ok {
			return slices.EqualFunc(fa, fb, eq)
		}
	}

	next, stop := iter.Pull(b.Values())
	defer stop()
	for x := range a.Values() {
		y, ok := next()
		if !ok || !eq(x, y) {
			return false
		}
	}
	_, more := next()

	return !more
}

// EqualSeq is EqualFunc with ==.
func EqualSeq[T comparable](a, b Sequence[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b View[T]) bool {
	return slices.Equal(a.elems(), b.elems())
}

// EqualSlice reports whether v holds the elements of s in the same order.
// EqualSlice(v, s) == EqualSeq(SliceSeq(s), v).
func EqualSlice[T comparable](v View[T], s []T) bool {
	return slices.Equal(v.elems(), s)
}
