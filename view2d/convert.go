// SPDX-License-Identifier: MIT

package view2d

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "{ "
	_fmtClose = " }"
	_fmtSep   = ", "
)

var _ fmt.Stringer = View[int]{}

// Allocator supplies the backing buffer for ToSliceWith. The returned slice
// is used from length zero; a capacity below n is grown by append.
type Allocator[T any] func(n int) []T

// ToSlice returns a newly allocated copy of the elements in storage order.
// Complexity: O(n) time and space.
func (v View[T]) ToSlice() []T {
	out := make([]T, v.n)
	copy(out, v.elems())

	return out
}

// ToSliceWith is ToSlice with the buffer obtained from alloc.
// A nil alloc behaves like ToSlice.
func (v View[T]) ToSliceWith(alloc Allocator[T]) []T {
	if alloc == nil {
		return v.ToSlice()
	}
	buf := alloc(v.n)

	return append(buf[:0], v.elems()...)
}

// AppendTo appends the elements to dst and returns the extended slice.
func (v View[T]) AppendTo(dst []T) []T {
	return append(dst, v.elems()...)
}

// String renders "{ e0, e1, ..., eN }" with %v per element; an empty view
// renders "{  }".
func (v View[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, x := range v.elems() {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprint(&b, x)
	}
	b.WriteString(_fmtClose)

	return b.String()
}
