// Package view2d offers View, a read-only, non-owning two-dimensional view
// over contiguous storage.
//
// A View reads a flat buffer (a slice, an array, a list literal, memory
// behind a pointer) as rows of equal length. Rows and sub-ranges are further
// views over the same storage, produced in O(1) without copying:
//
//	v, _ := view2d.New(pixels, height)  // height rows of width elements
//	for row := range v.AsRows() {
//		consume(row)
//	}
//	tail, _ := v.SliceFrom(3)           // flat view, Rows()==1
//
// The package provides:
//
//   - Construction per source kind (New, FromPtr, FromCursors, FromArray,
//     Of, FromSource), all validating that the row count divides the length.
//   - Element access: Index (unchecked), At (checked), Front, Back, and
//     forward/backward iteration.
//   - Row selection and lazy, restartable row iteration (Row, AsRows).
//   - Slicing by position or by Cursor.
//   - Flat comparison against any Sequence, and conversion to an owned slice.
//
// Validation policy: operations named Row, Slice* and the constructors follow
// the build-wide DefaultPolicy (error by default, panic with
// -tags view2d_assert, no check with -tags view2d_nocheck), or the policy the
// composition root passes with WithPolicy. At and the Checked* variants are
// checked under every policy.
//
// Views never own, allocate or free their storage; only ToSlice and friends
// allocate. The storage must outlive every view derived from it.
package view2d
