// Package arrayview is a small toolkit for reading flat, contiguous buffers
// as two-dimensional data without copying them.
//
// What is inside?
//
//	view2d/   - View[T]: read-only rows-and-slices view over a slice, array,
//	            list literal or raw pointer; flat comparison and conversion
//	examples/ - runnable programs: row iteration over a record packet,
//	            building views from every kind of source
//
// Why?
//
//   - Zero-copy – rows and slices borrow the caller's storage
//   - Explicit policy – error, panic or no check, chosen once per build
//   - Pure Go – generics and iter.Seq, no cgo
//
// Quick example:
//
//	v, _ := view2d.New([]int{0, 0, 1, 1, 2, 2}, 3)
//	for row := range v.AsRows() {
//		fmt.Println(row) // { 0, 0 } / { 1, 1 } / { 2, 2 }
//	}
//
//	go get github.com/katalvlaran/arrayview/view2d
package arrayview
