// SPDX-License-Identifier: MIT
// Package: view2d
//
// Purpose:
//  - Single source of truth for the bound and shape predicates.
//  - Predicates are pure, allocate nothing and know nothing about policy;
//    call sites decide whether to evaluate them and how to report failure.

package view2d

// validRowCount reports whether n elements split into rows equal rows.
func validRowCount(n, rows int) bool {
	return rows > 0 && n%rows == 0
}

// validIndex reports whether 0 <= i < n.
func validIndex(i, n int) bool {
	return i >= 0 && i < n
}

// validSpan reports whether [pos, pos+count) lies within [0, n].
// The sum is not formed before pos is bounded, so it cannot overflow.
func validSpan(pos, count, n int) bool {
	return pos >= 0 && pos <= n && count >= 0 && count <= n-pos
}

// sameStorage reports whether a and b are the same root storage.
// Two empty roots are treated as the same storage.
func sameStorage[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return len(a) == 0 && len(b) == 0
	}

	return len(a) == len(b) && &a[0] == &b[0]
}
