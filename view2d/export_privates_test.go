// SPDX-License-Identifier: MIT

package view2d

// Test-Bridge (White-Box) for unexported state.
//
// Purpose:
//   - Let view2d_test assert storage sharing and stable panic messages
//     without widening the production API.

// PanicPolicyInvalid_TestOnly is the panic message of WithPolicy.
const PanicPolicyInvalid_TestOnly = panicPolicyInvalid

// Offset_TestOnly returns the offset of v's first element in its storage.
func Offset_TestOnly[T any](v View[T]) int { return v.lo }

// SameStorage_TestOnly reports whether a and b view the same root storage.
func SameStorage_TestOnly[T any](a, b View[T]) bool { return sameStorage(a.src, b.src) }

// ValidSpan_TestOnly forwards to validSpan.
var ValidSpan_TestOnly = validSpan
