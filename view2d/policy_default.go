// SPDX-License-Identifier: MIT

//go:build !view2d_assert && !view2d_nocheck

package view2d

// DefaultPolicy is the build-wide validation policy. Build with
// -tags view2d_assert or -tags view2d_nocheck to change it.
const DefaultPolicy = PolicyError
