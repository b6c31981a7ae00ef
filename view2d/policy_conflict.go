// SPDX-License-Identifier: MIT

//go:build view2d_assert && view2d_nocheck

package view2d

// Only one of the view2d_assert and view2d_nocheck build tags may be set.
var _ = only_one_of_view2d_assert_and_view2d_nocheck
