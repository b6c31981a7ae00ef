// SPDX-License-Identifier: MIT

//go:build view2d_assert && !view2d_nocheck

package view2d

// DefaultPolicy is the build-wide validation policy (debug build: panic).
const DefaultPolicy = PolicyAssert
