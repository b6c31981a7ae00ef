// SPDX-License-Identifier: MIT

//go:build view2d_nocheck && !view2d_assert

package view2d

// DefaultPolicy is the build-wide validation policy (release build: no checks).
const DefaultPolicy = PolicyNone
