// SPDX-License-Identifier: MIT
// Package view2d_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures (0..n-1 buffers, fixed containers).
//   - Policy-independent construction: helpers pin PolicyError so tests
//     behave the same under every build tag.

package view2d_test

import (
	"fmt"
	"iter"
	"testing"

	"github.com/katalvlaran/arrayview/view2d"
	"github.com/stretchr/testify/require"
)

// errPolicy pins the error-returning policy.
var errPolicy = view2d.WithPolicy(view2d.PolicyError)

// seq RETURNS the buffer [0, 1, ..., n-1].
func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}

	return s
}

// mustView BUILDS a PolicyError view over src or fails the test.
func mustView[T any](tb testing.TB, src []T, rows int) view2d.View[T] {
	tb.Helper()
	v, err := view2d.New(src, rows, errPolicy)
	require.NoError(tb, err)

	return v
}

// mustRow SELECTS row n or fails the test.
func mustRow[T any](tb testing.TB, v view2d.View[T], n int) view2d.View[T] {
	tb.Helper()
	r, err := v.Row(n)
	require.NoError(tb, err)

	return r
}

// recoverErr runs f and returns the error it panicked with, or nil.
func recoverErr(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("non-error panic: %v", r)
		}
	}()
	f()

	return nil
}

// quad is a fixed-capacity container carrying its own size.
type quad struct{ a [4]int }

func (q *quad) Elements() []int { return q.a[:] }

// countSeq is a Sequence that is neither a View nor a slice: 0..n-1.
type countSeq struct{ n int }

func (c countSeq) Len() int { return c.n }

func (c countSeq) Values() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < c.n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
