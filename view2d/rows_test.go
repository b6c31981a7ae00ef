// SPDX-License-Identifier: MIT
// Package view2d_test contains unit tests for row selection and row iteration.
package view2d_test

import (
	"testing"

	"github.com/katalvlaran/arrayview/view2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRow_ThreeByFour is the 3-row view over 0..11 scenario.
func TestRow_ThreeByFour(t *testing.T) {
	v := mustView(t, seq(12), 3)
	require.Equal(t, 4, v.RowLen())

	r1 := mustRow(t, v, 1)
	assert.True(t, view2d.EqualSlice(r1, []int{4, 5, 6, 7}))
	assert.Equal(t, 1, r1.Rows(), "a row is a single-row view")
	assert.Equal(t, 4, view2d.Offset_TestOnly(r1))

	tail, err := mustRow(t, v, 2).SliceFrom(1)
	require.NoError(t, err)
	assert.True(t, view2d.EqualSlice(tail, []int{9, 10, 11}))
}

// TestRow_EveryRowMatchesSource checks row n == source[n*rl:(n+1)*rl].
func TestRow_EveryRowMatchesSource(t *testing.T) {
	src := seq(24)
	for _, rows := range []int{1, 2, 3, 4, 6, 8, 12, 24} {
		v := mustView(t, src, rows)
		rl := v.RowLen()
		for n := 0; n < rows; n++ {
			r := mustRow(t, v, n)
			assert.Equal(t, rl, r.Len())
			assert.True(t, view2d.EqualSlice(r, src[n*rl:(n+1)*rl]), "rows=%d n=%d", rows, n)
		}
		_, err := v.Row(rows)
		assert.ErrorIs(t, err, view2d.ErrOutOfRange, "rows=%d", rows)
	}
}

// TestRow_TwoByTwo is the 2-row view over [0,1,2,3] scenario, both variants.
func TestRow_TwoByTwo(t *testing.T) {
	v := mustView(t, []int{0, 1, 2, 3}, 2)

	variants := map[string]func(int) (view2d.View[int], error){
		"policy":  v.Row,
		"checked": v.CheckedRow,
	}
	for name, row := range variants {
		t.Run(name, func(t *testing.T) {
			r0, err := row(0)
			require.NoError(t, err)
			assert.True(t, view2d.EqualSlice(r0, []int{0, 1}))

			r1, err := row(1)
			require.NoError(t, err)
			assert.True(t, view2d.EqualSlice(r1, []int{2, 3}))

			_, err = row(2)
			assert.ErrorIs(t, err, view2d.ErrOutOfRange)
			_, err = row(-1)
			assert.ErrorIs(t, err, view2d.ErrOutOfRange)
		})
	}
}

// TestAsRows_Restartable ranges twice and expects the same rows both times.
func TestAsRows_Restartable(t *testing.T) {
	v := mustView(t, seq(12), 3)

	collect := func() [][]int {
		var out [][]int
		for r := range v.AsRows() {
			out = append(out, r.ToSlice())
		}
		return out
	}

	first := collect()
	second := collect()
	require.Len(t, first, v.Rows())
	assert.Equal(t, first, second)
	assert.Equal(t, [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}, {8, 9, 10, 11}}, first)
	assert.Equal(t, 12, v.Len(), "ranging leaves the source untouched")
}

// TestAllRows_Indexed checks the index/row pairing and early break.
func TestAllRows_Indexed(t *testing.T) {
	v := mustView(t, seq(6), 3)

	seen := 0
	for i, r := range v.AllRows() {
		assert.True(t, view2d.Equal(mustRow(t, v, i), r))
		seen++
		if i == 1 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}
