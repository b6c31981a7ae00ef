// Package view2d_test provides benchmarks for row selection, slicing,
// iteration and comparison over deterministic buffers.
package view2d_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/arrayview/view2d"
)

// benchSizes are the square sides to benchmark (n×n elements).
var benchSizes = []int{64, 256, 1024}

// sinks to defeat dead-code elimination
var (
	sinkV view2d.View[float64]
	sinkF float64
	sinkB bool
	sinkS []float64
)

// squareOf returns an n×n view over 0..n*n-1.
func squareOf(b *testing.B, n int) view2d.View[float64] {
	b.Helper()
	buf := make([]float64, n*n)
	for i := range buf {
		buf[i] = float64(i)
	}

	return mustView(b, buf, n)
}

func BenchmarkRow(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			v := squareOf(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r, err := v.Row(i % n)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = r
			}
		})
	}
}

func BenchmarkAsRowsSum(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			v := squareOf(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				var s float64
				for r := range v.AsRows() {
					for x := range r.Values() {
						s += x
					}
				}
				sinkF = s
			}
		})
	}
}

func BenchmarkIndexVsAt(b *testing.B) {
	v := squareOf(b, 256)
	b.Run("Index", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sinkF = v.Index(i % v.Len())
		}
	})
	b.Run("At", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			x, err := v.At(i % v.Len())
			if err != nil {
				b.Fatal(err)
			}
			sinkF = x
		}
	})
}

func BenchmarkEqual(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := squareOf(b, n)
			y := squareOf(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkB = view2d.Equal(x, y)
			}
		})
	}
}

func BenchmarkToSlice(b *testing.B) {
	b.ReportAllocs()
	v := squareOf(b, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkS = v.ToSlice()
	}
}
