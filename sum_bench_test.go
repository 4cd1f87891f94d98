package simd

import (
	"testing"

	"github.com/cwbudde/algo-simd/internal/testutil"
)

var benchSizes = []int{16, 256, 4096, 65536, 1_000_000}

func BenchmarkSumFloat32(b *testing.B) {
	for _, size := range benchSizes {
		x := testutil.Random[float32](1, size)

		b.Run(sizeStr(size), func(b *testing.B) {
			b.SetBytes(int64(size * 4))
			for i := 0; i < b.N; i++ {
				_ = Sum(x)
			}
		})
	}
}

func BenchmarkSumFloat32Fold(b *testing.B) {
	for _, size := range benchSizes {
		x := testutil.Random[float32](1, size)

		b.Run(sizeStr(size), func(b *testing.B) {
			b.SetBytes(int64(size * 4))
			for i := 0; i < b.N; i++ {
				_ = testutil.Fold(x)
			}
		})
	}
}

func BenchmarkSumFloat64(b *testing.B) {
	for _, size := range benchSizes {
		x := testutil.Random[float64](1, size)

		b.Run(sizeStr(size), func(b *testing.B) {
			b.SetBytes(int64(size * 8))
			for i := 0; i < b.N; i++ {
				_ = Sum(x)
			}
		})
	}
}

func BenchmarkSumFloat64Fold(b *testing.B) {
	for _, size := range benchSizes {
		x := testutil.Random[float64](1, size)

		b.Run(sizeStr(size), func(b *testing.B) {
			b.SetBytes(int64(size * 8))
			for i := 0; i < b.N; i++ {
				_ = testutil.Fold(x)
			}
		})
	}
}
