package testutil

import (
	fuzz "github.com/google/gofuzz"

	"github.com/cwbudde/algo-simd/internal/align"
)

// Random returns n pseudo-random values in [0, 1) generated from seed.
// The same seed always yields the same sequence.
func Random[T float32 | float64](seed int64, n int) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, n)
	fillRandom(seed, out)
	return out
}

// RandomAligned is like Random but the result starts offset elements past an
// address that is a multiple of alignment.
func RandomAligned[T float32 | float64](seed int64, n, offset int, alignment uintptr) []T {
	out := align.MakeOffset[T](n, offset, alignment)
	fillRandom(seed, out)
	return out
}

func fillRandom[T float32 | float64](seed int64, out []T) {
	f := fuzz.NewWithSeed(seed).NilChance(0)
	for i := range out {
		f.Fuzz(&out[i])
	}
}

// Ramp returns [0, 1, ..., n-1].
func Ramp[T float32 | float64](n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(i)
	}
	return out
}

// Fold is the plain left-to-right reference sum.
func Fold[T float32 | float64](x []T) T {
	var sum T
	for _, v := range x {
		sum += v
	}
	return sum
}
