package generic

import "github.com/cwbudde/algo-simd/vector"

// SumFloat32 returns the sum of all elements in x using F32x4 lanes.
// Returns 0 for an empty slice.
func SumFloat32(x []float32) float32 {
	return vector.Sum[float32, vector.F32x4](x)
}

// SumFloat64 returns the sum of all elements in x using F64x2 lanes.
// Returns 0 for an empty slice.
func SumFloat64(x []float64) float64 {
	return vector.Sum[float64, vector.F64x2](x)
}
