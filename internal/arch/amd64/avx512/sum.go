package avx512

import "github.com/cwbudde/algo-simd/vector"

// SumFloat32 returns the sum of all elements in x using F32x16 lanes.
func SumFloat32(x []float32) float32 {
	return vector.Sum[float32, vector.F32x16](x)
}

// SumFloat64 returns the sum of all elements in x using F64x8 lanes.
func SumFloat64(x []float64) float64 {
	return vector.Sum[float64, vector.F64x8](x)
}
