package simd

import (
	"sync"

	"github.com/cwbudde/algo-simd/internal/cpu"
	"github.com/cwbudde/algo-simd/internal/registry"
	"github.com/cwbudde/algo-simd/vector"
)

var (
	sumFloat32Impl func([]float32) float32
	sumFloat64Impl func([]float64) float64
	sumImplName    string
	sumInitOnce    sync.Once
)

func initSumOperation() {
	features := cpu.DetectFeatures()
	entry := registry.Global.Lookup(features)
	if entry == nil {
		panic("simd: no sum implementation registered")
	}
	if entry.SumFloat32 == nil || entry.SumFloat64 == nil {
		panic("simd: selected implementation missing sum operation")
	}
	sumFloat32Impl = entry.SumFloat32
	sumFloat64Impl = entry.SumFloat64
	sumImplName = entry.Name
}

// Sum returns the sum of all elements in x.
// Returns 0 for an empty slice.
func Sum[T vector.Float](x []T) T {
	sumInitOnce.Do(initSumOperation)

	switch x := any(x).(type) {
	case []float32:
		return T(sumFloat32Impl(x))
	case []float64:
		return T(sumFloat64Impl(x))
	}
	panic("simd: unsupported element type")
}

// Implementation returns the name of the kernel set used by Sum,
// e.g. "generic", "avx2" or "avx512".
func Implementation() string {
	sumInitOnce.Do(initSumOperation)
	return sumImplName
}
