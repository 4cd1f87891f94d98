// Package avx512 binds the 512-bit lane vectors F32x16 and F64x8 to the kernel
// registry. The kernels are portable Go; only the lane width follows the ISA,
// chosen to match the AVX-512 register file.
package avx512

import (
	"github.com/cwbudde/algo-simd/internal/cpu"
	"github.com/cwbudde/algo-simd/internal/registry"
)

// init registers the 512-bit lane kernels with the registry.
//
// Priority: 30 (highest - preferred whenever AVX-512 foundation is present)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:        "avx512",
		SIMDLevel:   cpu.SIMDAVX512,
		Priority:    30,
		VectorBytes: 64,

		SumFloat32: SumFloat32,
		SumFloat64: SumFloat64,
	})
}
