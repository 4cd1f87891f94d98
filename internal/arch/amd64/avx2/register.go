// Package avx2 binds the 256-bit lane vectors F32x8 and F64x4 to the kernel
// registry. The kernels are portable Go; only the lane width follows the ISA,
// chosen to match the AVX2 register file.
package avx2

import (
	"github.com/cwbudde/algo-simd/internal/cpu"
	"github.com/cwbudde/algo-simd/internal/registry"
)

// init registers the 256-bit lane kernels with the registry.
//
// AVX2 provides 256-bit registers, so the body is split into F32x8 and F64x4
// vectors aligned to 32 bytes. Available on Intel Haswell (2013+) and AMD
// Excavator (2015+).
//
// Priority: 20 (preferred over generic when available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:        "avx2",
		SIMDLevel:   cpu.SIMDAVX2,
		Priority:    20,
		VectorBytes: 32,

		SumFloat32: SumFloat32,
		SumFloat64: SumFloat64,
	})
}
