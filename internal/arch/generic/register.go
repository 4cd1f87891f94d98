package generic

import (
	"github.com/cwbudde/algo-simd/internal/cpu"
	"github.com/cwbudde/algo-simd/internal/registry"
)

// init registers the 128-bit lane kernels with the registry.
//
// The 128-bit pairing (F32x4, F64x2) is the reference design and matches the
// SSE2 and NEON register width. It serves as the fallback when no wider
// registers are available or when ForceGeneric is set.
//
// Priority: 0 (lowest - used only when no wider alternative is supported)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:        "generic",
		SIMDLevel:   cpu.SIMDNone,
		Priority:    0,
		VectorBytes: 16,

		SumFloat32: SumFloat32,
		SumFloat64: SumFloat64,
	})
}
