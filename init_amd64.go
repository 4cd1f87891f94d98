//go:build amd64 && !purego

package simd

// This file imports the amd64 kernel packages to trigger their init()
// functions, which register them with the global registry.

import (
	// 128-bit reference lanes
	_ "github.com/cwbudde/algo-simd/internal/arch/generic"

	// AMD64 wide lanes
	_ "github.com/cwbudde/algo-simd/internal/arch/amd64/avx2"
	_ "github.com/cwbudde/algo-simd/internal/arch/amd64/avx512"
)
