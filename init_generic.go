//go:build !amd64 || purego

package simd

// This file imports the 128-bit reference lanes only. On arm64 they match the
// NEON register width.

import (
	_ "github.com/cwbudde/algo-simd/internal/arch/generic"
)
