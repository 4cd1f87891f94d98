package avx512

import (
	"testing"

	"github.com/cwbudde/algo-simd/internal/registry"
	"github.com/cwbudde/algo-simd/internal/testutil"
)

func TestSumFloat32(t *testing.T) {
	for offset := 0; offset < 16; offset++ {
		for _, n := range []int{0, 1, 15, 16, 17, 49, 100, 1025} {
			x := testutil.RandomAligned[float32](int64(n+offset), n, offset, 64)
			testutil.RequireApproxEqual(t, SumFloat32(x), testutil.Fold(x), testutil.DefaultTolerance)
		}
	}
}

func TestSumFloat64(t *testing.T) {
	for offset := 0; offset < 8; offset++ {
		for _, n := range []int{0, 1, 7, 8, 9, 25, 100, 1025} {
			x := testutil.RandomAligned[float64](int64(n+offset), n, offset, 64)
			testutil.RequireApproxEqual(t, SumFloat64(x), testutil.Fold(x), testutil.DefaultTolerance)
		}
	}
}

func TestSumRamp(t *testing.T) {
	if got := SumFloat32(testutil.Ramp[float32](10)); got != 45 {
		t.Fatalf("SumFloat32 = %v, want 45", got)
	}
	if got := SumFloat64(testutil.Ramp[float64](10)); got != 45 {
		t.Fatalf("SumFloat64 = %v, want 45", got)
	}
}

func TestRegistered(t *testing.T) {
	e, ok := registry.Global.Find("avx512")
	if !ok {
		t.Fatal("avx512 kernels not registered")
	}
	if e.VectorBytes != 64 {
		t.Fatalf("VectorBytes = %d, want 64", e.VectorBytes)
	}
	if e.SumFloat32 == nil || e.SumFloat64 == nil {
		t.Fatal("avx512 entry is missing a summation kernel")
	}
}
