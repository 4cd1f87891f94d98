package simd

import (
	"math"
	"testing"

	vecmath "github.com/cwbudde/algo-vecmath"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-simd/internal/align"
	"github.com/cwbudde/algo-simd/internal/cpu"
	"github.com/cwbudde/algo-simd/internal/registry"
	"github.com/cwbudde/algo-simd/internal/testutil"
)

func TestSum(t *testing.T) {
	cases := []struct {
		name string
		x    []float64
		want float64
	}{
		{name: "empty", x: nil, want: 0},
		{name: "single positive", x: []float64{3.5}, want: 3.5},
		{name: "single negative", x: []float64{-7.25}, want: -7.25},
		{name: "mixed", x: []float64{-1, 2, -3, 0.5}, want: -1.5},
		{name: "all zeros", x: []float64{0, 0, 0, 0}, want: 0},
		{name: "includes inf", x: []float64{1, math.Inf(1), 2}, want: math.Inf(1)},
		{name: "includes negative inf", x: []float64{1, math.Inf(-1), 2}, want: math.Inf(-1)},
		{name: "ramp", x: testutil.Ramp[float64](10), want: 45},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Sum(tc.x)
			if math.IsInf(tc.want, 0) {
				if got != tc.want {
					t.Fatalf("Sum() = %v, want %v", got, tc.want)
				}
				return
			}
			testutil.RequireApproxEqual(t, got, tc.want, 1e-12)

			f32 := make([]float32, len(tc.x))
			for i, v := range tc.x {
				f32[i] = float32(v)
			}
			testutil.RequireApproxEqual(t, Sum(f32), float32(tc.want), testutil.DefaultTolerance)
		})
	}
}

func TestSumNaN(t *testing.T) {
	if got := Sum([]float32{1, float32(math.NaN()), 2, 3, 4, 5, 6, 7, 8}); !math.IsNaN(float64(got)) {
		t.Fatalf("Sum() = %v, want NaN", got)
	}
	if got := Sum([]float64{math.Inf(1), math.Inf(-1)}); !math.IsNaN(got) {
		t.Fatalf("Sum() = %v, want NaN", got)
	}
}

func TestSumScenario(t *testing.T) {
	// Ten float32 values 0..9 starting on a 16-byte boundary.
	v := align.MakeOffset[float32](10, 0, 16)
	copy(v, testutil.Ramp[float32](10))

	if got := Sum(v); got != 45 {
		t.Fatalf("Sum(v) = %v, want 45", got)
	}
	if got := Sum(v[1:5]); got != 10 {
		t.Fatalf("Sum(v[1:5]) = %v, want 10", got)
	}
	if got := Sum(v[2:]); got != 44 {
		t.Fatalf("Sum(v[2:]) = %v, want 44", got)
	}
}

func TestSumReferenceParity(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 4, 5, 7, 8, 15, 16, 17, 31, 32, 33, 63, 64, 100, 1000, 1023, 1024, 1025}
	for _, n := range sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			for offset := 0; offset < 16; offset++ {
				x32 := testutil.RandomAligned[float32](int64(n+offset), n, offset, 64)
				testutil.RequireApproxEqual(t, Sum(x32), testutil.Fold(x32), testutil.DefaultTolerance)

				x64 := testutil.RandomAligned[float64](int64(n+offset), n, offset%8, 64)
				testutil.RequireApproxEqual(t, Sum(x64), testutil.Fold(x64), 1e-12)
			}
		})
	}
}

func TestSumDispatchParity(t *testing.T) {
	x32 := testutil.Random[float32](7, 1025)
	x64 := testutil.Random[float64](7, 1025)

	forceFeatures(t, cpu.Features{ForceGeneric: true})
	want32, want64 := Sum(x32), Sum(x64)
	if got := Implementation(); got != "generic" {
		t.Fatalf("Implementation() = %q with ForceGeneric, want generic", got)
	}

	// The wide kernels are portable Go, so they can be exercised on any host
	// by forcing the feature flags.
	for _, f := range []cpu.Features{
		{Architecture: "amd64", HasSSE2: true},
		{Architecture: "amd64", HasSSE2: true, HasAVX: true, HasAVX2: true},
		{Architecture: "amd64", HasSSE2: true, HasAVX: true, HasAVX2: true, HasAVX512: true},
		{Architecture: "arm64", HasNEON: true},
	} {
		forceFeatures(t, f)

		want := registry.Global.Lookup(f)
		if want == nil {
			t.Fatal("no kernel registered")
		}
		if got := Implementation(); got != want.Name {
			t.Fatalf("Implementation() = %q for %s, want %q", got, cpu.Best(f), want.Name)
		}

		testutil.RequireApproxEqual(t, Sum(x32), want32, testutil.DefaultTolerance)
		testutil.RequireApproxEqual(t, Sum(x64), want64, 1e-12)
	}
}

func TestSumLinearity(t *testing.T) {
	for _, n := range []int{5, 64, 1000} {
		t.Run(sizeStr(n), func(t *testing.T) {
			a := testutil.Random[float64](1, n)
			b := testutil.Random[float64](2, n)

			ab := append([]float64(nil), a...)
			vecmath.AddBlockInPlace(ab, b)
			testutil.RequireApproxEqual(t, Sum(ab), Sum(a)+Sum(b), 1e-12)

			scaled := make([]float64, n)
			vecmath.ScaleBlock(scaled, a, -2.5)
			testutil.RequireApproxEqual(t, Sum(scaled), -2.5*Sum(a), 1e-12)
		})
	}
}

func TestSumSubSlices(t *testing.T) {
	x := testutil.Random[float32](3, 300)
	for start := 0; start < 40; start++ {
		for _, end := range []int{start, start + 1, start + 17, 300} {
			s := x[start:end]
			testutil.RequireApproxEqual(t, Sum(s), testutil.Fold(s), testutil.DefaultTolerance)
		}
	}
}

func TestSumConcurrent(t *testing.T) {
	x := testutil.Random[float64](11, 4099)
	before := append([]float64(nil), x...)
	want := Sum(x)

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 50; j++ {
				if got := Sum(x); got != want {
					t.Errorf("concurrent Sum() = %v, want %v", got, want)
					return nil
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, x, before, 0)
}

func TestImplementationRegistered(t *testing.T) {
	name := Implementation()
	if _, ok := registry.Global.Find(name); !ok {
		t.Fatalf("Implementation() = %q, not in registry", name)
	}
	if _, ok := registry.Global.Find("generic"); !ok {
		t.Fatal("generic kernel not registered")
	}
}
