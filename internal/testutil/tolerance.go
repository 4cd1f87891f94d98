package testutil

import (
	"fmt"
	"math"
	"testing"
)

// DefaultTolerance is the absolute and relative tolerance used when comparing
// lane-vector reductions against sequential folds.
const DefaultTolerance = 1e-5

// ApproxEqual reports whether a and b agree within tol, either absolutely
// (|a-b| <= tol) or relative to the larger magnitude.
// Comparisons are done in float64.
func ApproxEqual[T float32 | float64](a, b T, tol float64) bool {
	x, y := float64(a), float64(b)
	if x == y {
		return true
	}

	diff := math.Abs(x - y)
	if diff <= tol {
		return true
	}

	largest := math.Max(math.Abs(x), math.Abs(y))
	return diff <= tol*largest
}

// RequireApproxEqual fails t if got and want differ by more than tol, both
// absolutely and relatively.
func RequireApproxEqual[T float32 | float64](t testing.TB, got, want T, tol float64) {
	t.Helper()
	if !ApproxEqual(got, want, tol) {
		t.Fatalf("got %v, want %v (diff %v > tol %v)", got, want, math.Abs(float64(got)-float64(want)), tol)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual[T float32 | float64](t testing.TB, got, want []T, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(float64(got[i]) - float64(want[i]))
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff[T float32 | float64](a, b []T) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
