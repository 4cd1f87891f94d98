// Package simd sums float32 and float64 slices with lane-vector arithmetic.
//
// The input is split into an unaligned head, an aligned body viewed as
// fixed-width lane vectors and an unaligned tail, without copying. The body is
// accumulated lane by lane, the lanes are collapsed in ascending order and the
// head and tail are added as scalars:
//
//	s := simd.Sum(samples) // samples is []float32 or []float64
//
// The lane width is chosen once per process from the detected CPU features:
// 128-bit lanes by default (and on arm64), 256-bit lanes with AVX2 and 512-bit
// lanes with AVX-512. Build with the purego tag to always use the 128-bit
// lanes. Use the vector package directly to pin a width:
//
//	s := vector.Sum[float32, vector.F32x4](samples)
//
// Results agree with a sequential left-to-right fold within floating-point
// tolerance but are not bit-identical to it, nor across lane widths.
//
// Sum allocates nothing and never modifies its input. It is safe to call
// concurrently, including on the same slice.
package simd
