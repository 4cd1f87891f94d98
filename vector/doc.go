// Package vector provides fixed-width lane vectors over float32 and float64
// and the generic reductions built on them.
//
// Each vector type is a plain Go array with value semantics. The types bind a
// scalar element type to a lane width and a natural alignment:
//
//	| Type   | Scalar  | Lanes | Alignment |
//	|--------|---------|-------|-----------|
//	| F32x4  | float32 | 4     | 16 bytes  |
//	| F64x2  | float64 | 2     | 16 bytes  |
//	| F32x8  | float32 | 8     | 32 bytes  |
//	| F64x4  | float64 | 4     | 32 bytes  |
//	| F32x16 | float32 | 16    | 64 bytes  |
//	| F64x8  | float64 | 8     | 64 bytes  |
//
// Generic code is written against the [Lanes] capability interface and is
// instantiated once per pair, so the pairing is resolved at compile time:
//
//	s := vector.Sum[float32, vector.F32x4](data)
//
// # Casting
//
// Cast views the aligned middle of a scalar slice as a slice of vectors
// without copying. The head and tail that do not fill an aligned vector are
// returned as scalar slices. All three results alias the input and must not
// be used after the input is modified through another reference.
//
// # Reduction order
//
// [Sum] accumulates the body lane by lane, collapses the accumulator in
// ascending lane order and then adds the head and the tail element by element.
// Because floating-point addition is not associative, results may differ in
// the least significant bits from a sequential fold and between lane widths.
package vector
