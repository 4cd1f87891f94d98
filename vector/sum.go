package vector

// Sum returns the sum of all elements of x using V-wide lane arithmetic for
// the aligned body of x and scalar additions for the unaligned edges.
// Returns 0 for an empty slice.
//
// The body is folded left to right into a zero accumulator, the accumulator
// is collapsed with ReduceSum, then the head and the tail are added in order.
func Sum[T Float, V Lanes[T, V]](x []T) T {
	var acc V
	head, body, tail := acc.Cast(x)

	for _, v := range body {
		acc = acc.Add(v)
	}

	sum := acc.ReduceSum()
	for _, h := range head {
		sum += h
	}
	for _, t := range tail {
		sum += t
	}
	return sum
}
