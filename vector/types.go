package vector

// Float is the set of scalar element types that have a vector binding.
type Float interface {
	float32 | float64
}

// Lanes is the capability set of a vector type V whose lanes hold T.
//
// Methods that only construct a value (Splat, Cast, Width, Align) ignore
// their receiver and are meant to be called on the zero value. The zero value
// of every vector type has all lanes set to 0.
type Lanes[T Float, V any] interface {
	// Add returns the lane-wise sum.
	Add(V) V
	// Sub returns the lane-wise difference.
	Sub(V) V
	// Mul returns the lane-wise product.
	Mul(V) V
	// Div returns the lane-wise quotient.
	Div(V) V

	// Splat returns a vector with every lane set to x.
	Splat(x T) V

	// Map applies f to each lane, one lane after another.
	//
	// NOTE: Slow! f is called serially for every lane.
	Map(f func(T) T) V

	// ReduceSum returns lane 0 + lane 1 + ... + lane N-1, added in that order.
	ReduceSum() T

	// Cast splits x into an unaligned head, an aligned body of vectors and an
	// unaligned tail. See the package documentation.
	Cast(x []T) (head []T, body []V, tail []T)

	// Width returns the number of lanes.
	Width() int
	// Align returns the natural alignment in bytes, equal to the vector size.
	Align() uintptr
}

// Zero returns the vector with all lanes set to 0.
func Zero[V any]() V {
	var v V
	return v
}

// Splat returns a V with every lane set to x.
func Splat[T Float, V Lanes[T, V]](x T) V {
	var v V
	return v.Splat(x)
}

// Cast splits x at the natural alignment of V.
//
// The body starts at an address that is a multiple of the size of V; head and
// tail hold fewer than V's width elements each. If x is too short to contain
// an aligned vector, the whole input is returned as head.
func Cast[T Float, V Lanes[T, V]](x []T) (head []T, body []V, tail []T) {
	var v V
	return v.Cast(x)
}
