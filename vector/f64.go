package vector

import "github.com/cwbudde/algo-simd/internal/align"

// F64x2 is a 128-bit vector of two float64 lanes.
type F64x2 [2]float64

// Add returns the lane-wise sum a+b.
func (a F64x2) Add(b F64x2) F64x2 { return F64x2{a[0] + b[0], a[1] + b[1]} }

// Sub returns the lane-wise difference a-b.
func (a F64x2) Sub(b F64x2) F64x2 { return F64x2{a[0] - b[0], a[1] - b[1]} }

// Mul returns the lane-wise product a*b.
func (a F64x2) Mul(b F64x2) F64x2 { return F64x2{a[0] * b[0], a[1] * b[1]} }

// Div returns the lane-wise quotient a/b.
func (a F64x2) Div(b F64x2) F64x2 { return F64x2{a[0] / b[0], a[1] / b[1]} }

// Splat returns a F64x2 with every lane set to x.
func (F64x2) Splat(x float64) F64x2 { return F64x2{x, x} }

// Map applies f to each lane in order. Slow; not for hot loops.
func (a F64x2) Map(f func(float64) float64) F64x2 { return F64x2{f(a[0]), f(a[1])} }

// ReduceSum returns the lanes added in ascending order.
func (a F64x2) ReduceSum() float64 { return a[0] + a[1] }

// Cast splits x around 16-byte boundaries into a scalar head, a body of
// F64x2 and a scalar tail. All three alias x.
func (F64x2) Cast(x []float64) (head []float64, body []F64x2, tail []float64) {
	return align.Split[F64x2](x, align128)
}

// Width returns 2.
func (F64x2) Width() int { return 2 }

// Align returns 16.
func (F64x2) Align() uintptr { return align128 }

// F64x4 is a 256-bit vector of four float64 lanes.
type F64x4 [4]float64

func (a F64x4) Add(b F64x4) F64x4 { return F64x4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]} }
func (a F64x4) Sub(b F64x4) F64x4 { return F64x4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]} }
func (a F64x4) Mul(b F64x4) F64x4 { return F64x4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]} }
func (a F64x4) Div(b F64x4) F64x4 { return F64x4{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]} }

func (F64x4) Splat(x float64) F64x4 { return F64x4{x, x, x, x} }

func (a F64x4) Map(f func(float64) float64) F64x4 {
	return F64x4{f(a[0]), f(a[1]), f(a[2]), f(a[3])}
}

func (a F64x4) ReduceSum() float64 { return a[0] + a[1] + a[2] + a[3] }

func (F64x4) Cast(x []float64) (head []float64, body []F64x4, tail []float64) {
	return align.Split[F64x4](x, align256)
}

func (F64x4) Width() int     { return 4 }
func (F64x4) Align() uintptr { return align256 }

// F64x8 is a 512-bit vector of eight float64 lanes.
type F64x8 [8]float64

func (a F64x8) Add(b F64x8) F64x8 {
	for i := range a {
		a[i] += b[i]
	}
	return a
}

func (a F64x8) Sub(b F64x8) F64x8 {
	for i := range a {
		a[i] -= b[i]
	}
	return a
}

func (a F64x8) Mul(b F64x8) F64x8 {
	for i := range a {
		a[i] *= b[i]
	}
	return a
}

func (a F64x8) Div(b F64x8) F64x8 {
	for i := range a {
		a[i] /= b[i]
	}
	return a
}

func (F64x8) Splat(x float64) F64x8 {
	var v F64x8
	for i := range v {
		v[i] = x
	}
	return v
}

func (a F64x8) Map(f func(float64) float64) F64x8 {
	for i := range a {
		a[i] = f(a[i])
	}
	return a
}

func (a F64x8) ReduceSum() float64 {
	s := a[0]
	for _, x := range a[1:] {
		s += x
	}
	return s
}

func (F64x8) Cast(x []float64) (head []float64, body []F64x8, tail []float64) {
	return align.Split[F64x8](x, align512)
}

func (F64x8) Width() int     { return 8 }
func (F64x8) Align() uintptr { return align512 }
