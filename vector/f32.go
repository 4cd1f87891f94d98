package vector

import "github.com/cwbudde/algo-simd/internal/align"

const (
	align128 = 16
	align256 = 32
	align512 = 64
)

// F32x4 is a 128-bit vector of four float32 lanes.
type F32x4 [4]float32

// Add returns the lane-wise sum a+b.
func (a F32x4) Add(b F32x4) F32x4 { return F32x4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]} }

// Sub returns the lane-wise difference a-b.
func (a F32x4) Sub(b F32x4) F32x4 { return F32x4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]} }

// Mul returns the lane-wise product a*b.
func (a F32x4) Mul(b F32x4) F32x4 { return F32x4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]} }

// Div returns the lane-wise quotient a/b.
func (a F32x4) Div(b F32x4) F32x4 { return F32x4{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]} }

// Splat returns a F32x4 with every lane set to x.
func (F32x4) Splat(x float32) F32x4 { return F32x4{x, x, x, x} }

// Map applies f to each lane in order. Slow; not for hot loops.
func (a F32x4) Map(f func(float32) float32) F32x4 {
	return F32x4{f(a[0]), f(a[1]), f(a[2]), f(a[3])}
}

// ReduceSum returns the lanes added in ascending order.
func (a F32x4) ReduceSum() float32 { return a[0] + a[1] + a[2] + a[3] }

// Cast splits x around 16-byte boundaries into a scalar head, a body of
// F32x4 and a scalar tail. All three alias x.
func (F32x4) Cast(x []float32) (head []float32, body []F32x4, tail []float32) {
	return align.Split[F32x4](x, align128)
}

// Width returns 4.
func (F32x4) Width() int { return 4 }

// Align returns 16.
func (F32x4) Align() uintptr { return align128 }

// F32x8 is a 256-bit vector of eight float32 lanes.
type F32x8 [8]float32

func (a F32x8) Add(b F32x8) F32x8 {
	for i := range a {
		a[i] += b[i]
	}
	return a
}

func (a F32x8) Sub(b F32x8) F32x8 {
	for i := range a {
		a[i] -= b[i]
	}
	return a
}

func (a F32x8) Mul(b F32x8) F32x8 {
	for i := range a {
		a[i] *= b[i]
	}
	return a
}

func (a F32x8) Div(b F32x8) F32x8 {
	for i := range a {
		a[i] /= b[i]
	}
	return a
}

func (F32x8) Splat(x float32) F32x8 {
	var v F32x8
	for i := range v {
		v[i] = x
	}
	return v
}

func (a F32x8) Map(f func(float32) float32) F32x8 {
	for i := range a {
		a[i] = f(a[i])
	}
	return a
}

func (a F32x8) ReduceSum() float32 {
	s := a[0]
	for _, x := range a[1:] {
		s += x
	}
	return s
}

func (F32x8) Cast(x []float32) (head []float32, body []F32x8, tail []float32) {
	return align.Split[F32x8](x, align256)
}

func (F32x8) Width() int     { return 8 }
func (F32x8) Align() uintptr { return align256 }

// F32x16 is a 512-bit vector of sixteen float32 lanes.
type F32x16 [16]float32

func (a F32x16) Add(b F32x16) F32x16 {
	for i := range a {
		a[i] += b[i]
	}
	return a
}

func (a F32x16) Sub(b F32x16) F32x16 {
	for i := range a {
		a[i] -= b[i]
	}
	return a
}

func (a F32x16) Mul(b F32x16) F32x16 {
	for i := range a {
		a[i] *= b[i]
	}
	return a
}

func (a F32x16) Div(b F32x16) F32x16 {
	for i := range a {
		a[i] /= b[i]
	}
	return a
}

func (F32x16) Splat(x float32) F32x16 {
	var v F32x16
	for i := range v {
		v[i] = x
	}
	return v
}

func (a F32x16) Map(f func(float32) float32) F32x16 {
	for i := range a {
		a[i] = f(a[i])
	}
	return a
}

func (a F32x16) ReduceSum() float32 {
	s := a[0]
	for _, x := range a[1:] {
		s += x
	}
	return s
}

func (F32x16) Cast(x []float32) (head []float32, body []F32x16, tail []float32) {
	return align.Split[F32x16](x, align512)
}

func (F32x16) Width() int     { return 16 }
func (F32x16) Align() uintptr { return align512 }
