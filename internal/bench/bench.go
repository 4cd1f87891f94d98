// Package bench compares a plain left-to-right fold with simd.Sum on the same
// input.
package bench

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	fuzz "github.com/google/gofuzz"

	simd "github.com/cwbudde/algo-simd"
	"github.com/cwbudde/algo-simd/internal/align"
	"github.com/cwbudde/algo-simd/vector"
)

// ErrUnknownType is returned by Run for an element type name it does not know.
var ErrUnknownType = errors.New("bench: unknown element type")

// Types lists the element type names accepted by Run.
var Types = []string{"float32", "float64"}

// Result holds one comparison.
type Result struct {
	Type string
	Impl string
	Size int

	PlainNsPerOp float64
	LanesNsPerOp float64

	PlainSum float64
	LanesSum float64
}

// Speedup is the plain time divided by the lanes time.
func (r Result) Speedup() float64 {
	if r.LanesNsPerOp == 0 {
		return 0
	}
	return r.PlainNsPerOp / r.LanesNsPerOp
}

// Diff is the absolute difference between the two sums.
func (r Result) Diff() float64 {
	return math.Abs(r.LanesSum - r.PlainSum)
}

// Run runs Compare for the element type named typ ("float32"/"f32" or
// "float64"/"f64").
func Run(ctx context.Context, typ string, opts ...Option) (Result, error) {
	switch strings.ToLower(typ) {
	case "float32", "f32":
		return Compare[float32](ctx, opts...)
	case "float64", "f64":
		return Compare[float64](ctx, opts...)
	}
	return Result{}, fmt.Errorf("%w: %q", ErrUnknownType, typ)
}

// Compare times the plain fold and simd.Sum on the same pseudo-random input.
func Compare[T vector.Float](ctx context.Context, opts ...Option) (Result, error) {
	cfg := ApplyOptions(opts...)

	x := align.MakeOffset[T](cfg.Size, cfg.Offset, 64)
	f := fuzz.NewWithSeed(cfg.Seed).NilChance(0)
	for i := range x {
		f.Fuzz(&x[i])
	}

	res := Result{
		Type: fmt.Sprintf("%T", x[0]),
		Impl: simd.Implementation(),
		Size: cfg.Size,
	}

	var plain, lanes T
	var err error

	res.PlainNsPerOp, err = measure(ctx, cfg.MinTime, func() { plain = fold(x) })
	if err != nil {
		return Result{}, fmt.Errorf("bench: plain %s: %w", res.Type, err)
	}
	res.LanesNsPerOp, err = measure(ctx, cfg.MinTime, func() { lanes = simd.Sum(x) })
	if err != nil {
		return Result{}, fmt.Errorf("bench: lanes %s: %w", res.Type, err)
	}

	res.PlainSum = float64(plain)
	res.LanesSum = float64(lanes)
	return res, nil
}

func fold[T vector.Float](x []T) T {
	var sum T
	for _, v := range x {
		sum += v
	}
	return sum
}

// measure calls fn in rounds of doubling size until a round takes at least
// minTime and returns the time per call of that round.
func measure(ctx context.Context, minTime time.Duration, fn func()) (float64, error) {
	for n := 1; ; n *= 2 {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		start := time.Now()
		for i := 0; i < n; i++ {
			fn()
		}
		elapsed := time.Since(start)

		if elapsed >= minTime || n >= 1<<30 {
			return float64(elapsed.Nanoseconds()) / float64(n), nil
		}
	}
}
