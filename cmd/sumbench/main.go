// Command sumbench compares a plain left-to-right fold with the lane-vector
// sum on pseudo-random input.
//
// Usage:
//
//	sumbench [flags]
//
// Examples:
//
//	sumbench
//	sumbench -type f32 -size 4096
//	sumbench -offset 3 -min-time 2s -v
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-simd/internal/bench"
	"github.com/cwbudde/algo-simd/internal/cpu"
)

func main() {
	size := flag.Int("size", 1_000_000, "number of elements per sum")
	offset := flag.Int("offset", 0, "misalign the input by this many elements")
	seed := flag.Int64("seed", 1, "seed of the pseudo-random input")
	typ := flag.String("type", "all", "element type: f32, f64 or all")
	minTime := flag.Duration("min-time", 500*time.Millisecond, "minimum measuring time per variant")
	verbose := flag.Bool("v", false, "log debug output to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sumbench [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Times a plain fold against the lane-vector sum.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sumbench -type f32 -size 4096\n")
		fmt.Fprintf(os.Stderr, "  sumbench -offset 3 -min-time 2s -v\n")
	}
	flag.Parse()

	logger := newLogger(*verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	types := bench.Types
	if *typ != "all" {
		types = []string{*typ}
	}

	features := cpu.DetectFeatures()
	logger.Debug("detected cpu",
		"arch", features.Architecture,
		"sse2", cpu.HasSSE2(),
		"avx2", cpu.HasAVX2(),
		"avx512", cpu.HasAVX512(),
		"neon", cpu.HasNEON(),
		"best", cpu.Best(features).String(),
	)

	opts := []bench.Option{
		bench.WithSize(*size),
		bench.WithOffset(*offset),
		bench.WithSeed(*seed),
		bench.WithMinTime(*minTime),
	}

	var results []bench.Result
	for _, t := range types {
		logger.Debug("running", "type", t, "size", *size, "offset", *offset)

		res, err := bench.Run(ctx, t, opts...)
		if err != nil {
			logger.Error("benchmark failed", "type", t, "err", err)
			os.Exit(1)
		}
		logger.Debug("done", "type", res.Type, "impl", res.Impl, "speedup", res.Speedup())
		results = append(results, res)
	}

	if err := printResults(os.Stdout, results); err != nil {
		logger.Error("failed to write output", "err", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func printResults(w io.Writer, results []bench.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Type\tImpl\tSize\tPlain [ns/op]\tLanes [ns/op]\tSpeedup\tDiff\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "----\t----\t----\t-------------\t-------------\t-------\t----\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range results {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%.0f\t%.0f\t%.2fx\t%.3g\n",
			r.Type,
			r.Impl,
			r.Size,
			r.PlainNsPerOp,
			r.LanesNsPerOp,
			r.Speedup(),
			r.Diff(),
		); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return tw.Flush()
}
