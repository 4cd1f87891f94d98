package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/algo-simd/internal/bench"
)

func TestPrintResults(t *testing.T) {
	var buf bytes.Buffer
	err := printResults(&buf, []bench.Result{{
		Type:         "float32",
		Impl:         "avx2",
		Size:         1000000,
		PlainNsPerOp: 800000,
		LanesNsPerOp: 200000,
		PlainSum:     10,
		LanesSum:     10.5,
	}})
	if err != nil {
		t.Fatalf("printResults() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	for _, want := range []string{"float32", "avx2", "1000000", "800000", "200000", "4.00x", "0.5"} {
		if !strings.Contains(lines[2], want) {
			t.Errorf("row %q missing %q", lines[2], want)
		}
	}
}
