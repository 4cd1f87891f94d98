// Package registry holds the summation kernels available to the simd package.
//
// Each kernel binds a scalar type to one lane-vector width. Kernel packages
// register themselves from init() functions; the simd package selects the
// highest-priority kernel supported by the detected CPU features once, on
// first use.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-simd/internal/cpu"
)

// OpEntry is one registered kernel set.
//
// All summation kernels of an entry must agree with a sequential fold within
// floating-point tolerance; they may differ from each other in rounding.
type OpEntry struct {
	// Name is a human-readable identifier (e.g. "generic", "avx2").
	Name string

	// SIMDLevel is the instruction set level the entry is tuned for.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order among compatible entries.
	// Higher wins. Suggested values:
	//   - Generic (SIMDNone): 0
	//   - NEON: 15
	//   - AVX2: 20
	//   - AVX-512: 30
	Priority int

	// VectorBytes is the size and alignment of the lane vectors the kernels
	// split their input into.
	VectorBytes int

	// SumFloat32 returns the sum of all elements of x.
	SumFloat32 func(x []float32) float32

	// SumFloat64 returns the sum of all elements of x.
	SumFloat64 func(x []float64) float64
}

// OpRegistry stores the registered entries.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // entries sorted by descending priority
}

// Global is the registry used by the simd package.
var Global = &OpRegistry{}

// Register adds an entry. Safe for concurrent use, but all registrations
// should complete before the first Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry compatible with features, or nil
// if none is (which cannot happen once the generic entry is registered).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}
	return nil
}

// Find returns a copy of the entry registered under name.
func (r *OpRegistry) Find(name string) (OpEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.Name == name {
			return e, true
		}
	}
	return OpEntry{}, false
}

// sortByPriority sorts entries by descending priority; equal priorities keep
// registration order. Must be called with r.mu held for writing.
func (r *OpRegistry) sortByPriority() {
	// Insertion sort: the registry holds a handful of entries.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries.
// Intended for tests and diagnostics.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries. Intended for tests only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
