package simd

import (
	"strconv"
	"sync"
	"testing"

	"github.com/cwbudde/algo-simd/internal/cpu"
)

// resetSumDispatch forgets the selected kernel so the next Sum call selects
// again from the current (possibly forced) CPU features.
func resetSumDispatch() {
	sumInitOnce = sync.Once{}
	sumFloat32Impl = nil
	sumFloat64Impl = nil
	sumImplName = ""
}

func forceFeatures(t *testing.T, f cpu.Features) {
	t.Helper()
	cpu.SetForcedFeatures(f)
	resetSumDispatch()
	t.Cleanup(func() {
		cpu.ResetDetection()
		resetSumDispatch()
	})
}

func sizeStr(n int) string {
	return "n=" + strconv.Itoa(n)
}
