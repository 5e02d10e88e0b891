package glasses_test

import (
	"testing"

	"github.com/katalvlaran/glasses/glasses"
)

// BenchmarkSolveForTwo_Large measures the closed form on capacities whose
// state space no search could enumerate.
func BenchmarkSolveForTwo_Large(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = glasses.SolveForTwo(999_983, 1_000_003, 0, 500_000)
	}
}

// BenchmarkSearchBFS_ThreeGlasses measures a search over ~2.6k states.
func BenchmarkSearchBFS_ThreeGlasses(b *testing.B) {
	caps, targets := []int{11, 13, 17}, []int{0, 6, 17}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = glasses.SearchBFS(caps, targets)
	}
}

// BenchmarkSolve_Dispatch covers the full orchestrator on a two-glass instance.
func BenchmarkSolve_Dispatch(b *testing.B) {
	in := glasses.Instance{Capacities: []int{97, 89}, Targets: []int{0, 45}}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = glasses.Solve(in)
	}
}
