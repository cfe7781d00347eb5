package closestpair_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/dacviz/closestpair"
)

// benchmarkSolve runs Solve on n seeded random points.
func benchmarkSolve(b *testing.B, n int) {
	pts := randomPoints(rand.New(rand.NewPCG(uint64(n), 42)), n, false)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := closestpair.Solve(pts)
		if closestpair.ResultIndex(tr) < 0 {
			b.Fatal("no result event")
		}
	}
}

// BenchmarkSolve_100 benchmarks a small plot-sized input.
func BenchmarkSolve_100(b *testing.B) { benchmarkSolve(b, 100) }

// BenchmarkSolve_1000 benchmarks a medium input.
func BenchmarkSolve_1000(b *testing.B) { benchmarkSolve(b, 1000) }

// BenchmarkBruteForce_1000 is the O(n²) baseline for comparison.
func BenchmarkBruteForce_1000(b *testing.B) {
	pts := randomPoints(rand.New(rand.NewPCG(1000, 42)), 1000, false)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		closestpair.BruteForce(pts)
	}
}
