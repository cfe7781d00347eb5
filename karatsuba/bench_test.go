package karatsuba_test

import (
	"testing"

	"github.com/katalvlaran/dacviz/karatsuba"
)

// BenchmarkMultiply_4x4 benchmarks the classic four-digit example.
func BenchmarkMultiply_4x4(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		karatsuba.Multiply(1234, 5678)
	}
}

// BenchmarkMultiply_9x9 benchmarks nine-digit operands.
func BenchmarkMultiply_9x9(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		karatsuba.Multiply(987654321, 123456789)
	}
}

// BenchmarkBuildCallTree benchmarks rebuilding the recursion tree.
func BenchmarkBuildCallTree(b *testing.B) {
	tr := karatsuba.Multiply(987654321, 123456789)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := karatsuba.BuildCallTree(tr); err != nil {
			b.Fatal(err)
		}
	}
}
