package dp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/knapsack/dp"
)

// benchmarkSolve fills a deterministic instance of n items against the given
// capacity and measures the table fill plus reconstruction.
func benchmarkSolve(b *testing.B, n int, capacity int64) {
	rng := rand.New(rand.NewSource(42))
	values := make([]int64, n)
	weights := make([]int64, n)
	for i := 0; i < n; i++ {
		values[i] = 1 + rng.Int63n(200)
		weights[i] = 1 + rng.Int63n(50)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, _, err := dp.Solve(values, weights, capacity); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_N100_C1000 benchmarks a 100-item instance, capacity 1000.
func BenchmarkSolve_N100_C1000(b *testing.B) { benchmarkSolve(b, 100, 1000) }

// BenchmarkSolve_N500_C5000 benchmarks a 500-item instance, capacity 5000.
func BenchmarkSolve_N500_C5000(b *testing.B) { benchmarkSolve(b, 500, 5000) }
