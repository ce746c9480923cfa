package lars_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/larspath/design"
	"github.com/katalvlaran/larspath/lars"
)

// benchmarkSource builds a reproducible n×p dense design with a sparse
// underlying signal, so every path has a realistic mix of strong and weak
// features. The seed is fixed to keep allocations and breakpoint counts
// stable across runs.
func benchmarkSource(b *testing.B, n, p int) *design.Dense[float64] {
	b.Helper()
	rnd := rand.New(rand.NewSource(42))

	rows := make([][]float64, n)
	truth := make([]float64, p)
	for j := 0; j < p; j += 4 {
		truth[j] = rnd.NormFloat64()
	}
	y := make([]float64, n)
	for i := range rows {
		rows[i] = make([]float64, p)
		for j := range rows[i] {
			rows[i][j] = rnd.NormFloat64()
			y[i] += rows[i][j] * truth[j]
		}
		y[i] += 0.05 * rnd.NormFloat64()
	}

	src, err := design.FromRows(rows, y)
	if err != nil {
		b.Fatalf("design: %v", err)
	}

	return src
}

// benchmarkPath runs a full solve to convergence on an n×p design in the
// given mode. It resets the timer after fixture construction and fails on
// unexpected errors.
func benchmarkPath(b *testing.B, n, p int, mode lars.Mode) {
	src := benchmarkSource(b, n, p)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lars.Run(src, mode, lars.DefaultOptions()); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

// BenchmarkRun_LAR_Small benchmarks a plain LAR path on a 50×10 design.
func BenchmarkRun_LAR_Small(b *testing.B) {
	benchmarkPath(b, 50, 10, lars.LAR)
}

// BenchmarkRun_LAR_Medium benchmarks a plain LAR path on a 500×50 design.
func BenchmarkRun_LAR_Medium(b *testing.B) {
	benchmarkPath(b, 500, 50, lars.LAR)
}

// BenchmarkRun_Lasso_Small benchmarks a Lasso path on a 50×10 design.
func BenchmarkRun_Lasso_Small(b *testing.B) {
	benchmarkPath(b, 50, 10, lars.Lasso)
}

// BenchmarkRun_Lasso_Medium benchmarks a Lasso path on a 500×50 design.
func BenchmarkRun_Lasso_Medium(b *testing.B) {
	benchmarkPath(b, 500, 50, lars.Lasso)
}

// BenchmarkRun_Lasso_Wide benchmarks a Lasso path on a wide 40×120 design,
// where the active set saturates the observation count.
func BenchmarkRun_Lasso_Wide(b *testing.B) {
	benchmarkPath(b, 40, 120, lars.Lasso)
}

// BenchmarkEngine_Iterate measures the cost of a single breakpoint on a
// fresh engine over a 500×50 design.
func BenchmarkEngine_Iterate(b *testing.B) {
	src := benchmarkSource(b, 500, 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine, err := lars.New(src, lars.LAR, lars.DefaultOptions())
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		if !engine.Iterate() {
			b.Fatal("expected at least one breakpoint")
		}
	}
}
