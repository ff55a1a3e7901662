package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridsearch/grid"
)

// BenchmarkComponents measures Components on a 500×500 grid with 30% walls.
// Complexity: O(rows×cols×4).
func BenchmarkComponents(b *testing.B) {
	g, err := grid.New(500, 500, grid.WithWalls(grid.RandomWalls(0.3, rand.New(rand.NewSource(42)))))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Components()
	}
}

// BenchmarkResetScratch measures the per-run scratch reset on a 500×500 grid.
func BenchmarkResetScratch(b *testing.B) {
	g, err := grid.New(500, 500)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ResetScratch()
	}
}
