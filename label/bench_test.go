package label_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/ccl/label"
)

// benchGrid builds a deterministic 1000×1000 half-density grid.
func benchGrid() [][]bool {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	grid := make([][]bool, n)
	for y := range grid {
		grid[y] = make([]bool, n)
		for x := range grid[y] {
			grid[y][x] = rng.Intn(2) == 1
		}
	}

	return grid
}

// BenchmarkLabel_Conn4 measures a full two-pass run on a random
// 1000×1000 grid with orthogonal connectivity.
// Complexity: O(W×H)
func BenchmarkLabel_Conn4(b *testing.B) {
	grid := benchGrid()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = label.Label(grid)
	}
}

// BenchmarkLabel_Conn8 is the diagonal-connectivity variant; half-density
// noise merges into far fewer, larger components here.
func BenchmarkLabel_Conn8(b *testing.B) {
	grid := benchGrid()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = label.Label(grid, label.WithConnectivity(label.Conn8))
	}
}

// BenchmarkLabel_Workers compares the parallel second pass at several
// worker counts. Only the resolution phase parallelizes; the first pass
// dominates, so gains are bounded.
func BenchmarkLabel_Workers(b *testing.B) {
	grid := benchGrid()

	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _, _ = label.Label(grid,
					label.WithConnectivity(label.Conn8),
					label.WithWorkers(workers),
				)
			}
		})
	}
}
