package unionfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ccl/unionfind"
)

// BenchmarkUnionFind measures a workload shaped like first-pass labelling:
// n MakeSets followed by ~n random unions, then n finds.
func BenchmarkUnionFind(b *testing.B) {
	const n = 100_000
	rng := rand.New(rand.NewSource(42))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := unionfind.NewWithCapacity(n)
		for j := 0; j < n; j++ {
			d.MakeSet()
		}
		for j := 0; j < n; j++ {
			_ = d.Union(rng.Intn(n)+1, rng.Intn(n)+1)
		}
		for j := 1; j <= n; j++ {
			_, _ = d.Find(j)
		}
	}
}

// BenchmarkFlattenRoot measures Flatten plus read-only Root resolution,
// the second-pass access pattern.
func BenchmarkFlattenRoot(b *testing.B) {
	const n = 100_000
	rng := rand.New(rand.NewSource(7))
	d := unionfind.NewWithCapacity(n)
	for j := 0; j < n; j++ {
		d.MakeSet()
	}
	for j := 0; j < n; j++ {
		_ = d.Union(rng.Intn(n)+1, rng.Intn(n)+1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Flatten()
		for j := 1; j <= n; j++ {
			_, _ = d.Root(j)
		}
	}
}
