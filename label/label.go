// Package label implements two-pass connected-component labelling of
// binary grids, with a disjoint-set structure resolving the label
// equivalences created by raster-scan order.
package label

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ccl/unionfind"
)

// Label assigns a positive integer label to every foreground cell of grid
// so that two cells share a label iff they are connected through
// foreground cells under the chosen connectivity. Background cells stay 0.
// The input grid is never mutated.
//
// Returns the label grid (same dimensions as grid) and the number of
// distinct components, or an error:
//   - ErrEmptyGrid / ErrNonRectangular: malformed input, detected before
//     any scanning.
//   - ErrBadConnectivity: WithConnectivity was given an unknown mode.
//   - ErrOptionViolation: an Option carried an invalid value.
//
// Steps:
//  1. Validate options, grid shape, and connectivity.
//  2. First pass: raster scan assigning provisional labels from the
//     already-visited neighbor kernel, recording equivalences.
//  3. Second pass: rewrite each provisional label with the representative
//     (minimum) label of its equivalence class.
//  4. Count distinct components; optionally compact labels to 1..K.
//
// Complexity: O(W×H·α) time, O(W×H) memory (α = inverse Ackermann,
// effectively constant).
func Label(grid [][]bool, opts ...Option) ([][]int, int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, 0, o.err
	}

	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, 0, ErrEmptyGrid
	}
	width := len(grid[0])
	for _, row := range grid {
		if len(row) != width {
			return nil, 0, ErrNonRectangular
		}
	}
	if o.Conn != Conn4 && o.Conn != Conn8 {
		return nil, 0, ErrBadConnectivity
	}

	labels, dsu := firstPass(grid, priorOffsets(o.Conn))

	if err := secondPass(labels, dsu, o.Workers); err != nil {
		// Unreachable when labels came from firstPass; kept as a guard
		// for the DSU contract.
		return nil, 0, err
	}

	count := renumber(labels, o.Compact)

	return labels, count, nil
}

// firstPass walks grid in row-major order, assigns provisional labels from
// the already-visited neighbor kernel, and records every observed label
// equivalence into the returned DSU.
//
// Per foreground cell:
//   - no labelled prior neighbor  → allocate a fresh label (MakeSet)
//   - one distinct neighbor label → adopt it
//   - several distinct labels     → adopt the minimum, union the rest
//     into it (they are one physical component)
//
// Complexity: O(W×H·α) time, O(W×H) memory.
func firstPass(grid [][]bool, offsets [][2]int) ([][]int, *unionfind.DSU) {
	height, width := len(grid), len(grid[0])
	labels := make([][]int, height)
	for y := range labels {
		labels[y] = make([]int, width)
	}
	dsu := unionfind.New()

	// Scratch for distinct prior-neighbor labels; kernel size caps it at 4.
	neigh := make([]int, 0, 4)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !grid[y][x] {
				continue // background stays 0
			}

			neigh = neigh[:0]
			minLabel := 0
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= width || ny < 0 {
					continue
				}
				l := labels[ny][nx]
				if l == 0 || contains(neigh, l) {
					continue
				}
				neigh = append(neigh, l)
				if minLabel == 0 || l < minLabel {
					minLabel = l
				}
			}

			if len(neigh) == 0 {
				labels[y][x] = dsu.MakeSet()
				continue
			}

			labels[y][x] = minLabel
			if len(neigh) > 1 {
				for _, l := range neigh {
					// Labels came from this very scan, so Union cannot
					// fail; uniting minLabel with itself is a no-op.
					_ = dsu.Union(minLabel, l)
				}
			}
		}
	}

	return labels, dsu
}

// contains reports whether s holds v. Linear scan beats a map for the
// at-most-4-element neighbor sets handled here.
func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}

	return false
}

// secondPass rewrites every positive cell of labels with the
// representative label of its equivalence class. With workers > 1 the
// rewrite fans out over disjoint row ranges: the DSU is flattened first so
// the workers only ever read it.
//
// Complexity: O(W×H) time, O(1) extra memory.
func secondPass(labels [][]int, dsu *unionfind.DSU, workers int) error {
	height := len(labels)
	if workers <= 1 || height == 1 {
		return resolveRows(labels, dsu.Find, 0, height)
	}

	// Read-only resolution from here on: Root performs no path
	// compression, so concurrent workers never write to the DSU.
	dsu.Flatten()

	var g errgroup.Group
	chunk := (height + workers - 1) / workers
	for lo := 0; lo < height; lo += chunk {
		lo, hi := lo, min(lo+chunk, height)
		g.Go(func() error {
			return resolveRows(labels, dsu.Root, lo, hi)
		})
	}

	return g.Wait()
}

// resolveRows resolves rows [lo, hi) of labels through find, which is
// either DSU.Find (sequential, compressing) or DSU.Root (parallel,
// read-only).
func resolveRows(labels [][]int, find func(int) (int, error), lo, hi int) error {
	for y := lo; y < hi; y++ {
		row := labels[y]
		for x, l := range row {
			if l == 0 {
				continue
			}
			root, err := find(l)
			if err != nil {
				return err
			}
			row[x] = root
		}
	}

	return nil
}

// renumber counts the distinct positive labels remaining after resolution,
// in row-major order of first appearance; when compact is set it also
// rewrites them to the contiguous range 1..K in that same order. Rewriting
// inside the discovery scan works because a label's replacement is fixed
// the moment it is first seen, and resolution already made labels uniform
// within each component.
//
// Complexity: O(W×H) time, O(K) memory.
func renumber(labels [][]int, compact bool) int {
	next := 1
	compacted := make(map[int]int)
	for _, row := range labels {
		for x, l := range row {
			if l == 0 {
				continue
			}
			c, ok := compacted[l]
			if !ok {
				c = next
				compacted[l] = c
				next++
			}
			if compact {
				row[x] = c
			}
		}
	}

	return len(compacted)
}
