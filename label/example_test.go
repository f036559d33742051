// File: label/example_test.go
package label_test

import (
	"fmt"

	"github.com/katalvlaran/ccl/label"
)

// ExampleLabel demonstrates labelling a small binary grid under Conn4.
// Scenario:
//
//   - '#' marks foreground, '.' background.
//   - The E-shaped region on the left is entered three times by the
//     raster scan; the second pass folds its provisional labels into 1.
//   - The vertical bar on the right stays a separate component, label 2.
//
// Complexity: O(W·H), Memory: O(W·H)
func ExampleLabel() {
	grid := [][]bool{
		{false, true, true, true, false, true},
		{false, false, false, true, false, true},
		{false, true, true, true, false, false},
	}

	labels, count, _ := label.Label(grid, label.WithConnectivity(label.Conn4))

	fmt.Println("components:", count)
	for _, row := range labels {
		fmt.Println(row)
	}

	// Output:
	// components: 2
	// [0 1 1 1 0 2]
	// [0 0 0 1 0 2]
	// [0 1 1 1 0 0]
}

// ExampleLabel_compaction shows the effect of WithCompaction: a merge
// folds label 2 away, and compaction closes the resulting numeric gap so
// labels run contiguously from 1.
func ExampleLabel_compaction() {
	grid := [][]bool{
		{false, true, false, false},
		{true, true, false, true},
	}

	plain, _, _ := label.Label(grid)
	compacted, _, _ := label.Label(grid, label.WithCompaction())

	fmt.Println("plain:    ", plain)
	fmt.Println("compacted:", compacted)

	// Output:
	// plain:     [[0 1 0 0] [1 1 0 3]]
	// compacted: [[0 1 0 0] [1 1 0 2]]
}
