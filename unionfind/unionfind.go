package unionfind

import (
	"errors"
	"fmt"
)

// ErrInvalidLabel is returned when a label was never allocated by MakeSet.
// Valid labels are exactly 1..Len().
var ErrInvalidLabel = errors.New("unionfind: label was not allocated by MakeSet")

// DSU is a disjoint-set forest over integer labels 1..n, stored as a flat
// parent arena indexed by label. Index 0 is a padding slot so that label i
// lives at parent[i] directly.
//
// The zero value is not usable; construct with New.
// A DSU is not safe for concurrent mutation. After the last MakeSet/Union/
// Find call, Root (and Flatten followed by Root) are safe for concurrent
// readers.
type DSU struct {
	parent []int
}

// New returns an empty DSU with no labels allocated.
// Complexity: O(1).
func New() *DSU {
	// parent[0] is never a valid label; keep it as a pad.
	return &DSU{parent: make([]int, 1, 16)}
}

// NewWithCapacity returns an empty DSU pre-sized for n labels, avoiding
// arena reallocation when the final label count is known in advance
// (e.g. bounded by the pixel count of a grid).
// Complexity: O(1).
func NewWithCapacity(n int) *DSU {
	if n < 0 {
		n = 0
	}

	return &DSU{parent: make([]int, 1, n+1)}
}

// MakeSet allocates the next label from the internal counter, inserts it
// as its own singleton set, and returns it. Labels are 1, 2, 3, … in
// allocation order; labels are never reused or removed.
// Complexity: O(1) amortized.
func (d *DSU) MakeSet() int {
	label := len(d.parent)
	d.parent = append(d.parent, label)

	return label
}

// Len reports how many labels have been allocated so far.
// Complexity: O(1).
func (d *DSU) Len() int {
	return len(d.parent) - 1
}

// valid reports whether x is an allocated label.
func (d *DSU) valid(x int) bool {
	return x >= 1 && x < len(d.parent)
}

// Find returns the representative (minimum) label of the set containing x,
// compressing the walked path as it goes: every visited label is pointed at
// its grandparent, halving chain length (same scheme as iterative Kruskal
// implementations).
// Returns ErrInvalidLabel if x was never allocated.
// Complexity: O(α(n)) amortized.
func (d *DSU) Find(x int) (int, error) {
	if !d.valid(x) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLabel, x)
	}
	// Walk up until the root (parent[x] == x), pointing each visited
	// label at its grandparent along the way.
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x, nil
}

// Root returns the representative label of the set containing x without
// mutating the structure. Unlike Find it performs no path compression, so
// concurrent Root calls are safe once all mutation has ceased.
// Returns ErrInvalidLabel if x was never allocated.
// Complexity: O(chain length); O(1) after Flatten.
func (d *DSU) Root(x int) (int, error) {
	if !d.valid(x) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLabel, x)
	}
	for d.parent[x] != x {
		x = d.parent[x]
	}

	return x, nil
}

// Union merges the sets containing a and b. The representative of the
// merged set is the smaller of the two roots: the larger root is linked
// under the smaller one, preserving the invariant that every set's
// representative is its minimum label. No-op when a and b already share
// a set.
// Returns ErrInvalidLabel if either label was never allocated.
// Complexity: O(α(n)) amortized.
func (d *DSU) Union(a, b int) error {
	rootA, err := d.Find(a)
	if err != nil {
		return err
	}
	rootB, err := d.Find(b)
	if err != nil {
		return err
	}
	if rootA == rootB {
		// Already equivalent; nothing to record.
		return nil
	}
	// Link larger root under smaller root so the minimum survives.
	if rootA < rootB {
		d.parent[rootB] = rootA
	} else {
		d.parent[rootA] = rootB
	}

	return nil
}

// Flatten points every label directly at its representative, collapsing
// all chains in a single sweep. Afterwards Root is O(1) per call.
// Complexity: O(n).
func (d *DSU) Flatten() {
	// Roots are always smaller than their children (unions link toward
	// the minimum), so a single ascending sweep suffices: by the time
	// label x is visited, parent[x] already points at a flattened label.
	for x := 1; x < len(d.parent); x++ {
		d.parent[x] = d.parent[d.parent[x]]
	}
}
