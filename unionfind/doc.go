// Package unionfind maintains disjoint sets over integer labels allocated
// from a monotonically increasing counter, as needed by two-pass
// connected-component labelling.
//
// What:
//
//   - DSU is an arena: a flat parent slice indexed by label, no node objects.
//   - MakeSet allocates the next label (1, 2, 3, …) as its own singleton set.
//   - Union merges two sets so that the surviving representative is always
//     the MINIMUM label of the merged class.
//   - Find returns the representative, compressing paths as it walks.
//   - Root is a read-only Find: once all unions are done, any number of
//     goroutines may call Root concurrently.
//   - Flatten compresses every chain in one sweep, making Root O(1).
//
// Why union-by-minimum instead of union-by-rank:
//
//   - The labeller promises that the canonical label of a component is the
//     smallest provisional label ever assigned to it. Rank-based linking
//     picks winners by tree shape and breaks that promise; linking the
//     larger root under the smaller one keeps it, at the same amortized
//     cost once path compression is in play.
//
// Complexity:
//
//   - MakeSet: O(1) amortized.
//   - Find / Union: O(α(n)) amortized with path compression.
//   - Root: O(chain length), O(1) after Flatten.
//   - Flatten: O(n).
//
// Errors:
//
//   - ErrInvalidLabel: a label outside 1..Len() was passed to Find, Union
//     or Root. This is a caller bug, not a recoverable condition.
package unionfind
