// Package label assigns a unique positive identifier to every connected
// region of foreground cells in a binary grid — the classic two-pass
// connected-component labelling algorithm.
//
// What:
//
//   - Label scans the grid twice. The first pass assigns provisional
//     labels using only already-visited neighbors (the row above and the
//     cell to the west) and records, in a disjoint-set structure, every
//     place where two provisional labels meet inside one region. The
//     second pass rewrites each cell with the representative (minimum)
//     label of its equivalence class.
//   - A single raster scan cannot label correctly on its own: a U-shaped
//     region is entered twice from the top and receives two different
//     provisional labels that only later turn out to touch. The
//     union-find structure is what reconciles them.
//   - Background cells are always 0; labels[y][x] == 0 exactly when
//     grid[y][x] is false.
//
// Why:
//
//   - Blob detection in binarized images: page segmentation, mark
//     counting, particle analysis.
//   - Island counting and region extraction on occupancy grids.
//   - A preprocessing step before per-component measurement (area,
//     bounding box, centroid).
//
// Complexity:
//
//   - Label: O(W×H·α) time (α = inverse Ackermann, effectively constant),
//     O(W×H) memory for the label grid, O(P) for the disjoint-set arena
//     (P = provisional labels, bounded by foreground cells).
//
// Options:
//
//   - WithConnectivity(Conn4|Conn8): which neighbors count as adjacent.
//   - WithCompaction(): renumber final labels to contiguous 1..K in
//     row-major order of first appearance. Without it each component
//     keeps its minimum provisional label, which may leave gaps.
//   - WithWorkers(n): resolve the second pass with n goroutines. The
//     first pass stays sequential — each cell's decision depends on
//     labels already written earlier in raster order.
//
// Errors:
//
//   - ErrEmptyGrid: grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadConnectivity: connectivity is neither Conn4 nor Conn8.
//   - ErrOptionViolation: an Option carried an invalid value.
//
// The computation is pure and deterministic: same grid and options, same
// output, every time.
package label
