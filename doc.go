// Package ccl is a compact toolkit for connected-component labelling of
// binary images — find every contiguous blob of foreground pixels and
// give it a stable positive integer identity.
//
// 🚀 What is ccl?
//
//	A small, focused library implementing the classic two-pass labelling
//	algorithm backed by a disjoint-set (union-find) structure:
//		• unionfind/ — arena-backed disjoint sets over integer labels,
//		  union-by-minimum with path compression
//		• label/     — the two-pass labeller: raster scan, equivalence
//		  resolution, optional compaction, optional parallel second pass
//		• imagegrid/ — adapters between image.Image and boolean grids,
//		  plus textual and color rendering of label grids
//		• cmd/ccl    — command-line front end for labelling image files
//
// ✨ Why choose ccl?
//
//   - Deterministic – identical input always yields identical labels
//   - Minimal API – one entry point, functional options, sentinel errors
//   - Linear time – O(W×H) over the whole image, both connectivities
//   - Pure Go core – the labeller itself has zero runtime dependencies
//
// Quick ASCII example (4-connectivity, two components):
//
//	# # .          1 1 .
//	. # .    →     . 1 .
//	# . .          2 . .
//
// Dive into label/doc.go for the full algorithm walkthrough and
// imagegrid/doc.go for the image adapters.
//
//	go get github.com/katalvlaran/ccl
package ccl
