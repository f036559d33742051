// Package imagegrid adapts between image.Image and the boolean grids the
// labeller consumes, and renders label grids back out for inspection.
//
// What:
//
//   - Binarize converts any image.Image to a [][]bool: each pixel is
//     reduced to 8-bit grayscale and becomes foreground when its luma
//     falls below a white threshold (default 255 — anything not pure
//     white is foreground, the usual convention for scanned documents).
//   - Render dumps a label grid as text, '.' for background, the label
//     value for foreground. Handy in tests and terminal output.
//   - Colorize paints a label grid into an *image.RGBA, one
//     well-separated hue per label, black background.
//
// Why:
//
//   - The labeller itself is pure grid-in, grid-out; these adapters are
//     the I/O seam around it.
//
// Errors:
//
//   - ErrEmptyImage: the image's bounds contain no pixels.
package imagegrid
