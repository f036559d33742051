// Package label defines connectivity modes, tunable options, and sentinel
// errors for two-pass connected-component labelling.
package label

import (
	"errors"
	"fmt"
)

// Sentinel errors for labelling runs.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("label: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("label: all rows must have the same length")
	// ErrBadConnectivity indicates a connectivity other than Conn4 or Conn8.
	ErrBadConnectivity = errors.New("label: connectivity must be Conn4 or Conn8")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("label: invalid option supplied")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 treats N, E, S, W cells as adjacent.
	Conn4 Connectivity = iota
	// Conn8 additionally treats the four diagonal cells as adjacent.
	Conn8
)

// String implements fmt.Stringer for log and error messages.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "Conn4"
	case Conn8:
		return "Conn8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// priorOffsets returns the already-visited part of the neighbor kernel for
// c, as (dx,dy) pairs relative to the current cell. In raster order the
// visited neighbors are the row above plus the cell immediately west:
//
//	Conn4:          Conn8:
//	    n            nw  n  ne
//	 w  x             w  x
func priorOffsets(c Connectivity) [][2]int {
	if c == Conn8 {
		return [][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}}
	}

	return [][2]int{{0, -1}, {-1, 0}}
}

// Option configures a labelling run via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// Label is invoked.
type Option func(*Options)

// Options holds the tunable parameters of a labelling run.
// Use DefaultOptions to obtain the baseline configuration.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity

	// Compact renumbers final labels to the contiguous range 1..K, in
	// row-major order of first appearance. Off by default: without it the
	// surviving labels are the minimum provisional label of each
	// component, which may leave gaps (e.g. {1,2} survives while 3 was
	// folded into 1).
	Compact bool

	// Workers sets the number of goroutines resolving the second pass.
	// 0 or 1 means sequential. The first pass is inherently sequential
	// and unaffected.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the baseline configuration:
//   - Conn4 connectivity
//   - no compaction (surviving labels may leave numeric gaps)
//   - sequential second pass (Workers == 0).
func DefaultOptions() Options {
	return Options{
		Conn:    Conn4,
		Compact: false,
		Workers: 0,
		err:     nil,
	}
}

// WithConnectivity selects the neighbor kernel. Values other than Conn4
// and Conn8 surface as ErrBadConnectivity when Label runs.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// WithCompaction renumbers the final labels to 1..K (K = component count)
// in row-major order of first appearance, instead of leaving each
// component tagged with its minimum provisional label.
func WithCompaction() Option {
	return func(o *Options) {
		o.Compact = true
	}
}

// WithWorkers resolves the second pass with n goroutines over disjoint row
// ranges.
//
//	n > 1:  parallel resolution with n workers
//	n == 0 or n == 1: explicit sequential resolution
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
