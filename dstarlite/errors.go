package dstarlite

import "errors"

// Sentinel errors returned by New. All other operations on an already
// constructed Planner are defined to always succeed; see the package doc.
var (
	// ErrInvalidDimensions indicates the requested grid has a non-positive
	// row or column count.
	ErrInvalidDimensions = errors.New("dstarlite: rows and cols must both be positive")

	// ErrOutOfBounds indicates the start or goal cell lies outside the
	// requested grid dimensions.
	ErrOutOfBounds = errors.New("dstarlite: cell out of grid bounds")
)

// errEmptyQueue signals a pop/top on an empty open list. It must never
// escape a Planner method: every call site either checks Len()/empty() first
// or only reaches Top/Pop when the compute loop has already established the
// queue is non-empty. Seeing this panic surface anywhere is a bug in this
// package, not in the caller.
var errEmptyQueue = errors.New("dstarlite: pop/top on empty open list")
