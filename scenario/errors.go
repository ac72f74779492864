package scenario

import "errors"

var (
	// ErrEmptyGrid indicates rows or cols is not positive.
	ErrEmptyGrid = errors.New("scenario: rows and cols must both be positive")
	// ErrNonRectangular indicates a replace_map script step whose rows do
	// not all share the same length.
	ErrNonRectangular = errors.New("scenario: replace_map rows must all have the same length")
	// ErrOutOfBounds indicates a start, goal, blocked, or script cell
	// reference outside the declared grid dimensions.
	ErrOutOfBounds = errors.New("scenario: cell reference out of grid bounds")
	// ErrUnknownOp indicates a script step naming an operation other than
	// step, block, clear, toggle, or replace_map.
	ErrUnknownOp = errors.New("scenario: unknown script operation")
	// ErrDimensionMismatch indicates a replace_map step whose dimensions
	// do not exactly match the declared rows x cols.
	ErrDimensionMismatch = errors.New("scenario: replace_map dimensions do not match rows x cols")
	// ErrUnknownConnectivity indicates a connectivity value other than
	// "four" or "eight".
	ErrUnknownConnectivity = errors.New("scenario: connectivity must be \"four\" or \"eight\"")
)
