package dstarlite

// Cell is a position on the grid, addressed (row, column) with both
// coordinates non-negative and bounded by the grid's dimensions. Cells are
// plain values: copyable, comparable, and usable as map keys.
type Cell struct {
	Row, Col int
}

// Offset is a (Δrow, Δcol) displacement applied to a Cell to reach a
// neighboring cell. Action sets are built from Offsets.
type Offset struct {
	DRow, DCol int
}

// add returns the cell reached by applying o to c.
func (c Cell) add(o Offset) Cell {
	return Cell{Row: c.Row + o.DRow, Col: c.Col + o.DCol}
}

// Cardinal4 is the default 4-connected action set: N, E, S, W, in that
// order. Neighbor enumeration order (and hence PeekNext tie-breaking)
// follows this slice's order exactly.
var Cardinal4 = []Offset{
	{DRow: -1, DCol: 0},
	{DRow: 0, DCol: 1},
	{DRow: 1, DCol: 0},
	{DRow: 0, DCol: -1},
}

// Octile8 is an 8-connected action set: N, NE, E, SE, S, SW, W, NW. Pairing
// Octile8 with the default heuristic is wrong (Manhattan is inadmissible
// for diagonal moves); New automatically switches to ChebyshevHeuristic
// when ActionSet is Octile8 and no WithHeuristic override is given.
var Octile8 = []Offset{
	{DRow: -1, DCol: 0},
	{DRow: -1, DCol: 1},
	{DRow: 0, DCol: 1},
	{DRow: 1, DCol: 1},
	{DRow: 1, DCol: 0},
	{DRow: 1, DCol: -1},
	{DRow: 0, DCol: -1},
	{DRow: -1, DCol: -1},
}

// Heuristic estimates the cost from a to b. For D* Lite's key ordering and
// termination reasoning to hold, a Heuristic must be admissible and
// consistent with respect to the Planner's action set and cost function.
type Heuristic func(a, b Cell) int

// ManhattanHeuristic is admissible and consistent for Cardinal4 with unit
// edge cost: |Δrow| + |Δcol|.
func ManhattanHeuristic(a, b Cell) int {
	return absInt(a.Row-b.Row) + absInt(a.Col-b.Col)
}

// ChebyshevHeuristic is admissible and consistent for Octile8 with unit
// edge cost: max(|Δrow|, |Δcol|).
func ChebyshevHeuristic(a, b Cell) int {
	dr, dc := absInt(a.Row-b.Row), absInt(a.Col-b.Col)
	if dr > dc {
		return dr
	}
	return dc
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Logger receives one debug-level record per completed computeShortestPath
// run. It exists purely for observability: nothing in this package branches
// on whether a Logger is configured. New uses a no-op Logger unless
// WithLogger supplies one, so configuring one is always optional.
type Logger interface {
	Debugf(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...interface{}) {}

// PlannerStats is a read-only snapshot of Planner instrumentation, intended
// for an external metrics exporter (see cmd/dstarlite-sim). Reading it never
// mutates the Planner and participates in none of its invariants.
type PlannerStats struct {
	// Replans counts completed computeShortestPath runs since construction,
	// including the one New performs internally.
	Replans uint64
	// Expansions counts total vertex expansions (main compute loop
	// iterations that update a g-value) across all replans. Iterations that
	// only re-insert an entry with a stale key are not counted.
	Expansions uint64
	// QueueLen is the open list's size at the moment Stats was called.
	QueueLen int
}
