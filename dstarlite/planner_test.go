package dstarlite_test

import (
	"testing"

	"github.com/katalvlaran/dstarlite/dstarlite"
)

func pathCells(t *testing.T, p *dstarlite.Planner) []dstarlite.Cell {
	t.Helper()
	return p.Path()
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	_, err := dstarlite.New(0, 5, dstarlite.Cell{}, dstarlite.Cell{Row: 0, Col: 1})
	if err != dstarlite.ErrInvalidDimensions {
		t.Fatalf("err = %v, want ErrInvalidDimensions", err)
	}
	_, err = dstarlite.New(5, -1, dstarlite.Cell{}, dstarlite.Cell{Row: 0, Col: 1})
	if err != dstarlite.ErrInvalidDimensions {
		t.Fatalf("err = %v, want ErrInvalidDimensions", err)
	}
}

func TestNewRejectsOutOfBoundsEndpoints(t *testing.T) {
	_, err := dstarlite.New(3, 3, dstarlite.Cell{Row: -1, Col: 0}, dstarlite.Cell{Row: 2, Col: 2})
	if err != dstarlite.ErrOutOfBounds {
		t.Fatalf("start out of bounds: err = %v, want ErrOutOfBounds", err)
	}
	_, err = dstarlite.New(3, 3, dstarlite.Cell{Row: 0, Col: 0}, dstarlite.Cell{Row: 9, Col: 9})
	if err != dstarlite.ErrOutOfBounds {
		t.Fatalf("goal out of bounds: err = %v, want ErrOutOfBounds", err)
	}
}

// Scenario 1: 3x3 empty grid.
func TestScenarioEmptyGridShortestPath(t *testing.T) {
	p, err := dstarlite.New(3, 3, dstarlite.Cell{Row: 0, Col: 0}, dstarlite.Cell{Row: 2, Col: 2})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	path := pathCells(t, p)
	if len(path) != 5 {
		t.Fatalf("len(path) = %d, want 5: %v", len(path), path)
	}
	if path[len(path)-1] != (dstarlite.Cell{Row: 2, Col: 2}) {
		t.Fatalf("path does not end at goal: %v", path)
	}
	if want := 4; len(path)-1 != want {
		t.Fatalf("|path|-1 = %d, want %d (= h(start, goal))", len(path)-1, want)
	}
}

// Scenario 2: 3x3 grid with the center blocked up front.
func TestScenarioCenterBlockedUpFront(t *testing.T) {
	p, err := dstarlite.New(3, 3, dstarlite.Cell{Row: 0, Col: 0}, dstarlite.Cell{Row: 2, Col: 2})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	p.Block(dstarlite.Cell{Row: 1, Col: 1})

	path := pathCells(t, p)
	if len(path) != 5 {
		t.Fatalf("len(path) = %d, want 5: %v", len(path), path)
	}
	for _, c := range path {
		if c == (dstarlite.Cell{Row: 1, Col: 1}) {
			t.Fatalf("path passes through blocked center: %v", path)
		}
	}
}

// Scenario 3 & 4: 5x5 grid, block then clear a cell on the current path.
func TestScenarioBlockThenClearOnPath(t *testing.T) {
	p, err := dstarlite.New(5, 5, dstarlite.Cell{Row: 0, Col: 0}, dstarlite.Cell{Row: 0, Col: 4})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	base := pathCells(t, p)
	if len(base) != 5 {
		t.Fatalf("baseline len(path) = %d, want 5: %v", len(base), base)
	}

	p.Block(dstarlite.Cell{Row: 0, Col: 2})
	detour := pathCells(t, p)
	if len(detour) != 7 {
		t.Fatalf("after block, len(path) = %d, want 7: %v", len(detour), detour)
	}
	for _, c := range detour {
		if c == (dstarlite.Cell{Row: 0, Col: 2}) {
			t.Fatalf("detour path still passes through blocked cell: %v", detour)
		}
	}

	p.Clear(dstarlite.Cell{Row: 0, Col: 2})
	restored := pathCells(t, p)
	if len(restored) != 5 {
		t.Fatalf("after clear, len(path) = %d, want 5: %v", len(restored), restored)
	}
}

// Scenario 5: an entire separating column makes the goal unreachable.
func TestScenarioFullyBlockedColumnIsUnreachable(t *testing.T) {
	p, err := dstarlite.New(5, 5, dstarlite.Cell{Row: 0, Col: 0}, dstarlite.Cell{Row: 4, Col: 4})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for r := 0; r < 5; r++ {
		p.Block(dstarlite.Cell{Row: r, Col: 2})
	}

	path := p.Path()
	if len(path) != 1 || path[0] != p.Current() {
		t.Fatalf("path = %v, want [current] when goal is unreachable", path)
	}
	if next := p.PeekNext(); next != p.Current() {
		t.Fatalf("PeekNext() = %v, want Current() %v", next, p.Current())
	}
	before := p.Current()
	if after := p.Step(); after != before {
		t.Fatalf("Step() = %v, want no-op at %v", after, before)
	}
}

// Scenario 6: stepping twice then blocking an off-path cell leaves the
// remaining path unchanged.
func TestScenarioStepTwiceThenBlockOffPath(t *testing.T) {
	p, err := dstarlite.New(3, 3, dstarlite.Cell{Row: 0, Col: 0}, dstarlite.Cell{Row: 2, Col: 2})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	p.Step()
	p.Step()
	remaining := pathCells(t, p)

	p.Block(dstarlite.Cell{Row: 2, Col: 0})

	after := pathCells(t, p)
	if len(after) != len(remaining) {
		t.Fatalf("path changed after blocking an off-path cell: before=%v after=%v", remaining, after)
	}
	for i := range remaining {
		if remaining[i] != after[i] {
			t.Fatalf("path changed after blocking an off-path cell: before=%v after=%v", remaining, after)
		}
	}
}

func TestBlockIdempotent(t *testing.T) {
	p, err := dstarlite.New(5, 5, dstarlite.Cell{Row: 0, Col: 0}, dstarlite.Cell{Row: 0, Col: 4})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	p.Block(dstarlite.Cell{Row: 0, Col: 2})
	once := pathCells(t, p)
	p.Block(dstarlite.Cell{Row: 0, Col: 2})
	twice := pathCells(t, p)
	if len(once) != len(twice) {
		t.Fatalf("block() is not idempotent: once=%v twice=%v", once, twice)
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("block() is not idempotent: once=%v twice=%v", once, twice)
		}
	}
}

func TestToggleInvolutionRestoresPath(t *testing.T) {
	p, err := dstarlite.New(5, 5, dstarlite.Cell{Row: 0, Col: 0}, dstarlite.Cell{Row: 0, Col: 4})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	before := pathCells(t, p)

	cell := dstarlite.Cell{Row: 0, Col: 2}
	p.Toggle(cell)
	p.Toggle(cell)

	after := pathCells(t, p)
	if len(before) != len(after) {
		t.Fatalf("toggle-toggle did not restore path: before=%v after=%v", before, after)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("toggle-toggle did not restore path: before=%v after=%v", before, after)
		}
	}
	if p.Blocked(cell) {
		t.Fatalf("toggle-toggle left %v blocked", cell)
	}
}

func TestBlockGoalOrCurrentIsNoop(t *testing.T) {
	start := dstarlite.Cell{Row: 0, Col: 0}
	goal := dstarlite.Cell{Row: 2, Col: 2}
	p, err := dstarlite.New(3, 3, start, goal)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	p.Block(goal)
	if p.Blocked(goal) {
		t.Fatalf("Block(goal) blocked the goal cell")
	}
	p.Block(start)
	if p.Blocked(start) {
		t.Fatalf("Block(current) blocked the agent's current cell")
	}
}

func TestBlockOutOfBoundsIsNoop(t *testing.T) {
	p, err := dstarlite.New(3, 3, dstarlite.Cell{Row: 0, Col: 0}, dstarlite.Cell{Row: 2, Col: 2})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	before := pathCells(t, p)
	p.Block(dstarlite.Cell{Row: -1, Col: -1})
	p.Block(dstarlite.Cell{Row: 99, Col: 99})
	after := pathCells(t, p)
	if len(before) != len(after) {
		t.Fatalf("out-of-bounds Block mutated path: before=%v after=%v", before, after)
	}
}

func TestReplaceMapRejectsDimensionMismatch(t *testing.T) {
	p, err := dstarlite.New(3, 3, dstarlite.Cell{Row: 0, Col: 0}, dstarlite.Cell{Row: 2, Col: 2})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	before := pathCells(t, p)

	// Wrong row count.
	p.ReplaceMap([][]bool{{false, false, false}})
	// Wrong column count on an otherwise-correct row count.
	p.ReplaceMap([][]bool{
		{false, false},
		{false, false, false},
		{false, false, false},
	})

	after := pathCells(t, p)
	if len(before) != len(after) {
		t.Fatalf("mismatched ReplaceMap mutated path: before=%v after=%v", before, after)
	}
}

func TestReplaceMapAppliesDiff(t *testing.T) {
	p, err := dstarlite.New(3, 3, dstarlite.Cell{Row: 0, Col: 0}, dstarlite.Cell{Row: 2, Col: 2})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	p.ReplaceMap([][]bool{
		{false, false, false},
		{false, true, false},
		{false, false, false},
	})
	if !p.Blocked(dstarlite.Cell{Row: 1, Col: 1}) {
		t.Fatalf("ReplaceMap did not block (1,1)")
	}
	path := pathCells(t, p)
	for _, c := range path {
		if c == (dstarlite.Cell{Row: 1, Col: 1}) {
			t.Fatalf("path passes through cell blocked by ReplaceMap: %v", path)
		}
	}
}

func TestStartEqualsGoalPathIsSingleton(t *testing.T) {
	start := dstarlite.Cell{Row: 1, Col: 1}
	p, err := dstarlite.New(3, 3, start, start)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	path := p.Path()
	if len(path) != 1 || path[0] != start {
		t.Fatalf("path = %v, want [%v]", path, start)
	}
}

func TestOneByOneGridStartEqualsGoal(t *testing.T) {
	origin := dstarlite.Cell{Row: 0, Col: 0}
	p, err := dstarlite.New(1, 1, origin, origin)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := p.Path(); len(got) != 1 || got[0] != origin {
		t.Fatalf("path = %v, want [%v]", got, origin)
	}
}

func TestOctile8WithChebyshevHeuristic(t *testing.T) {
	p, err := dstarlite.New(5, 5, dstarlite.Cell{Row: 0, Col: 0}, dstarlite.Cell{Row: 4, Col: 4},
		dstarlite.WithActionSet(dstarlite.Octile8))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	path := p.Path()
	if len(path) != 5 {
		t.Fatalf("len(path) = %d, want 5 (diagonal shortcut), path=%v", len(path), path)
	}
}

func TestStatsTracksReplansAndExpansions(t *testing.T) {
	p, err := dstarlite.New(5, 5, dstarlite.Cell{Row: 0, Col: 0}, dstarlite.Cell{Row: 0, Col: 4})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	initial := p.Stats()
	if initial.Replans != 1 {
		t.Fatalf("Replans after New() = %d, want 1", initial.Replans)
	}
	p.Block(dstarlite.Cell{Row: 0, Col: 2})
	after := p.Stats()
	if after.Replans != 2 {
		t.Fatalf("Replans after one Block() = %d, want 2", after.Replans)
	}
	if after.Expansions < initial.Expansions {
		t.Fatalf("Expansions decreased: %d -> %d", initial.Expansions, after.Expansions)
	}
}
