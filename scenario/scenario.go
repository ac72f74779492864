package scenario

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dstarlite/dstarlite"
)

// Load reads and decodes a scenario from path.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode strictly decodes a scenario from r, rejecting unknown fields, then
// validates it. A *Scenario returned with a nil error is guaranteed to
// construct a dstarlite.Planner without ErrInvalidDimensions or
// ErrOutOfBounds.
func Decode(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, err
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) inBounds(c CellSpec) bool {
	return c.Row >= 0 && c.Row < s.Rows && c.Col >= 0 && c.Col < s.Cols
}

func (s *Scenario) validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return ErrEmptyGrid
	}
	switch s.Connectivity {
	case "", ConnectivityFour, ConnectivityEight:
	default:
		return ErrUnknownConnectivity
	}
	if !s.inBounds(s.Start) || !s.inBounds(s.Goal) {
		return ErrOutOfBounds
	}
	for _, c := range s.Blocked {
		if !s.inBounds(c) {
			return ErrOutOfBounds
		}
	}
	for _, step := range s.Script {
		switch step.Op {
		case OpStep:
		case OpBlock, OpClear, OpToggle:
			if step.Cell == nil || !s.inBounds(*step.Cell) {
				return ErrOutOfBounds
			}
		case OpReplaceMap:
			if err := s.validateReplaceMap(step.Rows); err != nil {
				return err
			}
		default:
			return ErrUnknownOp
		}
	}
	return nil
}

func (s *Scenario) validateReplaceMap(rows [][]bool) error {
	if len(rows) != s.Rows {
		return ErrDimensionMismatch
	}
	for _, row := range rows {
		if len(row) != len(rows[0]) {
			return ErrNonRectangular
		}
	}
	if len(rows[0]) != s.Cols {
		return ErrDimensionMismatch
	}
	return nil
}

func (c CellSpec) cell() dstarlite.Cell {
	return dstarlite.Cell{Row: c.Row, Col: c.Col}
}

// actionSet resolves the scenario's connectivity choice, defaulting to
// four-connected when unset.
func (s *Scenario) actionSet() []dstarlite.Offset {
	if s.Connectivity == ConnectivityEight {
		return dstarlite.Octile8
	}
	return dstarlite.Cardinal4
}

// NewPlanner builds a Planner from the scenario's grid, start, goal, and
// connectivity, applies its initial blocked set, and returns it. Extra opts
// are appended after the connectivity-derived WithActionSet, so callers may
// still override the action set or heuristic explicitly.
func (s *Scenario) NewPlanner(opts ...dstarlite.Option) (*dstarlite.Planner, error) {
	allOpts := append([]dstarlite.Option{dstarlite.WithActionSet(s.actionSet())}, opts...)
	p, err := dstarlite.New(s.Rows, s.Cols, s.Start.cell(), s.Goal.cell(), allOpts...)
	if err != nil {
		return nil, err
	}
	for _, c := range s.Blocked {
		p.Block(c.cell())
	}
	return p, nil
}

// StepOutcome reports what, if anything, a replayed Step changed, for the
// simulation CLI's logging.
type StepOutcome struct {
	Op      OpKind
	Applied bool
	Cell    dstarlite.Cell
}

// Apply replays a single script step against p, returning whether it
// changed Planner state. Unknown ops are unreachable here because Decode
// already rejected them; Apply panics rather than silently ignoring one, to
// surface a scenario/dstarlite API drift immediately.
func Apply(p *dstarlite.Planner, step Step) StepOutcome {
	switch step.Op {
	case OpStep:
		before := p.Current()
		after := p.Step()
		return StepOutcome{Op: OpStep, Applied: after != before, Cell: after}
	case OpBlock:
		c := step.Cell.cell()
		before := p.Blocked(c)
		p.Block(c)
		return StepOutcome{Op: OpBlock, Applied: p.Blocked(c) != before, Cell: c}
	case OpClear:
		c := step.Cell.cell()
		before := p.Blocked(c)
		p.Clear(c)
		return StepOutcome{Op: OpClear, Applied: p.Blocked(c) != before, Cell: c}
	case OpToggle:
		c := step.Cell.cell()
		before := p.Blocked(c)
		p.Toggle(c)
		return StepOutcome{Op: OpToggle, Applied: p.Blocked(c) != before, Cell: c}
	case OpReplaceMap:
		var before []bool
		for r, row := range step.Rows {
			for c := range row {
				before = append(before, p.Blocked(dstarlite.Cell{Row: r, Col: c}))
			}
		}
		p.ReplaceMap(step.Rows)
		applied, i := false, 0
		for r, row := range step.Rows {
			for c := range row {
				applied = applied || p.Blocked(dstarlite.Cell{Row: r, Col: c}) != before[i]
				i++
			}
		}
		return StepOutcome{Op: OpReplaceMap, Applied: applied}
	default:
		panic("scenario: unreachable op " + string(step.Op))
	}
}
