package dstarlite

// Planner is the D* Lite engine. It owns the grid (blocked/g/rhs), the open
// list, and the heuristic-offset accumulator km. A Planner is not safe for
// concurrent use; callers that share one across goroutines must serialize
// access themselves.
type Planner struct {
	grid      *grid
	actions   []Offset
	heuristic Heuristic
	logger    Logger

	start, current, goal Cell
	km                   int

	open *openList

	stats PlannerStats
}

// New constructs a Planner over an rows×cols grid, all cells initially
// free, with the agent at start and a fixed goal. It returns
// ErrInvalidDimensions if rows or cols is not positive, and ErrOutOfBounds
// if start or goal lies outside the grid. A valid path is guaranteed to be
// computable immediately after construction: New runs the compute loop
// before returning.
func New(rows, cols int, start, goal Cell, opts ...Option) (*Planner, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !cellInRange(start, rows, cols) || !cellInRange(goal, rows, cols) {
		return nil, ErrOutOfBounds
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.heuristic == nil {
		if len(cfg.actionSet) == len(Octile8) {
			cfg.heuristic = ChebyshevHeuristic
		} else {
			cfg.heuristic = ManhattanHeuristic
		}
	}

	p := &Planner{
		grid:      newGrid(rows, cols),
		actions:   cfg.actionSet,
		heuristic: cfg.heuristic,
		logger:    cfg.logger,
		start:     start,
		current:   start,
		goal:      goal,
		open:      newOpenList(),
	}

	p.grid.setRHS(goal, 0)
	p.open.push(goal, key{A: p.heuristic(start, goal), B: 0})
	p.computeShortestPath()

	return p, nil
}

func cellInRange(c Cell, rows, cols int) bool {
	return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
}

// Start returns the cell the heuristic is currently anchored at.
func (p *Planner) Start() Cell { return p.start }

// Goal returns the fixed destination cell.
func (p *Planner) Goal() Cell { return p.goal }

// Current returns the agent's present cell.
func (p *Planner) Current() Cell { return p.current }

// Blocked reports whether c is currently blocked. Panics if c is out of
// bounds, unlike Block/Clear/Toggle, which are no-ops on out-of-bounds
// input.
func (p *Planner) Blocked(c Cell) bool { return p.grid.isBlocked(c) }

// Stats returns a read-only snapshot of compute-loop instrumentation, for
// an external metrics exporter. It never mutates the Planner.
func (p *Planner) Stats() PlannerStats {
	st := p.stats
	st.QueueLen = p.open.size()
	return st
}

// calculateKey computes the priority of s: the lexicographic pair
// (min(g,rhs) + h(start,s) + km, min(g,rhs)).
func (p *Planner) calculateKey(s Cell) key {
	m := min(p.grid.getG(s), p.grid.getRHS(s))
	return key{A: m + p.heuristic(p.start, s) + p.km, B: m}
}

// cost returns the edge cost between two adjacent cells: 1 unless either
// endpoint is blocked, in which case it is Inf.
func (p *Planner) cost(a, b Cell) int {
	if p.grid.isBlocked(a) || p.grid.isBlocked(b) {
		return Inf
	}
	return 1
}

// neighbors returns s's in-bounds, unblocked neighbors per the configured
// action set.
func (p *Planner) neighbors(s Cell) []Cell {
	ns := make([]Cell, 0, len(p.actions))
	for _, off := range p.actions {
		n := s.add(off)
		if p.grid.inBounds(n) && !p.grid.isBlocked(n) {
			ns = append(ns, n)
		}
	}
	return ns
}

// rawNeighbors returns every in-bounds neighbor of s regardless of blocked
// state, for the vertex-update propagation in toggleCell, which must also
// repair the toggled cell's own rhs once it may have flipped to blocked.
func (p *Planner) rawNeighbors(s Cell) []Cell {
	ns := make([]Cell, 0, len(p.actions))
	for _, off := range p.actions {
		n := s.add(off)
		if p.grid.inBounds(n) {
			ns = append(ns, n)
		}
	}
	return ns
}

// computeRHS is the one-step lookahead value for s: the minimum, over s's
// unblocked neighbors, of g(neighbor) + cost(s, neighbor). Inf if s has no
// unblocked neighbors.
func (p *Planner) computeRHS(s Cell) int {
	best := Inf
	for _, n := range p.neighbors(s) {
		if v := p.grid.getG(n) + p.cost(s, n); v < best {
			best = v
		}
	}
	return best
}

// updateVertex recomputes rhs (goal excepted, whose rhs is pinned at 0),
// then keeps the open list in sync with the resulting consistency of s.
func (p *Planner) updateVertex(s Cell) {
	if s != p.goal {
		p.grid.setRHS(s, p.computeRHS(s))
	}
	if p.grid.getG(s) != p.grid.getRHS(s) {
		p.open.update(s, p.calculateKey(s))
	} else {
		p.open.remove(s)
	}
}

// computeShortestPath is the main compute loop. It runs to completion
// before returning, so every public Planner method leaves g/rhs/the open
// list fully consistent at the agent's current cell.
func (p *Planner) computeShortestPath() {
	var expansions uint64
	for !p.open.empty() {
		kOld, u := p.open.top()
		if kOld.geq(p.calculateKey(p.start)) && p.grid.getRHS(p.start) == p.grid.getG(p.start) {
			break
		}

		p.open.pop()
		kNew := p.calculateKey(u)
		if kOld.less(kNew) {
			p.open.push(u, kNew)
			continue
		}

		expansions++
		if p.grid.getG(u) > p.grid.getRHS(u) {
			p.grid.setG(u, p.grid.getRHS(u))
		} else {
			p.grid.setG(u, Inf)
			p.updateVertex(u)
		}

		for _, n := range p.rawNeighbors(u) {
			p.updateVertex(n)
		}
	}

	p.stats.Replans++
	p.stats.Expansions += expansions
	p.logger.Debugf(
		"computeShortestPath: expansions=%d rhs(start)=%d g(start)=%d queueLen=%d",
		expansions, p.grid.getRHS(p.start), p.grid.getG(p.start), p.open.size(),
	)
}

// toggleCell is the shared implementation behind Block/Clear/Toggle. s is
// silently ignored if out of bounds or equal to the goal or the agent's
// current cell.
func (p *Planner) toggleCell(s Cell) {
	if !p.grid.inBounds(s) || s == p.goal || s == p.current {
		return
	}

	p.km += p.heuristic(p.start, p.current)
	p.start = p.current

	p.grid.setBlocked(s, !p.grid.isBlocked(s))

	p.updateVertex(s)
	for _, n := range p.rawNeighbors(s) {
		p.updateVertex(n)
	}

	p.computeShortestPath()
}

// Block marks s as blocked and replans. No-op if s is out of bounds,
// already blocked, or equal to the goal or the agent's current cell.
func (p *Planner) Block(s Cell) {
	if !p.grid.inBounds(s) || p.grid.isBlocked(s) {
		return
	}
	p.toggleCell(s)
}

// Clear marks s as free and replans. No-op if s is out of bounds, already
// free, or equal to the goal or the agent's current cell.
func (p *Planner) Clear(s Cell) {
	if !p.grid.inBounds(s) || !p.grid.isBlocked(s) {
		return
	}
	p.toggleCell(s)
}

// Toggle flips s between blocked and free and replans. No-op if s is out
// of bounds or equal to the goal or the agent's current cell.
func (p *Planner) Toggle(s Cell) {
	p.toggleCell(s)
}

// ReplaceMap diffs newMap against the current blocked map and toggles every
// differing cell, except the goal and the agent's current cell, which are
// left unchanged as in Toggle. newMap must have exactly the Planner's row
// count, and every row must have exactly the Planner's column count;
// otherwise the entire call is a no-op.
func (p *Planner) ReplaceMap(newMap [][]bool) {
	if len(newMap) != p.grid.rows {
		return
	}
	for _, row := range newMap {
		if len(row) != p.grid.cols {
			return
		}
	}

	for r := 0; r < p.grid.rows; r++ {
		for c := 0; c < p.grid.cols; c++ {
			cell := Cell{Row: r, Col: c}
			if p.grid.isBlocked(cell) != newMap[r][c] {
				p.toggleCell(cell)
			}
		}
	}
}

// peekFrom returns the neighbor of s with strictly smaller g than s,
// choosing the first such neighbor encountered in action-set order when
// several neighbors tie for the minimum g. Returns s itself if no neighbor
// improves on it.
func (p *Planner) peekFrom(s Cell) Cell {
	best := s
	for _, n := range p.neighbors(s) {
		if p.grid.getG(n) < p.grid.getG(best) {
			best = n
		}
	}
	return best
}

// PeekNext returns the next cell on the optimal path from the agent's
// current cell, or Current() itself if no neighbor makes progress.
func (p *Planner) PeekNext() Cell {
	return p.peekFrom(p.current)
}

// Path returns the sequence of cells from Current to at most Goal,
// following PeekNext until the goal is reached or no further progress is
// possible. Always begins with Current(); finite, bounded by the grid
// size.
func (p *Planner) Path() []Cell {
	path := []Cell{p.current}
	s := p.current
	for s != p.goal {
		next := p.peekFrom(s)
		if next == s {
			break
		}
		s = next
		path = append(path, s)
	}
	return path
}

// Step advances the agent to PeekNext() and returns the new Current(). It
// does not touch km or Start(); the heuristic anchor only moves on world
// edits (Block/Clear/Toggle/ReplaceMap).
func (p *Planner) Step() Cell {
	p.current = p.peekFrom(p.current)
	return p.current
}
