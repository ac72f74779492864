// Package dstarlite implements the D* Lite incremental shortest-path
// algorithm over a rectangular grid of blocked/free cells.
//
// What:
//
//   - Planner holds a fixed goal, a moving agent (current), a heap-backed
//     open list of inconsistent cells, and the g/rhs value grids described
//     in Koenig & Likhachev's "Fast Replanning for Navigation in Unknown
//     Terrain" (Fig. 9, p.8).
//   - World edits (Block/Clear/Toggle/ReplaceMap) re-anchor the heuristic at
//     the agent's current cell and incrementally repair only the vertices
//     whose rhs-value actually changed, instead of replanning from scratch.
//   - Path() greedily descends g-values from Current to Goal; PeekNext and
//     Step expose that descent one cell at a time.
//
// Why:
//
//   - Grid agents that discover obstacles while moving need a shortest path
//     that stays correct without paying the full cost of A* on every tick.
//   - D* Lite reuses the previous search tree; only vertices whose
//     consistency changed are re-examined, which is why the public surface
//     (Block/Clear/Toggle/ReplaceMap) is deliberately narrow: every mutation
//     goes through updateVertex so the key invariants in Key never drift.
//
// Complexity:
//
//   - New:             O(R·C) to allocate the grids, plus one
//     computeShortestPath over the (initially) single inconsistent vertex.
//   - Block/Clear/Toggle: amortized O(d·log n) per affected vertex, where d
//     is the branching factor of the action set (4 or 8) and n is the
//     current open-list size; worst case O(R·C·log(R·C)) if the edit
//     invalidates most of the grid.
//   - Path/PeekNext/Step: O(R·C) worst case (bounded by strictly decreasing
//     g-values), O(path length) typical.
//
// Errors:
//
//   - ErrInvalidDimensions: R or C is not positive.
//   - ErrOutOfBounds: start or goal lies outside the grid.
//
// All other conditions — blocking the goal or the agent's own cell,
// toggling a cell outside the grid, replacing the map with mismatched
// dimensions, moving into an unreachable goal — are defined, silent
// no-ops; see the doc comments on the individual methods.
package dstarlite
