// Package scenario parses the YAML scenario format consumed by
// cmd/dstarlite-sim: a grid size, a start/goal pair, a connectivity choice,
// an optional set of initially blocked cells, and an ordered script of
// world-edit and agent-step operations to replay against a dstarlite.Planner.
//
// Decoding is strict: unknown YAML fields are rejected, and every cell
// reference is bounds-checked against the declared grid dimensions before a
// Planner is ever constructed. Everything this package validates, the
// Planner never has to.
package scenario
