// Package sokosolve is a generic, pluggable state-space search core for
// Sokoban: immutable board states, a deadlock oracle, five heuristics, five
// frontier strategies, and a generic best-first search engine that ties them
// together.
//
// What
//
//   - core/      — Position, Board, State, Node: immutable puzzle state and
//     push-aware successor generation.
//   - deadlock/  — a pure predicate (corner, frozen 2x2, wall-segment,
//     dead-end aisle) used both to prune the successor function and to
//     short-circuit heuristics.
//   - heuristic/ — Manhattan, greedy one-to-one matching, Hungarian perfect
//     matching, a player-to-box composite, and a deadlock-amplified Manhattan
//     sum, all State -> float64.
//   - frontier/  — BFS, DFS, IDDFS, Greedy and A* frontier orderings behind
//     one Strategy interface.
//   - search/    — the generic engine: two closed-set disciplines, path
//     reconstruction, and search metrics.
//   - mapio/, config/, result/ — thin I/O boundaries: ASCII map parsing,
//     JSON configuration, and JSON/CSV result export.
//   - cmd/sokoban-solver — the CLI.
//
// Why
//
//   - Separates the hard engineering (state model, deadlock detection,
//     search) from the I/O plumbing around it (map files, JSON config,
//     CSV animation), so the core is testable and reusable without any of
//     the boundary packages.
//
// See DESIGN.md for how each package is grounded, and SPEC_FULL.md for the
// full requirements this module implements.
package sokosolve
