// Package core defines the immutable puzzle data model shared by every
// other package in this module: Position, Board, State and Node.
//
// Boards (walls and goals) are constant for a puzzle and shared by reference
// across every State derived from it. States are immutable once built and
// compare equal iff their player position and box set are equal — the
// board's walls and goals are never part of state identity. Nodes form a
// reverse tree of parent pointers used only for path reconstruction after a
// search completes.
//
// Nothing in this package mutates a Board or a State in place; Successors
// always returns freshly built States.
package core
