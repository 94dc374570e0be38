// Package deadlock implements the static and dynamic predicates that
// identify unrecoverable Sokoban box configurations: corner deadlocks (D1),
// frozen 2x2 blocks (D2), wall segments without a goal (D3), and precomputed
// dead-end aisle cells (D4).
//
// Detector.IsDeadlock is pure and side-effect-free aside from lazily
// populating the D4 aisle cache, which is keyed by board identity and
// protected by a read-write lock so it is safe to share one Detector across
// concurrently running searches on the same board.
//
// A box already on a goal is never a deadlock, regardless of what D1-D4
// would otherwise say.
package deadlock
