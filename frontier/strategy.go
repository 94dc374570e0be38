package frontier

import (
	"github.com/katalvlaran/sokosolve/core"
	"github.com/katalvlaran/sokosolve/heuristic"
)

// Strategy is a pending-node structure plus the policy for how nodes leave
// it: a FIFO queue for BFS, a LIFO stack for DFS, a depth-bounded stack for
// IDDFS, or a priority queue for Greedy/A*. The engine treats every
// Strategy identically and never branches on which one it was given.
type Strategy interface {
	// Add inserts node into the frontier. h is nil unless NeedsHeuristic
	// reports true; implementations that need it may assume it is non-nil.
	// A strategy may silently drop a node (A* drops h == +Inf) rather than
	// ever returning it from Next.
	Add(node *core.Node, h heuristic.Heuristic)

	// Next removes and returns the node the strategy's policy selects next.
	// Callers must check HasNext first; Next on an empty strategy panics.
	Next() *core.Node

	// HasNext reports whether Next has anything to return.
	HasNext() bool

	// Size returns the current number of pending nodes, including any held
	// in an overflow structure (IDDFS's deferred-depth buckets).
	Size() int

	// NeedsHeuristic reports whether Add requires a non-nil heuristic.
	NeedsHeuristic() bool

	// CacheCost reports whether the engine should run its best-cost-map
	// discipline (for strategies that may revisit a state at a lower cost)
	// instead of the plain closed-set discipline.
	CacheCost() bool

	// Name returns the strategy's config-file identifier, e.g. "ASTAR".
	Name() string
}
