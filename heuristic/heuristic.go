package heuristic

import "github.com/katalvlaran/sokosolve/core"

// Heuristic estimates the remaining distance from a state to the goal
// configuration. Implementations return math.Inf(1) for provably
// unrecoverable states. Every Heuristic in this package is safe for
// concurrent use; all but DeadlockAmplified, which owns a deadlock cache,
// are stateless.
type Heuristic interface {
	// Calculate returns h(state); h(goal) == 0 for every implementation here.
	Calculate(state *core.State) float64

	// Name returns the heuristic's config-file identifier, e.g. "MANHATTAN".
	Name() string
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

func manhattan(a, b core.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}
