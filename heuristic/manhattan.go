package heuristic

import "github.com/katalvlaran/sokosolve/core"

// Manhattan is H1: the sum, over every box, of its L1 distance to the
// nearest goal. Admissible but not tight.
type Manhattan struct{}

// Calculate implements Heuristic.
func (Manhattan) Calculate(state *core.State) float64 {
	return float64(manhattanSum(state))
}

// Name implements Heuristic.
func (Manhattan) Name() string { return "MANHATTAN" }

func manhattanSum(state *core.State) int {
	goals := state.Board().Goals()
	total := 0
	for _, box := range state.Boxes() {
		best := -1
		for _, g := range goals {
			d := manhattan(box, g)
			if best < 0 || d < best {
				best = d
			}
		}
		if best > 0 {
			total += best
		}
	}

	return total
}
