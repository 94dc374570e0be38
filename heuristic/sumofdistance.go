package heuristic

import (
	"math"

	"github.com/katalvlaran/sokosolve/core"
)

// SumOfDistance is H4: the Hungarian box-goal matching cost plus the
// Euclidean distance from the player to its nearest unmatched box. The
// player term breaks ties between states with identical box layouts but
// different player positions, steering search toward states where the
// player is already positioned to make the next push.
type SumOfDistance struct{}

// Calculate implements Heuristic.
func (SumOfDistance) Calculate(state *core.State) float64 {
	boxes, goals := unmatchedBoxesAndGoals(state)
	if len(boxes) == 0 {
		return 0
	}

	matching := float64(minCostMatching(newCostMatrix(boxes, goals)))

	player := state.Player()
	nearest := math.Inf(1)
	for _, b := range boxes {
		d := euclidean(player, b)
		if d < nearest {
			nearest = d
		}
	}

	return matching + nearest
}

// Name implements Heuristic.
func (SumOfDistance) Name() string { return "SUM_OF_DISTANCE" }

func euclidean(a, b core.Position) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)

	return math.Sqrt(dr*dr + dc*dc)
}
